// internals/features/keluarga/repository/keluarga_repository.go
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jemaat_backend/internals/features/keluarga/dto"
	helper "jemaat_backend/internals/helpers"
	"jemaat_backend/internals/models"
)

const fetchKind = "keluarga"

// Condition: kolom keluarga langsung + kolom alamat (nested)
type Condition struct {
	Where  map[string]any
	Alamat map[string]any
}

func (c Condition) IsEmpty() bool {
	return len(c.Where) == 0 && len(c.Alamat) == 0
}

func BuildCondition(f dto.Filter) Condition {
	cond := Condition{Where: map[string]any{}, Alamat: map[string]any{}}
	putIf(cond.Where, "id_rayon", f.IDRayon)
	putIf(cond.Where, "id_status_kepemilikan", f.IDStatusKepemilikan)
	putIf(cond.Where, "id_status_tanah", f.IDStatusTanah)
	putIf(cond.Alamat, "id_kelurahan", f.IDKelurahan)
	return cond
}

func putIf(m map[string]any, col string, v *string) {
	if v != nil {
		m[col] = *v
	}
}

func (c Condition) Apply(tx *gorm.DB) *gorm.DB {
	if len(c.Where) > 0 {
		tx = tx.Where(c.Where)
	}
	if len(c.Alamat) > 0 {
		sub := tx.Session(&gorm.Session{NewDB: true}).
			Model(&models.AlamatModel{}).
			Select("id_alamat").
			Where(c.Alamat)
		tx = tx.Where("id_alamat IN (?)", sub)
	}
	return tx
}

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func withRelations(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Alamat.Kelurahan.Kecamatan.KotaKab.Provinsi").
		Preload("StatusKepemilikan").
		Preload("StatusTanah").
		Preload("Rayon").
		Preload("Jemaat", func(db *gorm.DB) *gorm.DB { return db.Order("nama ASC") }).
		Preload("Jemaat.Status")
}

// List is always the full list ordered by id; no paging, search or count.
func (r *Repository) List(ctx context.Context, f dto.Filter) ([]models.KeluargaModel, error) {
	var rows []models.KeluargaModel
	q := BuildCondition(f).Apply(r.db.WithContext(ctx).Model(&models.KeluargaModel{}))
	if err := withRelations(q).Order("id_keluarga ASC").Find(&rows).Error; err != nil {
		return nil, helper.WrapStore(fetchKind, err)
	}
	return rows, nil
}

func (r *Repository) Get(ctx context.Context, id string) (*models.KeluargaModel, error) {
	var m models.KeluargaModel
	err := withRelations(r.db.WithContext(ctx)).Where("id_keluarga = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NewNotFound("Keluarga")
	}
	if err != nil {
		return nil, helper.WrapStore(fetchKind, err)
	}
	return &m, nil
}

// keluargaRefs lists the rows a household points at; foreign keys are
// not enforced by the schema.
func keluargaRefs(idKepala, idRayon, idKepemilikan, idTanah *string) []helper.Ref {
	return []helper.Ref{
		{Table: "jemaat", Column: "id_jemaat", Label: "Jemaat", ID: idKepala},
		{Table: "rayon", Column: "id_rayon", Label: "Rayon", ID: idRayon},
		{Table: "status_kepemilikan", Column: "id_status_kepemilikan", Label: "Status kepemilikan", ID: idKepemilikan},
		{Table: "status_tanah", Column: "id_status_tanah", Label: "Status tanah", ID: idTanah},
	}
}

func kelurahanRef(id *string) helper.Ref {
	return helper.Ref{Table: "kelurahan", Column: "id_kelurahan", Label: "Kelurahan", ID: id}
}

// Create writes the address and the household in one transaction.
func (r *Repository) Create(ctx context.Context, k *models.KeluargaModel, a *models.AlamatModel) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		refs := keluargaRefs(k.IDKepalaKeluarga, k.IDRayon, k.IDStatusKepemilikan, k.IDStatusTanah)
		if err := helper.EnsureRefs(tx, append(refs, kelurahanRef(&a.IDKelurahan))...); err != nil {
			return err
		}
		if err := tx.Create(a).Error; err != nil {
			return err
		}
		return tx.Create(k).Error
	})
	return helper.MapWriteError("Keluarga", err)
}

func (r *Repository) Update(ctx context.Context, id string, changes, alamatChanges map[string]any) (*models.KeluargaModel, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur models.KeluargaModel
		if err := tx.Where("id_keluarga = ?", id).First(&cur).Error; err != nil {
			return err
		}
		refs := keluargaRefs(
			helper.RefID(changes, "id_kepala_keluarga"),
			helper.RefID(changes, "id_rayon"),
			helper.RefID(changes, "id_status_kepemilikan"),
			helper.RefID(changes, "id_status_tanah"),
		)
		refs = append(refs, kelurahanRef(helper.RefID(alamatChanges, "id_kelurahan")))
		if err := helper.EnsureRefs(tx, refs...); err != nil {
			return err
		}
		if len(changes) > 0 {
			if err := tx.Model(&cur).Updates(changes).Error; err != nil {
				return err
			}
		}
		if len(alamatChanges) == 0 {
			return nil
		}
		if cur.IDAlamat == nil {
			return helper.NewBadRequest("Keluarga belum memiliki alamat")
		}
		return tx.Model(&models.AlamatModel{}).Where("id_alamat = ?", *cur.IDAlamat).Updates(alamatChanges).Error
	})
	if err != nil {
		return nil, helper.MapWriteError("Keluarga", err)
	}
	return r.Get(ctx, id)
}

// Delete detaches the members, removes the household and the address it owns.
func (r *Repository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur models.KeluargaModel
		if err := tx.Where("id_keluarga = ?", id).First(&cur).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.JemaatModel{}).
			Where("id_keluarga = ?", id).
			Update("id_keluarga", nil).Error; err != nil {
			return err
		}
		if err := tx.Delete(&cur).Error; err != nil {
			return err
		}
		if cur.IDAlamat != nil {
			return tx.Where("id_alamat = ?", *cur.IDAlamat).Delete(&models.AlamatModel{}).Error
		}
		return nil
	})
	return helper.MapWriteError("Keluarga", err)
}
