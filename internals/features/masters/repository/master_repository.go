// internals/features/masters/repository/master_repository.go
package repository

import (
	"context"

	"gorm.io/gorm"

	helper "jemaat_backend/internals/helpers"
	"jemaat_backend/internals/models"
)

const fetchKind = "master"

// Item is the uniform shape of every lookup row.
type Item struct {
	ID   string `json:"id"`
	Nama string `json:"nama"`
}

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context, k Kind) ([]Item, error) {
	items := []Item{}
	err := r.db.WithContext(ctx).
		Table(k.Table).
		Select(k.IDCol + " AS id, nama").
		Order("nama ASC").
		Scan(&items).Error
	if err != nil {
		return nil, helper.WrapStore(fetchKind, err)
	}
	return items, nil
}

func (r *Repository) Get(ctx context.Context, k Kind, id string) (*Item, error) {
	var items []Item
	err := r.db.WithContext(ctx).
		Table(k.Table).
		Select(k.IDCol+" AS id, nama").
		Where(k.IDCol+" = ?", id).
		Limit(1).
		Scan(&items).Error
	if err != nil {
		return nil, helper.WrapStore(fetchKind, err)
	}
	if len(items) == 0 {
		return nil, helper.NewNotFound(k.Label)
	}
	return &items[0], nil
}

func (r *Repository) Create(ctx context.Context, k Kind, it Item) error {
	err := r.db.WithContext(ctx).
		Table(k.Table).
		Create(map[string]any{k.IDCol: it.ID, "nama": it.Nama}).Error
	return helper.MapWriteError(k.Label, err)
}

// Rename changes the label; rows that store the old label follow along.
func (r *Repository) Rename(ctx context.Context, k Kind, id, nama string) (*Item, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		old, err := currentName(tx, k, id)
		if err != nil {
			return err
		}
		if err := tx.Table(k.Table).Where(k.IDCol+" = ?", id).Update("nama", nama).Error; err != nil {
			return err
		}
		for _, ref := range k.usedByName {
			if err := tx.Table(ref.Table).Where(ref.Column+" = ?", old).Update(ref.Column, nama).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, helper.MapWriteError(k.Label, err)
	}
	return &Item{ID: id, Nama: nama}, nil
}

func currentName(tx *gorm.DB, k Kind, id string) (string, error) {
	var names []string
	if err := tx.Table(k.Table).Where(k.IDCol+" = ?", id).Limit(1).Pluck("nama", &names).Error; err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", gorm.ErrRecordNotFound
	}
	return names[0], nil
}

func inUse(tx *gorm.DB, refs []ref, value string) (string, error) {
	for _, ref := range refs {
		var n int64
		if err := tx.Table(ref.Table).Where(ref.Column+" = ?", value).Count(&n).Error; err != nil {
			return "", err
		}
		if n > 0 {
			return ref.Table, nil
		}
	}
	return "", nil
}

// Delete refuses to remove a row that is still referenced by id or by label.
func (r *Repository) Delete(ctx context.Context, k Kind, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		nama, err := currentName(tx, k, id)
		if err != nil {
			return err
		}
		table, err := inUse(tx, k.usedBy, id)
		if err == nil && table == "" {
			table, err = inUse(tx, k.usedByName, nama)
		}
		if err != nil {
			return err
		}
		if table != "" {
			return helper.NewConflict(k.Label + " masih dipakai di " + table)
		}
		return tx.Exec("DELETE FROM "+k.Table+" WHERE "+k.IDCol+" = ?", id).Error
	})
	return helper.MapWriteError(k.Label, err)
}

/* =========================================================
 * WILAYAH (kelurahan -> kecamatan -> kota/kab -> provinsi)
 * ========================================================= */

func listWilayah[T any](ctx context.Context, db *gorm.DB, parentCol string, parent *string) ([]T, error) {
	rows := []T{}
	q := db.WithContext(ctx).Model(new(T))
	if parent != nil {
		q = q.Where(parentCol+" = ?", *parent)
	}
	if err := q.Order("nama ASC").Find(&rows).Error; err != nil {
		return nil, helper.WrapStore("wilayah", err)
	}
	return rows, nil
}

func (r *Repository) Provinsi(ctx context.Context) ([]models.ProvinsiModel, error) {
	return listWilayah[models.ProvinsiModel](ctx, r.db, "", nil)
}

func (r *Repository) KotaKab(ctx context.Context, idProvinsi *string) ([]models.KotaKabModel, error) {
	return listWilayah[models.KotaKabModel](ctx, r.db, "id_provinsi", idProvinsi)
}

func (r *Repository) Kecamatan(ctx context.Context, idKotaKab *string) ([]models.KecamatanModel, error) {
	return listWilayah[models.KecamatanModel](ctx, r.db, "id_kota_kab", idKotaKab)
}

func (r *Repository) Kelurahan(ctx context.Context, idKecamatan *string) ([]models.KelurahanModel, error) {
	return listWilayah[models.KelurahanModel](ctx, r.db, "id_kecamatan", idKecamatan)
}
