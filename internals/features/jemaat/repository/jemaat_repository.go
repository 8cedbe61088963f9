// internals/features/jemaat/repository/jemaat_repository.go
package repository

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"jemaat_backend/internals/features/jemaat/dto"
	helper "jemaat_backend/internals/helpers"
	"jemaat_backend/internals/models"
)

const fetchKind = "jemaat"

/* =========================================================
 * CONDITION (pure)
 * ========================================================= */

// Condition is the store predicate for a member listing. Household-scoped
// keys live in one nested map so they never overwrite each other.
type Condition struct {
	Where    map[string]any
	Keluarga map[string]any
	Search   string
}

func (c Condition) IsEmpty() bool {
	return len(c.Where) == 0 && len(c.Keluarga) == 0 && c.Search == ""
}

// BuildCondition maps the typed filter to a Condition without touching the store.
func BuildCondition(f dto.Filter, search string) Condition {
	cond := Condition{
		Where:    map[string]any{},
		Keluarga: map[string]any{},
		Search:   strings.TrimSpace(search),
	}

	if f.JenisKelamin != nil {
		cond.Where["jenis_kelamin"] = *f.JenisKelamin == "L"
	}
	putIf(cond.Where, "gol_darah", f.GolDarah)
	putIf(cond.Where, "status_dalam_kel", f.StatusDalamKel)
	putIf(cond.Where, "id_pendidikan", f.IDPendidikan)
	putIf(cond.Where, "id_pekerjaan", f.IDPekerjaan)

	putIf(cond.Keluarga, "id_rayon", f.IDRayon)
	putIf(cond.Keluarga, "id_status_kepemilikan", f.IDStatusKepemilikan)
	putIf(cond.Keluarga, "id_status_tanah", f.IDStatusTanah)
	return cond
}

func putIf(m map[string]any, col string, v *string) {
	if v != nil {
		m[col] = *v
	}
}

// Apply adds the condition to a query on the jemaat table.
func (c Condition) Apply(tx *gorm.DB) *gorm.DB {
	if len(c.Where) > 0 {
		tx = tx.Where(qualify("jemaat", c.Where))
	}
	if len(c.Keluarga) > 0 {
		sub := tx.Session(&gorm.Session{NewDB: true}).
			Model(&models.KeluargaModel{}).
			Select("id_keluarga").
			Where(c.Keluarga)
		tx = tx.Where("jemaat.id_keluarga IN (?)", sub)
	}
	if c.Search != "" {
		p := helper.ContainsPattern(c.Search)
		tx = tx.Where(`(LOWER(jemaat.nama) LIKE ? ESCAPE '\' OR LOWER(jemaat.id_jemaat) LIKE ? ESCAPE '\')`, p, p)
	}
	return tx
}

func qualify(table string, m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[table+"."+k] = v
	}
	return out
}

/* =========================================================
 * REPOSITORY
 * ========================================================= */

type ListParams struct {
	Filter dto.Filter
	Search string
	Paging *helper.Paging // nil or All = unpaged
}

type ListResult struct {
	Data     []models.JemaatModel `json:"data"`
	Metadata *helper.Meta         `json:"metadata,omitempty"`
}

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func withRelations(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Keluarga.Alamat.Kelurahan.Kecamatan.KotaKab.Provinsi").
		Preload("Keluarga.Rayon").
		Preload("Keluarga.StatusKepemilikan").
		Preload("Keluarga.StatusTanah").
		Preload("Status").
		Preload("Pendidikan").
		Preload("Pekerjaan").
		Preload("Pendapatan").
		Preload("Jaminan").
		Preload("Pernikahan").
		Preload("Baptis").
		Preload("Sidi").
		Preload("JabatanRel.Jabatan")
}

func (r *Repository) List(ctx context.Context, p ListParams) (*ListResult, error) {
	cond := BuildCondition(p.Filter, p.Search)

	if p.Paging == nil || p.Paging.All {
		var rows []models.JemaatModel
		q := cond.Apply(r.db.WithContext(ctx).Model(&models.JemaatModel{}))
		if err := withRelations(q).Order("jemaat.nama ASC").Find(&rows).Error; err != nil {
			return nil, helper.WrapStore(fetchKind, err)
		}
		return &ListResult{Data: rows}, nil
	}

	paging := *p.Paging
	var (
		rows  []models.JemaatModel
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return cond.Apply(r.db.WithContext(gctx).Model(&models.JemaatModel{})).Count(&total).Error
	})
	g.Go(func() error {
		q := cond.Apply(r.db.WithContext(gctx).Model(&models.JemaatModel{}))
		return withRelations(q).
			Order("jemaat.nama ASC").
			Limit(paging.Limit).
			Offset(paging.Offset()).
			Find(&rows).Error
	})
	if err := g.Wait(); err != nil {
		return nil, helper.WrapStore(fetchKind, err)
	}

	meta := helper.BuildMeta(total, paging)
	return &ListResult{Data: rows, Metadata: &meta}, nil
}

func (r *Repository) Get(ctx context.Context, id string) (*models.JemaatModel, error) {
	var m models.JemaatModel
	err := withRelations(r.db.WithContext(ctx)).Where("id_jemaat = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NewNotFound("Jemaat")
	}
	if err != nil {
		return nil, helper.WrapStore(fetchKind, err)
	}
	return &m, nil
}

// refCols maps every reference column of jemaat to the table holding it.
var refCols = []helper.Ref{
	{Table: "keluarga", Column: "id_keluarga", Label: "Keluarga"},
	{Table: "status_jemaat", Column: "id_status", Label: "Status jemaat"},
	{Table: "pendidikan", Column: "id_pendidikan", Label: "Pendidikan"},
	{Table: "pekerjaan", Column: "id_pekerjaan", Label: "Pekerjaan"},
	{Table: "pendapatan", Column: "id_pendapatan", Label: "Pendapatan"},
	{Table: "jaminan", Column: "id_jaminan", Label: "Jaminan"},
	{Table: "pernikahan", Column: "id_pernikahan", Label: "Pernikahan"},
}

// ensureRefs checks the reference columns present in vals (nil means unset).
func ensureRefs(tx *gorm.DB, vals map[string]*string) error {
	refs := make([]helper.Ref, 0, len(refCols))
	for _, r := range refCols {
		r.ID = vals[r.Column]
		refs = append(refs, r)
	}
	return helper.EnsureRefs(tx, refs...)
}

func modelRefs(m *models.JemaatModel) map[string]*string {
	return map[string]*string{
		"id_keluarga":   m.IDKeluarga,
		"id_status":     m.IDStatus,
		"id_pendidikan": m.IDPendidikan,
		"id_pekerjaan":  m.IDPekerjaan,
		"id_pendapatan": m.IDPendapatan,
		"id_jaminan":    m.IDJaminan,
		"id_pernikahan": m.IDPernikahan,
	}
}

func changeRefs(changes map[string]any) map[string]*string {
	out := map[string]*string{}
	for _, r := range refCols {
		out[r.Column] = helper.RefID(changes, r.Column)
	}
	return out
}

func (r *Repository) Create(ctx context.Context, m *models.JemaatModel) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureRefs(tx, modelRefs(m)); err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	return helper.MapWriteError("Jemaat", err)
}

func (r *Repository) Update(ctx context.Context, id string, changes map[string]any) (*models.JemaatModel, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur models.JemaatModel
		if err := tx.Where("id_jemaat = ?", id).First(&cur).Error; err != nil {
			return err
		}
		if err := ensureRefs(tx, changeRefs(changes)); err != nil {
			return err
		}
		if len(changes) == 0 {
			return nil
		}
		return tx.Model(&cur).Updates(changes).Error
	})
	if err != nil {
		return nil, helper.MapWriteError("Jemaat", err)
	}
	return r.Get(ctx, id)
}

// Delete removes the member with its sacrament and role rows and clears any
// household that named it as head.
func (r *Repository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dep := range []any{&models.BaptisModel{}, &models.SidiModel{}, &models.JemaatJabatanModel{}} {
			if err := tx.Where("id_jemaat = ?", id).Delete(dep).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&models.KeluargaModel{}).
			Where("id_kepala_keluarga = ?", id).
			Update("id_kepala_keluarga", nil).Error; err != nil {
			return err
		}
		res := tx.Where("id_jemaat = ?", id).Delete(&models.JemaatModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return helper.MapWriteError("Jemaat", err)
}
