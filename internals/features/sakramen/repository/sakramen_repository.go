// internals/features/sakramen/repository/sakramen_repository.go
package repository

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"jemaat_backend/internals/features/sakramen/dto"
	helper "jemaat_backend/internals/helpers"
	"jemaat_backend/internals/models"
)

const fetchKind = "sakramen"

/* =========================================================
 * CONDITIONS
 * ========================================================= */

// Condition: kolom langsung + kondisi pada jemaat terkait
type Condition struct {
	Where  map[string]any
	Jemaat map[string]any
}

func (c Condition) Apply(tx *gorm.DB) *gorm.DB {
	if len(c.Where) > 0 {
		tx = tx.Where(c.Where)
	}
	if len(c.Jemaat) > 0 {
		sub := tx.Session(&gorm.Session{NewDB: true}).
			Model(&models.JemaatModel{}).
			Select("id_jemaat").
			Where(c.Jemaat)
		tx = tx.Where("id_jemaat IN (?)", sub)
	}
	return tx
}

type Conditions struct {
	Baptis     Condition
	Sidi       Condition
	Pernikahan map[string]any
}

// BuildConditions derives the three record filters from one filter.
// klasisName is the resolved name of f.IDKlasis; when it is nil the
// pernikahan records stay unfiltered by klasis. Gender never applies
// to pernikahan.
func BuildConditions(f dto.Filter, klasisName *string) Conditions {
	baptis := Condition{Where: map[string]any{}, Jemaat: map[string]any{}}
	sidi := Condition{Where: map[string]any{}, Jemaat: map[string]any{}}
	pernikahan := map[string]any{}

	if f.IDKlasis != nil {
		baptis.Where["id_klasis"] = *f.IDKlasis
		sidi.Where["id_klasis"] = *f.IDKlasis
		if klasisName != nil {
			pernikahan["klasis"] = *klasisName
		}
	}
	if f.JenisKelamin != nil {
		male := *f.JenisKelamin == "L"
		baptis.Jemaat["jenis_kelamin"] = male
		sidi.Jemaat["jenis_kelamin"] = male
	}
	return Conditions{Baptis: baptis, Sidi: sidi, Pernikahan: pernikahan}
}

/* =========================================================
 * REPOSITORY
 * ========================================================= */

type Result struct {
	Baptis     []models.BaptisModel     `json:"baptis"`
	Sidi       []models.SidiModel       `json:"sidi"`
	Pernikahan []models.PernikahanModel `json:"pernikahan"`
}

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func jemaatIdentity(db *gorm.DB) *gorm.DB {
	return db.Select("id_jemaat", "nama")
}

func pasanganIdentity(db *gorm.DB) *gorm.DB {
	return db.Select("id_jemaat", "nama", "id_pernikahan").Order("nama ASC")
}

func (r *Repository) resolveKlasisName(ctx context.Context, id *string) (*string, error) {
	if id == nil {
		return nil, nil
	}
	var rows []models.KlasisModel
	if err := r.db.WithContext(ctx).
		Select("id_klasis", "nama").
		Where("id_klasis = ?", *id).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0].Nama, nil
}

// List runs the three record queries concurrently, newest first.
func (r *Repository) List(ctx context.Context, f dto.Filter) (*Result, error) {
	name, err := r.resolveKlasisName(ctx, f.IDKlasis)
	if err != nil {
		return nil, helper.WrapStore(fetchKind, err)
	}
	cond := BuildConditions(f, name)

	res := &Result{
		Baptis:     []models.BaptisModel{},
		Sidi:       []models.SidiModel{},
		Pernikahan: []models.PernikahanModel{},
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q := cond.Baptis.Apply(r.db.WithContext(gctx).Model(&models.BaptisModel{}))
		return q.Preload("Jemaat", jemaatIdentity).
			Preload("Klasis").
			Order("tanggal DESC").
			Find(&res.Baptis).Error
	})
	g.Go(func() error {
		q := cond.Sidi.Apply(r.db.WithContext(gctx).Model(&models.SidiModel{}))
		return q.Preload("Jemaat", jemaatIdentity).
			Preload("Klasis").
			Order("tanggal DESC").
			Find(&res.Sidi).Error
	})
	g.Go(func() error {
		q := r.db.WithContext(gctx).Model(&models.PernikahanModel{})
		if len(cond.Pernikahan) > 0 {
			q = q.Where(cond.Pernikahan)
		}
		return q.Preload("Jemaats", pasanganIdentity).
			Order("tanggal DESC").
			Find(&res.Pernikahan).Error
	})
	if err := g.Wait(); err != nil {
		return nil, helper.WrapStore(fetchKind, err)
	}
	return res, nil
}

/* =========================================================
 * CRUD helpers
 * ========================================================= */

func getOne[T any](tx *gorm.DB, pkCol, id, entity string) (*T, error) {
	var m T
	err := tx.Where(pkCol+" = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NewNotFound(entity)
	}
	if err != nil {
		return nil, helper.WrapStore(fetchKind, err)
	}
	return &m, nil
}

func updateOne[T any](tx *gorm.DB, pkCol, id string, changes map[string]any) error {
	var cur T
	if err := tx.Where(pkCol+" = ?", id).First(&cur).Error; err != nil {
		return err
	}
	if len(changes) == 0 {
		return nil
	}
	return tx.Model(new(T)).Where(pkCol+" = ?", id).Updates(changes).Error
}

func deleteOne[T any](tx *gorm.DB, pkCol, id string) error {
	res := tx.Where(pkCol+" = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// checkRefs validates id_jemaat / id_klasis for baptis and sidi writes.
func checkRefs(tx *gorm.DB, idJemaat string, idKlasis *string) error {
	var jemaat *string
	if idJemaat != "" {
		jemaat = &idJemaat
	}
	return helper.EnsureRefs(tx,
		helper.Ref{Table: "jemaat", Column: "id_jemaat", Label: "Jemaat", ID: jemaat},
		helper.Ref{Table: "klasis", Column: "id_klasis", Label: "Klasis", ID: idKlasis},
	)
}

func refsFromChanges(changes map[string]any) (string, *string) {
	jemaat, _ := changes["id_jemaat"].(string)
	return jemaat, helper.RefID(changes, "id_klasis")
}

/* =========================================================
 * BAPTIS
 * ========================================================= */

func (r *Repository) GetBaptis(ctx context.Context, id string) (*models.BaptisModel, error) {
	tx := r.db.WithContext(ctx).Preload("Jemaat", jemaatIdentity).Preload("Klasis")
	return getOne[models.BaptisModel](tx, "id_baptis", id, "Baptis")
}

func (r *Repository) CreateBaptis(ctx context.Context, m *models.BaptisModel) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkRefs(tx, m.IDJemaat, m.IDKlasis); err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	return helper.MapWriteError("Baptis", err)
}

func (r *Repository) UpdateBaptis(ctx context.Context, id string, changes map[string]any) (*models.BaptisModel, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		jemaat, klasis := refsFromChanges(changes)
		if err := checkRefs(tx, jemaat, klasis); err != nil {
			return err
		}
		return updateOne[models.BaptisModel](tx, "id_baptis", id, changes)
	})
	if err != nil {
		return nil, helper.MapWriteError("Baptis", err)
	}
	return r.GetBaptis(ctx, id)
}

func (r *Repository) DeleteBaptis(ctx context.Context, id string) error {
	return helper.MapWriteError("Baptis", deleteOne[models.BaptisModel](r.db.WithContext(ctx), "id_baptis", id))
}

/* =========================================================
 * SIDI
 * ========================================================= */

func (r *Repository) GetSidi(ctx context.Context, id string) (*models.SidiModel, error) {
	tx := r.db.WithContext(ctx).Preload("Jemaat", jemaatIdentity).Preload("Klasis")
	return getOne[models.SidiModel](tx, "id_sidi", id, "Sidi")
}

func (r *Repository) CreateSidi(ctx context.Context, m *models.SidiModel) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkRefs(tx, m.IDJemaat, m.IDKlasis); err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	return helper.MapWriteError("Sidi", err)
}

func (r *Repository) UpdateSidi(ctx context.Context, id string, changes map[string]any) (*models.SidiModel, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		jemaat, klasis := refsFromChanges(changes)
		if err := checkRefs(tx, jemaat, klasis); err != nil {
			return err
		}
		return updateOne[models.SidiModel](tx, "id_sidi", id, changes)
	})
	if err != nil {
		return nil, helper.MapWriteError("Sidi", err)
	}
	return r.GetSidi(ctx, id)
}

func (r *Repository) DeleteSidi(ctx context.Context, id string) error {
	return helper.MapWriteError("Sidi", deleteOne[models.SidiModel](r.db.WithContext(ctx), "id_sidi", id))
}

/* =========================================================
 * PERNIKAHAN
 * ========================================================= */

func (r *Repository) GetPernikahan(ctx context.Context, id string) (*models.PernikahanModel, error) {
	tx := r.db.WithContext(ctx).Preload("Jemaats", pasanganIdentity)
	return getOne[models.PernikahanModel](tx, "id_pernikahan", id, "Pernikahan")
}

// linkJemaat replaces the members linked to a pernikahan record.
func linkJemaat(tx *gorm.DB, id string, ids []string) error {
	if err := tx.Model(&models.JemaatModel{}).
		Where("id_pernikahan = ?", id).
		Update("id_pernikahan", nil).Error; err != nil {
		return err
	}
	uniq := dedupe(ids)
	if len(uniq) == 0 {
		return nil
	}
	res := tx.Model(&models.JemaatModel{}).
		Where("id_jemaat IN ?", uniq).
		Update("id_pernikahan", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != int64(len(uniq)) {
		return helper.NewBadRequest("Sebagian jemaat tidak ditemukan")
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (r *Repository) CreatePernikahan(ctx context.Context, m *models.PernikahanModel, idJemaat []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return linkJemaat(tx, m.IDPernikahan, idJemaat)
	})
	return helper.MapWriteError("Pernikahan", err)
}

// UpdatePernikahan relinks members only when idJemaat is non-nil.
func (r *Repository) UpdatePernikahan(ctx context.Context, id string, changes map[string]any, idJemaat []string) (*models.PernikahanModel, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateOne[models.PernikahanModel](tx, "id_pernikahan", id, changes); err != nil {
			return err
		}
		if idJemaat == nil {
			return nil
		}
		return linkJemaat(tx, id, idJemaat)
	})
	if err != nil {
		return nil, helper.MapWriteError("Pernikahan", err)
	}
	return r.GetPernikahan(ctx, id)
}

func (r *Repository) DeletePernikahan(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := linkJemaat(tx, id, nil); err != nil {
			return err
		}
		return deleteOne[models.PernikahanModel](tx, "id_pernikahan", id)
	})
	return helper.MapWriteError("Pernikahan", err)
}
