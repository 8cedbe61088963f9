// internals/features/sakramen/dto/sakramen_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	helper "jemaat_backend/internals/helpers"
	"jemaat_backend/internals/models"
)

const DateLayout = "2006-01-02"

/* =========================================================
 * FILTER (query)
 * ========================================================= */

type Filter struct {
	IDKlasis     *string
	JenisKelamin *string
}

func ParseFilter(c *fiber.Ctx) Filter {
	return Filter{
		IDKlasis:     helper.QueryFilter(c, "id_klasis"),
		JenisKelamin: helper.QueryFilter(c, "jenis_kelamin"),
	}
}

/* =========================================================
 * BAPTIS / SIDI
 * ========================================================= */

// Dipakai untuk baptis maupun sidi (bentuk datanya sama)
type CreateSakramenRequest struct {
	ID       string  `json:"id" validate:"omitempty,max=40"`
	IDJemaat string  `json:"id_jemaat" validate:"required,max=30"`
	Tanggal  string  `json:"tanggal" validate:"required,datetime=2006-01-02"`
	IDKlasis *string `json:"id_klasis" validate:"omitempty,max=20"`
}

type UpdateSakramenRequest struct {
	IDJemaat *string `json:"id_jemaat" validate:"omitempty,max=30"`
	Tanggal  *string `json:"tanggal" validate:"omitempty,datetime=2006-01-02"`
	IDKlasis *string `json:"id_klasis" validate:"omitempty,max=20"`
}

func (r CreateSakramenRequest) id() string {
	if id := strings.TrimSpace(r.ID); id != "" {
		return id
	}
	return uuid.NewString()
}

func (r CreateSakramenRequest) ToBaptis() *models.BaptisModel {
	return &models.BaptisModel{
		IDBaptis: r.id(),
		IDJemaat: strings.TrimSpace(r.IDJemaat),
		Tanggal:  mustDate(r.Tanggal),
		IDKlasis: trimOpt(r.IDKlasis),
	}
}

func (r CreateSakramenRequest) ToSidi() *models.SidiModel {
	return &models.SidiModel{
		IDSidi:   r.id(),
		IDJemaat: strings.TrimSpace(r.IDJemaat),
		Tanggal:  mustDate(r.Tanggal),
		IDKlasis: trimOpt(r.IDKlasis),
	}
}

func (r UpdateSakramenRequest) Changes() map[string]any {
	m := map[string]any{}
	if r.IDJemaat != nil && strings.TrimSpace(*r.IDJemaat) != "" {
		m["id_jemaat"] = strings.TrimSpace(*r.IDJemaat)
	}
	if r.Tanggal != nil && strings.TrimSpace(*r.Tanggal) != "" {
		m["tanggal"] = mustDate(*r.Tanggal)
	}
	if r.IDKlasis != nil {
		if v := trimOpt(r.IDKlasis); v != nil {
			m["id_klasis"] = *v
		} else {
			m["id_klasis"] = nil
		}
	}
	return m
}

/* =========================================================
 * PERNIKAHAN
 * ========================================================= */

// Klasis disimpan sebagai nama; id_jemaat = anggota yang ditautkan
type CreatePernikahanRequest struct {
	IDPernikahan string   `json:"id_pernikahan" validate:"omitempty,max=40"`
	Klasis       string   `json:"klasis" validate:"required,max=100"`
	Tanggal      string   `json:"tanggal" validate:"required,datetime=2006-01-02"`
	IDJemaat     []string `json:"id_jemaat" validate:"omitempty,dive,required,max=30"`
}

// IDJemaat nil = tautan tidak diubah, [] = lepas semua
type UpdatePernikahanRequest struct {
	Klasis   *string  `json:"klasis" validate:"omitempty,max=100"`
	Tanggal  *string  `json:"tanggal" validate:"omitempty,datetime=2006-01-02"`
	IDJemaat []string `json:"id_jemaat" validate:"omitempty,dive,required,max=30"`
}

func (r CreatePernikahanRequest) ToModel() *models.PernikahanModel {
	id := strings.TrimSpace(r.IDPernikahan)
	if id == "" {
		id = uuid.NewString()
	}
	return &models.PernikahanModel{
		IDPernikahan: id,
		Klasis:       strings.TrimSpace(r.Klasis),
		Tanggal:      mustDate(r.Tanggal),
	}
}

func (r UpdatePernikahanRequest) Changes() map[string]any {
	m := map[string]any{}
	if r.Klasis != nil && strings.TrimSpace(*r.Klasis) != "" {
		m["klasis"] = strings.TrimSpace(*r.Klasis)
	}
	if r.Tanggal != nil && strings.TrimSpace(*r.Tanggal) != "" {
		m["tanggal"] = mustDate(*r.Tanggal)
	}
	return m
}

/* =========================================================
 * HELPERS
 * ========================================================= */

// mustDate expects a validated YYYY-MM-DD string.
func mustDate(s string) datatypes.Date {
	t, _ := time.Parse(DateLayout, strings.TrimSpace(s))
	return datatypes.Date(t)
}

func trimOpt(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	s := strings.TrimSpace(*v)
	return &s
}
