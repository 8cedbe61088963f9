// internals/features/jemaat/dto/jemaat_dto.go
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

// Filter: satu field opsional per key; nil = tidak difilter
type Filter struct {
	JenisKelamin        *string
	GolDarah            *string
	StatusDalamKel      *string
	IDPendidikan        *string
	IDPekerjaan         *string
	IDRayon             *string
	IDStatusKepemilikan *string
	IDStatusTanah       *string
}

func ParseFilter(c *fiber.Ctx) Filter {
	return Filter{
		JenisKelamin:        helper.QueryFilter(c, "jenis_kelamin"),
		GolDarah:            helper.QueryFilter(c, "gol_darah"),
		StatusDalamKel:      helper.QueryFilter(c, "status_dalam_kel"),
		IDPendidikan:        helper.QueryFilter(c, "id_pendidikan"),
		IDPekerjaan:         helper.QueryFilter(c, "id_pekerjaan"),
		IDRayon:             helper.QueryFilter(c, "id_rayon"),
		IDStatusKepemilikan: helper.QueryFilter(c, "id_status_kepemilikan"),
		IDStatusTanah:       helper.QueryFilter(c, "id_status_tanah"),
	}
}

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateJemaatRequest struct {
	IDJemaat       string  `json:"id_jemaat" validate:"omitempty,max=30"`
	Nama           string  `json:"nama" validate:"required,max=150"`
	JenisKelamin   string  `json:"jenis_kelamin" validate:"required,oneof=L P"`
	TanggalLahir   *string `json:"tanggal_lahir" validate:"omitempty,datetime=2006-01-02"`
	GolDarah       *string `json:"gol_darah" validate:"omitempty,oneof=A B AB O"`
	StatusDalamKel *string `json:"status_dalam_kel" validate:"omitempty,max=50"`
	IDKeluarga     *string `json:"id_keluarga" validate:"omitempty,max=30"`
	IDStatus       *string `json:"id_status" validate:"omitempty,max=20"`
	IDPendidikan   *string `json:"id_pendidikan" validate:"omitempty,max=20"`
	IDPekerjaan    *string `json:"id_pekerjaan" validate:"omitempty,max=20"`
	IDPendapatan   *string `json:"id_pendapatan" validate:"omitempty,max=20"`
	IDJaminan      *string `json:"id_jaminan" validate:"omitempty,max=20"`
	IDPernikahan   *string `json:"id_pernikahan" validate:"omitempty,max=40"`
}

// Update (partial JSON); field nil = tidak diubah
type UpdateJemaatRequest struct {
	Nama           *string `json:"nama" validate:"omitempty,max=150"`
	JenisKelamin   *string `json:"jenis_kelamin" validate:"omitempty,oneof=L P"`
	TanggalLahir   *string `json:"tanggal_lahir" validate:"omitempty,datetime=2006-01-02"`
	GolDarah       *string `json:"gol_darah" validate:"omitempty,oneof=A B AB O"`
	StatusDalamKel *string `json:"status_dalam_kel" validate:"omitempty,max=50"`
	IDKeluarga     *string `json:"id_keluarga" validate:"omitempty,max=30"`
	IDStatus       *string `json:"id_status" validate:"omitempty,max=20"`
	IDPendidikan   *string `json:"id_pendidikan" validate:"omitempty,max=20"`
	IDPekerjaan    *string `json:"id_pekerjaan" validate:"omitempty,max=20"`
	IDPendapatan   *string `json:"id_pendapatan" validate:"omitempty,max=20"`
	IDJaminan      *string `json:"id_jaminan" validate:"omitempty,max=20"`
	IDPernikahan   *string `json:"id_pernikahan" validate:"omitempty,max=40"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

// ParseDate reads a YYYY-MM-DD string; the format is already validated.
func ParseDate(s *string) *datatypes.Date {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(*s))
	if err != nil {
		return nil
	}
	d := datatypes.Date(t)
	return &d
}

func (r CreateJemaatRequest) ToModel() *models.JemaatModel {
	id := strings.TrimSpace(r.IDJemaat)
	if id == "" {
		id = uuid.NewString()
	}
	return &models.JemaatModel{
		IDJemaat:       id,
		Nama:           strings.TrimSpace(r.Nama),
		JenisKelamin:   r.JenisKelamin == "L",
		TanggalLahir:   ParseDate(r.TanggalLahir),
		GolDarah:       r.GolDarah,
		StatusDalamKel: r.StatusDalamKel,
		IDKeluarga:     r.IDKeluarga,
		IDStatus:       r.IDStatus,
		IDPendidikan:   r.IDPendidikan,
		IDPekerjaan:    r.IDPekerjaan,
		IDPendapatan:   r.IDPendapatan,
		IDJaminan:      r.IDJaminan,
		IDPernikahan:   r.IDPernikahan,
	}
}

// Changes returns the column -> value map for a partial update.
func (r UpdateJemaatRequest) Changes() map[string]any {
	m := map[string]any{}
	if r.Nama != nil {
		m["nama"] = strings.TrimSpace(*r.Nama)
	}
	if r.JenisKelamin != nil {
		m["jenis_kelamin"] = *r.JenisKelamin == "L"
	}
	if r.TanggalLahir != nil {
		m["tanggal_lahir"] = ParseDate(r.TanggalLahir)
	}
	setOpt(m, "gol_darah", r.GolDarah)
	setOpt(m, "status_dalam_kel", r.StatusDalamKel)
	setOpt(m, "id_keluarga", r.IDKeluarga)
	setOpt(m, "id_status", r.IDStatus)
	setOpt(m, "id_pendidikan", r.IDPendidikan)
	setOpt(m, "id_pekerjaan", r.IDPekerjaan)
	setOpt(m, "id_pendapatan", r.IDPendapatan)
	setOpt(m, "id_jaminan", r.IDJaminan)
	setOpt(m, "id_pernikahan", r.IDPernikahan)
	return m
}

// setOpt: "" berarti kosongkan kolom (NULL)
func setOpt(m map[string]any, col string, v *string) {
	if v == nil {
		return
	}
	if strings.TrimSpace(*v) == "" {
		m[col] = nil
		return
	}
	m[col] = strings.TrimSpace(*v)
}
