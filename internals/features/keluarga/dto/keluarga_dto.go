// internals/features/keluarga/dto/keluarga_dto.go
package dto

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "jemaat_backend/internals/helpers"
	"jemaat_backend/internals/models"
)

/* =========================================================
 * FILTER (query)
 * ========================================================= */

type Filter struct {
	IDRayon             *string
	IDStatusKepemilikan *string
	IDStatusTanah       *string
	IDKelurahan         *string
}

func ParseFilter(c *fiber.Ctx) Filter {
	return Filter{
		IDRayon:             helper.QueryFilter(c, "id_rayon"),
		IDStatusKepemilikan: helper.QueryFilter(c, "id_status_kepemilikan"),
		IDStatusTanah:       helper.QueryFilter(c, "id_status_tanah"),
		IDKelurahan:         helper.QueryFilter(c, "id_kelurahan"),
	}
}

/* =========================================================
 * REQUESTS
 * ========================================================= */

type AlamatRequest struct {
	Jalan       string `json:"jalan" validate:"required,max=255"`
	RT          int    `json:"rt" validate:"gte=0"`
	RW          int    `json:"rw" validate:"gte=0"`
	IDKelurahan string `json:"id_kelurahan" validate:"required,max=20"`
}

type CreateKeluargaRequest struct {
	IDKeluarga          string        `json:"id_keluarga" validate:"omitempty,max=30"`
	IDKepalaKeluarga    *string       `json:"id_kepala_keluarga" validate:"omitempty,max=30"`
	IDRayon             *string       `json:"id_rayon" validate:"omitempty,max=20"`
	IDStatusKepemilikan *string       `json:"id_status_kepemilikan" validate:"omitempty,max=20"`
	IDStatusTanah       *string       `json:"id_status_tanah" validate:"omitempty,max=20"`
	Alamat              AlamatRequest `json:"alamat"`
}

type UpdateAlamatRequest struct {
	Jalan       *string `json:"jalan" validate:"omitempty,max=255"`
	RT          *int    `json:"rt" validate:"omitempty,gte=0"`
	RW          *int    `json:"rw" validate:"omitempty,gte=0"`
	IDKelurahan *string `json:"id_kelurahan" validate:"omitempty,max=20"`
}

// Update (partial JSON); "" pada field id = kosongkan
type UpdateKeluargaRequest struct {
	IDKepalaKeluarga    *string              `json:"id_kepala_keluarga" validate:"omitempty,max=30"`
	IDRayon             *string              `json:"id_rayon" validate:"omitempty,max=20"`
	IDStatusKepemilikan *string              `json:"id_status_kepemilikan" validate:"omitempty,max=20"`
	IDStatusTanah       *string              `json:"id_status_tanah" validate:"omitempty,max=20"`
	Alamat              *UpdateAlamatRequest `json:"alamat"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

// ToModels builds the household and the address it owns.
func (r CreateKeluargaRequest) ToModels() (*models.KeluargaModel, *models.AlamatModel) {
	id := strings.TrimSpace(r.IDKeluarga)
	if id == "" {
		id = uuid.NewString()
	}
	alamat := &models.AlamatModel{
		IDAlamat:    uuid.NewString(),
		Jalan:       strings.TrimSpace(r.Alamat.Jalan),
		RT:          r.Alamat.RT,
		RW:          r.Alamat.RW,
		IDKelurahan: r.Alamat.IDKelurahan,
	}
	k := &models.KeluargaModel{
		IDKeluarga:          id,
		IDKepalaKeluarga:    r.IDKepalaKeluarga,
		IDRayon:             r.IDRayon,
		IDStatusKepemilikan: r.IDStatusKepemilikan,
		IDStatusTanah:       r.IDStatusTanah,
		IDAlamat:            &alamat.IDAlamat,
	}
	return k, alamat
}

func (r UpdateKeluargaRequest) Changes() map[string]any {
	m := map[string]any{}
	setOpt(m, "id_kepala_keluarga", r.IDKepalaKeluarga)
	setOpt(m, "id_rayon", r.IDRayon)
	setOpt(m, "id_status_kepemilikan", r.IDStatusKepemilikan)
	setOpt(m, "id_status_tanah", r.IDStatusTanah)
	return m
}

func (r UpdateKeluargaRequest) AlamatChanges() map[string]any {
	m := map[string]any{}
	if r.Alamat == nil {
		return m
	}
	if r.Alamat.Jalan != nil {
		m["jalan"] = strings.TrimSpace(*r.Alamat.Jalan)
	}
	if r.Alamat.RT != nil {
		m["rt"] = *r.Alamat.RT
	}
	if r.Alamat.RW != nil {
		m["rw"] = *r.Alamat.RW
	}
	if r.Alamat.IDKelurahan != nil && strings.TrimSpace(*r.Alamat.IDKelurahan) != "" {
		m["id_kelurahan"] = strings.TrimSpace(*r.Alamat.IDKelurahan)
	}
	return m
}

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
