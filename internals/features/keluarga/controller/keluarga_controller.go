// internals/features/keluarga/controller/keluarga_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jemaat_backend/internals/features/keluarga/dto"
	"jemaat_backend/internals/features/keluarga/repository"
	helper "jemaat_backend/internals/helpers"
)

type KeluargaController struct {
	Repo         *repository.Repository
	CacheSeconds int
}

func NewKeluargaController(db *gorm.DB, cacheSeconds int) *KeluargaController {
	return &KeluargaController{Repo: repository.New(db), CacheSeconds: cacheSeconds}
}

// GET /api/a/keluarga?id_rayon=&id_status_kepemilikan=&id_status_tanah=&id_kelurahan=
func (h *KeluargaController) List(c *fiber.Ctx) error {
	rows, err := h.Repo.List(c.UserContext(), dto.ParseFilter(c))
	if err != nil {
		return err
	}
	helper.SetPrivateCache(c, h.CacheSeconds)
	return helper.JsonOK(c, "", rows)
}

// GET /api/a/keluarga/:id
func (h *KeluargaController) Detail(c *fiber.Ctx) error {
	m, err := h.Repo.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", m)
}

// POST /api/a/keluarga (keluarga + alamat sekaligus)
func (h *KeluargaController) Create(c *fiber.Ctx) error {
	var req dto.CreateKeluargaRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}

	k, a := req.ToModels()
	if err := h.Repo.Create(c.UserContext(), k, a); err != nil {
		return err
	}
	created, err := h.Repo.Get(c.UserContext(), k.IDKeluarga)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Keluarga berhasil dibuat", created)
}

// PATCH /api/a/keluarga/:id
func (h *KeluargaController) Update(c *fiber.Ctx) error {
	var req dto.UpdateKeluargaRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	m, err := h.Repo.Update(c.UserContext(), c.Params("id"), req.Changes(), req.AlamatChanges())
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Keluarga diperbarui", m)
}

// DELETE /api/a/keluarga/:id
func (h *KeluargaController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Repo.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Keluarga dihapus", fiber.Map{"id_keluarga": id})
}
