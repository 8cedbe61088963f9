// internals/features/masters/controller/master_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jemaat_backend/internals/features/masters/dto"
	"jemaat_backend/internals/features/masters/repository"
	helper "jemaat_backend/internals/helpers"
)

type MasterController struct {
	Repo         *repository.Repository
	CacheSeconds int
}

func NewMasterController(db *gorm.DB, cacheSeconds int) *MasterController {
	return &MasterController{Repo: repository.New(db), CacheSeconds: cacheSeconds}
}

func kindParam(c *fiber.Ctx) (repository.Kind, error) {
	k, ok := repository.LookupKind(c.Params("kind"))
	if !ok {
		return k, helper.NewNotFound("Master " + c.Params("kind"))
	}
	return k, nil
}

// GET /api/a/master
func (h *MasterController) Kinds(c *fiber.Ctx) error {
	return helper.JsonOK(c, "", repository.Kinds())
}

// GET /api/a/master/:kind
func (h *MasterController) List(c *fiber.Ctx) error {
	k, err := kindParam(c)
	if err != nil {
		return err
	}
	items, err := h.Repo.List(c.UserContext(), k)
	if err != nil {
		return err
	}
	helper.SetPrivateCache(c, h.CacheSeconds)
	return helper.JsonOK(c, "", items)
}

// GET /api/a/master/:kind/:id
func (h *MasterController) Detail(c *fiber.Ctx) error {
	k, err := kindParam(c)
	if err != nil {
		return err
	}
	it, err := h.Repo.Get(c.UserContext(), k, c.Params("id"))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", it)
}

// POST /api/a/master/:kind
func (h *MasterController) Create(c *fiber.Ctx) error {
	k, err := kindParam(c)
	if err != nil {
		return err
	}
	var req dto.CreateItemRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	req.Normalize()

	it := repository.Item{ID: req.ID, Nama: req.Nama}
	if err := h.Repo.Create(c.UserContext(), k, it); err != nil {
		return err
	}
	return helper.JsonCreated(c, k.Label+" berhasil dibuat", it)
}

// PATCH /api/a/master/:kind/:id
func (h *MasterController) Update(c *fiber.Ctx) error {
	k, err := kindParam(c)
	if err != nil {
		return err
	}
	var req dto.UpdateItemRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	req.Normalize()

	it, err := h.Repo.Rename(c.UserContext(), k, c.Params("id"), req.Nama)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, k.Label+" diperbarui", it)
}

// DELETE /api/a/master/:kind/:id
func (h *MasterController) Delete(c *fiber.Ctx) error {
	k, err := kindParam(c)
	if err != nil {
		return err
	}
	id := c.Params("id")
	if err := h.Repo.Delete(c.UserContext(), k, id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, k.Label+" dihapus", fiber.Map{"id": id})
}

/* ==== wilayah ==== */

// GET /api/a/wilayah/provinsi
func (h *MasterController) Provinsi(c *fiber.Ctx) error {
	rows, err := h.Repo.Provinsi(c.UserContext())
	if err != nil {
		return err
	}
	helper.SetPrivateCache(c, h.CacheSeconds)
	return helper.JsonOK(c, "", rows)
}

// GET /api/a/wilayah/kota-kab?id_provinsi=
func (h *MasterController) KotaKab(c *fiber.Ctx) error {
	rows, err := h.Repo.KotaKab(c.UserContext(), helper.QueryFilter(c, "id_provinsi"))
	if err != nil {
		return err
	}
	helper.SetPrivateCache(c, h.CacheSeconds)
	return helper.JsonOK(c, "", rows)
}

// GET /api/a/wilayah/kecamatan?id_kota_kab=
func (h *MasterController) Kecamatan(c *fiber.Ctx) error {
	rows, err := h.Repo.Kecamatan(c.UserContext(), helper.QueryFilter(c, "id_kota_kab"))
	if err != nil {
		return err
	}
	helper.SetPrivateCache(c, h.CacheSeconds)
	return helper.JsonOK(c, "", rows)
}

// GET /api/a/wilayah/kelurahan?id_kecamatan=
func (h *MasterController) Kelurahan(c *fiber.Ctx) error {
	rows, err := h.Repo.Kelurahan(c.UserContext(), helper.QueryFilter(c, "id_kecamatan"))
	if err != nil {
		return err
	}
	helper.SetPrivateCache(c, h.CacheSeconds)
	return helper.JsonOK(c, "", rows)
}
