// internals/features/jemaat/controller/jemaat_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jemaat_backend/internals/features/jemaat/dto"
	"jemaat_backend/internals/features/jemaat/repository"
	helper "jemaat_backend/internals/helpers"
)

type JemaatController struct {
	Repo         *repository.Repository
	CacheSeconds int
}

func NewJemaatController(db *gorm.DB, cacheSeconds int) *JemaatController {
	return &JemaatController{Repo: repository.New(db), CacheSeconds: cacheSeconds}
}

/* ===================== HANDLERS ===================== */

// GET /api/a/jemaat?search=&page=&limit=&jenis_kelamin=&...
func (h *JemaatController) List(c *fiber.Ctx) error {
	params := repository.ListParams{
		Filter: dto.ParseFilter(c),
		Search: strings.TrimSpace(c.Query("search")),
		Paging: helper.ParsePaging(c),
	}
	res, err := h.Repo.List(c.UserContext(), params)
	if err != nil {
		return err
	}

	helper.SetPrivateCache(c, h.CacheSeconds)
	if res.Metadata == nil {
		return helper.JsonOK(c, "", res.Data)
	}
	return helper.JsonOK(c, "", res)
}

// GET /api/a/jemaat/:id
func (h *JemaatController) Detail(c *fiber.Ctx) error {
	m, err := h.Repo.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", m)
}

// POST /api/a/jemaat
func (h *JemaatController) Create(c *fiber.Ctx) error {
	var req dto.CreateJemaatRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}

	m := req.ToModel()
	if err := h.Repo.Create(c.UserContext(), m); err != nil {
		return err
	}
	created, err := h.Repo.Get(c.UserContext(), m.IDJemaat)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Jemaat berhasil dibuat", created)
}

// PATCH /api/a/jemaat/:id
func (h *JemaatController) Update(c *fiber.Ctx) error {
	var req dto.UpdateJemaatRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}

	m, err := h.Repo.Update(c.UserContext(), c.Params("id"), req.Changes())
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Jemaat diperbarui", m)
}

// DELETE /api/a/jemaat/:id
func (h *JemaatController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Repo.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Jemaat dihapus", fiber.Map{"id_jemaat": id})
}
