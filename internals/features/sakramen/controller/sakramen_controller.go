// internals/features/sakramen/controller/sakramen_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jemaat_backend/internals/features/sakramen/dto"
	"jemaat_backend/internals/features/sakramen/repository"
	helper "jemaat_backend/internals/helpers"
)

type SakramenController struct {
	Repo         *repository.Repository
	CacheSeconds int
}

func NewSakramenController(db *gorm.DB, cacheSeconds int) *SakramenController {
	return &SakramenController{Repo: repository.New(db), CacheSeconds: cacheSeconds}
}

// GET /api/a/sakramen?id_klasis=&jenis_kelamin=
func (h *SakramenController) List(c *fiber.Ctx) error {
	res, err := h.Repo.List(c.UserContext(), dto.ParseFilter(c))
	if err != nil {
		return err
	}
	helper.SetPrivateCache(c, h.CacheSeconds)
	return helper.JsonOK(c, "", res)
}

/* ==== baptis ==== */

func (h *SakramenController) DetailBaptis(c *fiber.Ctx) error {
	m, err := h.Repo.GetBaptis(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", m)
}

func (h *SakramenController) CreateBaptis(c *fiber.Ctx) error {
	var req dto.CreateSakramenRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	m := req.ToBaptis()
	if err := h.Repo.CreateBaptis(c.UserContext(), m); err != nil {
		return err
	}
	created, err := h.Repo.GetBaptis(c.UserContext(), m.IDBaptis)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Baptis berhasil dicatat", created)
}

func (h *SakramenController) UpdateBaptis(c *fiber.Ctx) error {
	var req dto.UpdateSakramenRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	m, err := h.Repo.UpdateBaptis(c.UserContext(), c.Params("id"), req.Changes())
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Baptis diperbarui", m)
}

func (h *SakramenController) DeleteBaptis(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Repo.DeleteBaptis(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Baptis dihapus", fiber.Map{"id_baptis": id})
}

/* ==== sidi ==== */

func (h *SakramenController) DetailSidi(c *fiber.Ctx) error {
	m, err := h.Repo.GetSidi(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", m)
}

func (h *SakramenController) CreateSidi(c *fiber.Ctx) error {
	var req dto.CreateSakramenRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	m := req.ToSidi()
	if err := h.Repo.CreateSidi(c.UserContext(), m); err != nil {
		return err
	}
	created, err := h.Repo.GetSidi(c.UserContext(), m.IDSidi)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Sidi berhasil dicatat", created)
}

func (h *SakramenController) UpdateSidi(c *fiber.Ctx) error {
	var req dto.UpdateSakramenRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	m, err := h.Repo.UpdateSidi(c.UserContext(), c.Params("id"), req.Changes())
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Sidi diperbarui", m)
}

func (h *SakramenController) DeleteSidi(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Repo.DeleteSidi(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Sidi dihapus", fiber.Map{"id_sidi": id})
}

/* ==== pernikahan ==== */

func (h *SakramenController) DetailPernikahan(c *fiber.Ctx) error {
	m, err := h.Repo.GetPernikahan(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", m)
}

func (h *SakramenController) CreatePernikahan(c *fiber.Ctx) error {
	var req dto.CreatePernikahanRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	m := req.ToModel()
	if err := h.Repo.CreatePernikahan(c.UserContext(), m, req.IDJemaat); err != nil {
		return err
	}
	created, err := h.Repo.GetPernikahan(c.UserContext(), m.IDPernikahan)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Pernikahan berhasil dicatat", created)
}

func (h *SakramenController) UpdatePernikahan(c *fiber.Ctx) error {
	var req dto.UpdatePernikahanRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	m, err := h.Repo.UpdatePernikahan(c.UserContext(), c.Params("id"), req.Changes(), req.IDJemaat)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Pernikahan diperbarui", m)
}

func (h *SakramenController) DeletePernikahan(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Repo.DeletePernikahan(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Pernikahan dihapus", fiber.Map{"id_pernikahan": id})
}
