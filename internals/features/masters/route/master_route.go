package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mCtrl "jemaat_backend/internals/features/masters/controller"
)

func MasterAdminRoutes(admin fiber.Router, db *gorm.DB, cacheSeconds int) {
	h := mCtrl.NewMasterController(db, cacheSeconds)

	m := admin.Group("/master")
	m.Get("/", h.Kinds)
	m.Get("/:kind", h.List)
	m.Post("/:kind", h.Create)
	m.Get("/:kind/:id", h.Detail)
	m.Patch("/:kind/:id", h.Update)
	m.Delete("/:kind/:id", h.Delete)

	w := admin.Group("/wilayah")
	w.Get("/provinsi", h.Provinsi)
	w.Get("/kota-kab", h.KotaKab)
	w.Get("/kecamatan", h.Kecamatan)
	w.Get("/kelurahan", h.Kelurahan)
}
