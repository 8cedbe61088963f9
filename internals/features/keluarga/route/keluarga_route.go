package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	kCtrl "jemaat_backend/internals/features/keluarga/controller"
)

func KeluargaAdminRoutes(admin fiber.Router, db *gorm.DB, cacheSeconds int) {
	h := kCtrl.NewKeluargaController(db, cacheSeconds)

	g := admin.Group("/keluarga")
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.Detail)
	g.Patch("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
