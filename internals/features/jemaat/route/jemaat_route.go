package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	jCtrl "jemaat_backend/internals/features/jemaat/controller"
)

// JemaatAdminRoutes mounts /jemaat under an already authenticated group.
func JemaatAdminRoutes(admin fiber.Router, db *gorm.DB, cacheSeconds int) {
	h := jCtrl.NewJemaatController(db, cacheSeconds)

	g := admin.Group("/jemaat")
	g.Get("/", h.List)
	g.Get("/export", h.Export)
	g.Post("/", h.Create)
	g.Get("/:id", h.Detail)
	g.Patch("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
