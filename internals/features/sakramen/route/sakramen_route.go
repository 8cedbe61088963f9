package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sCtrl "jemaat_backend/internals/features/sakramen/controller"
)

func SakramenAdminRoutes(admin fiber.Router, db *gorm.DB, cacheSeconds int) {
	h := sCtrl.NewSakramenController(db, cacheSeconds)

	admin.Get("/sakramen", h.List)

	baptis := admin.Group("/baptis")
	baptis.Post("/", h.CreateBaptis)
	baptis.Get("/:id", h.DetailBaptis)
	baptis.Patch("/:id", h.UpdateBaptis)
	baptis.Delete("/:id", h.DeleteBaptis)

	sidi := admin.Group("/sidi")
	sidi.Post("/", h.CreateSidi)
	sidi.Get("/:id", h.DetailSidi)
	sidi.Patch("/:id", h.UpdateSidi)
	sidi.Delete("/:id", h.DeleteSidi)

	nikah := admin.Group("/pernikahan")
	nikah.Post("/", h.CreatePernikahan)
	nikah.Get("/:id", h.DetailPernikahan)
	nikah.Patch("/:id", h.UpdatePernikahan)
	nikah.Delete("/:id", h.DeletePernikahan)
}
