package route

import (
	"github.com/gofiber/fiber/v2"

	uCtrl "jemaat_backend/internals/features/uploads/controller"
	"jemaat_backend/internals/helpers/storage"
)

func UploadAdminRoutes(admin fiber.Router, s storage.Uploader) {
	h := uCtrl.NewUploadController(s)
	admin.Post("/uploads", h.Upload)
}
