package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	jemaatRoute "jemaat_backend/internals/features/jemaat/route"
	keluargaRoute "jemaat_backend/internals/features/keluarga/route"
	masterRoute "jemaat_backend/internals/features/masters/route"
	sakramenRoute "jemaat_backend/internals/features/sakramen/route"
	uploadRoute "jemaat_backend/internals/features/uploads/route"
	"jemaat_backend/internals/helpers/storage"
)

// JemaatAdminRoutes mounts every admin feature under /api/a.
func JemaatAdminRoutes(admin fiber.Router, db *gorm.DB, cacheSeconds int, s storage.Uploader) {
	jemaatRoute.JemaatAdminRoutes(admin, db, cacheSeconds)
	keluargaRoute.KeluargaAdminRoutes(admin, db, cacheSeconds)
	sakramenRoute.SakramenAdminRoutes(admin, db, cacheSeconds)
	masterRoute.MasterAdminRoutes(admin, db, cacheSeconds)
	uploadRoute.UploadAdminRoutes(admin, s)
}
