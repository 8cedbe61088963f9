// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"jemaat_backend/internals/configs"
	"jemaat_backend/internals/helpers/storage"
	"jemaat_backend/internals/middlewares"
	routeDetails "jemaat_backend/internals/route/details"
)

var startTime = time.Now()

// Deps is everything the route tree needs from main.
type Deps struct {
	DB      *gorm.DB
	Config  configs.Config
	Wrapper *middlewares.Wrapper
	Storage storage.Uploader // nil when OSS is not configured
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()
	log := zap.L()

	BaseRoutes(app, d.DB)

	// ===================== AUTH =====================
	log.Info("setting up auth routes")
	routeDetails.AuthRoutes(app, d.DB, d.Wrapper, d.Config)

	// ===================== ADMIN (butuh sesi) =====================
	log.Info("setting up admin group")
	admin := app.Group("/api/a", d.Wrapper.RequireSession())

	log.Info("mounting jemaat routes")
	routeDetails.JemaatAdminRoutes(admin, d.DB, d.Config.QueryCacheSeconds, d.Storage)
}
