// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jemaat_backend/internals/features/users/auth/controller"
	"jemaat_backend/internals/features/users/auth/service"
	"jemaat_backend/internals/middlewares"
)

// AuthRoutes mounts /api/auth. Login is public and rate limited; me and
// change-password need a session.
func AuthRoutes(app *fiber.App, db *gorm.DB, w *middlewares.Wrapper, secret string, ttl time.Duration, secureCookie bool) {
	authController := controller.NewAuthController(service.NewAuthService(db, secret, ttl), secureCookie)

	baseAuth := app.Group("/api/auth")
	baseAuth.Post("/login", middlewares.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/logout", authController.Logout)

	baseAuth.Get("/me", w.RequireSession(), authController.Me)
	baseAuth.Post("/change-password", w.RequireSession(), authController.ChangePassword)
}
