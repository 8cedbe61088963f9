package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jemaat_backend/internals/configs"
	authRoute "jemaat_backend/internals/features/users/auth/route"
	"jemaat_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, w *middlewares.Wrapper, cfg configs.Config) {
	authRoute.AuthRoutes(app, db, w, cfg.JWTSecret, cfg.JWTTTL, !cfg.IsDevelopment())
}
