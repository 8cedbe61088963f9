package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"jemaat_backend/internals/features/users/auth/service"
	helper "jemaat_backend/internals/helpers"
	helpersAuth "jemaat_backend/internals/helpers/auth"
)

type AuthController struct {
	Service      *service.AuthService
	SecureCookie bool
}

func NewAuthController(svc *service.AuthService, secureCookie bool) *AuthController {
	return &AuthController{Service: svc, SecureCookie: secureCookie}
}

type loginRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

func (ac *AuthController) setCookie(c *fiber.Ctx, value string, exp time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     helpersAuth.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  exp,
		HTTPOnly: true,
		Secure:   ac.SecureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	res, err := ac.Service.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}
	ac.setCookie(c, res.Token, res.ExpiresAt)
	return helper.JsonOK(c, "Login berhasil", res)
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	ac.setCookie(c, "", time.Unix(0, 0))
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// GET /api/auth/me (butuh sesi)
func (ac *AuthController) Me(c *fiber.Ctx) error {
	s := helpersAuth.SessionFrom(c)
	if s == nil {
		return helper.ErrUnauthorized
	}
	user, err := ac.Service.Me(c.UserContext(), s.UserID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", fiber.Map{"user": user, "expires_at": s.ExpiresAt})
}

// POST /api/auth/change-password (butuh sesi)
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	s := helpersAuth.SessionFrom(c)
	if s == nil {
		return helper.ErrUnauthorized
	}
	var req changePasswordRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	if err := ac.Service.ChangePassword(c.UserContext(), s.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Password diperbarui", nil)
}
