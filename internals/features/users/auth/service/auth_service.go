package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authRepo "jemaat_backend/internals/features/users/auth/repository"
	helper "jemaat_backend/internals/helpers"
	helpersAuth "jemaat_backend/internals/helpers/auth"
	"jemaat_backend/internals/models"
)

var errBadCredentials = helper.NewAppError(fiber.StatusUnauthorized, "Username atau password salah", nil)

type AuthService struct {
	db     *gorm.DB
	secret string
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthService(db *gorm.DB, secret string, ttl time.Duration) *AuthService {
	return &AuthService{db: db, secret: secret, ttl: ttl, now: time.Now}
}

// WithClock replaces the time source; tests use it to pin token expiry.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

type LoginResult struct {
	Token     string                 `json:"access_token"`
	ExpiresAt time.Time              `json:"expires_at"`
	User      *models.AdminUserModel `json:"user"`
}

// ========================== LOGIN ==========================
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := authRepo.FindAdminByUsername(s.db.WithContext(ctx), strings.TrimSpace(username))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		BurnPasswordCheck(password)
		return nil, errBadCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := CheckPassword(user.Password, password); err != nil {
		zap.L().Info("login rejected", zap.String("username", user.Username))
		return nil, errBadCredentials
	}
	// status akun baru dibuka setelah password cocok
	if !user.IsActive {
		return nil, helper.NewAppError(fiber.StatusForbidden, "Akun tidak aktif", nil)
	}

	token, exp, err := helpersAuth.IssueToken(s.secret, user.ID, user.Username, s.ttl, s.now())
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: exp, User: user}, nil
}

// ========================== ME ==========================
func (s *AuthService) Me(ctx context.Context, id uuid.UUID) (*models.AdminUserModel, error) {
	user, err := authRepo.FindAdminByID(s.db.WithContext(ctx), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrUnauthorized
	}
	return user, err
}

// ========================== CHANGE PASSWORD ==========================
func (s *AuthService) ChangePassword(ctx context.Context, id uuid.UUID, current, next string) error {
	db := s.db.WithContext(ctx)
	user, err := authRepo.FindAdminByID(db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.ErrUnauthorized
	}
	if err != nil {
		return err
	}
	if err := CheckPassword(user.Password, current); err != nil {
		return helper.NewBadRequest("Password lama salah")
	}
	hashed, err := HashPassword(next)
	if err != nil {
		return err
	}
	return authRepo.UpdateAdminPassword(db, id, hashed)
}

// ========================== SEED ==========================

// EnsureAdmin creates the admin account when the username is free.
// An existing account is left untouched.
func EnsureAdmin(ctx context.Context, db *gorm.DB, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, errors.New("admin username/password kosong")
	}
	_, err := authRepo.FindAdminByUsername(db.WithContext(ctx), username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	hashed, err := HashPassword(password)
	if err != nil {
		return false, err
	}
	user := &models.AdminUserModel{Username: username, Password: hashed, IsActive: true}
	if err := authRepo.CreateAdmin(db.WithContext(ctx), user); err != nil {
		return false, err
	}
	return true, nil
}
