package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	CookieName    = "access_token"
	localsSession = "session"
)

type Session struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionReader returns the current session, or nil when the caller is not
// logged in. An error means the session store itself failed.
type SessionReader interface {
	ReadSession(c *fiber.Ctx) (*Session, error)
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTSessionReader reads an HS256 token from the Authorization header or the
// access_token cookie.
type JWTSessionReader struct {
	secret []byte
}

func NewJWTSessionReader(secret string) *JWTSessionReader {
	return &JWTSessionReader{secret: []byte(secret)}
}

func (r *JWTSessionReader) ReadSession(c *fiber.Ctx) (*Session, error) {
	raw := ExtractToken(c)
	if raw == "" {
		return nil, nil
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return r.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		zap.L().Debug("rejecting token", zap.Error(err))
		return nil, nil
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, nil
	}
	s := &Session{UserID: userID, Username: claims.Username}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}

// ExtractToken: Authorization "Bearer <token>" lebih dulu, lalu cookie access_token
func ExtractToken(c *fiber.Ctx) string {
	const p = "Bearer "
	if h := c.Get(fiber.HeaderAuthorization); len(h) > len(p) && strings.EqualFold(h[:len(p)], p) {
		return strings.TrimSpace(h[len(p):])
	}
	return strings.TrimSpace(c.Cookies(CookieName))
}

// IssueToken signs a session token valid for ttl from now.
func IssueToken(secret string, userID uuid.UUID, username string, ttl time.Duration, now time.Time) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, errors.New("missing JWT secret")
	}
	exp := now.Add(ttl)
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

func SetSession(c *fiber.Ctx, s *Session) {
	c.Locals(localsSession, s)
}

// SessionFrom returns the session stored by the request wrapper, or nil.
func SessionFrom(c *fiber.Ctx) *Session {
	s, _ := c.Locals(localsSession).(*Session)
	return s
}
