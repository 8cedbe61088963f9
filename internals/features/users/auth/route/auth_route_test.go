package route

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"jemaat_backend/internals/features/users/auth/service"
	helpersAuth "jemaat_backend/internals/helpers/auth"
	"jemaat_backend/internals/middlewares"
	"jemaat_backend/internals/models"
	"jemaat_backend/internals/testutil"
)

const secret = "test-secret"

func newApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	created, err := service.EnsureAdmin(context.Background(), db, "admin", "rahasia123")
	require.NoError(t, err)
	require.True(t, created)

	w := middlewares.NewWrapper(helpersAuth.NewJWTSessionReader(secret), false, zap.NewNop())
	app := fiber.New(fiber.Config{ErrorHandler: w.Handle})
	AuthRoutes(app, db, w, secret, time.Hour, false)
	return app, db
}

func call(t *testing.T, app *fiber.App, method, url string, body any, token string) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == helpersAuth.CookieName {
			return ck
		}
	}
	return nil
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, _ := newApp(t)

	resp, body := call(t, app, "POST", "/api/auth/login", map[string]string{"username": "admin", "password": "salah"}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, body["success"])

	resp, _ = call(t, app, "POST", "/api/auth/login", map[string]string{"username": "nobody", "password": "salah"}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, body = call(t, app, "POST", "/api/auth/login", map[string]string{}, "")
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body["details"], "username")
}

func TestLoginMeLogout(t *testing.T) {
	app, _ := newApp(t)

	resp, body := call(t, app, "POST", "/api/auth/login", map[string]string{"username": "admin", "password": "rahasia123"}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	ck := sessionCookie(resp)
	require.NotNil(t, ck)
	assert.True(t, ck.HttpOnly)

	data := body["data"].(map[string]any)
	token := data["access_token"].(string)
	assert.Equal(t, ck.Value, token)
	assert.NotContains(t, data["user"], "password")

	resp, body = call(t, app, "GET", "/api/auth/me", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	user := body["data"].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "admin", user["username"])

	resp, body = call(t, app, "GET", "/api/auth/me", nil, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Unauthorized", body["message"])

	resp, _ = call(t, app, "POST", "/api/auth/logout", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	ck = sessionCookie(resp)
	require.NotNil(t, ck)
	assert.Empty(t, ck.Value)
}

func TestInactiveAdminCannotLogin(t *testing.T) {
	app, db := newApp(t)
	require.NoError(t, db.Model(&models.AdminUserModel{}).Where("username = ?", "admin").Update("is_active", false).Error)

	// password salah tidak boleh membocorkan status akun
	resp, body := call(t, app, "POST", "/api/auth/login", map[string]string{"username": "admin", "password": "tebak-tebak"}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Username atau password salah", body["message"])

	resp, body = call(t, app, "POST", "/api/auth/login", map[string]string{"username": "admin", "password": "rahasia123"}, "")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Akun tidak aktif", body["message"])
}

func TestChangePassword(t *testing.T) {
	app, _ := newApp(t)
	_, body := call(t, app, "POST", "/api/auth/login", map[string]string{"username": "admin", "password": "rahasia123"}, "")
	token := body["data"].(map[string]any)["access_token"].(string)

	resp, _ := call(t, app, "POST", "/api/auth/change-password",
		map[string]string{"current_password": "keliru", "new_password": "passwordbaru"}, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = call(t, app, "POST", "/api/auth/change-password",
		map[string]string{"current_password": "rahasia123", "new_password": "passwordbaru"}, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = call(t, app, "POST", "/api/auth/login", map[string]string{"username": "admin", "password": "passwordbaru"}, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestEnsureAdminKeepsExistingAccount(t *testing.T) {
	_, db := newApp(t)
	created, err := service.EnsureAdmin(context.Background(), db, "admin", "lain")
	require.NoError(t, err)
	assert.False(t, created)

	_, err = service.EnsureAdmin(context.Background(), db, "", "x")
	assert.Error(t, err)
}
