package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jemaat_backend/internals/helpers/auth"
	"jemaat_backend/internals/middlewares"
	"jemaat_backend/internals/models"
	"jemaat_backend/internals/testutil"
)

type allowAll struct{}

func (allowAll) ReadSession(*fiber.Ctx) (*auth.Session, error) {
	return &auth.Session{Username: "admin"}, nil
}

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	db := testutil.NewTestDB(t)
	for _, v := range []any{
		&models.KlasisModel{IDKlasis: "K1", Nama: "Klasis Pulau Ambon"},
		&models.JemaatModel{IDJemaat: "J1", Nama: "Yohanes", JenisKelamin: true},
		&models.JemaatModel{IDJemaat: "J2", Nama: "Maria"},
	} {
		require.NoError(t, db.Create(v).Error)
	}

	h := NewSakramenController(db, 30)
	w := middlewares.NewWrapper(allowAll{}, false, zap.NewNop())
	app := fiber.New(fiber.Config{ErrorHandler: w.Handle})
	g := app.Group("/api/a", w.RequireSession())
	g.Get("/sakramen", h.List)
	g.Post("/baptis", h.CreateBaptis)
	g.Delete("/baptis/:id", h.DeleteBaptis)
	g.Post("/sidi", h.CreateSidi)
	g.Post("/pernikahan", h.CreatePernikahan)
	g.Patch("/pernikahan/:id", h.UpdatePernikahan)
	return app
}

func do(t *testing.T, app *fiber.App, method, url string, body any) (int, map[string]any, string) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, url, r)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	out := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out, resp.Header.Get(fiber.HeaderCacheControl)
}

func TestCreateValidatesDate(t *testing.T) {
	app := newApp(t)
	status, body, _ := do(t, app, "POST", "/api/a/baptis", map[string]any{"id_jemaat": "J1", "tanggal": "17-08-2024"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, body["details"], "tanggal")
}

func TestRecordAndListSakramen(t *testing.T) {
	app := newApp(t)

	status, _, _ := do(t, app, "POST", "/api/a/baptis", map[string]any{
		"id": "B1", "id_jemaat": "J1", "tanggal": "2020-01-01", "id_klasis": "K1",
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, _, _ = do(t, app, "POST", "/api/a/sidi", map[string]any{
		"id": "S1", "id_jemaat": "J2", "tanggal": "2021-01-01", "id_klasis": "K1",
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, body, _ := do(t, app, "POST", "/api/a/pernikahan", map[string]any{
		"id_pernikahan": "P1", "klasis": "Klasis Pulau Ambon", "tanggal": "2022-01-01",
		"id_jemaat": []string{"J1", "J2"},
	})
	require.Equal(t, fiber.StatusCreated, status)
	data := body["data"].(map[string]any)
	assert.Len(t, data["jemaats"], 2)

	status, body, cache := do(t, app, "GET", "/api/a/sakramen?id_klasis=K1&jenis_kelamin=L", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "private, max-age=30", cache)

	data = body["data"].(map[string]any)
	assert.Len(t, data["baptis"], 1)
	assert.Len(t, data["sidi"], 0)
	assert.Len(t, data["pernikahan"], 1)

	status, body, _ = do(t, app, "PATCH", "/api/a/pernikahan/P1", map[string]any{"id_jemaat": []string{}})
	require.Equal(t, fiber.StatusOK, status)
	data = body["data"].(map[string]any)
	assert.Empty(t, data["jemaats"])

	status, _, _ = do(t, app, "DELETE", "/api/a/baptis/B1", nil)
	assert.Equal(t, fiber.StatusOK, status)
	status, body, _ = do(t, app, "DELETE", "/api/a/baptis/B1", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
}
