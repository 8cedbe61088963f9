package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	helper "jemaat_backend/internals/helpers"
	"jemaat_backend/internals/helpers/auth"
	"jemaat_backend/internals/middlewares"
)

type fakeUploader struct {
	bucket, folder, name string
	err                  error
}

func (f *fakeUploader) Upload(_ context.Context, fh *multipart.FileHeader, bucket, folder string) (string, error) {
	f.bucket, f.folder, f.name = bucket, folder, fh.Filename
	if f.err != nil {
		return "", f.err
	}
	return "https://" + bucket + ".oss.example.com/" + folder + fh.Filename, nil
}

type allowAll struct{}

func (allowAll) ReadSession(*fiber.Ctx) (*auth.Session, error) {
	return &auth.Session{Username: "admin"}, nil
}

func newApp(u *fakeUploader) *fiber.App {
	w := middlewares.NewWrapper(allowAll{}, false, zap.NewNop())
	app := fiber.New(fiber.Config{ErrorHandler: w.Handle})
	h := NewUploadController(nil)
	if u != nil {
		h = NewUploadController(u)
	}
	app.Post("/api/a/uploads", w.RequireSession(), h.Upload)
	return app
}

func post(t *testing.T, app *fiber.App, fields map[string]string, filename string) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte("%PDF-1.4 test"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/a/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestUploadReturnsURL(t *testing.T) {
	u := &fakeUploader{}
	status, body := post(t, newApp(u), map[string]string{"bucket": "jemaat", "folder": "baptis"}, "akta.pdf")
	require.Equal(t, fiber.StatusCreated, status)

	assert.Equal(t, "jemaat", u.bucket)
	assert.Equal(t, "baptis/", u.folder)
	assert.Equal(t, "akta.pdf", u.name)
	data := body["data"].(map[string]any)
	assert.Equal(t, "https://jemaat.oss.example.com/baptis/akta.pdf", data["url"])
}

func TestUploadRequiresFile(t *testing.T) {
	status, body := post(t, newApp(&fakeUploader{}), map[string]string{"bucket": "jemaat"}, "")
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, body["details"], "file")
}

func TestUploadFailurePassesThrough(t *testing.T) {
	u := &fakeUploader{err: helper.NewAppError(fiber.StatusBadGateway, "Upload failed: object exists", nil)}
	status, body := post(t, newApp(u), map[string]string{"bucket": "jemaat"}, "akta.pdf")
	assert.Equal(t, fiber.StatusBadGateway, status)
	assert.Equal(t, "Upload failed: object exists", body["message"])
}

func TestUploadWithoutStorage(t *testing.T) {
	status, _ := post(t, newApp(nil), nil, "akta.pdf")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}

func TestUploadRejectsUnknownType(t *testing.T) {
	u := &fakeUploader{}
	status, body := post(t, newApp(u), map[string]string{"bucket": "jemaat"}, "setup.exe")
	assert.Equal(t, fiber.StatusUnsupportedMediaType, status)
	assert.Equal(t, "Tipe file tidak didukung", body["message"])
	assert.Empty(t, u.name)
}
