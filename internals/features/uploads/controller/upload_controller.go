// internals/features/uploads/controller/upload_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"jemaat_backend/internals/constants"
	helper "jemaat_backend/internals/helpers"
	"jemaat_backend/internals/helpers/storage"
)

// MaxUploadBytes matches the BodyLimit configured on the fiber app.
const MaxUploadBytes = 10 << 20

type UploadController struct {
	Storage storage.Uploader
}

func NewUploadController(s storage.Uploader) *UploadController {
	return &UploadController{Storage: s}
}

// POST /api/a/uploads (multipart: file, bucket, folder)
func (h *UploadController) Upload(c *fiber.Ctx) error {
	if h.Storage == nil {
		return helper.NewAppError(fiber.StatusServiceUnavailable, "Object storage belum dikonfigurasi", nil)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.NewValidationError(map[string]string{"file": "file wajib diisi"})
	}
	if fh.Size > MaxUploadBytes {
		return helper.NewAppError(fiber.StatusRequestEntityTooLarge, "Ukuran file melebihi batas", nil)
	}
	if constants.DetectFileTypeFromExt(fh.Filename) == constants.FileUnknown {
		return helper.NewAppError(fiber.StatusUnsupportedMediaType, "Tipe file tidak didukung", nil)
	}

	folder := strings.TrimSpace(c.FormValue("folder"))
	if folder != "" && !strings.HasSuffix(folder, "/") {
		folder += "/"
	}

	url, err := h.Storage.Upload(c.UserContext(), fh, strings.TrimSpace(c.FormValue("bucket")), folder)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "File berhasil diunggah", fiber.Map{"url": url})
}
