package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Envelope is the shape of every JSON response.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

func CreateResponse(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Envelope{
		Success: status < fiber.StatusBadRequest,
		Data:    data,
		Message: message,
	})
}

// JsonError writes a failed envelope; details may be nil.
func JsonError(c *fiber.Ctx, status int, message string, details any) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = "Internal server error"
	}
	return c.Status(status).JSON(Envelope{
		Success: false,
		Data:    nil,
		Message: message,
		Details: details,
	})
}

// JsonOK: response sukses generic (GET list/detail)
func JsonOK(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	return CreateResponse(c, fiber.StatusOK, message, data)
}

// JsonCreated: response sukses create (POST)
func JsonCreated(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "created"
	}
	return CreateResponse(c, fiber.StatusCreated, message, data)
}

// JsonUpdated: response sukses update (PATCH)
func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "updated"
	}
	return CreateResponse(c, fiber.StatusOK, message, data)
}

// JsonDeleted: response sukses delete (DELETE)
func JsonDeleted(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "deleted"
	}
	return CreateResponse(c, fiber.StatusOK, message, data)
}
