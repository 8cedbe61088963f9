package helper

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AppError is an error that already knows its HTTP status and the details
// that may be shown to the client.
type AppError struct {
	Status  int
	Message string
	Details any
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, message string, details any) *AppError {
	return &AppError{Status: status, Message: message, Details: details}
}

var ErrUnauthorized = &AppError{Status: fiber.StatusUnauthorized, Message: "Unauthorized"}

func NewBadRequest(message string) *AppError {
	return NewAppError(fiber.StatusBadRequest, message, nil)
}

func NewNotFound(what string) *AppError {
	return NewAppError(fiber.StatusNotFound, what+" not found", nil)
}

func NewConflict(message string) *AppError {
	return NewAppError(fiber.StatusConflict, message, nil)
}

// NewValidationError carries per-field messages (field -> message).
func NewValidationError(details map[string]string) *AppError {
	return NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", details)
}

// AsAppError unwraps an *AppError, also accepting *fiber.Error from fiber
// itself (404 route, body limit, ...).
func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return &AppError{Status: fe.Code, Message: fe.Message}, true
	}
	return nil, false
}

/* ===============================
   Store failures
=================================*/

// ErrFetchFailed is matched by every FetchError via errors.Is.
var ErrFetchFailed = errors.New("failed to fetch data")

// FetchError hides the store cause from callers; the cause only goes to the log.
type FetchError struct {
	Kind string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s data", e.Kind)
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

// WrapStore logs err and returns the generic fetch error for kind.
func WrapStore(kind string, err error) error {
	if err == nil {
		return nil
	}
	zap.L().Error("store query failed", zap.String("kind", kind), zap.Error(err))
	return &FetchError{Kind: kind}
}
