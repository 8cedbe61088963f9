package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	helper "jemaat_backend/internals/helpers"
	"jemaat_backend/internals/helpers/auth"
)

type Options struct {
	Auth bool
}

// Wrapper turns handler errors into the response envelope and, when asked,
// refuses requests without a session.
type Wrapper struct {
	sessions auth.SessionReader
	dev      bool
	log      *zap.Logger
}

func NewWrapper(sessions auth.SessionReader, dev bool, log *zap.Logger) *Wrapper {
	if log == nil {
		log = zap.L()
	}
	return &Wrapper{sessions: sessions, dev: dev, log: log}
}

func (w *Wrapper) WithErrorHandling(h fiber.Handler, opt Options) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if opt.Auth {
			s, err := w.sessions.ReadSession(c)
			if err != nil {
				return w.Handle(c, err)
			}
			if s == nil {
				return w.Handle(c, helper.ErrUnauthorized)
			}
			auth.SetSession(c, s)
		}
		if err := h(c); err != nil {
			return w.Handle(c, err)
		}
		return nil
	}
}

// RequireSession guards a whole route group; errors from the handlers behind
// it come back through c.Next and get the same treatment.
func (w *Wrapper) RequireSession() fiber.Handler {
	return w.WithErrorHandling(func(c *fiber.Ctx) error { return c.Next() }, Options{Auth: true})
}

// Handle writes err as an envelope. It doubles as fiber's ErrorHandler.
func (w *Wrapper) Handle(c *fiber.Ctx, err error) error {
	if ae, ok := helper.AsAppError(err); ok {
		if ae.Status >= fiber.StatusInternalServerError {
			w.log.Error(ae.Message, zap.Error(err), zap.String("path", c.Path()), zap.Stack("stack"))
		} else {
			w.log.Warn(ae.Message, zap.Int("status", ae.Status), zap.String("path", c.Path()))
		}
		return helper.JsonError(c, ae.Status, ae.Message, ae.Details)
	}

	w.log.Error("unhandled error", zap.Error(err), zap.String("path", c.Path()), zap.Stack("stack"))
	var details any
	if w.dev {
		details = fiber.Map{"originalError": err.Error()}
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error", details)
}
