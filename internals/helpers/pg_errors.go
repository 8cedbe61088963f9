package helper

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// MapWriteError turns store errors from create/update/delete into AppErrors.
// Unknown errors are returned unchanged and end up as 500.
func MapWriteError(entity string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsAppError(err); ok {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFound(entity)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return NewConflict(entity + " already exists")
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return NewBadRequest(entity + " references a missing record")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return NewConflict(entity + " already exists")
		case pgForeignKeyViolation:
			return NewBadRequest(entity + " references a missing record")
		}
	}
	return err
}
