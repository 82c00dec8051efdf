package database

import (
	"database/sql"
	"errors"

	"github.com/piresc/dispatch/internal/pkg/apperror"
)

// TranslateError maps a repository error onto the application error kinds:
// missing rows become NotFound, unique violations Conflict and anything else
// an upstream failure.
func TranslateError(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return apperror.NotFound(entity + " not found")
	case IsUniqueViolation(err):
		return apperror.Conflict(entity + " already exists")
	default:
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			return err
		}
		return apperror.Upstream("database operation failed on "+entity, err)
	}
}

// NullIfEmpty returns nil for blank strings so optional text columns stay NULL
func NullIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// ExpectRow turns an update or delete that touched nothing into NotFound
func ExpectRow(result sql.Result, entity string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return TranslateError(err, entity)
	}
	if n == 0 {
		return apperror.NotFound(entity + " not found")
	}
	return nil
}
