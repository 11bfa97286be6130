package postgres

import (
	"regexp"

	domainerrors "envelope/internal/domain/errors"
	"envelope/internal/domain/repository"
	"envelope/internal/errors"

	"gorm.io/gorm"
)

// PostgreSQL error codes for integrity constraint violations
const (
	sqlStateNotNull = "23502"
	sqlStateUnique  = "23505"
	sqlStateCheck   = "23514"
)

var sqlStatePattern = regexp.MustCompile(`SQLSTATE (\w{5})`)

// sqlStater is implemented by pgconn.PgError.
type sqlStater interface {
	SQLState() string
}

// translateWriteError maps constraint violations on notes to domain errors
func translateWriteError(err error, op string) error {
	switch sqlState(err) {
	case sqlStateUnique:
		return errors.WithStack(repository.ErrDuplicateNote)
	case sqlStateNotNull, sqlStateCheck:
		return domainerrors.ErrValidation.WithDetails(op + ": " + err.Error())
	default:
		return domainerrors.NewDatabaseExecuteError(err, op)
	}
}

func isUniqueConstraintViolation(err error) bool {
	return sqlState(err) == sqlStateUnique
}

// sqlState returns the SQLSTATE behind err, whether the dialector translated
// it into a gorm sentinel, kept the driver error or only left it in the text.
func sqlState(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return sqlStateUnique
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return sqlStateCheck
	}

	if pgErr, ok := errors.Find[sqlStater](err); ok {
		return pgErr.SQLState()
	}

	if m := sqlStatePattern.FindStringSubmatch(err.Error()); m != nil {
		return m[1]
	}

	return ""
}
