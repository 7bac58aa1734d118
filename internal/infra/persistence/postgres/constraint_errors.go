package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations.
const (
	pgCodeNotNullViolation    = "23502"
	pgCodeForeignKeyViolation = "23503"
	pgCodeUniqueViolation     = "23505"
	pgCodeCheckViolation      = "23514"
)

// Helper functions for PostgreSQL error checking.
// GORM translates most driver errors when TranslateError is enabled; the SQLSTATE fallback covers
// sessions where it is not.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasSQLState(err, pgCodeUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return hasSQLState(err, pgCodeForeignKeyViolation)
}

func isNotNullConstraintViolation(err error) bool {
	return hasSQLState(err, pgCodeNotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return hasSQLState(err, pgCodeCheckViolation)
}

func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}

	return false
}
