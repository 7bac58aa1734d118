package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	t.Parallel()

	wrap := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code}, "insert failed")
	}

	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
		check      bool
	}{
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, unique: true},
		{name: "unique sqlstate", err: wrap(pgCodeUniqueViolation), unique: true},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, foreignKey: true},
		{name: "foreign key sqlstate", err: wrap(pgCodeForeignKeyViolation), foreignKey: true},
		{name: "not null sqlstate", err: wrap(pgCodeNotNullViolation), notNull: true},
		{name: "check sqlstate", err: wrap(pgCodeCheckViolation), check: true},
		{name: "unrelated error", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
		})
	}
}
