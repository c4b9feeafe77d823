package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	wrapped := func(code, constraint string) error {
		return errors.Wrap(&pgconn.PgError{Code: code, ConstraintName: constraint}, "insert")
	}

	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
		check      bool
	}{
		{name: "unique sqlstate", err: wrapped(pgUniqueViolation, "idx_workout_exercises_position"), unique: true},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, unique: true},
		{name: "foreign key sqlstate", err: wrapped(pgForeignKeyViolation, "workout_exercises_workout_id_fkey"), foreignKey: true},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, foreignKey: true},
		{name: "not null", err: wrapped(pgNotNullViolation, ""), notNull: true},
		{name: "check", err: wrapped(pgCheckViolation, "workouts_progress_check"), check: true},
		{name: "unrelated", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
		})
	}
}

func TestPgConstraintName(t *testing.T) {
	err := errors.Wrap(&pgconn.PgError{Code: pgCheckViolation, ConstraintName: "workouts_progress_check"}, "update")

	assert.Equal(t, "workouts_progress_check", pgConstraintName(err))
	assert.Empty(t, pgConstraintName(errors.New("plain")))
}
