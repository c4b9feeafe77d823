package repository

import (
	"context"

	"fitplan/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrExerciseNotFound is returned when an exercise is not stored.
var ErrExerciseNotFound = errors.New("exercise not found")

// ExerciseRepository reads the persisted exercise catalog.
type ExerciseRepository interface {
	// List returns every persisted exercise ordered by name.
	List(ctx context.Context) ([]*entity.Exercise, error)

	FindByID(ctx context.Context, id string) (*entity.Exercise, error)
}
