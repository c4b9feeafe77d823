package usecase

import (
	"context"

	"fitplan/internal/domain/entity"
)

// ExerciseUsecase serves the exercise catalog.
type ExerciseUsecase interface {
	// ListExercises returns the persisted catalog, or the bundled seed when nothing is stored.
	ListExercises(ctx context.Context, filter entity.ExerciseFilter) ([]*entity.Exercise, error)

	GetExercise(ctx context.Context, id string) (*entity.Exercise, error)
}
