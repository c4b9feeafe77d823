package repository

import (
	"context"

	"fitplan/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrDuplicateWorkoutExercise is returned when a row id or order position is already taken.
	ErrDuplicateWorkoutExercise = errors.New("workout exercise already exists")
	// ErrWorkoutReference is returned when a row points at a missing workout.
	ErrWorkoutReference = errors.New("workout exercise references a missing workout")
)

// WorkoutExerciseRepository persists the ordered exercise rows of workouts.
type WorkoutExerciseRepository interface {
	// ListByWorkout orders by position.
	ListByWorkout(ctx context.Context, workoutID uuid.UUID) ([]*entity.WorkoutExercise, error)

	// CreateBatch inserts the rows in slice order.
	CreateBatch(ctx context.Context, rows []*entity.WorkoutExercise) error

	// DeleteByWorkout removes every row of the workout and reports how many were removed.
	DeleteByWorkout(ctx context.Context, workoutID uuid.UUID) (int64, error)
}
