package usecase

import (
	"context"

	"fitplan/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateWorkoutInput defines a new workout and its ordered exercises.
// Nil optional fields take the workout defaults.
type CreateWorkoutInput struct {
	Name        string
	Description *string
	Duration    *int
	Level       *entity.WorkoutLevel
	ImageURL    *string
	Progress    *int
	IsFavorite  *bool
	IsCompleted *bool
	Exercises   []entity.ExerciseAssignment
}

// UpdateWorkoutInput is a partial workout update.
// When ReplaceExercises is false the stored exercise rows are left untouched.
type UpdateWorkoutInput struct {
	Patch            entity.WorkoutPatch
	ReplaceExercises bool
	Exercises        []entity.ExerciseAssignment
}

// WorkoutAggregate is a workout with its exercise rows in order.
type WorkoutAggregate struct {
	*entity.Workout
	Exercises []*entity.WorkoutExercise `json:"exercises"`
}

// WorkoutUsecase defines the workout operations. Every userID is the caller.
type WorkoutUsecase interface {
	ListWorkouts(ctx context.Context, userID string) ([]*entity.Workout, error)
	GetWorkout(ctx context.Context, userID string, workoutID uuid.UUID) (*entity.Workout, error)
	ListWorkoutExercises(ctx context.Context, userID string, workoutID uuid.UUID) ([]*entity.WorkoutExercise, error)

	CreateWorkout(ctx context.Context, userID string, input *CreateWorkoutInput) (*WorkoutAggregate, error)
	UpdateWorkout(ctx context.Context, userID string, workoutID uuid.UUID, input *UpdateWorkoutInput) (*WorkoutAggregate, error)
	DeleteWorkout(ctx context.Context, userID string, workoutID uuid.UUID) error

	ListFavorites(ctx context.Context, userID string) ([]*entity.Workout, error)
	ListCompleted(ctx context.Context, userID string) ([]*entity.Workout, error)

	// GetNextWorkout returns nil when the caller has no incomplete workout.
	GetNextWorkout(ctx context.Context, userID string) (*entity.Workout, error)

	// ListPopular returns the most recently created workouts of all users.
	// A zero limit selects the configured default; others are clamped to the configured maximum.
	ListPopular(ctx context.Context, limit int) ([]*entity.Workout, error)

	// GetWorkoutQRCode renders the share link of an owned workout as PNG.
	GetWorkoutQRCode(ctx context.Context, userID string, workoutID uuid.UUID) ([]byte, error)
}
