package repository

import (
	"context"
	"time"

	"fitplan/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrWorkoutNotFound is returned when a workout is not found.
var ErrWorkoutNotFound = errors.New("workout not found")

// WorkoutRepository defines the interface for workout persistence.
// Listings are ordered most recent first.
type WorkoutRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Workout, error)

	// ListByUser orders by created_at.
	ListByUser(ctx context.Context, userID string) ([]*entity.Workout, error)

	// ListFavorites orders by updated_at.
	ListFavorites(ctx context.Context, userID string) ([]*entity.Workout, error)

	// ListCompleted orders by completed_at.
	ListCompleted(ctx context.Context, userID string) ([]*entity.Workout, error)

	// ListCompletedSince returns workouts completed at or after since.
	ListCompletedSince(ctx context.Context, userID string, since time.Time) ([]*entity.Workout, error)

	// FindNext returns the most recently updated incomplete workout, or nil when none exists.
	FindNext(ctx context.Context, userID string) (*entity.Workout, error)

	// ListRecent returns the newest workouts across every user.
	ListRecent(ctx context.Context, limit int) ([]*entity.Workout, error)

	Create(ctx context.Context, workout *entity.Workout) error

	// Update writes every mutable column of workout.
	Update(ctx context.Context, workout *entity.Workout) error

	Delete(ctx context.Context, id uuid.UUID) error
}
