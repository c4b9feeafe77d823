package entity

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutExercise is one ordered exercise row of a workout.
// Name is a snapshot of the catalog name taken when the row was written.
type WorkoutExercise struct {
	ID          uuid.UUID `json:"id"`
	WorkoutID   uuid.UUID `json:"workoutId"`
	ExerciseID  string    `json:"exerciseId"`
	Name        string    `json:"name"`
	Sets        int       `json:"sets"`
	Reps        int       `json:"reps"`
	RestTime    int       `json:"restTime"` // Seconds.
	Notes       *string   `json:"notes"`
	Order       int       `json:"order"` // Zero-based, contiguous within a workout.
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Defaults for assignment fields omitted by the client.
const (
	DefaultSets     = 3
	DefaultReps     = 12
	DefaultRestTime = 60
)
