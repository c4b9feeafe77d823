package entity

import (
	"time"

	"github.com/google/uuid"
)

// Workout defaults applied on create.
const (
	DefaultWorkoutDuration = 30
	MaxWorkoutProgress     = 100
)

// Workout is owned exclusively by UserID.
type Workout struct {
	ID          uuid.UUID    `json:"id"`
	UserID      string       `json:"userId"`
	Name        string       `json:"name"`
	Description *string      `json:"description"`
	Duration    int          `json:"duration"` // Minutes.
	Level       WorkoutLevel `json:"level"`
	ImageURL    *string      `json:"imageUrl"`
	Progress    int          `json:"progress"` // 0..100.
	IsFavorite  bool         `json:"isFavorite"`
	IsCompleted bool         `json:"isCompleted"`
	CompletedAt *time.Time   `json:"completedAt"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// IsOwnedBy reports whether userID owns the workout.
func (w *Workout) IsOwnedBy(userID string) bool {
	return w != nil && w.UserID == userID
}

// WorkoutPatch lists the fields of a partial update. Nil fields are left unchanged.
type WorkoutPatch struct {
	Name        *string
	Description *string
	Duration    *int
	Level       *WorkoutLevel
	ImageURL    *string
	Progress    *int
	IsFavorite  *bool
	IsCompleted *bool
}

// Apply copies the set fields onto w and maintains the completion timestamp.
// It reports whether the workout transitioned from incomplete to complete.
func (p *WorkoutPatch) Apply(w *Workout, now time.Time) (completed bool) {
	if p.Name != nil {
		w.Name = *p.Name
	}
	if p.Description != nil {
		w.Description = p.Description
	}
	if p.Duration != nil {
		w.Duration = *p.Duration
	}
	if p.Level != nil {
		w.Level = *p.Level
	}
	if p.ImageURL != nil {
		w.ImageURL = p.ImageURL
	}
	if p.Progress != nil {
		w.Progress = *p.Progress
	}
	if p.IsFavorite != nil {
		w.IsFavorite = *p.IsFavorite
	}

	if p.IsCompleted != nil {
		switch {
		case *p.IsCompleted && !w.IsCompleted:
			completedAt := now
			w.IsCompleted = true
			w.CompletedAt = &completedAt
			w.Progress = MaxWorkoutProgress
			completed = true
		case !*p.IsCompleted:
			w.IsCompleted = false
			w.CompletedAt = nil
		}
	}

	w.UpdatedAt = now

	return completed
}

