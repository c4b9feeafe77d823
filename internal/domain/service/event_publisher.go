package service

import (
	"context"
	"time"
)

// WorkoutCompletedEvent is published after a workout transitions to completed.
type WorkoutCompletedEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	WorkoutID   string    `json:"workout_id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Duration    int       `json:"duration"`
	CompletedAt time.Time `json:"completed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishWorkoutCompleted(ctx context.Context, event *WorkoutCompletedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
