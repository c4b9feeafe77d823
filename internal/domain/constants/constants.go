// Package constants contains values shared across layers.
package constants

// Event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// TemporaryIDPrefix marks client-generated exercise rows that were never persisted.
const TemporaryIDPrefix = "temp-"

// Topic and attribute names for workout events.
const (
	EventTypeWorkoutCompleted = "workout.completed"
	AttrEventType             = "event_type"
	AttrWorkoutID             = "workout_id"
	AttrUserID                = "user_id"
	AttrRequestID             = "request_id"
)
