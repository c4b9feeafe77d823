package pubsub

import (
	"encoding/json"

	"fitplan/internal/domain/constants"
	"fitplan/internal/domain/service"

	"github.com/pkg/errors"
)

// encodeWorkoutCompleted returns the JSON payload and routing attributes of the event.
func encodeWorkoutCompleted(event *service.WorkoutCompletedEvent) ([]byte, map[string]string, error) {
	if event == nil {
		return nil, nil, errors.New("event is required")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		constants.AttrEventType: constants.EventTypeWorkoutCompleted,
		constants.AttrWorkoutID: event.WorkoutID,
		constants.AttrUserID:    event.UserID,
	}
	if event.RequestID != "" {
		attributes[constants.AttrRequestID] = event.RequestID
	}

	return data, attributes, nil
}
