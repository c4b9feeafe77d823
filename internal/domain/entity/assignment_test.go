package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMaterialize(t *testing.T) {
	workoutID := uuid.New()
	durable := uuid.New()
	fresh := uuid.New()
	notes := "slow eccentric"

	fields := AssignmentFields{ExerciseID: "bench", Name: "Bench Press", Sets: 4, Reps: 8, RestTime: 90, Notes: &notes}
	newID := func() uuid.UUID { return fresh }

	t.Run("new assignment receives a fresh id", func(t *testing.T) {
		row := Materialize(NewAssignment{AssignmentFields: fields}, workoutID, 2, newID)

		assert.Equal(t, fresh, row.ID)
		assert.Equal(t, workoutID, row.WorkoutID)
		assert.Equal(t, 2, row.Order)
		assert.Equal(t, "Bench Press", row.Name)
		assert.Equal(t, &notes, row.Notes)
	})

	t.Run("existing assignment keeps its id", func(t *testing.T) {
		row := Materialize(ExistingAssignment{ID: durable, AssignmentFields: fields}, workoutID, 0, newID)

		assert.Equal(t, durable, row.ID)
		assert.Equal(t, 0, row.Order)
		assert.Equal(t, 4, row.Sets)
		assert.Equal(t, 8, row.Reps)
		assert.Equal(t, 90, row.RestTime)
	})
}
