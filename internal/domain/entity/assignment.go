package entity

import "github.com/google/uuid"

// AssignmentFields are the values shared by both assignment variants.
type AssignmentFields struct {
	ExerciseID  string
	Name        string
	Sets        int
	Reps        int
	RestTime    int
	Notes       *string
	IsCompleted bool
}

// ExerciseAssignment is one entry of a submitted exercise list.
// It is either a NewAssignment or an ExistingAssignment.
type ExerciseAssignment interface {
	Values() AssignmentFields
	isExerciseAssignment()
}

// NewAssignment is a row that has never been persisted and always receives a fresh id.
type NewAssignment struct {
	AssignmentFields
}

func (a NewAssignment) Values() AssignmentFields { return a.AssignmentFields }

func (NewAssignment) isExerciseAssignment() {}

// ExistingAssignment is a row re-submitted with the durable id it was given earlier.
type ExistingAssignment struct {
	ID uuid.UUID
	AssignmentFields
}

func (a ExistingAssignment) Values() AssignmentFields { return a.AssignmentFields }

func (ExistingAssignment) isExerciseAssignment() {}

// Materialize builds the row stored for the assignment at position order.
func Materialize(a ExerciseAssignment, workoutID uuid.UUID, order int, newID func() uuid.UUID) *WorkoutExercise {
	v := a.Values()

	var id uuid.UUID
	switch typed := a.(type) {
	case ExistingAssignment:
		id = typed.ID
	default:
		id = newID()
	}

	return &WorkoutExercise{
		ID:          id,
		WorkoutID:   workoutID,
		ExerciseID:  v.ExerciseID,
		Name:        v.Name,
		Sets:        v.Sets,
		Reps:        v.Reps,
		RestTime:    v.RestTime,
		Notes:       v.Notes,
		Order:       order,
		IsCompleted: v.IsCompleted,
	}
}
