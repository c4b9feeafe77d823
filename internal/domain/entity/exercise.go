package entity

import (
	"slices"
	"strings"
)

// Exercise is immutable catalog reference data.
type Exercise struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	MuscleGroup  string     `json:"muscleGroup"`
	Equipment    string     `json:"equipment"`
	Difficulty   Difficulty `json:"difficulty"`
	ImageURL     string     `json:"imageUrl"`
	Instructions []string   `json:"instructions"` // Ordered steps.
}

// Clone returns a deep copy.
func (e *Exercise) Clone() *Exercise {
	if e == nil {
		return nil
	}

	c := *e
	c.Instructions = slices.Clone(e.Instructions)

	return &c
}

// ExerciseFilter narrows a catalog listing. Zero values match everything.
type ExerciseFilter struct {
	MuscleGroup string // Case-insensitive exact match.
	Query       string // Case-insensitive substring of name or description.
}

// Matches reports whether e satisfies the filter.
func (f ExerciseFilter) Matches(e *Exercise) bool {
	if f.MuscleGroup != "" && !strings.EqualFold(e.MuscleGroup, f.MuscleGroup) {
		return false
	}

	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		return strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Description), q)
	}

	return true
}

// FilterExercises returns the matching exercises in input order.
func FilterExercises(exercises []*Exercise, f ExerciseFilter) []*Exercise {
	out := make([]*Exercise, 0, len(exercises))
	for _, e := range exercises {
		if f.Matches(e) {
			out = append(out, e)
		}
	}

	return out
}
