package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterExercises(t *testing.T) {
	exercises := []*Exercise{
		{ID: "1", Name: "Supino Reto", Description: "Peitoral maior", MuscleGroup: "Peito"},
		{ID: "2", Name: "Agachamento", Description: "Quadríceps e glúteos", MuscleGroup: "Pernas"},
		{ID: "3", Name: "Leg Press", Description: "Máquina para pernas", MuscleGroup: "Pernas"},
	}

	tests := []struct {
		name   string
		filter ExerciseFilter
		want   []string
	}{
		{name: "no filter", filter: ExerciseFilter{}, want: []string{"1", "2", "3"}},
		{name: "muscle group ignores case", filter: ExerciseFilter{MuscleGroup: "pernas"}, want: []string{"2", "3"}},
		{name: "query matches description", filter: ExerciseFilter{Query: "  GLÚTEOS "}, want: []string{"2"}},
		{name: "both", filter: ExerciseFilter{MuscleGroup: "Pernas", Query: "press"}, want: []string{"3"}},
		{name: "nothing", filter: ExerciseFilter{Query: "remada"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterExercises(exercises, tt.filter)

			ids := make([]string, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestExercise_Clone(t *testing.T) {
	src := &Exercise{ID: "1", Instructions: []string{"a", "b"}}

	clone := src.Clone()
	clone.Instructions[0] = "changed"

	assert.Equal(t, "a", src.Instructions[0])

	var missing *Exercise
	assert.Nil(t, missing.Clone())
}
