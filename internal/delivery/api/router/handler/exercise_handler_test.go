package handler

import (
	"net/http"
	"testing"

	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	mockUsecase "fitplan/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExerciseHandler_ListExercises_ForwardsFilter(t *testing.T) {
	exerciseUC := mockUsecase.NewMockExerciseUsecase(t)
	h := NewExerciseHandler(exerciseUC)
	c, rec := newTestContext(http.MethodGet, "/api/exercises?muscleGroup=%20Pernas%20&q=agach", "", testUserID)

	exerciseUC.EXPECT().
		ListExercises(mock.Anything, entity.ExerciseFilter{MuscleGroup: "Pernas", Query: "agach"}).
		Return([]*entity.Exercise{{ID: "sq1", Name: "Agachamento", MuscleGroup: "Pernas"}}, nil).
		Once()

	require.NoError(t, h.ListExercises(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	rows := decodeData[[]map[string]any](t, rec)
	require.Len(t, rows, 1)
	assert.Equal(t, "sq1", rows[0]["id"])
}

func TestExerciseHandler_GetExercise_NotFound(t *testing.T) {
	exerciseUC := mockUsecase.NewMockExerciseUsecase(t)
	h := NewExerciseHandler(exerciseUC)
	c, rec := newTestContext(http.MethodGet, "/api/exercises/missing", "", testUserID)
	withID(c, "missing")

	exerciseUC.EXPECT().GetExercise(mock.Anything, "missing").
		Return(nil, errors.Wrap(domainerrors.ErrExerciseNotFound, "get exercise")).
		Once()

	require.NoError(t, h.GetExercise(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "EXERCISE_NOT_FOUND", decodeErrorBody(t, rec).Error.Code)
}
