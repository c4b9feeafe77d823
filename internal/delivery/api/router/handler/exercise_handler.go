package handler

import (
	"net/http"
	"strings"

	"fitplan/internal/delivery/api/response"
	"fitplan/internal/domain/entity"
	"fitplan/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ExerciseHandler serves the exercise catalog.
type ExerciseHandler struct {
	exerciseUC usecase.ExerciseUsecase
}

// NewExerciseHandler is the constructor for ExerciseHandler
func NewExerciseHandler(exerciseUC usecase.ExerciseUsecase) *ExerciseHandler {
	return &ExerciseHandler{exerciseUC: exerciseUC}
}

// ListExercises handles GET /api/exercises?muscleGroup=&q=
func (h *ExerciseHandler) ListExercises(c echo.Context) error {
	filter := entity.ExerciseFilter{
		MuscleGroup: strings.TrimSpace(c.QueryParam("muscleGroup")),
		Query:       c.QueryParam("q"),
	}

	exercises, err := h.exerciseUC.ListExercises(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, exercises)
}

// GetExercise handles GET /api/exercises/:id
func (h *ExerciseHandler) GetExercise(c echo.Context) error {
	exercise, err := h.exerciseUC.GetExercise(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, exercise)
}
