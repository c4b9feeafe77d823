package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"fitplan/internal/delivery/api/middleware"
	"fitplan/internal/delivery/api/response"
	"fitplan/internal/domain/constants"
	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// WorkoutHandlerParams holds dependencies for WorkoutHandler, injected by Fx.
type WorkoutHandlerParams struct {
	fx.In

	WorkoutUC usecase.WorkoutUsecase
	Logger    *slog.Logger
}

// WorkoutHandler holds dependencies for workout-related handlers
type WorkoutHandler struct {
	workoutUC usecase.WorkoutUsecase
	logger    *slog.Logger
}

// NewWorkoutHandler is the constructor for WorkoutHandler
func NewWorkoutHandler(params WorkoutHandlerParams) *WorkoutHandler {
	return &WorkoutHandler{
		workoutUC: params.WorkoutUC,
		logger:    params.Logger,
	}
}

// ExerciseAssignmentRequest is one entry of exercises[].
// Order is accepted for compatibility; the array position decides the stored order.
type ExerciseAssignmentRequest struct {
	ID          string  `json:"id"`
	ExerciseID  string  `json:"exerciseId" validate:"required,max=255"`
	Name        string  `json:"name" validate:"max=255"`
	Sets        *int    `json:"sets" validate:"omitempty,gt=0"`
	Reps        *int    `json:"reps" validate:"omitempty,gt=0"`
	RestTime    *int    `json:"restTime" validate:"omitempty,gte=0"`
	Notes       *string `json:"notes"`
	Order       *int    `json:"order"`
	IsCompleted bool    `json:"isCompleted"`
}

// CreateWorkoutRequest represents the request body for creating a workout
type CreateWorkoutRequest struct {
	Name        string                      `json:"name" validate:"required,max=255"`
	Description *string                     `json:"description"`
	Duration    *int                        `json:"duration" validate:"omitempty,gt=0"`
	Level       *string                     `json:"level" validate:"omitempty,oneof=iniciante intermediario avancado"`
	ImageURL    *string                     `json:"imageUrl"`
	Progress    *int                        `json:"progress" validate:"omitempty,min=0,max=100"`
	IsFavorite  *bool                       `json:"isFavorite"`
	IsCompleted *bool                       `json:"isCompleted"`
	Exercises   []ExerciseAssignmentRequest `json:"exercises" validate:"dive"`
}

// UpdateWorkoutRequest is a partial update. A present exercises field replaces the whole list.
type UpdateWorkoutRequest struct {
	Name        *string                      `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string                      `json:"description"`
	Duration    *int                         `json:"duration" validate:"omitempty,gt=0"`
	Level       *string                      `json:"level" validate:"omitempty,oneof=iniciante intermediario avancado"`
	ImageURL    *string                      `json:"imageUrl"`
	Progress    *int                         `json:"progress" validate:"omitempty,min=0,max=100"`
	IsFavorite  *bool                        `json:"isFavorite"`
	IsCompleted *bool                        `json:"isCompleted"`
	Exercises   *[]ExerciseAssignmentRequest `json:"exercises" validate:"omitempty,dive"`
}

// ListWorkouts handles GET /api/workouts
func (h *WorkoutHandler) ListWorkouts(c echo.Context) error {
	return h.listOwned(c, h.workoutUC.ListWorkouts)
}

// ListFavorites handles GET /api/workouts/favorites
func (h *WorkoutHandler) ListFavorites(c echo.Context) error {
	return h.listOwned(c, h.workoutUC.ListFavorites)
}

// ListCompleted handles GET /api/workouts/completed
func (h *WorkoutHandler) ListCompleted(c echo.Context) error {
	return h.listOwned(c, h.workoutUC.ListCompleted)
}

func (h *WorkoutHandler) listOwned(
	c echo.Context,
	list func(ctx context.Context, userID string) ([]*entity.Workout, error),
) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	workouts, err := list(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, workouts)
}

// GetNextWorkout handles GET /api/workouts/next. The data is null when nothing is pending.
func (h *WorkoutHandler) GetNextWorkout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	next, err := h.workoutUC.GetNextWorkout(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, next)
}

// ListPopular handles GET /api/workouts/popular?limit=N
func (h *WorkoutHandler) ListPopular(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			verr := domainerrors.NewValidationError()
			verr.Add("limit", "gt", "limit must be a positive integer")

			return response.HandleAppError(c, verr)
		}
		limit = parsed
	}

	workouts, err := h.workoutUC.ListPopular(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, workouts)
}

// GetWorkout handles GET /api/workouts/:id
func (h *WorkoutHandler) GetWorkout(c echo.Context) error {
	userID, workoutID, err := h.ownedTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	workout, err := h.workoutUC.GetWorkout(c.Request().Context(), userID, workoutID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, workout)
}

// ListWorkoutExercises handles GET /api/workouts/:id/exercises
func (h *WorkoutHandler) ListWorkoutExercises(c echo.Context) error {
	userID, workoutID, err := h.ownedTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	rows, err := h.workoutUC.ListWorkoutExercises(c.Request().Context(), userID, workoutID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rows)
}

// CreateWorkout handles POST /api/workouts
func (h *WorkoutHandler) CreateWorkout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateWorkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workout input")
	}

	verr := domainerrors.NewValidationError()
	if err := validateInto(c, &req, verr); err != nil {
		return response.HandleAppError(c, err)
	}

	assignments := toAssignments(req.Exercises, verr)
	if err := verr.OrNil(); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.CreateWorkoutInput{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Duration:    req.Duration,
		Level:       toLevel(req.Level),
		ImageURL:    req.ImageURL,
		Progress:    req.Progress,
		IsFavorite:  req.IsFavorite,
		IsCompleted: req.IsCompleted,
		Exercises:   assignments,
	}

	aggregate, err := h.workoutUC.CreateWorkout(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, aggregate)
}

// UpdateWorkout handles PATCH /api/workouts/:id
func (h *WorkoutHandler) UpdateWorkout(c echo.Context) error {
	userID, workoutID, err := h.ownedTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateWorkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workout input")
	}

	verr := domainerrors.NewValidationError()
	if err := validateInto(c, &req, verr); err != nil {
		return response.HandleAppError(c, err)
	}

	var assignments []entity.ExerciseAssignment
	if req.Exercises != nil {
		assignments = toAssignments(*req.Exercises, verr)
	}
	if err := verr.OrNil(); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdateWorkoutInput{
		Patch: entity.WorkoutPatch{
			Name:        req.Name,
			Description: req.Description,
			Duration:    req.Duration,
			Level:       toLevel(req.Level),
			ImageURL:    req.ImageURL,
			Progress:    req.Progress,
			IsFavorite:  req.IsFavorite,
			IsCompleted: req.IsCompleted,
		},
	}

	if req.Exercises != nil {
		input.ReplaceExercises = true
		input.Exercises = assignments
	}

	aggregate, err := h.workoutUC.UpdateWorkout(c.Request().Context(), userID, workoutID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, aggregate)
}

// DeleteWorkout handles DELETE /api/workouts/:id
func (h *WorkoutHandler) DeleteWorkout(c echo.Context) error {
	userID, workoutID, err := h.ownedTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.workoutUC.DeleteWorkout(c.Request().Context(), userID, workoutID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// GetWorkoutQRCode handles GET /api/workouts/:id/qr
func (h *WorkoutHandler) GetWorkoutQRCode(c echo.Context) error {
	userID, workoutID, err := h.ownedTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.workoutUC.GetWorkoutQRCode(c.Request().Context(), userID, workoutID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ownedTarget resolves the caller and the :id path parameter.
// An id that is not a UUID names no stored workout.
func (h *WorkoutHandler) ownedTarget(c echo.Context) (string, uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return "", uuid.Nil, domainerrors.ErrInvalidToken
	}

	workoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return "", uuid.Nil, domainerrors.ErrWorkoutNotFound
	}

	return userID, workoutID, nil
}

// validateInto merges the struct tag failures of req into verr.
// Any other validator failure is returned as is.
func validateInto(c echo.Context, req any, verr *domainerrors.ValidationError) error {
	err := c.Validate(req)
	if err == nil {
		return nil
	}

	var tagErr *domainerrors.ValidationError
	if !errors.As(err, &tagErr) {
		return err
	}
	verr.Merge(tagErr)

	return nil
}

// toAssignments maps exercises[] onto the assignment variants and applies the row defaults.
// Malformed and repeated row ids are recorded on verr.
func toAssignments(items []ExerciseAssignmentRequest, verr *domainerrors.ValidationError) []entity.ExerciseAssignment {
	out := make([]entity.ExerciseAssignment, 0, len(items))
	seen := make(map[uuid.UUID]int, len(items))

	for i, item := range items {
		fields := entity.AssignmentFields{
			ExerciseID:  strings.TrimSpace(item.ExerciseID),
			Name:        strings.TrimSpace(item.Name),
			Sets:        intOr(item.Sets, entity.DefaultSets),
			Reps:        intOr(item.Reps, entity.DefaultReps),
			RestTime:    intOr(item.RestTime, entity.DefaultRestTime),
			Notes:       item.Notes,
			IsCompleted: item.IsCompleted,
		}

		id := strings.TrimSpace(item.ID)
		if id == "" || strings.HasPrefix(id, constants.TemporaryIDPrefix) {
			out = append(out, entity.NewAssignment{AssignmentFields: fields})

			continue
		}

		field := fmt.Sprintf("exercises[%d].id", i)

		durable, err := uuid.Parse(id)
		if err != nil {
			verr.Add(field, "uuid", "id must be a stored row id or start with "+constants.TemporaryIDPrefix)

			continue
		}

		if first, dup := seen[durable]; dup {
			verr.Add(field, "unique", fmt.Sprintf("duplicates exercises[%d].id", first))

			continue
		}
		seen[durable] = i

		out = append(out, entity.ExistingAssignment{ID: durable, AssignmentFields: fields})
	}

	return out
}

func toLevel(level *string) *entity.WorkoutLevel {
	if level == nil {
		return nil
	}

	l := entity.WorkoutLevel(*level)

	return &l
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}

	return *v
}
