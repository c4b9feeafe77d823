package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	mockUsecase "fitplan/internal/mocks/usecase"
	"fitplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestWorkoutHandler(t *testing.T) (*WorkoutHandler, *mockUsecase.MockWorkoutUsecase) {
	workoutUC := mockUsecase.NewMockWorkoutUsecase(t)

	return NewWorkoutHandler(WorkoutHandlerParams{WorkoutUC: workoutUC}), workoutUC
}

func testWorkout(id uuid.UUID) *entity.Workout {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	return &entity.Workout{
		ID:        id,
		UserID:    testUserID,
		Name:      "Leg Day",
		Duration:  45,
		Level:     entity.LevelAdvanced,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestWorkoutHandler_CreateWorkout_TemporaryRowBecomesNewAssignment(t *testing.T) {
	h, workoutUC := newTestWorkoutHandler(t)
	workoutID := uuid.New()
	rowID := uuid.New()

	body := `{"name":"Leg Day","duration":45,"level":"avancado",
		"exercises":[{"id":"temp-1","exerciseId":"sq1","name":"Squat","sets":4,"reps":8,"restTime":90,"order":7}]}`
	c, rec := newTestContext(http.MethodPost, "/api/workouts", body, testUserID)

	workoutUC.EXPECT().
		CreateWorkout(mock.Anything, testUserID, mock.MatchedBy(func(in *usecase.CreateWorkoutInput) bool {
			if in.Name != "Leg Day" || in.Duration == nil || *in.Duration != 45 || len(in.Exercises) != 1 {
				return false
			}
			if in.Level == nil || *in.Level != entity.LevelAdvanced {
				return false
			}
			row, ok := in.Exercises[0].(entity.NewAssignment)

			return ok && row.ExerciseID == "sq1" && row.Sets == 4 && row.Reps == 8 && row.RestTime == 90
		})).
		Return(&usecase.WorkoutAggregate{
			Workout: testWorkout(workoutID),
			Exercises: []*entity.WorkoutExercise{{
				ID: rowID, WorkoutID: workoutID, ExerciseID: "sq1", Name: "Squat", Sets: 4, Reps: 8, RestTime: 90, Order: 0,
			}},
		}, nil).
		Once()

	require.NoError(t, h.CreateWorkout(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	data := decodeData[map[string]any](t, rec)
	assert.Equal(t, workoutID.String(), data["id"])
	exercises := data["exercises"].([]any)
	require.Len(t, exercises, 1)
	assert.Equal(t, rowID.String(), exercises[0].(map[string]any)["id"])
}

func TestWorkoutHandler_CreateWorkout_StoredRowIDAndDefaults(t *testing.T) {
	h, workoutUC := newTestWorkoutHandler(t)
	stored := uuid.New()

	body := `{"name":"Push","exercises":[{"id":"` + stored.String() + `","exerciseId":"bp1"},{"exerciseId":"ohp"}]}`
	c, rec := newTestContext(http.MethodPost, "/api/workouts", body, testUserID)

	var captured *usecase.CreateWorkoutInput
	workoutUC.EXPECT().
		CreateWorkout(mock.Anything, testUserID, mock.Anything).
		Run(func(_ context.Context, _ string, in *usecase.CreateWorkoutInput) { captured = in }).
		Return(&usecase.WorkoutAggregate{Workout: testWorkout(uuid.New())}, nil).
		Once()

	require.NoError(t, h.CreateWorkout(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, captured)
	require.Len(t, captured.Exercises, 2)

	existing, ok := captured.Exercises[0].(entity.ExistingAssignment)
	require.True(t, ok)
	assert.Equal(t, stored, existing.ID)

	fresh, ok := captured.Exercises[1].(entity.NewAssignment)
	require.True(t, ok)
	assert.Equal(t, entity.DefaultSets, fresh.Sets)
	assert.Equal(t, entity.DefaultReps, fresh.Reps)
	assert.Equal(t, entity.DefaultRestTime, fresh.RestTime)
	assert.Nil(t, captured.Duration)
	assert.Nil(t, captured.Level)
}

func TestWorkoutHandler_CreateWorkout_ReportsEveryInvalidField(t *testing.T) {
	h, _ := newTestWorkoutHandler(t)

	body := `{"duration":0,"level":"expert","progress":101,"exercises":[{"exerciseId":"sq1","sets":0,"restTime":-1}]}`
	c, rec := newTestContext(http.MethodPost, "/api/workouts", body, testUserID)

	require.NoError(t, h.CreateWorkout(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errBody := decodeErrorBody(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", errBody.Error.Code)
	assert.ElementsMatch(t,
		[]string{"name", "duration", "level", "progress", "exercises[0].sets", "exercises[0].restTime"},
		detailFields(t, errBody),
	)
}

func TestWorkoutHandler_CreateWorkout_RejectsMalformedRowID(t *testing.T) {
	h, _ := newTestWorkoutHandler(t)

	body := `{"name":"Push","exercises":[{"exerciseId":"bp1"},{"id":"row-9","exerciseId":"ohp"}]}`
	c, rec := newTestContext(http.MethodPost, "/api/workouts", body, testUserID)

	require.NoError(t, h.CreateWorkout(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"exercises[1].id"}, detailFields(t, decodeErrorBody(t, rec)))
}

func TestWorkoutHandler_CreateWorkout_MergesTagAndRowIDFailures(t *testing.T) {
	h, _ := newTestWorkoutHandler(t)

	body := `{"name":"","exercises":[{"id":"row-9","exerciseId":"sq1"}]}`
	c, rec := newTestContext(http.MethodPost, "/api/workouts", body, testUserID)

	require.NoError(t, h.CreateWorkout(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"name", "exercises[0].id"}, detailFields(t, decodeErrorBody(t, rec)))
}

func TestWorkoutHandler_UpdateWorkout_MergesTagAndRowIDFailures(t *testing.T) {
	h, _ := newTestWorkoutHandler(t)
	workoutID := uuid.New()
	rowID := uuid.NewString()

	body := `{"progress":150,"exercises":[` +
		`{"id":"` + rowID + `","exerciseId":"bp1","sets":0},` +
		`{"id":"` + rowID + `","exerciseId":"ohp"},` +
		`{"id":"nope","exerciseId":"dips"}]}`
	c, rec := newTestContext(http.MethodPatch, "/api/workouts/"+workoutID.String(), body, testUserID)
	withID(c, workoutID.String())

	require.NoError(t, h.UpdateWorkout(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t,
		[]string{"progress", "exercises[0].sets", "exercises[1].id", "exercises[2].id"},
		detailFields(t, decodeErrorBody(t, rec)),
	)
}

func TestWorkoutHandler_CreateWorkout_Unauthenticated(t *testing.T) {
	h, _ := newTestWorkoutHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/workouts", `{"name":"Push"}`, "")

	require.NoError(t, h.CreateWorkout(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWorkoutHandler_UpdateWorkout_WithoutExercisesKeepsRows(t *testing.T) {
	h, workoutUC := newTestWorkoutHandler(t)
	workoutID := uuid.New()

	c, rec := newTestContext(http.MethodPatch, "/api/workouts/"+workoutID.String(), `{"isFavorite":true}`, testUserID)
	withID(c, workoutID.String())

	workoutUC.EXPECT().
		UpdateWorkout(mock.Anything, testUserID, workoutID, mock.MatchedBy(func(in *usecase.UpdateWorkoutInput) bool {
			return !in.ReplaceExercises && in.Exercises == nil &&
				in.Patch.IsFavorite != nil && *in.Patch.IsFavorite &&
				in.Patch.Name == nil
		})).
		Return(&usecase.WorkoutAggregate{Workout: testWorkout(workoutID), Exercises: []*entity.WorkoutExercise{}}, nil).
		Once()

	require.NoError(t, h.UpdateWorkout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWorkoutHandler_UpdateWorkout_EmptyExercisesReplaces(t *testing.T) {
	h, workoutUC := newTestWorkoutHandler(t)
	workoutID := uuid.New()

	c, rec := newTestContext(http.MethodPatch, "/api/workouts/"+workoutID.String(), `{"exercises":[]}`, testUserID)
	withID(c, workoutID.String())

	workoutUC.EXPECT().
		UpdateWorkout(mock.Anything, testUserID, workoutID, mock.MatchedBy(func(in *usecase.UpdateWorkoutInput) bool {
			return in.ReplaceExercises && len(in.Exercises) == 0
		})).
		Return(&usecase.WorkoutAggregate{Workout: testWorkout(workoutID), Exercises: []*entity.WorkoutExercise{}}, nil).
		Once()

	require.NoError(t, h.UpdateWorkout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWorkoutHandler_UpdateWorkout_Forbidden(t *testing.T) {
	h, workoutUC := newTestWorkoutHandler(t)
	workoutID := uuid.New()

	c, rec := newTestContext(http.MethodPatch, "/api/workouts/"+workoutID.String(), `{"name":"Mine now"}`, testUserID)
	withID(c, workoutID.String())

	workoutUC.EXPECT().
		UpdateWorkout(mock.Anything, testUserID, workoutID, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrWorkoutOwnership, "update workout")).
		Once()

	require.NoError(t, h.UpdateWorkout(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "WORKOUT_FORBIDDEN", decodeErrorBody(t, rec).Error.Code)
}

func TestWorkoutHandler_GetWorkout(t *testing.T) {
	workoutID := uuid.New()

	tests := []struct {
		name       string
		id         string
		setup      func(uc *mockUsecase.MockWorkoutUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "owned",
			id:   workoutID.String(),
			setup: func(uc *mockUsecase.MockWorkoutUsecase) {
				uc.EXPECT().GetWorkout(mock.Anything, testUserID, workoutID).Return(testWorkout(workoutID), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing",
			id:   workoutID.String(),
			setup: func(uc *mockUsecase.MockWorkoutUsecase) {
				uc.EXPECT().GetWorkout(mock.Anything, testUserID, workoutID).
					Return(nil, errors.Wrap(domainerrors.ErrWorkoutNotFound, "get workout")).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "WORKOUT_NOT_FOUND",
		},
		{
			name: "foreign",
			id:   workoutID.String(),
			setup: func(uc *mockUsecase.MockWorkoutUsecase) {
				uc.EXPECT().GetWorkout(mock.Anything, testUserID, workoutID).
					Return(nil, errors.Wrap(domainerrors.ErrWorkoutOwnership, "get workout")).Once()
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "WORKOUT_FORBIDDEN",
		},
		{
			name:       "malformed id",
			id:         "not-a-uuid",
			setup:      func(*mockUsecase.MockWorkoutUsecase) {},
			wantStatus: http.StatusNotFound,
			wantCode:   "WORKOUT_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, workoutUC := newTestWorkoutHandler(t)
			tt.setup(workoutUC)

			c, rec := newTestContext(http.MethodGet, "/api/workouts/"+tt.id, "", testUserID)
			withID(c, tt.id)

			require.NoError(t, h.GetWorkout(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeErrorBody(t, rec).Error.Code)
			}
		})
	}
}

func TestWorkoutHandler_GetWorkout_UnexpectedErrorReachesErrorHandler(t *testing.T) {
	h, workoutUC := newTestWorkoutHandler(t)
	workoutID := uuid.New()

	c, _ := newTestContext(http.MethodGet, "/api/workouts/"+workoutID.String(), "", testUserID)
	withID(c, workoutID.String())

	workoutUC.EXPECT().GetWorkout(mock.Anything, testUserID, workoutID).Return(nil, errors.New("connection reset")).Once()

	err := h.GetWorkout(c)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestWorkoutHandler_DeleteWorkout(t *testing.T) {
	h, workoutUC := newTestWorkoutHandler(t)
	workoutID := uuid.New()

	c, rec := newTestContext(http.MethodDelete, "/api/workouts/"+workoutID.String(), "", testUserID)
	withID(c, workoutID.String())

	workoutUC.EXPECT().DeleteWorkout(mock.Anything, testUserID, workoutID).Return(nil).Once()

	require.NoError(t, h.DeleteWorkout(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestWorkoutHandler_DeleteWorkout_MalformedIDIsNotFound(t *testing.T) {
	h, _ := newTestWorkoutHandler(t)

	c, rec := newTestContext(http.MethodDelete, "/api/workouts/42", "", testUserID)
	withID(c, "42")

	require.NoError(t, h.DeleteWorkout(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "WORKOUT_NOT_FOUND", decodeErrorBody(t, rec).Error.Code)
}

func TestWorkoutHandler_ListWorkoutExercises(t *testing.T) {
	h, workoutUC := newTestWorkoutHandler(t)
	workoutID := uuid.New()

	c, rec := newTestContext(http.MethodGet, "/api/workouts/"+workoutID.String()+"/exercises", "", testUserID)
	withID(c, workoutID.String())

	workoutUC.EXPECT().ListWorkoutExercises(mock.Anything, testUserID, workoutID).
		Return([]*entity.WorkoutExercise{
			{ID: uuid.New(), WorkoutID: workoutID, ExerciseID: "sq1", Order: 0},
			{ID: uuid.New(), WorkoutID: workoutID, ExerciseID: "lp1", Order: 1},
		}, nil).
		Once()

	require.NoError(t, h.ListWorkoutExercises(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	rows := decodeData[[]map[string]any](t, rec)
	require.Len(t, rows, 2)
	assert.Equal(t, "sq1", rows[0]["exerciseId"])
}

func TestWorkoutHandler_ListWorkouts_EmptyIsArray(t *testing.T) {
	h, workoutUC := newTestWorkoutHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/workouts", "", testUserID)

	workoutUC.EXPECT().ListWorkouts(mock.Anything, testUserID).Return([]*entity.Workout{}, nil).Once()

	require.NoError(t, h.ListWorkouts(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decodeData[json.RawMessage](t, rec)))
}

func TestWorkoutHandler_GetNextWorkout_NoneIsNull(t *testing.T) {
	h, workoutUC := newTestWorkoutHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/workouts/next", "", testUserID)

	workoutUC.EXPECT().GetNextWorkout(mock.Anything, testUserID).Return(nil, nil).Once()

	require.NoError(t, h.GetNextWorkout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `null`, string(decodeData[json.RawMessage](t, rec)))
}

func TestWorkoutHandler_ListPopular(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantStatus int
	}{
		{name: "default", query: "", wantLimit: 0, wantStatus: http.StatusOK},
		{name: "explicit", query: "?limit=5", wantLimit: 5, wantStatus: http.StatusOK},
		{name: "not a number", query: "?limit=abc", wantStatus: http.StatusBadRequest},
		{name: "zero", query: "?limit=0", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, workoutUC := newTestWorkoutHandler(t)
			if tt.wantStatus == http.StatusOK {
				workoutUC.EXPECT().ListPopular(mock.Anything, tt.wantLimit).Return([]*entity.Workout{}, nil).Once()
			}

			c, rec := newTestContext(http.MethodGet, "/api/workouts/popular"+tt.query, "", testUserID)

			require.NoError(t, h.ListPopular(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusBadRequest {
				assert.Equal(t, []string{"limit"}, detailFields(t, decodeErrorBody(t, rec)))
			}
		})
	}
}

func TestWorkoutHandler_GetWorkoutQRCode(t *testing.T) {
	h, workoutUC := newTestWorkoutHandler(t)
	workoutID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	c, rec := newTestContext(http.MethodGet, "/api/workouts/"+workoutID.String()+"/qr", "", testUserID)
	withID(c, workoutID.String())

	workoutUC.EXPECT().GetWorkoutQRCode(mock.Anything, testUserID, workoutID).Return(png, nil).Once()

	require.NoError(t, h.GetWorkoutQRCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}
