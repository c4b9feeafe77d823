package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"fitplan/internal/domain/entity"
	mockUsecase "fitplan/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileHandlerFixture struct {
	handler    *ProfileHandler
	profileUC  *mockUsecase.MockProfileUsecase
	progressUC *mockUsecase.MockProgressUsecase
}

func newTestProfileHandler(t *testing.T) *profileHandlerFixture {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	progressUC := mockUsecase.NewMockProgressUsecase(t)

	return &profileHandlerFixture{
		handler:    NewProfileHandler(profileUC, progressUC),
		profileUC:  profileUC,
		progressUC: progressUC,
	}
}

func TestProfileHandler_GetProfile_BeforeFirstSaveIsEmptyObject(t *testing.T) {
	fx := newTestProfileHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/profile", "", testUserID)

	fx.profileUC.EXPECT().GetProfile(mock.Anything, testUserID).Return(nil, nil).Once()

	require.NoError(t, fx.handler.GetProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, string(decodeData[json.RawMessage](t, rec)))
}

func TestProfileHandler_UpdateProfile_PassesOnlyPresentFields(t *testing.T) {
	fx := newTestProfileHandler(t)
	c, rec := newTestContext(http.MethodPatch, "/api/profile", `{"weight":80,"goal":"forca"}`, testUserID)

	weight := 80
	goal := entity.GoalStrength
	fx.profileUC.EXPECT().
		UpdateProfile(mock.Anything, testUserID, mock.MatchedBy(func(p *entity.ProfilePatch) bool {
			return p.Height == nil && p.TrainingDays == nil &&
				p.Weight != nil && *p.Weight == 80 &&
				p.Goal != nil && *p.Goal == entity.GoalStrength
		})).
		Return(&entity.UserProfile{UserID: testUserID, Weight: &weight, Goal: &goal, TrainingDays: []string{}}, nil).
		Once()

	require.NoError(t, fx.handler.UpdateProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeData[map[string]any](t, rec)
	assert.Equal(t, "forca", data["goal"])
}

func TestProfileHandler_UpdateProfile_Validation(t *testing.T) {
	fx := newTestProfileHandler(t)
	c, rec := newTestContext(http.MethodPatch, "/api/profile",
		`{"height":20,"goal":"bulk","trainingDays":["1","1","9"]}`, testUserID)

	require.NoError(t, fx.handler.UpdateProfile(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	fields := detailFields(t, decodeErrorBody(t, rec))
	assert.Contains(t, fields, "height")
	assert.Contains(t, fields, "goal")
	assert.Contains(t, fields, "trainingDays")
}

func TestProfileHandler_GetWeeklyProgress(t *testing.T) {
	fx := newTestProfileHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/progress/weekly", "", testUserID)

	weekStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	fx.progressUC.EXPECT().GetWeeklyProgress(mock.Anything, testUserID).
		Return(&entity.WeeklyProgress{WeekStart: weekStart, TotalMinutes: 45, ActiveDays: 1, CompletedWorkouts: 1, PlannedWorkouts: 3}, nil).
		Once()

	require.NoError(t, fx.handler.GetWeeklyProgress(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeData[map[string]any](t, rec)
	assert.EqualValues(t, 45, data["totalMinutes"])
	assert.EqualValues(t, 3, data["plannedWorkouts"])
}
