package handler

import (
	"net/http"

	"fitplan/internal/delivery/api/middleware"
	"fitplan/internal/delivery/api/response"
	"fitplan/internal/domain/entity"
	"fitplan/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the caller's profile and training summary.
type ProfileHandler struct {
	profileUC  usecase.ProfileUsecase
	progressUC usecase.ProgressUsecase
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(profileUC usecase.ProfileUsecase, progressUC usecase.ProgressUsecase) *ProfileHandler {
	return &ProfileHandler{
		profileUC:  profileUC,
		progressUC: progressUC,
	}
}

// UpdateProfileRequest is a partial profile update. Absent fields keep their stored value.
type UpdateProfileRequest struct {
	Height       *int      `json:"height" validate:"omitempty,min=50,max=300"`
	Weight       *int      `json:"weight" validate:"omitempty,min=20,max=500"`
	Goal         *string   `json:"goal" validate:"omitempty,oneof=hipertrofia perda-peso condicao-fisica resistencia forca"`
	TrainingDays *[]string `json:"trainingDays" validate:"omitempty,unique,dive,oneof=0 1 2 3 4 5 6"`
}

// GetProfile returns the stored profile, or an empty object before the first save.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if profile == nil {
		return response.Success(c, http.StatusOK, map[string]any{})
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateProfile upserts the caller's profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	patch := &entity.ProfilePatch{
		Height:       req.Height,
		Weight:       req.Weight,
		TrainingDays: req.TrainingDays,
	}
	if req.Goal != nil {
		goal := entity.Goal(*req.Goal)
		patch.Goal = &goal
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// GetWeeklyProgress handles GET /api/progress/weekly
func (h *ProfileHandler) GetWeeklyProgress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	progress, err := h.progressUC.GetWeeklyProgress(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, progress)
}
