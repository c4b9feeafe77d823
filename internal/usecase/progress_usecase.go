package usecase

import (
	"context"

	"fitplan/internal/domain/entity"
)

// ProgressUsecase summarizes training activity.
type ProgressUsecase interface {
	// GetWeeklyProgress covers Sunday 00:00 UTC of the current week until now.
	GetWeeklyProgress(ctx context.Context, userID string) (*entity.WeeklyProgress, error)
}
