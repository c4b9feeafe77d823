package impl

import (
	"context"
	"log/slog"
	"time"

	"fitplan/config"
	"fitplan/internal/domain/entity"
	"fitplan/internal/domain/repository"
	"fitplan/internal/usecase"

	"github.com/pkg/errors"
)

// progressService implements the ProgressUsecase interface.
type progressService struct {
	txManager repository.TransactionManager
	cfg       *config.WorkoutsConfig
	logger    *slog.Logger
	now       func() time.Time
}

// NewProgressService is the constructor for progressService.
func NewProgressService(txManager repository.TransactionManager, cfg *config.Config, logger *slog.Logger) usecase.ProgressUsecase {
	return &progressService{
		txManager: txManager,
		cfg:       cfg.Workouts,
		logger:    logger,
		now:       time.Now,
	}
}

// GetWeeklyProgress weeks start on Sunday 00:00 UTC.
func (srv *progressService) GetWeeklyProgress(ctx context.Context, userID string) (*entity.WeeklyProgress, error) {
	now := srv.now().UTC()
	planned := srv.cfg.DefaultPlannedWorkouts

	var completed []*entity.Workout

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := repoFactory.NewProfileRepository().FindByUserID(ctx, userID)
		switch {
		case err == nil:
			if len(profile.TrainingDays) > 0 {
				planned = len(profile.TrainingDays)
			}
		case errors.Is(err, repository.ErrProfileNotFound):
		default:
			return errors.Wrap(err, "failed to find profile")
		}

		found, err := repoFactory.NewWorkoutRepository().ListCompletedSince(ctx, userID, entity.WeekStart(now))
		if err != nil {
			return errors.Wrap(err, "failed to list completed workouts")
		}
		completed = found

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to build weekly progress", slog.Any("error", err), slog.String("user_id", userID))

		return nil, errors.Wrap(err, "failed to get weekly progress")
	}

	return entity.BuildWeeklyProgress(now, completed, planned), nil
}
