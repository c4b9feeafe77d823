package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fitplan/internal/delivery/context"
	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	"fitplan/internal/usecase"

	"github.com/pkg/errors"
)

// Accepted body measurement ranges.
const (
	minHeightCM = 50
	maxHeightCM = 300
	minWeightKG = 20
	maxWeightKG = 500
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// NewProfileService is the constructor for profileService.
func NewProfileService(txManager repository.TransactionManager, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
		now:       time.Now,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *profileService) GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	var profile *entity.UserProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewProfileRepository().FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return nil
			}

			return err
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// UpdateProfile is an upsert. The first write creates the row.
func (srv *profileService) UpdateProfile(ctx context.Context, userID string, patch *entity.ProfilePatch) (*entity.UserProfile, error) {
	if err := validateProfilePatch(patch); err != nil {
		return nil, err
	}

	var profile *entity.UserProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		existing, err := profileRepo.FindByUserID(ctx, userID)
		switch {
		case err == nil:
			profile = existing
		case errors.Is(err, repository.ErrProfileNotFound):
			profile = &entity.UserProfile{UserID: userID, TrainingDays: []string{}}
		default:
			return errors.Wrap(err, "failed to find profile")
		}

		patch.Apply(profile, srv.now())

		if err := profileRepo.Upsert(ctx, profile); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "profile owner does not exist")
			}

			return errors.Wrap(err, "failed to save profile")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("error", err), slog.String("user_id", userID))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return profile, nil
}

func validateProfilePatch(patch *entity.ProfilePatch) error {
	verr := domainerrors.NewValidationError()

	if patch.Height != nil && (*patch.Height < minHeightCM || *patch.Height > maxHeightCM) {
		verr.Add("height", "range", "height must be between 50 and 300 cm")
	}

	if patch.Weight != nil && (*patch.Weight < minWeightKG || *patch.Weight > maxWeightKG) {
		verr.Add("weight", "range", "weight must be between 20 and 500 kg")
	}

	if patch.Goal != nil && !patch.Goal.IsValid() {
		verr.Add("goal", "oneof", "goal must be one of hipertrofia perda-peso condicao-fisica resistencia forca")
	}

	if patch.TrainingDays != nil {
		seen := make(map[string]struct{}, len(*patch.TrainingDays))
		for _, day := range *patch.TrainingDays {
			if len(day) != 1 || day[0] < '0' || day[0] > '6' {
				verr.Add("trainingDays", "oneof", "training days must be weekday indices 0 to 6")

				break
			}

			if _, dup := seen[day]; dup {
				verr.Add("trainingDays", "unique", "training days must not repeat")

				break
			}
			seen[day] = struct{}{}
		}
	}

	return verr.OrNil()
}
