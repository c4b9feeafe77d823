package postgres

import (
	"context"

	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	"fitplan/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (repo *profileRepository) FindByUserID(ctx context.Context, userID string) (*entity.UserProfile, error) {
	var row model.UserProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profile")
	}

	return toProfileDomain(&row), nil
}

// Upsert writes every profile column, keyed by user_id.
func (repo *profileRepository) Upsert(ctx context.Context, profile *entity.UserProfile) error {
	row := fromProfileDomain(profile)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"height", "weight", "goal", "training_days", "updated_at"}),
		}).
		Create(row).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert profile")
	}

	return nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.UserProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	profile := &entity.UserProfile{
		UserID:       data.UserID,
		Height:       data.Height,
		Weight:       data.Weight,
		TrainingDays: data.TrainingDays,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.Goal != nil {
		goal := entity.Goal(*data.Goal)
		profile.Goal = &goal
	}

	return profile
}

func fromProfileDomain(data *entity.UserProfile) *model.UserProfileModel {
	if data == nil {
		return nil
	}

	row := &model.UserProfileModel{
		UserID:       data.UserID,
		Height:       data.Height,
		Weight:       data.Weight,
		TrainingDays: data.TrainingDays,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.Goal != nil {
		goal := string(*data.Goal)
		row.Goal = &goal
	}

	return row
}
