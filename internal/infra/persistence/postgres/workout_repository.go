package postgres

import (
	"context"
	"time"

	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	"fitplan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// workoutMutableColumns are written by Update. id, user_id and created_at never change.
var workoutMutableColumns = []string{
	"name", "description", "duration", "level", "image_url", "progress",
	"is_favorite", "is_completed", "completed_at", "updated_at",
}

// workoutRepository implements the repository.WorkoutRepository interface.
type workoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository is the constructor for workoutRepository.
func NewWorkoutRepository(db *gorm.DB) repository.WorkoutRepository {
	return &workoutRepository{db: db}
}

func (repo *workoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Workout, error) {
	var workoutM model.WorkoutModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&workoutM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWorkoutNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find workout by ID")
	}

	return toWorkoutDomain(&workoutM), nil
}

func (repo *workoutRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Workout, error) {
	return repo.list(ctx, "failed to list workouts", func(q *gorm.DB) *gorm.DB {
		return q.Where("user_id = ?", userID).Order("created_at DESC")
	})
}

func (repo *workoutRepository) ListFavorites(ctx context.Context, userID string) ([]*entity.Workout, error) {
	return repo.list(ctx, "failed to list favorite workouts", func(q *gorm.DB) *gorm.DB {
		return q.Where("user_id = ? AND is_favorite = ?", userID, true).Order("updated_at DESC")
	})
}

func (repo *workoutRepository) ListCompleted(ctx context.Context, userID string) ([]*entity.Workout, error) {
	return repo.list(ctx, "failed to list completed workouts", func(q *gorm.DB) *gorm.DB {
		return q.Where("user_id = ? AND is_completed = ?", userID, true).Order("completed_at DESC NULLS LAST")
	})
}

func (repo *workoutRepository) ListCompletedSince(ctx context.Context, userID string, since time.Time) ([]*entity.Workout, error) {
	return repo.list(ctx, "failed to list workouts completed since", func(q *gorm.DB) *gorm.DB {
		return q.Where("user_id = ? AND is_completed = ? AND completed_at >= ?", userID, true, since).
			Order("completed_at ASC")
	})
}

func (repo *workoutRepository) FindNext(ctx context.Context, userID string) (*entity.Workout, error) {
	var workoutModels []*model.WorkoutModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_completed = ?", userID, false).
		Order("updated_at DESC").
		Limit(1).
		Find(&workoutModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find next workout")
	}

	if len(workoutModels) == 0 {
		return nil, nil
	}

	return toWorkoutDomain(workoutModels[0]), nil
}

func (repo *workoutRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Workout, error) {
	return repo.list(ctx, "failed to list recent workouts", func(q *gorm.DB) *gorm.DB {
		return q.Order("created_at DESC").Limit(limit)
	})
}

func (repo *workoutRepository) Create(ctx context.Context, workout *entity.Workout) error {
	workoutM := fromWorkoutDomain(workout)

	if err := repo.db.WithContext(ctx).Create(workoutM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails(pgConstraintName(err))
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create workout")
	}

	workout.CreatedAt = workoutM.CreatedAt
	workout.UpdatedAt = workoutM.UpdatedAt

	return nil
}

func (repo *workoutRepository) Update(ctx context.Context, workout *entity.Workout) error {
	workoutM := fromWorkoutDomain(workout)

	result := repo.db.WithContext(ctx).
		Model(&model.WorkoutModel{}).
		Where("id = ?", workout.ID).
		Select(workoutMutableColumns).
		Updates(workoutM)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails(pgConstraintName(result.Error))
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update workout")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWorkoutNotFound
	}

	workout.UpdatedAt = workoutM.UpdatedAt

	return nil
}

func (repo *workoutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.WorkoutModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete workout")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWorkoutNotFound
	}

	return nil
}

func (repo *workoutRepository) list(ctx context.Context, failure string, scope func(*gorm.DB) *gorm.DB) ([]*entity.Workout, error) {
	var workoutModels []*model.WorkoutModel

	if err := scope(repo.db.WithContext(ctx)).Find(&workoutModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, failure)
	}

	workouts := make([]*entity.Workout, 0, len(workoutModels))
	for _, workoutM := range workoutModels {
		workouts = append(workouts, toWorkoutDomain(workoutM))
	}

	return workouts, nil
}

// --- Mapper Functions ---

func toWorkoutDomain(data *model.WorkoutModel) *entity.Workout {
	if data == nil {
		return nil
	}

	return &entity.Workout{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		Description: data.Description,
		Duration:    data.Duration,
		Level:       entity.WorkoutLevel(data.Level),
		ImageURL:    data.ImageURL,
		Progress:    data.Progress,
		IsFavorite:  data.IsFavorite,
		IsCompleted: data.IsCompleted,
		CompletedAt: data.CompletedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromWorkoutDomain(data *entity.Workout) *model.WorkoutModel {
	if data == nil {
		return nil
	}

	return &model.WorkoutModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		Description: data.Description,
		Duration:    data.Duration,
		Level:       data.Level.String(),
		ImageURL:    data.ImageURL,
		Progress:    data.Progress,
		IsFavorite:  data.IsFavorite,
		IsCompleted: data.IsCompleted,
		CompletedAt: data.CompletedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
