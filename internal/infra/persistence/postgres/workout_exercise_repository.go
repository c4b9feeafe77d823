package postgres

import (
	"context"

	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	"fitplan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// workoutExerciseRepository implements the repository.WorkoutExerciseRepository interface.
type workoutExerciseRepository struct {
	db *gorm.DB
}

// NewWorkoutExerciseRepository is the constructor for workoutExerciseRepository.
func NewWorkoutExerciseRepository(db *gorm.DB) repository.WorkoutExerciseRepository {
	return &workoutExerciseRepository{db: db}
}

func (repo *workoutExerciseRepository) ListByWorkout(ctx context.Context, workoutID uuid.UUID) ([]*entity.WorkoutExercise, error) {
	var rows []*model.WorkoutExerciseModel

	if err := repo.db.WithContext(ctx).
		Where("workout_id = ?", workoutID).
		Order(`"order" ASC`).
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list workout exercises")
	}

	exercises := make([]*entity.WorkoutExercise, 0, len(rows))
	for _, row := range rows {
		exercises = append(exercises, toWorkoutExerciseDomain(row))
	}

	return exercises, nil
}

// CreateBatch inserts all rows in a single statement. An empty batch is a no-op.
func (repo *workoutExerciseRepository) CreateBatch(ctx context.Context, exercises []*entity.WorkoutExercise) error {
	if len(exercises) == 0 {
		return nil
	}

	rows := make([]*model.WorkoutExerciseModel, 0, len(exercises))
	for _, exercise := range exercises {
		rows = append(rows, fromWorkoutExerciseDomain(exercise))
	}

	if err := repo.db.WithContext(ctx).Create(&rows).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return repository.ErrDuplicateWorkoutExercise
		case isForeignKeyConstraintViolation(err):
			return repository.ErrWorkoutReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create workout exercises")
	}

	for i, row := range rows {
		exercises[i].CreatedAt = row.CreatedAt
		exercises[i].UpdatedAt = row.UpdatedAt
	}

	return nil
}

func (repo *workoutExerciseRepository) DeleteByWorkout(ctx context.Context, workoutID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("workout_id = ?", workoutID).
		Delete(&model.WorkoutExerciseModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete workout exercises")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toWorkoutExerciseDomain(data *model.WorkoutExerciseModel) *entity.WorkoutExercise {
	if data == nil {
		return nil
	}

	return &entity.WorkoutExercise{
		ID:          data.ID,
		WorkoutID:   data.WorkoutID,
		ExerciseID:  data.ExerciseID,
		Name:        data.Name,
		Sets:        data.Sets,
		Reps:        data.Reps,
		RestTime:    data.RestTime,
		Notes:       data.Notes,
		Order:       data.Position,
		IsCompleted: data.IsCompleted,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromWorkoutExerciseDomain(data *entity.WorkoutExercise) *model.WorkoutExerciseModel {
	if data == nil {
		return nil
	}

	return &model.WorkoutExerciseModel{
		ID:          data.ID,
		WorkoutID:   data.WorkoutID,
		ExerciseID:  data.ExerciseID,
		Name:        data.Name,
		Sets:        data.Sets,
		Reps:        data.Reps,
		RestTime:    data.RestTime,
		Notes:       data.Notes,
		Position:    data.Order,
		IsCompleted: data.IsCompleted,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
