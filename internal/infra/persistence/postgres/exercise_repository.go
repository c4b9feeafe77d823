package postgres

import (
	"context"

	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	"fitplan/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// exerciseRepository implements the repository.ExerciseRepository interface.
type exerciseRepository struct {
	db *gorm.DB
}

// NewExerciseRepository is the constructor for exerciseRepository.
func NewExerciseRepository(db *gorm.DB) repository.ExerciseRepository {
	return &exerciseRepository{db: db}
}

func (repo *exerciseRepository) List(ctx context.Context) ([]*entity.Exercise, error) {
	var rows []*model.ExerciseModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list exercises")
	}

	exercises := make([]*entity.Exercise, 0, len(rows))
	for _, row := range rows {
		exercises = append(exercises, toExerciseDomain(row))
	}

	return exercises, nil
}

func (repo *exerciseRepository) FindByID(ctx context.Context, id string) (*entity.Exercise, error) {
	var row model.ExerciseModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrExerciseNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find exercise by ID")
	}

	return toExerciseDomain(&row), nil
}

// --- Mapper Functions ---

func toExerciseDomain(data *model.ExerciseModel) *entity.Exercise {
	if data == nil {
		return nil
	}

	instructions := data.Instructions
	if instructions == nil {
		instructions = []string{}
	}

	return &entity.Exercise{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		MuscleGroup:  data.MuscleGroup,
		Equipment:    data.Equipment,
		Difficulty:   entity.Difficulty(data.Difficulty),
		ImageURL:     data.ImageURL,
		Instructions: instructions,
	}
}
