package impl

import (
	"context"
	"testing"

	"fitplan/internal/domain/catalog"
	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	mockRepo "fitplan/internal/mocks/repository"
	mockSvc "fitplan/internal/mocks/service"
	"fitplan/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseServiceFixtures holds all test dependencies for exercise service tests.
type exerciseServiceFixtures struct {
	service   usecase.ExerciseUsecase
	txManager *mockRepo.MockTransactionManager
	cache     *mockSvc.MockCatalogCache
}

func createTestExerciseService(t *testing.T) exerciseServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cache := mockSvc.NewMockCatalogCache(t)

	return exerciseServiceFixtures{
		service:   NewExerciseService(txManager, cache, newDiscardLogger()),
		txManager: txManager,
		cache:     cache,
	}
}

func storedExercises() []*entity.Exercise {
	return []*entity.Exercise{
		{ID: "bench", Name: "Bench Press", MuscleGroup: "Peito", Instructions: []string{}},
		{ID: "squat", Name: "Squat", MuscleGroup: "Pernas", Instructions: []string{}},
	}
}

func TestExerciseService_ListExercises_CacheHit(t *testing.T) {
	fx := createTestExerciseService(t)

	ctx := context.Background()
	fx.cache.EXPECT().GetExercises(ctx).Return(storedExercises(), true, nil)

	exercises, err := fx.service.ListExercises(ctx, entity.ExerciseFilter{MuscleGroup: "pernas"})

	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, "squat", exercises[0].ID)
}

func TestExerciseService_ListExercises_StoreFillsCache(t *testing.T) {
	fx := createTestExerciseService(t)

	ctx := context.Background()
	stored := storedExercises()

	fx.cache.EXPECT().GetExercises(ctx).Return(nil, false, errors.New("redis down"))
	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		exerciseRepo := mockRepo.NewMockExerciseRepository(t)
		factory.EXPECT().NewExerciseRepository().Return(exerciseRepo)
		exerciseRepo.EXPECT().List(ctx).Return(stored, nil)
	})
	fx.cache.EXPECT().SetExercises(ctx, stored).Return(errors.New("redis down"))

	exercises, err := fx.service.ListExercises(ctx, entity.ExerciseFilter{})

	require.NoError(t, err)
	assert.Equal(t, stored, exercises)
}

func TestExerciseService_ListExercises_EmptyStoreServesSeed(t *testing.T) {
	fx := createTestExerciseService(t)

	ctx := context.Background()

	fx.cache.EXPECT().GetExercises(ctx).Return(nil, false, nil)
	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		exerciseRepo := mockRepo.NewMockExerciseRepository(t)
		factory.EXPECT().NewExerciseRepository().Return(exerciseRepo)
		exerciseRepo.EXPECT().List(ctx).Return([]*entity.Exercise{}, nil)
	})

	exercises, err := fx.service.ListExercises(ctx, entity.ExerciseFilter{})

	require.NoError(t, err)
	assert.Len(t, exercises, catalog.SeedSize())
	assert.Equal(t, catalog.Seed(), exercises)
}

func TestExerciseService_ListExercises_StoreError(t *testing.T) {
	fx := createTestExerciseService(t)

	ctx := context.Background()

	fx.cache.EXPECT().GetExercises(ctx).Return(nil, false, nil)
	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		exerciseRepo := mockRepo.NewMockExerciseRepository(t)
		factory.EXPECT().NewExerciseRepository().Return(exerciseRepo)
		exerciseRepo.EXPECT().List(ctx).Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("boom"), "list"))
	})

	exercises, err := fx.service.ListExercises(ctx, entity.ExerciseFilter{})

	require.Error(t, err)
	assert.Nil(t, exercises)
	assert.Contains(t, err.Error(), "failed to list exercises")
}

func TestExerciseService_GetExercise(t *testing.T) {
	seedID := catalog.SeedID("Agachamento Livre")

	tests := []struct {
		name     string
		id       string
		found    *entity.Exercise
		repoErr  error
		wantName string
		wantErr  error
	}{
		{name: "stored", id: "bench", found: storedExercises()[0], wantName: "Bench Press"},
		{name: "seed fallback", id: seedID, repoErr: repository.ErrExerciseNotFound, wantName: "Agachamento Livre"},
		{name: "unknown", id: "nope", repoErr: repository.ErrExerciseNotFound, wantErr: domainerrors.ErrExerciseNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestExerciseService(t)
			ctx := context.Background()

			expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
				exerciseRepo := mockRepo.NewMockExerciseRepository(t)
				factory.EXPECT().NewExerciseRepository().Return(exerciseRepo)
				exerciseRepo.EXPECT().FindByID(ctx, tt.id).Return(tt.found, tt.repoErr)
			})

			exercise, err := fx.service.GetExercise(ctx, tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, exercise.Name)
		})
	}
}
