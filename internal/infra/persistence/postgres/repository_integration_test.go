//go:build integration

package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pg, err := postgrescontainer.RunContainer(ctx,
		postgrescontainer.WithDatabase("fitplan"),
		postgrescontainer.WithUsername("fitplan"),
		postgrescontainer.WithPassword("fitplan"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	var db *gorm.DB
	require.Eventually(t, func() bool {
		db, err = gorm.Open(gormpostgres.Open(connStr), &gorm.Config{SkipDefaultTransaction: true})
		if err != nil {
			return false
		}
		sqlDB, err := db.DB()

		return err == nil && sqlDB.PingContext(ctx) == nil
	}, 30*time.Second, 500*time.Millisecond)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, Migrate(ctx, sqlDB, logger))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, id string) {
	t.Helper()

	email := id + "@example.com"
	require.NoError(t, NewUserRepository(db).Upsert(context.Background(), &entity.User{ID: id, Email: &email}))
}

func TestIntegration_WorkoutAggregateLifecycle(t *testing.T) {
	db := setupIntegrationDB(t)
	ctx := context.Background()
	txManager := NewTransactionManager(db)

	seedUser(t, db, "user-1")

	workout := &entity.Workout{
		ID:       uuid.New(),
		UserID:   "user-1",
		Name:     "Treino A",
		Duration: 45,
		Level:    entity.LevelIntermediate,
	}

	err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewWorkoutRepository().Create(ctx, workout); err != nil {
			return err
		}

		return f.NewWorkoutExerciseRepository().CreateBatch(ctx, []*entity.WorkoutExercise{
			{ID: uuid.New(), WorkoutID: workout.ID, ExerciseID: "ex-1", Name: "Supino", Sets: 3, Reps: 12, RestTime: 60, Order: 0},
			{ID: uuid.New(), WorkoutID: workout.ID, ExerciseID: "ex-2", Name: "Remada", Sets: 4, Reps: 10, RestTime: 90, Order: 1},
		})
	})
	require.NoError(t, err)

	rows, err := NewWorkoutExerciseRepository(db).ListByWorkout(ctx, workout.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Supino", rows[0].Name)
	assert.Equal(t, 1, rows[1].Order)

	// A failing replacement must leave the previous rows intact.
	err = txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.NewWorkoutExerciseRepository().DeleteByWorkout(ctx, workout.ID); err != nil {
			return err
		}

		return f.NewWorkoutExerciseRepository().CreateBatch(ctx, []*entity.WorkoutExercise{
			{ID: uuid.New(), WorkoutID: workout.ID, ExerciseID: "ex-3", Name: "Agachamento", Order: 0, Sets: 3, Reps: 12, RestTime: 60},
			{ID: uuid.New(), WorkoutID: workout.ID, ExerciseID: "ex-4", Name: "Leg press", Order: 0, Sets: 3, Reps: 12, RestTime: 60},
		})
	})
	require.ErrorIs(t, err, repository.ErrDuplicateWorkoutExercise)

	rows, err = NewWorkoutExerciseRepository(db).ListByWorkout(ctx, workout.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "ex-1", rows[0].ExerciseID)

	now := time.Now().UTC()
	workout.IsCompleted = true
	workout.CompletedAt = &now
	workout.Progress = entity.MaxWorkoutProgress
	require.NoError(t, NewWorkoutRepository(db).Update(ctx, workout))

	completed, err := NewWorkoutRepository(db).ListCompletedSince(ctx, "user-1", now.Add(-time.Minute))
	require.NoError(t, err)
	require.Len(t, completed, 1)

	next, err := NewWorkoutRepository(db).FindNext(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, next)

	err = txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.NewWorkoutExerciseRepository().DeleteByWorkout(ctx, workout.ID); err != nil {
			return err
		}

		return f.NewWorkoutRepository().Delete(ctx, workout.ID)
	})
	require.NoError(t, err)

	_, err = NewWorkoutRepository(db).FindByID(ctx, workout.ID)
	assert.True(t, errors.Is(err, repository.ErrWorkoutNotFound))
}

func TestIntegration_WorkoutCheckConstraint(t *testing.T) {
	db := setupIntegrationDB(t)
	ctx := context.Background()
	seedUser(t, db, "user-2")

	err := NewWorkoutRepository(db).Create(ctx, &entity.Workout{
		ID:       uuid.New(),
		UserID:   "user-2",
		Name:     "Broken",
		Duration: 30,
		Level:    entity.LevelBeginner,
		Progress: 150,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestIntegration_ProfileUpsert(t *testing.T) {
	db := setupIntegrationDB(t)
	ctx := context.Background()
	seedUser(t, db, "user-3")
	repo := NewProfileRepository(db)

	_, err := repo.FindByUserID(ctx, "user-3")
	require.ErrorIs(t, err, repository.ErrProfileNotFound)

	height := 180
	goal := entity.GoalStrength
	require.NoError(t, repo.Upsert(ctx, &entity.UserProfile{
		UserID: "user-3", Height: &height, Goal: &goal, TrainingDays: []string{"1", "3", "5"},
	}))

	weight := 80
	require.NoError(t, repo.Upsert(ctx, &entity.UserProfile{
		UserID: "user-3", Height: &height, Weight: &weight, Goal: &goal, TrainingDays: []string{"2"},
	}))

	stored, err := repo.FindByUserID(ctx, "user-3")
	require.NoError(t, err)
	require.NotNil(t, stored.Weight)
	assert.Equal(t, 80, *stored.Weight)
	assert.Equal(t, []string{"2"}, stored.TrainingDays)
	assert.Equal(t, entity.GoalStrength, *stored.Goal)
}

func TestIntegration_UserUpsertKeepsCreatedAt(t *testing.T) {
	db := setupIntegrationDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	email := "ana@example.com"
	first := &entity.User{ID: "sub-1", Email: &email}
	require.NoError(t, repo.Upsert(ctx, first))

	name := "Ana"
	second := &entity.User{ID: "sub-1", Email: &email, FirstName: &name}
	require.NoError(t, repo.Upsert(ctx, second))

	assert.Equal(t, first.CreatedAt.Unix(), second.CreatedAt.Unix())
	require.NotNil(t, second.FirstName)
	assert.Equal(t, "Ana", *second.FirstName)

	other := &entity.User{ID: "sub-2", Email: &email}
	assert.ErrorIs(t, repo.Upsert(ctx, other), repository.ErrEmailTaken)
}
