package impl

import (
	"context"
	"testing"
	"time"

	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	mockRepo "fitplan/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   *profileService
	txManager *mockRepo.MockTransactionManager
	now       time.Time
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	svc := NewProfileService(txManager, newDiscardLogger()).(*profileService)
	svc.now = fixedClock(now)

	return profileServiceFixtures{
		service:   svc,
		txManager: txManager,
		now:       now,
	}
}

func intPtr(v int) *int { return &v }

func TestProfileService_GetProfile_NotFoundIsNil(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().NewProfileRepository().Return(profileRepo)
		profileRepo.EXPECT().FindByUserID(ctx, "user-1").Return(nil, repository.ErrProfileNotFound)
	})

	profile, err := fx.service.GetProfile(ctx, "user-1")

	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestProfileService_GetProfile_StoreError(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().NewProfileRepository().Return(profileRepo)
		profileRepo.EXPECT().FindByUserID(ctx, "user-1").Return(nil, errors.New("db error"))
	})

	profile, err := fx.service.GetProfile(ctx, "user-1")

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.Contains(t, err.Error(), "failed to get profile")
}

func TestProfileService_UpdateProfile_CreatesOnFirstWrite(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	days := []string{"1", "3", "5"}
	goal := entity.GoalStrength

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().NewProfileRepository().Return(profileRepo)
		profileRepo.EXPECT().FindByUserID(ctx, "user-1").Return(nil, repository.ErrProfileNotFound)
		profileRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.UserProfile")).Return(nil)
	})

	profile, err := fx.service.UpdateProfile(ctx, "user-1", &entity.ProfilePatch{
		Height:       intPtr(180),
		Goal:         &goal,
		TrainingDays: &days,
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", profile.UserID)
	assert.Equal(t, 180, *profile.Height)
	assert.Nil(t, profile.Weight)
	assert.Equal(t, days, profile.TrainingDays)
	assert.Equal(t, fx.now, profile.CreatedAt)
	assert.Equal(t, fx.now, profile.UpdatedAt)
}

func TestProfileService_UpdateProfile_KeepsAbsentFields(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	created := fx.now.Add(-48 * time.Hour)
	goal := entity.GoalEndurance
	existing := &entity.UserProfile{
		UserID:       "user-1",
		Height:       intPtr(170),
		Goal:         &goal,
		TrainingDays: []string{"0"},
		CreatedAt:    created,
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().NewProfileRepository().Return(profileRepo)
		profileRepo.EXPECT().FindByUserID(ctx, "user-1").Return(existing, nil)
		profileRepo.EXPECT().Upsert(ctx, existing).Return(nil)
	})

	profile, err := fx.service.UpdateProfile(ctx, "user-1", &entity.ProfilePatch{Weight: intPtr(72)})

	require.NoError(t, err)
	assert.Equal(t, 170, *profile.Height)
	assert.Equal(t, 72, *profile.Weight)
	assert.Equal(t, entity.GoalEndurance, *profile.Goal)
	assert.Equal(t, []string{"0"}, profile.TrainingDays)
	assert.Equal(t, created, profile.CreatedAt)
}

func TestProfileService_UpdateProfile_Validation(t *testing.T) {
	badGoal := entity.Goal("bulk")

	tests := []struct {
		name      string
		patch     *entity.ProfilePatch
		wantField string
	}{
		{name: "height too small", patch: &entity.ProfilePatch{Height: intPtr(10)}, wantField: "height"},
		{name: "weight too large", patch: &entity.ProfilePatch{Weight: intPtr(900)}, wantField: "weight"},
		{name: "unknown goal", patch: &entity.ProfilePatch{Goal: &badGoal}, wantField: "goal"},
		{name: "day out of range", patch: &entity.ProfilePatch{TrainingDays: &[]string{"7"}}, wantField: "trainingDays"},
		{name: "repeated day", patch: &entity.ProfilePatch{TrainingDays: &[]string{"2", "2"}}, wantField: "trainingDays"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)

			profile, err := fx.service.UpdateProfile(context.Background(), "user-1", tt.patch)

			assert.Nil(t, profile)

			var verr *domainerrors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Fields()[0].Field)
		})
	}
}

func TestProfileService_UpdateProfile_MissingUser(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().NewProfileRepository().Return(profileRepo)
		profileRepo.EXPECT().FindByUserID(ctx, "ghost").Return(nil, repository.ErrProfileNotFound)
		profileRepo.EXPECT().Upsert(ctx, mock.Anything).Return(repository.ErrUserNotFound)
	})

	_, err := fx.service.UpdateProfile(ctx, "ghost", &entity.ProfilePatch{Height: intPtr(175)})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
