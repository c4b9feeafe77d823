package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fitplan/config"
	"fitplan/internal/domain/repository"
	mockRepo "fitplan/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Workouts: &config.WorkoutsConfig{
			PopularDefaultLimit:    3,
			PopularMaxLimit:        50,
			DefaultPlannedWorkouts: 5,
		},
	}
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// expectExecute runs the transaction body against a fresh factory prepared by setup.
// The mocked Execute returns whatever the body returns.
func expectExecute(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	ctx context.Context,
	setup func(factory *mockRepo.MockRepositoryFactory),
) {
	t.Helper()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}
