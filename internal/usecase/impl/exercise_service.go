package impl

import (
	"context"
	"log/slog"

	deliverycontext "fitplan/internal/delivery/context"
	"fitplan/internal/domain/catalog"
	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	"fitplan/internal/domain/service"
	"fitplan/internal/infra/metrics"
	"fitplan/internal/usecase"

	"github.com/pkg/errors"
)

// exerciseService implements the ExerciseUsecase interface.
type exerciseService struct {
	txManager repository.TransactionManager
	cache     service.CatalogCache
	logger    *slog.Logger
}

// NewExerciseService is the constructor for exerciseService.
func NewExerciseService(
	txManager repository.TransactionManager,
	cache service.CatalogCache,
	logger *slog.Logger,
) usecase.ExerciseUsecase {
	return &exerciseService{
		txManager: txManager,
		cache:     cache,
		logger:    logger,
	}
}

func (srv *exerciseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListExercises returns the filtered catalog.
func (srv *exerciseService) ListExercises(ctx context.Context, filter entity.ExerciseFilter) ([]*entity.Exercise, error) {
	all, err := srv.loadCatalog(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list exercises")
	}

	return entity.FilterExercises(all, filter), nil
}

// loadCatalog prefers the cache, then the store, then the bundled seed.
// Cache failures only cost a store round trip.
func (srv *exerciseService) loadCatalog(ctx context.Context) ([]*entity.Exercise, error) {
	cached, ok, err := srv.cache.GetExercises(ctx)
	if err != nil {
		srv.log(ctx).Warn("Catalog cache read failed", slog.Any("error", err))
	}
	if ok && len(cached) > 0 {
		metrics.RecordCatalogRead(metrics.CatalogSourceCache)

		return cached, nil
	}

	var stored []*entity.Exercise
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		exercises, err := repoFactory.NewExerciseRepository().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list stored exercises")
		}
		stored = exercises

		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(stored) == 0 {
		metrics.RecordCatalogRead(metrics.CatalogSourceSeed)

		return catalog.Seed(), nil
	}

	if err := srv.cache.SetExercises(ctx, stored); err != nil {
		srv.log(ctx).Warn("Catalog cache write failed", slog.Any("error", err))
	}
	metrics.RecordCatalogRead(metrics.CatalogSourceStore)

	return stored, nil
}

// GetExercise looks in the store first, then in the seed.
func (srv *exerciseService) GetExercise(ctx context.Context, id string) (*entity.Exercise, error) {
	var exercise *entity.Exercise

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := lookupExercise(ctx, repoFactory.NewExerciseRepository(), id)
		if err != nil {
			return err
		}
		exercise = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get exercise")
	}

	return exercise, nil
}

func lookupExercise(ctx context.Context, repo repository.ExerciseRepository, id string) (*entity.Exercise, error) {
	exercise, err := repo.FindByID(ctx, id)
	if err == nil {
		return exercise, nil
	}

	if !errors.Is(err, repository.ErrExerciseNotFound) {
		return nil, errors.Wrap(err, "failed to find exercise")
	}

	if seed, ok := catalog.FindSeed(id); ok {
		return seed, nil
	}

	return nil, errors.Wrapf(domainerrors.ErrExerciseNotFound, "exercise %s not found", id)
}
