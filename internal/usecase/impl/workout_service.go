package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fitplan/config"
	deliverycontext "fitplan/internal/delivery/context"
	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	"fitplan/internal/domain/service"
	"fitplan/internal/infra/metrics"
	"fitplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Aggregate write operations, used as metric labels.
const (
	opCreateWorkout = "create"
	opUpdateWorkout = "update"
	opDeleteWorkout = "delete"
)

// WorkoutServiceParams holds dependencies for workoutService, injected by Fx.
type WorkoutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	QRCode    service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// workoutService implements the WorkoutUsecase interface.
type workoutService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	qrCode    service.QRCodeService
	cfg       *config.WorkoutsConfig
	logger    *slog.Logger
	now       func() time.Time
	newID     func() uuid.UUID
}

// NewWorkoutService is the constructor for workoutService.
func NewWorkoutService(params WorkoutServiceParams) usecase.WorkoutUsecase {
	return &workoutService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		qrCode:    params.QRCode,
		cfg:       params.Config.Workouts,
		logger:    params.Logger,
		now:       time.Now,
		newID:     uuid.New,
	}
}

func (srv *workoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *workoutService) ListWorkouts(ctx context.Context, userID string) ([]*entity.Workout, error) {
	return srv.listWith(ctx, "failed to list workouts", func(repo repository.WorkoutRepository) ([]*entity.Workout, error) {
		return repo.ListByUser(ctx, userID)
	})
}

func (srv *workoutService) ListFavorites(ctx context.Context, userID string) ([]*entity.Workout, error) {
	return srv.listWith(ctx, "failed to list favorite workouts", func(repo repository.WorkoutRepository) ([]*entity.Workout, error) {
		return repo.ListFavorites(ctx, userID)
	})
}

func (srv *workoutService) ListCompleted(ctx context.Context, userID string) ([]*entity.Workout, error) {
	return srv.listWith(ctx, "failed to list completed workouts", func(repo repository.WorkoutRepository) ([]*entity.Workout, error) {
		return repo.ListCompleted(ctx, userID)
	})
}

func (srv *workoutService) ListPopular(ctx context.Context, limit int) ([]*entity.Workout, error) {
	limit = srv.clampPopularLimit(limit)

	return srv.listWith(ctx, "failed to list popular workouts", func(repo repository.WorkoutRepository) ([]*entity.Workout, error) {
		return repo.ListRecent(ctx, limit)
	})
}

func (srv *workoutService) clampPopularLimit(limit int) int {
	switch {
	case limit <= 0:
		return srv.cfg.PopularDefaultLimit
	case limit > srv.cfg.PopularMaxLimit:
		return srv.cfg.PopularMaxLimit
	default:
		return limit
	}
}

func (srv *workoutService) listWith(
	ctx context.Context,
	failure string,
	query func(repo repository.WorkoutRepository) ([]*entity.Workout, error),
) ([]*entity.Workout, error) {
	var workouts []*entity.Workout

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := query(repoFactory.NewWorkoutRepository())
		if err != nil {
			return err
		}
		workouts = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, failure)
	}

	if workouts == nil {
		workouts = []*entity.Workout{}
	}

	return workouts, nil
}

func (srv *workoutService) GetNextWorkout(ctx context.Context, userID string) (*entity.Workout, error) {
	var next *entity.Workout

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewWorkoutRepository().FindNext(ctx, userID)
		if err != nil {
			return err
		}
		next = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find next workout")
	}

	return next, nil
}

func (srv *workoutService) GetWorkout(ctx context.Context, userID string, workoutID uuid.UUID) (*entity.Workout, error) {
	var workout *entity.Workout

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := loadOwnedWorkout(ctx, repoFactory.NewWorkoutRepository(), userID, workoutID)
		if err != nil {
			return err
		}
		workout = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get workout")
	}

	return workout, nil
}

func (srv *workoutService) ListWorkoutExercises(ctx context.Context, userID string, workoutID uuid.UUID) ([]*entity.WorkoutExercise, error) {
	var rows []*entity.WorkoutExercise

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := loadOwnedWorkout(ctx, repoFactory.NewWorkoutRepository(), userID, workoutID); err != nil {
			return err
		}

		found, err := repoFactory.NewWorkoutExerciseRepository().ListByWorkout(ctx, workoutID)
		if err != nil {
			return errors.Wrap(err, "failed to list workout exercises")
		}
		rows = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get workout exercises")
	}

	if rows == nil {
		rows = []*entity.WorkoutExercise{}
	}

	return rows, nil
}

// CreateWorkout persists the workout and its exercise rows in one transaction.
func (srv *workoutService) CreateWorkout(ctx context.Context, userID string, input *usecase.CreateWorkoutInput) (*usecase.WorkoutAggregate, error) {
	verr := validateCreateWorkout(input)
	valid := checkAssignments(verr, input.Exercises)
	if verr.HasErrors() && !needsCatalogName(input.Exercises, valid) {
		return nil, verr
	}

	now := srv.now()
	workout := &entity.Workout{
		ID:        srv.newID(),
		UserID:    userID,
		Name:      strings.TrimSpace(input.Name),
		Duration:  entity.DefaultWorkoutDuration,
		Level:     entity.DefaultWorkoutLevel,
		CreatedAt: now,
	}

	initial := entity.WorkoutPatch{
		Description: input.Description,
		Duration:    input.Duration,
		Level:       input.Level,
		ImageURL:    input.ImageURL,
		Progress:    input.Progress,
		IsFavorite:  input.IsFavorite,
		IsCompleted: input.IsCompleted,
	}
	completed := initial.Apply(workout, now)

	var rows []*entity.WorkoutExercise

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		built, err := srv.buildExerciseRows(ctx, repoFactory.NewExerciseRepository(), workout.ID, input.Exercises, valid, now, verr)
		if err != nil {
			return err
		}
		if err := verr.OrNil(); err != nil {
			return err
		}
		rows = built

		if err := repoFactory.NewWorkoutRepository().Create(ctx, workout); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "workout owner is not registered")
			}

			return errors.Wrap(err, "failed to create workout")
		}

		return insertExerciseRows(ctx, repoFactory.NewWorkoutExerciseRepository(), rows)
	})
	metrics.RecordWorkoutWrite(opCreateWorkout, err, len(rows))
	if err != nil {
		srv.log(ctx).Error("Failed to create workout", slog.Any("error", err), slog.String("user_id", userID))

		return nil, errors.Wrap(err, "failed to create workout")
	}

	srv.log(ctx).Info("Workout created",
		slog.String("workout_id", workout.ID.String()),
		slog.Int("exercises", len(rows)),
	)

	if completed {
		srv.publishCompleted(ctx, workout)
	}

	return &usecase.WorkoutAggregate{Workout: workout, Exercises: rows}, nil
}

// UpdateWorkout applies the patch and, when requested, replaces the whole exercise list.
// Ownership is checked before anything is written.
func (srv *workoutService) UpdateWorkout(
	ctx context.Context,
	userID string,
	workoutID uuid.UUID,
	input *usecase.UpdateWorkoutInput,
) (*usecase.WorkoutAggregate, error) {
	verr := validateWorkoutPatch(&input.Patch)
	var (
		valid        []bool
		needsCatalog bool
	)
	if input.ReplaceExercises {
		valid = checkAssignments(verr, input.Exercises)
		needsCatalog = needsCatalogName(input.Exercises, valid)
	}
	if verr.HasErrors() && !needsCatalog {
		return nil, verr
	}

	now := srv.now()

	var (
		workout   *entity.Workout
		rows      []*entity.WorkoutExercise
		completed bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		workoutRepo := repoFactory.NewWorkoutRepository()
		rowRepo := repoFactory.NewWorkoutExerciseRepository()

		found, err := loadOwnedWorkout(ctx, workoutRepo, userID, workoutID)
		if err != nil {
			return err
		}
		workout = found

		if input.ReplaceExercises {
			built, err := srv.buildExerciseRows(ctx, repoFactory.NewExerciseRepository(), workout.ID, input.Exercises, valid, now, verr)
			if err != nil {
				return err
			}
			rows = built
		}
		if err := verr.OrNil(); err != nil {
			return err
		}

		completed = input.Patch.Apply(workout, now)

		if err := workoutRepo.Update(ctx, workout); err != nil {
			return errors.Wrap(err, "failed to update workout")
		}

		if !input.ReplaceExercises {
			existing, err := rowRepo.ListByWorkout(ctx, workout.ID)
			if err != nil {
				return errors.Wrap(err, "failed to list workout exercises")
			}
			rows = existing

			return nil
		}

		if _, err := rowRepo.DeleteByWorkout(ctx, workout.ID); err != nil {
			return errors.Wrap(err, "failed to clear workout exercises")
		}

		return insertExerciseRows(ctx, rowRepo, rows)
	})

	written := 0
	if input.ReplaceExercises {
		written = len(rows)
	}
	metrics.RecordWorkoutWrite(opUpdateWorkout, err, written)

	if err != nil {
		srv.log(ctx).Error("Failed to update workout",
			slog.Any("error", err),
			slog.String("workout_id", workoutID.String()),
		)

		return nil, errors.Wrap(err, "failed to update workout")
	}

	if rows == nil {
		rows = []*entity.WorkoutExercise{}
	}

	if completed {
		srv.publishCompleted(ctx, workout)
	}

	return &usecase.WorkoutAggregate{Workout: workout, Exercises: rows}, nil
}

// DeleteWorkout removes the exercise rows and the workout in one transaction.
func (srv *workoutService) DeleteWorkout(ctx context.Context, userID string, workoutID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		workoutRepo := repoFactory.NewWorkoutRepository()

		if _, err := loadOwnedWorkout(ctx, workoutRepo, userID, workoutID); err != nil {
			return err
		}

		if _, err := repoFactory.NewWorkoutExerciseRepository().DeleteByWorkout(ctx, workoutID); err != nil {
			return errors.Wrap(err, "failed to delete workout exercises")
		}

		if err := workoutRepo.Delete(ctx, workoutID); err != nil {
			if errors.Is(err, repository.ErrWorkoutNotFound) {
				return errors.Wrap(domainerrors.ErrWorkoutNotFound, "workout not found")
			}

			return errors.Wrap(err, "failed to delete workout")
		}

		return nil
	})
	metrics.RecordWorkoutWrite(opDeleteWorkout, err, 0)
	if err != nil {
		return errors.Wrap(err, "failed to delete workout")
	}

	srv.log(ctx).Info("Workout deleted", slog.String("workout_id", workoutID.String()))

	return nil
}

func (srv *workoutService) GetWorkoutQRCode(ctx context.Context, userID string, workoutID uuid.UUID) ([]byte, error) {
	workout, err := srv.GetWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateWorkoutQR(workout.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate workout QR code")
	}

	return png, nil
}

// buildExerciseRows materializes the valid assignments at positions 0..N-1.
// Missing names are snapshotted from the catalog; a name found nowhere is recorded on verr.
// Only store failures are returned.
func (srv *workoutService) buildExerciseRows(
	ctx context.Context,
	exerciseRepo repository.ExerciseRepository,
	workoutID uuid.UUID,
	assignments []entity.ExerciseAssignment,
	valid []bool,
	now time.Time,
	verr *domainerrors.ValidationError,
) ([]*entity.WorkoutExercise, error) {
	names := make(map[string]string)
	rows := make([]*entity.WorkoutExercise, 0, len(assignments))

	for i, assignment := range assignments {
		if !valid[i] {
			continue
		}

		row := entity.Materialize(assignment, workoutID, i, srv.newID)
		row.Name = strings.TrimSpace(row.Name)
		row.CreatedAt = now
		row.UpdatedAt = now

		if row.Name == "" {
			name, ok := names[row.ExerciseID]
			if !ok {
				exercise, err := lookupExercise(ctx, exerciseRepo, row.ExerciseID)
				switch {
				case err == nil:
					name = exercise.Name
				case errors.Is(err, domainerrors.ErrExerciseNotFound):
				default:
					return nil, err
				}
				names[row.ExerciseID] = name
			}

			if name == "" {
				verr.Add(fmt.Sprintf("exercises[%d].name", i), "required", "name is required for an exercise outside the catalog")

				continue
			}
			row.Name = name
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func insertExerciseRows(ctx context.Context, repo repository.WorkoutExerciseRepository, rows []*entity.WorkoutExercise) error {
	if err := repo.CreateBatch(ctx, rows); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateWorkoutExercise):
			return errors.Wrap(domainerrors.ErrConflict, "exercise row id is already in use")
		case errors.Is(err, repository.ErrWorkoutReference):
			return errors.Wrap(domainerrors.ErrWorkoutNotFound, "workout disappeared during write")
		}

		return errors.Wrap(err, "failed to create workout exercises")
	}

	return nil
}

// publishCompleted runs after commit. Failures are logged and never reach the caller.
func (srv *workoutService) publishCompleted(ctx context.Context, workout *entity.Workout) {
	if workout.CompletedAt == nil {
		return
	}

	event := &service.WorkoutCompletedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		WorkoutID:   workout.ID.String(),
		UserID:      workout.UserID,
		Name:        workout.Name,
		Duration:    workout.Duration,
		CompletedAt: *workout.CompletedAt,
	}

	err := srv.publisher.PublishWorkoutCompleted(ctx, event)
	metrics.RecordEventPublished(err)
	if err != nil {
		srv.log(ctx).Warn("Failed to publish workout completed event",
			slog.Any("error", err),
			slog.String("workout_id", event.WorkoutID),
		)
	}
}

func loadOwnedWorkout(ctx context.Context, repo repository.WorkoutRepository, userID string, workoutID uuid.UUID) (*entity.Workout, error) {
	workout, err := repo.FindByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkoutNotFound) {
			return nil, errors.Wrap(domainerrors.ErrWorkoutNotFound, "workout not found")
		}

		return nil, errors.Wrap(err, "failed to find workout")
	}

	if !workout.IsOwnedBy(userID) {
		return nil, errors.Wrap(domainerrors.ErrWorkoutOwnership, "workout belongs to another user")
	}

	return workout, nil
}
