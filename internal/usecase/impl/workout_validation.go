package impl

import (
	"fmt"
	"strings"

	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/usecase"

	"github.com/google/uuid"
)

func validateCreateWorkout(input *usecase.CreateWorkoutInput) *domainerrors.ValidationError {
	verr := domainerrors.NewValidationError()

	if strings.TrimSpace(input.Name) == "" {
		verr.Add("name", "required", "name is required")
	}

	checkWorkoutFields(verr, input.Duration, input.Level, input.Progress)

	return verr
}

func validateWorkoutPatch(patch *entity.WorkoutPatch) *domainerrors.ValidationError {
	verr := domainerrors.NewValidationError()

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		verr.Add("name", "required", "name must not be empty")
	}

	checkWorkoutFields(verr, patch.Duration, patch.Level, patch.Progress)

	return verr
}

func checkWorkoutFields(verr *domainerrors.ValidationError, duration *int, level *entity.WorkoutLevel, progress *int) {
	if duration != nil && *duration <= 0 {
		verr.Add("duration", "gt", "duration must be greater than 0")
	}

	if level != nil && !level.IsValid() {
		verr.Add("level", "oneof", "level must be one of iniciante intermediario avancado")
	}

	if progress != nil && (*progress < 0 || *progress > entity.MaxWorkoutProgress) {
		verr.Add("progress", "range", "progress must be between 0 and 100")
	}
}

func checkAssignmentCounts(verr *domainerrors.ValidationError, field string, values entity.AssignmentFields) bool {
	ok := true

	if values.Sets <= 0 {
		verr.Add(field+".sets", "gt", "sets must be greater than 0")
		ok = false
	}

	if values.Reps <= 0 {
		verr.Add(field+".reps", "gt", "reps must be greater than 0")
		ok = false
	}

	if values.RestTime < 0 {
		verr.Add(field+".restTime", "gte", "restTime must not be negative")
		ok = false
	}

	return ok
}

// checkAssignments records the row errors that need no catalog lookup.
// valid[i] reports whether row i passed them.
func checkAssignments(verr *domainerrors.ValidationError, assignments []entity.ExerciseAssignment) (valid []bool) {
	valid = make([]bool, len(assignments))
	seenIDs := make(map[uuid.UUID]int, len(assignments))

	for i, assignment := range assignments {
		field := fmt.Sprintf("exercises[%d]", i)
		values := assignment.Values()
		ok := true

		if existing, isExisting := assignment.(entity.ExistingAssignment); isExisting {
			if first, dup := seenIDs[existing.ID]; dup {
				verr.Add(field+".id", "unique", fmt.Sprintf("duplicates exercises[%d].id", first))
				ok = false
			} else {
				seenIDs[existing.ID] = i
			}
		}

		if strings.TrimSpace(values.ExerciseID) == "" {
			verr.Add(field+".exerciseId", "required", "exerciseId is required")
			valid[i] = false

			continue
		}

		valid[i] = checkAssignmentCounts(verr, field, values) && ok
	}

	return valid
}

// needsCatalogName reports whether a valid row still has to take its name from the catalog.
func needsCatalogName(assignments []entity.ExerciseAssignment, valid []bool) bool {
	for i, assignment := range assignments {
		if valid[i] && strings.TrimSpace(assignment.Values().Name) == "" {
			return true
		}
	}

	return false
}
