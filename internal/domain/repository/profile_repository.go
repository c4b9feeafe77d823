package repository

import (
	"context"

	"fitplan/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when the user has no profile yet.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists user profiles keyed by user id.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*entity.UserProfile, error)

	// Upsert inserts the profile or overwrites it on conflict by user id.
	Upsert(ctx context.Context, profile *entity.UserProfile) error
}
