package usecase

import (
	"context"

	"fitplan/internal/domain/entity"
)

// ProfileUsecase defines the per-user settings operations.
type ProfileUsecase interface {
	// GetProfile returns nil when the user has not saved a profile yet.
	GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error)

	// UpdateProfile creates the profile on first write; absent fields keep their stored value.
	UpdateProfile(ctx context.Context, userID string, patch *entity.ProfilePatch) (*entity.UserProfile, error)
}
