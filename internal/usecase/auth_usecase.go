// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"fitplan/internal/domain/entity"
)

// --- Input DTOs ---

// GoogleLoginInput carries the Google Sign-In credential.
type GoogleLoginInput struct {
	IDToken string
}

// --- Output DTOs ---

// LoginOutput returns the service access token after a successful sign-in.
type LoginOutput struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        *entity.User `json:"user"`
}

// AuthUsecase defines the identity operations.
type AuthUsecase interface {
	// LoginWithGoogle verifies the ID token, upserts the user from its claims and issues an access token.
	LoginWithGoogle(ctx context.Context, input GoogleLoginInput) (*LoginOutput, error)

	// GetCurrentUser returns the stored user of the caller.
	GetCurrentUser(ctx context.Context, userID string) (*entity.User, error)
}
