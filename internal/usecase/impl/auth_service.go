// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "fitplan/internal/delivery/context"
	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	"fitplan/internal/domain/service"
	"fitplan/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Verifier  service.IdentityVerifier
	Tokens    service.TokenService
	Logger    *slog.Logger
}

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	verifier  service.IdentityVerifier
	tokens    service.TokenService
	logger    *slog.Logger
	now       func() time.Time
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager: params.TxManager,
		verifier:  params.Verifier,
		tokens:    params.Tokens,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoginWithGoogle signs the caller in with a Google ID token.
func (srv *authService) LoginWithGoogle(ctx context.Context, input usecase.GoogleLoginInput) (*usecase.LoginOutput, error) {
	claims, err := srv.verifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Identity token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrIdentityTokenInvalid, err.Error())
	}

	now := srv.now()
	user := &entity.User{
		ID:              claims.Subject,
		Email:           optionalString(strings.ToLower(claims.Email)),
		FirstName:       optionalString(claims.GivenName),
		LastName:        optionalString(claims.FamilyName),
		ProfileImageURL: optionalString(claims.Picture),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Upsert(ctx, user); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return errors.Wrap(domainerrors.ErrEmailAlreadyInUse, "email belongs to another account")
			}

			return errors.Wrap(err, "failed to upsert user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to store signed-in user", slog.Any("error", err), slog.String("user_id", user.ID))

		return nil, errors.Wrap(err, "failed to sign in")
	}

	issued, err := srv.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Info("User signed in", slog.String("user_id", user.ID))

	return &usecase.LoginOutput{
		AccessToken: issued.Token,
		ExpiresAt:   issued.ExpiresAt,
		User:        user,
	}, nil
}

// GetCurrentUser returns the stored caller.
func (srv *authService) GetCurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get current user")
	}

	return user, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
