// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"fitplan/config"
	"fitplan/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

var validIssuers = map[string]struct{}{
	"accounts.google.com":         {},
	"https://accounts.google.com": {},
}

// validateFunc matches idtoken.Validate.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl verifies Google ID tokens against the configured client ID.
type AuthServiceImpl struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewAuthService creates a new Google identity verifier.
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.IdentityVerifier {
	return newAuthService(cfg.GoogleOAuth.ClientID, idtoken.Validate, logger)
}

func newAuthService(clientID string, validate validateFunc, logger *slog.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		clientID: clientID,
		validate: validate,
		logger:   logger,
	}
}

// VerifyIDToken checks signature, audience, issuer and email verification.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.IdentityClaims, error) {
	if s.clientID == "" {
		return nil, errors.New("google client ID is not configured")
	}

	if idToken == "" {
		return nil, errors.New("id token is required")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.Warn("Google ID token validation failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	if _, ok := validIssuers[payload.Issuer]; !ok {
		return nil, errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if payload.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	claims := &service.IdentityClaims{
		Subject:       payload.Subject,
		Email:         stringClaim(payload.Claims, "email"),
		EmailVerified: boolClaim(payload.Claims, "email_verified"),
		GivenName:     stringClaim(payload.Claims, "given_name"),
		FamilyName:    stringClaim(payload.Claims, "family_name"),
		Picture:       stringClaim(payload.Claims, "picture"),
	}

	if claims.Email != "" && !claims.EmailVerified {
		return nil, errors.New("email not verified")
	}

	s.logger.Debug("Google ID token verified", slog.String("subject", claims.Subject))

	return claims, nil
}

func stringClaim(claims map[string]any, key string) string {
	v, _ := claims[key].(string)

	return v
}

// boolClaim accepts both JSON booleans and the "true" string some tokens carry.
func boolClaim(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
