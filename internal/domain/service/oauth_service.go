package service

import "context"

// IdentityClaims represents the verified claims of an identity provider token.
type IdentityClaims struct {
	Subject       string // Provider-specific user ID (Google's 'sub' claim)
	Email         string
	EmailVerified bool
	GivenName     string
	FamilyName    string
	Picture       string
}

// IdentityVerifier verifies identity provider ID tokens.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*IdentityClaims, error)
}
