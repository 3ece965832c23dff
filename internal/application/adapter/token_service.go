package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair is what a successful login, registration or refresh hands back.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims identify the dataset owner behind a JWT.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService issues and checks JWTs. Refresh tokens are also tracked server side
// so that logout and password changes can revoke them.
type TokenService interface {
	// GenerateTokenPair extends the refresh token lifetime when rememberMe is set.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string, rememberMe bool) (*TokenPair, error)
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
	// ValidateRefreshToken checks the signature only. Use IsRefreshTokenValid for revocation.
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)
	InvalidateRefreshToken(ctx context.Context, token string) error
	InvalidateAllUserTokens(ctx context.Context, userID uuid.UUID) error
}

// OneTimeToken is a random single-use secret mailed to the account owner.
type OneTimeToken struct {
	Token     string
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// Expired reports whether the token can no longer be redeemed at now.
func (t *OneTimeToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// OneTimeTokenService manages the tokens of one purpose, such as password reset
// or email verification.
type OneTimeTokenService interface {
	Issue(ctx context.Context, userID uuid.UUID, email string) (*OneTimeToken, error)
	// Lookup returns an unused token without checking expiry.
	Lookup(ctx context.Context, token string) (*OneTimeToken, error)
	// Consume marks the token as used.
	Consume(ctx context.Context, token string) error
}
