package adapters

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/integration/persistence"
	"github.com/finance-tracker/planner/internal/integration/persistence/model"
)

const (
	passwordResetTokenTTL     = time.Hour
	emailVerificationTokenTTL = 24 * time.Hour
	oneTimeTokenBytes         = 32
)

// oneTimeTokenService stores hex-encoded random tokens in the one_time_tokens table.
type oneTimeTokenService struct {
	purpose model.TokenPurpose
	ttl     time.Duration
	repo    persistence.TokenRepository
	clock   adapter.Clock
}

// NewPasswordResetTokenService issues reset tokens valid for one hour.
func NewPasswordResetTokenService(repo persistence.TokenRepository, clock adapter.Clock) adapter.OneTimeTokenService {
	return &oneTimeTokenService{purpose: model.TokenPurposePasswordReset, ttl: passwordResetTokenTTL, repo: repo, clock: clock}
}

// NewVerificationTokenService issues email verification tokens valid for 24 hours.
func NewVerificationTokenService(repo persistence.TokenRepository, clock adapter.Clock) adapter.OneTimeTokenService {
	return &oneTimeTokenService{purpose: model.TokenPurposeEmailVerification, ttl: emailVerificationTokenTTL, repo: repo, clock: clock}
}

func (s *oneTimeTokenService) Issue(ctx context.Context, userID uuid.UUID, email string) (*adapter.OneTimeToken, error) {
	buf := make([]byte, oneTimeTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("generate %s token: %w", s.purpose, err)
	}

	out := &adapter.OneTimeToken{
		Token:     hex.EncodeToString(buf),
		UserID:    userID,
		Email:     email,
		ExpiresAt: s.clock.Now().Add(s.ttl),
	}
	if err := s.repo.SaveOneTimeToken(ctx, s.purpose, out.Token, userID, email, out.ExpiresAt); err != nil {
		return nil, fmt.Errorf("save %s token: %w", s.purpose, err)
	}
	return out, nil
}

func (s *oneTimeTokenService) Lookup(ctx context.Context, token string) (*adapter.OneTimeToken, error) {
	row, err := s.repo.GetOneTimeToken(ctx, s.purpose, token)
	if err != nil {
		return nil, fmt.Errorf("load %s token: %w", s.purpose, err)
	}
	if row == nil {
		return nil, fmt.Errorf("unknown or used %s token", s.purpose)
	}
	return &adapter.OneTimeToken{Token: row.Token, UserID: row.UserID, Email: row.Email, ExpiresAt: row.ExpiresAt}, nil
}

func (s *oneTimeTokenService) Consume(ctx context.Context, token string) error {
	return s.repo.UseOneTimeToken(ctx, token)
}
