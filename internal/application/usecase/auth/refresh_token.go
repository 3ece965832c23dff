package auth

import (
	"context"
	"fmt"

	"github.com/finance-tracker/planner/internal/application/adapter"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenUseCase rotates a refresh token: the presented one is revoked
// and a new pair is issued.
type RefreshTokenUseCase struct {
	deps Deps
}

func NewRefreshTokenUseCase(deps Deps) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{deps: deps}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*adapter.TokenPair, error) {
	tokens := uc.deps.Tokens
	rejected := domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "invalid or expired refresh token", domainerror.ErrInvalidToken)

	claims, err := tokens.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, rejected
	}
	live, err := tokens.IsRefreshTokenValid(ctx, input.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("check refresh token: %w", err)
	}
	if !live {
		return nil, rejected
	}

	if err := tokens.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, fmt.Errorf("revoke refresh token: %w", err)
	}
	return tokens.GenerateTokenPair(ctx, claims.UserID, claims.Email, false)
}
