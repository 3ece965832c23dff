package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type LogoutUserInput struct {
	UserID       uuid.UUID
	RefreshToken string
	AllDevices   bool
}

// LogoutUserUseCase revokes one refresh token, or every token of the user with AllDevices.
type LogoutUserUseCase struct {
	deps Deps
}

func NewLogoutUserUseCase(deps Deps) *LogoutUserUseCase {
	return &LogoutUserUseCase{deps: deps}
}

func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) error {
	if !input.AllDevices {
		// an unknown or already revoked token is still a successful logout
		_ = uc.deps.Tokens.InvalidateRefreshToken(ctx, input.RefreshToken)
		return nil
	}
	if err := uc.deps.Tokens.InvalidateAllUserTokens(ctx, input.UserID); err != nil {
		return fmt.Errorf("revoke user tokens: %w", err)
	}
	return nil
}
