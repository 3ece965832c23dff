package auth

import (
	"context"
	"fmt"
	"log/slog"
)

type LoginUserInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// LoginUserUseCase exchanges credentials for a token pair.
type LoginUserUseCase struct {
	deps Deps
}

func NewLoginUserUseCase(deps Deps) *LoginUserUseCase {
	return &LoginUserUseCase{deps: deps}
}

// Execute never reveals whether the email is registered.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*Session, error) {
	user, err := uc.deps.Users.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return nil, errBadCredentials("invalid email or password")
	}
	if err := uc.deps.Passwords.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		slog.Debug("Login rejected", "user_id", user.ID)
		return nil, errBadCredentials("invalid email or password")
	}

	pair, err := uc.deps.Tokens.GenerateTokenPair(ctx, user.ID, user.Email, input.RememberMe)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}
	return &Session{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken, User: user}, nil
}
