package auth

import (
	"context"
	"fmt"
	"log/slog"

	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// ResetPasswordUseCase redeems a reset token. Every session of the account is
// revoked afterwards.
type ResetPasswordUseCase struct {
	deps Deps
}

func NewResetPasswordUseCase(deps Deps) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{deps: deps}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, input ResetPasswordInput) error {
	token, err := uc.deps.ResetTokens.Lookup(ctx, input.Token)
	if err != nil {
		return domainerror.NewAuthError(domainerror.ErrCodeInvalidResetToken, "invalid or expired password reset token", domainerror.ErrInvalidResetToken)
	}
	now := uc.deps.Clock.Now()
	if token.Expired(now) {
		return domainerror.NewAuthError(domainerror.ErrCodeExpiredResetToken, "password reset token has expired", domainerror.ErrInvalidResetToken)
	}
	if err := uc.deps.checkPassword(input.NewPassword); err != nil {
		return err
	}

	user, err := uc.deps.Users.FindByID(ctx, token.UserID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	hash, err := uc.deps.Passwords.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.UpdatedAt = now
	if err := uc.deps.Users.Update(ctx, user); err != nil {
		return fmt.Errorf("store password: %w", err)
	}

	// the new password is in place, leftovers are only logged
	if err := uc.deps.ResetTokens.Consume(ctx, input.Token); err != nil {
		slog.Warn("Failed to consume reset token", "error", err, "user_id", user.ID)
	}
	if err := uc.deps.Tokens.InvalidateAllUserTokens(ctx, user.ID); err != nil {
		slog.Warn("Failed to revoke sessions after password reset", "error", err, "user_id", user.ID)
	}
	return nil
}
