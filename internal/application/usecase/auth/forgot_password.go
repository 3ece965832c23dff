package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/planner/internal/application/adapter"
)

// ForgotPasswordMessage is answered for every well-formed address.
const ForgotPasswordMessage = "If an account with that email exists, we have sent a password reset link"

type ForgotPasswordInput struct {
	Email string
}

// ForgotPasswordUseCase mails a password reset link.
type ForgotPasswordUseCase struct {
	deps Deps
}

func NewForgotPasswordUseCase(deps Deps) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{deps: deps}
}

// Execute only fails on a malformed address, so callers cannot probe for accounts.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, input ForgotPasswordInput) (string, error) {
	email, err := parseEmail(input.Email)
	if err != nil {
		return "", err
	}

	user, err := uc.deps.Users.FindByEmail(ctx, email)
	if err != nil {
		return ForgotPasswordMessage, nil
	}

	token, err := uc.deps.ResetTokens.Issue(ctx, user.ID, user.Email)
	if err != nil {
		slog.Error("Failed to issue reset token", "error", err, "user_id", user.ID)
		return ForgotPasswordMessage, nil
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", uc.deps.AppBaseURL, token.Token)
	if uc.deps.Emails == nil {
		slog.Info("Email delivery disabled, reset link not sent", "user_id", user.ID, "reset_url", link)
		return ForgotPasswordMessage, nil
	}

	err = uc.deps.Emails.QueuePasswordResetEmail(ctx, adapter.QueuePasswordResetInput{
		UserID:    user.ID.String(),
		UserEmail: user.Email,
		UserName:  user.Name,
		ResetURL:  link,
		ExpiresIn: resetLinkLifetime,
	})
	if err != nil {
		slog.Error("Failed to queue password reset email", "error", err, "user_id", user.ID)
	}
	return ForgotPasswordMessage, nil
}
