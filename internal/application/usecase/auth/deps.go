// Package auth implements the identity provider flows. Accounts never hold
// planner data themselves: the user ID is the key of the owner's dataset.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

const (
	resetLinkLifetime  = "1 hour"
	verifyLinkLifetime = "24 hours"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Deps are the ports shared by the auth use cases. Emails may be nil, in which
// case links are logged instead of mailed.
type Deps struct {
	Users        adapter.UserRepository
	Passwords    adapter.PasswordService
	Tokens       adapter.TokenService
	ResetTokens  adapter.OneTimeTokenService
	VerifyTokens adapter.OneTimeTokenService
	Emails       adapter.EmailService
	Clock        adapter.Clock
	AppBaseURL   string
}

// sendVerification issues a verification token and queues the email carrying it.
// Failures are logged: the calling flow has already succeeded.
func (d Deps) sendVerification(ctx context.Context, user *entity.User) {
	token, err := d.VerifyTokens.Issue(ctx, user.ID, user.Email)
	if err != nil {
		slog.Error("Failed to issue verification token", "error", err, "user_id", user.ID)
		return
	}

	link := fmt.Sprintf("%s/verify-email?token=%s", d.AppBaseURL, token.Token)
	if d.Emails == nil {
		slog.Info("Email delivery disabled, verification link not sent", "user_id", user.ID, "verify_url", link)
		return
	}

	err = d.Emails.QueueVerificationEmail(ctx, adapter.QueueVerificationInput{
		UserID:    user.ID.String(),
		UserEmail: user.Email,
		UserName:  user.Name,
		VerifyURL: link,
		ExpiresIn: verifyLinkLifetime,
	})
	if err != nil {
		slog.Error("Failed to queue verification email", "error", err, "user_id", user.ID)
	}
}

func (d Deps) checkPassword(password string) error {
	if err := d.Passwords.ValidatePasswordStrength(password); err != nil {
		return domainerror.NewAuthError(domainerror.ErrCodeWeakPassword, err.Error(), domainerror.ErrWeakPassword)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// parseEmail normalizes email and rejects malformed addresses.
func parseEmail(email string) (string, error) {
	email = normalizeEmail(email)
	if !emailPattern.MatchString(email) {
		return "", domainerror.NewAuthError(domainerror.ErrCodeInvalidEmail, "invalid email format", domainerror.ErrInvalidEmail)
	}
	return email, nil
}

func errUserNotFound() error {
	return domainerror.NewAuthError(domainerror.ErrCodeUserNotFound, "user not found", domainerror.ErrUserNotFound)
}

func errBadCredentials(msg string) error {
	return domainerror.NewAuthError(domainerror.ErrCodeInvalidCredentials, msg, domainerror.ErrInvalidCredentials)
}
