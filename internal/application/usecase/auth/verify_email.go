package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

type VerifyEmailInput struct {
	Token string
}

// VerifyEmailUseCase redeems a verification token.
type VerifyEmailUseCase struct {
	deps Deps
}

func NewVerifyEmailUseCase(deps Deps) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{deps: deps}
}

// Execute rejects tokens issued for an address the account no longer uses.
func (uc *VerifyEmailUseCase) Execute(ctx context.Context, input VerifyEmailInput) (*entity.User, error) {
	invalid := domainerror.NewAuthError(domainerror.ErrCodeInvalidVerificationToken, "invalid or expired verification token", domainerror.ErrInvalidVerificationToken)

	token, err := uc.deps.VerifyTokens.Lookup(ctx, input.Token)
	if err != nil {
		return nil, invalid
	}
	now := uc.deps.Clock.Now()
	if token.Expired(now) {
		return nil, invalid
	}

	user, err := uc.deps.Users.FindByID(ctx, token.UserID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user.Email != token.Email {
		return nil, invalid
	}
	if user.IsVerified() {
		return nil, errAlreadyVerified()
	}

	user.EmailVerifiedAt = &now
	user.UpdatedAt = now
	if err := uc.deps.Users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("store verification: %w", err)
	}
	if err := uc.deps.VerifyTokens.Consume(ctx, input.Token); err != nil {
		return nil, fmt.Errorf("consume verification token: %w", err)
	}
	return user, nil
}

// ResendVerificationUseCase mails a new verification link to an unverified account.
type ResendVerificationUseCase struct {
	deps Deps
}

func NewResendVerificationUseCase(deps Deps) *ResendVerificationUseCase {
	return &ResendVerificationUseCase{deps: deps}
}

func (uc *ResendVerificationUseCase) Execute(ctx context.Context, userID uuid.UUID) error {
	user, err := uc.deps.Users.FindByID(ctx, userID)
	if err != nil {
		return errUserNotFound()
	}
	if user.IsVerified() {
		return errAlreadyVerified()
	}
	uc.deps.sendVerification(ctx, user)
	return nil
}

func errAlreadyVerified() error {
	return domainerror.NewAuthError(domainerror.ErrCodeAlreadyVerified, "email already verified", domainerror.ErrAlreadyVerified)
}
