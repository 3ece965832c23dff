package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/session"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

// DeleteAccountConfirmation must be typed verbatim to delete an account.
const DeleteAccountConfirmation = "DELETE"

// GetCurrentUserUseCase returns the account behind an access token.
type GetCurrentUserUseCase struct {
	deps Deps
}

func NewGetCurrentUserUseCase(deps Deps) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{deps: deps}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := uc.deps.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, errUserNotFound()
	}
	return user, nil
}

type DeleteAccountInput struct {
	UserID       uuid.UUID
	Password     string
	Confirmation string
}

// DeleteAccountUseCase removes an account, its sessions and its planner dataset.
type DeleteAccountUseCase struct {
	deps      Deps
	workspace *session.Workspace
}

func NewDeleteAccountUseCase(deps Deps, workspace *session.Workspace) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{deps: deps, workspace: workspace}
}

func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	if input.Confirmation != DeleteAccountConfirmation {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidConfirmation,
			fmt.Sprintf("confirmation must be exactly '%s'", DeleteAccountConfirmation),
			nil,
		)
	}

	user, err := uc.deps.Users.FindByID(ctx, input.UserID)
	if err != nil {
		return errUserNotFound()
	}
	if err := uc.deps.Passwords.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return errBadCredentials("invalid password")
	}

	if err := uc.deps.Tokens.InvalidateAllUserTokens(ctx, user.ID); err != nil {
		return fmt.Errorf("revoke user tokens: %w", err)
	}
	if err := uc.workspace.Clear(ctx, user.ID.String()); err != nil {
		return err
	}
	if err := uc.deps.Users.Delete(ctx, user.ID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	slog.Info("Account deleted", "user_id", user.ID)
	return nil
}
