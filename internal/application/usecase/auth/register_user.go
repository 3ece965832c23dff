package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

type RegisterUserInput struct {
	Email         string
	Name          string
	Password      string
	TermsAccepted bool
}

// Session is a freshly issued token pair together with its account.
type Session struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RegisterUserUseCase creates an unverified account and signs it in.
type RegisterUserUseCase struct {
	deps Deps
}

func NewRegisterUserUseCase(deps Deps) *RegisterUserUseCase {
	return &RegisterUserUseCase{deps: deps}
}

// Execute registers the account. The verification email is queued best effort.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*Session, error) {
	if !input.TermsAccepted {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeTermsNotAccepted, "terms of service must be accepted", domainerror.ErrTermsNotAccepted)
	}
	email, err := parseEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if err := uc.deps.checkPassword(input.Password); err != nil {
		return nil, err
	}

	taken, err := uc.deps.Users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeEmailExists, "email already exists", domainerror.ErrEmailAlreadyExists)
	}

	hash, err := uc.deps.Passwords.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := entity.NewUser(email, strings.TrimSpace(input.Name), hash, uc.deps.Clock.Now())
	if err := uc.deps.Users.Create(ctx, user); err != nil {
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			return nil, domainerror.NewAuthError(domainerror.ErrCodeEmailExists, "email already exists", err)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	pair, err := uc.deps.Tokens.GenerateTokenPair(ctx, user.ID, user.Email, false)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}

	uc.deps.sendVerification(ctx, user)

	return &Session{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken, User: user}, nil
}
