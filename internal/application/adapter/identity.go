package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// UserRepository stores identity-provider accounts. Lookups that find nothing
// return domainerror.ErrUserNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// FindByEmail matches case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// PasswordService hashes and checks account passwords.
type PasswordService interface {
	HashPassword(password string) (string, error)
	// VerifyPassword returns a non-nil error when password does not match the hash.
	VerifyPassword(hashedPassword, password string) error
	// ValidatePasswordStrength returns domainerror.ErrWeakPassword when the rules are not met.
	ValidatePasswordStrength(password string) error
}
