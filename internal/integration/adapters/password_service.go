// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/finance-tracker/planner/internal/application/adapter"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

const (
	// DefaultBcryptCost is the bcrypt cost used in production.
	DefaultBcryptCost = 12

	minPasswordLength = 8
	// bcrypt ignores everything after the first 72 bytes
	maxPasswordLength = 72
)

// bcryptPasswordService implements the adapter.PasswordService interface.
type bcryptPasswordService struct {
	cost int
}

// NewPasswordService creates a new password service instance.
// A cost outside bcrypt's range falls back to DefaultBcryptCost.
func NewPasswordService(cost int) adapter.PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &bcryptPasswordService{cost: cost}
}

// HashPassword hashes a plain text password using bcrypt.
func (s *bcryptPasswordService) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword compares a plain text password with a hashed password.
func (s *bcryptPasswordService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidatePasswordStrength validates if a password meets minimum requirements.
func (s *bcryptPasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: at least %d characters are required", domainerror.ErrWeakPassword, minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("%w: at most %d bytes are allowed", domainerror.ErrWeakPassword, maxPasswordLength)
	}
	return nil
}
