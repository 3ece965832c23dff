// Package error defines domain-specific errors for the budget planner.
package error

import (
	"errors"
	"fmt"
)

// ErrValidation is the parent of every bad-input error. Match it with errors.Is
// to detect any validation failure regardless of the concrete cause.
var ErrValidation = errors.New("validation failed")

// newValidationError derives a sentinel that unwraps to ErrValidation.
func newValidationError(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}
