// Package error defines domain-specific errors for the budget planner.
package error

import (
	"errors"
	"fmt"
)

// Saving goal domain errors.
var (
	// ErrGoalNotFound is returned when a saving goal is not found in the dataset.
	ErrGoalNotFound = errors.New("saving goal not found")

	// ErrAllocationExceeded is returned when the total allocation across goals would exceed 100%.
	ErrAllocationExceeded = errors.New("total goal allocation exceeds 100%")

	// ErrNegativePercentage is returned when a goal allocation is below zero.
	ErrNegativePercentage = errors.New("allocation percentage cannot be negative")

	// ErrInvalidAllocation is returned when a goal allocation is not a finite number.
	ErrInvalidAllocation = newValidationError("allocation percentage must be a finite number")

	// ErrGoalNameRequired is returned when a goal is saved without a name.
	ErrGoalNameRequired = newValidationError("goal name is required")

	// ErrInvalidTargetAmount is returned when a goal target is zero or negative.
	ErrInvalidTargetAmount = newValidationError("target amount must be greater than zero")

	// ErrInvalidSavedAmount is returned when a goal saved amount is negative.
	ErrInvalidSavedAmount = newValidationError("saved amount cannot be negative")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound        GoalErrorCode = "GOL-010001"
	ErrCodeGoalNameRequired    GoalErrorCode = "GOL-010002"
	ErrCodeInvalidTargetAmount GoalErrorCode = "GOL-010003"
	ErrCodeInvalidSavedAmount  GoalErrorCode = "GOL-010004"
	ErrCodeInvalidContribution GoalErrorCode = "GOL-010005"

	// Allocation errors (02XXXX)
	ErrCodeAllocationExceeded GoalErrorCode = "GOL-020001"
	ErrCodeNegativePercentage GoalErrorCode = "GOL-020002"
	ErrCodeInvalidAllocation  GoalErrorCode = "GOL-020003"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error

	// MaxAllowed is the largest allocation that still fits, set for ErrCodeAllocationExceeded.
	MaxAllowed float64
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewAllocationExceededError reports the maximum percentage that can still be allocated.
func NewAllocationExceededError(maxAllowed float64) *GoalError {
	return &GoalError{
		Code:       ErrCodeAllocationExceeded,
		Message:    fmt.Sprintf("allocation exceeds the remaining %.1f%%", maxAllowed),
		Err:        ErrAllocationExceeded,
		MaxAllowed: maxAllowed,
	}
}
