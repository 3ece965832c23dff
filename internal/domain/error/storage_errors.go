// Package error defines domain-specific errors for the budget planner.
package error

import "errors"

// Storage errors.
var (
	// ErrStorage is returned when the persisted document cannot be encoded or decoded.
	ErrStorage = errors.New("storage error")
)

// StorageErrorCode defines error codes for storage errors.
// Format: STO-XXYYYY where XX is category and YYYY is specific error.
type StorageErrorCode string

const (
	ErrCodeDecodeFailed StorageErrorCode = "STO-010001"
	ErrCodeEncodeFailed StorageErrorCode = "STO-010002"
)

// StorageError represents a serialization failure of the persisted document.
type StorageError struct {
	Code    StorageErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is reports StorageError as ErrStorage so callers can match it with errors.Is.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// NewStorageError creates a new StorageError with the given code and message.
func NewStorageError(code StorageErrorCode, message string, err error) *StorageError {
	return &StorageError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
