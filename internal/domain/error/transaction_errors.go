// Package error defines domain-specific errors for the budget planner.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrInvalidAmount is returned when an amount is zero or negative.
	ErrInvalidAmount = newValidationError("amount must be greater than zero")

	// ErrInvalidTransactionType is returned when the transaction type is neither income nor expense.
	ErrInvalidTransactionType = newValidationError("transaction type must be income or expense")

	// ErrBudgetRequired is returned when an expense is logged for a category without a budget this month.
	ErrBudgetRequired = errors.New("a budget is required for this category in the current month")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount          TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionType TransactionErrorCode = "TXN-010002"
	ErrCodeTransactionCategory    TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidDateFilter      TransactionErrorCode = "TXN-010004"
	ErrCodeDescriptionTooLong     TransactionErrorCode = "TXN-010005"

	// Business rule errors (02XXXX)
	ErrCodeBudgetRequired TransactionErrorCode = "TXN-020001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
