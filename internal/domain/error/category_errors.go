// Package error defines domain-specific errors for the budget planner.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the dataset.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrParentNotFound is returned when a category declares a parent that does not exist.
	ErrParentNotFound = errors.New("parent category not found")

	// ErrInvalidCategory is returned when an operation targets a disallowed category.
	ErrInvalidCategory = errors.New("invalid category for this operation")

	// ErrNotDeletable is returned when attempting to delete a protected category.
	ErrNotDeletable = errors.New("category cannot be deleted")

	// ErrHasChildren is returned when attempting to delete a category that has subcategories.
	ErrHasChildren = errors.New("category has subcategories")

	// ErrInUse is returned when attempting to delete a category referenced by a transaction or budget.
	ErrInUse = errors.New("category is in use")

	// ErrCategoryLabelRequired is returned when a category is saved without a label.
	ErrCategoryLabelRequired = newValidationError("category label is required")

	// ErrCategoryCycle is returned when the chosen parent would make the category its own ancestor.
	ErrCategoryCycle = newValidationError("category parent would create a cycle")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryLabelRequired CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryCycle         CategoryErrorCode = "CAT-010002"
	ErrCodeParentNotFound        CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-010004"
	ErrCodeInvalidCategory       CategoryErrorCode = "CAT-010005"
	ErrCodeCategoryLabelTooLong  CategoryErrorCode = "CAT-010006"

	// Deletion guards (02XXXX)
	ErrCodeNotDeletable CategoryErrorCode = "CAT-020001"
	ErrCodeHasChildren  CategoryErrorCode = "CAT-020002"
	ErrCodeInUse        CategoryErrorCode = "CAT-020003"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
