// Package error defines domain-specific errors for the budget planner.
package error

// Budget domain errors.
var (
	// ErrIncomeNotConfigured is returned when a percentage budget is saved before income is set.
	ErrIncomeNotConfigured = newValidationError("monthly income must be configured first")

	// ErrInvalidBudgetPercentage is returned when a budget percentage is outside 0-100.
	ErrInvalidBudgetPercentage = newValidationError("percentage must be between 0 and 100")

	// ErrInvalidBudgetLimit is returned when neither a valid limit nor a percentage is given.
	ErrInvalidBudgetLimit = newValidationError("limit must be zero or positive")

	// ErrInvalidMonth is returned when a month key is not formatted as YYYY-MM.
	ErrInvalidMonth = newValidationError("month must use the YYYY-MM format")
)

// BudgetErrorCode defines error codes for budget and income errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeIncomeNotConfigured     BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidBudgetPercentage BudgetErrorCode = "BDG-010002"
	ErrCodeInvalidBudgetLimit      BudgetErrorCode = "BDG-010003"
	ErrCodeInvalidMonth            BudgetErrorCode = "BDG-010004"
	ErrCodeBudgetCategory          BudgetErrorCode = "BDG-010005"

	// Income errors (02XXXX)
	ErrCodeInvalidIncomeAmount BudgetErrorCode = "BDG-020001"
	ErrCodeInvalidIncomeSource BudgetErrorCode = "BDG-020002"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
