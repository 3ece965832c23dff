package error

import "errors"

// Identity provider errors. None of them carry planner data.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTermsNotAccepted   = errors.New("terms of service must be accepted")
	ErrWeakPassword       = errors.New("password does not meet minimum requirements")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrAlreadyVerified    = errors.New("email already verified")

	// ErrInvalidResetToken covers unknown, used and expired reset tokens alike.
	ErrInvalidResetToken = errors.New("invalid or expired password reset token")
	// ErrInvalidVerificationToken covers unknown, used and expired verification tokens alike.
	ErrInvalidVerificationToken = errors.New("invalid or expired email verification token")
)

// AuthErrorCode identifies an authentication failure in API responses.
// Format: AUTH-XXYYYY, XX being the flow and YYYY the failure.
type AuthErrorCode string

// register
const (
	ErrCodeEmailExists      AuthErrorCode = "AUTH-010001"
	ErrCodeTermsNotAccepted AuthErrorCode = "AUTH-010002"
	ErrCodeWeakPassword     AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidEmail     AuthErrorCode = "AUTH-010004"
	ErrCodeMissingFields    AuthErrorCode = "AUTH-010005"
)

// login
const (
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-020002"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-020003"
)

// tokens and sessions
const (
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-030002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"
)

// password reset, account deletion and email verification
const (
	ErrCodeInvalidResetToken        AuthErrorCode = "AUTH-040001"
	ErrCodeExpiredResetToken        AuthErrorCode = "AUTH-040002"
	ErrCodeInvalidConfirmation      AuthErrorCode = "AUTH-050001"
	ErrCodeInvalidVerificationToken AuthErrorCode = "AUTH-060001"
	ErrCodeAlreadyVerified          AuthErrorCode = "AUTH-060002"
)

// AuthError pairs an AuthErrorCode with a user-facing message and an optional cause.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AuthError) Unwrap() error { return e.Err }

// NewAuthError creates a new AuthError.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{Code: code, Message: message, Err: err}
}
