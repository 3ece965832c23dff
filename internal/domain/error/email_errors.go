package error

import "errors"

var (
	ErrInvalidTemplate      = errors.New("invalid email template")
	ErrTemplateRenderFailed = errors.New("failed to render email template")
)

// EmailErrorCode classifies failures of the outgoing email pipeline.
type EmailErrorCode string

const (
	ErrCodeEmailQueueFailed      EmailErrorCode = "EMAIL-010001"
	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-020003"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-020004"
	ErrCodeInvalidTemplate       EmailErrorCode = "EMAIL-030001"
	ErrCodeTemplateRenderFailed  EmailErrorCode = "EMAIL-030002"
)

// EmailError is returned by the email queue, renderer and senders.
// The worker uses IsPermanent to decide between retrying and failing a job.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

func (e *EmailError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *EmailError) Unwrap() error { return e.Err }

// IsPermanent reports whether retrying the job cannot succeed.
func (e *EmailError) IsPermanent() bool {
	return e.Code != ErrCodeTemporaryEmailFailure && e.Code != ErrCodeEmailQueueFailed
}

// NewEmailError creates a new EmailError.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{Code: code, Message: message, Err: err}
}
