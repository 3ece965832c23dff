package adapter

import "context"

// SendEmailInput is a fully rendered email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult carries the provider's message id.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender delivers rendered emails. Failures should be *domainerror.EmailError
// so that the queue worker can tell permanent from temporary ones.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService queues account emails for asynchronous delivery.
type EmailService interface {
	QueuePasswordResetEmail(ctx context.Context, input QueuePasswordResetInput) error
	QueueVerificationEmail(ctx context.Context, input QueueVerificationInput) error
}

// QueuePasswordResetInput describes a password reset email. ExpiresIn is human readable, e.g. "1 hour".
type QueuePasswordResetInput struct {
	UserID    string
	UserEmail string
	UserName  string
	ResetURL  string
	ExpiresIn string
}

// QueueVerificationInput describes an address confirmation email.
type QueueVerificationInput struct {
	UserID    string
	UserEmail string
	UserName  string
	VerifyURL string
	ExpiresIn string
}
