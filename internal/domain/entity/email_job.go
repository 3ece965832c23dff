package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus is the lifecycle state of a queued email.
type EmailStatus string

const (
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusProcessing EmailStatus = "processing"
	EmailStatusSent       EmailStatus = "sent"
	EmailStatusFailed     EmailStatus = "failed"
)

// EmailTemplateType names the template an email job is rendered with.
type EmailTemplateType string

const (
	TemplatePasswordReset     EmailTemplateType = "password_reset"
	TemplateEmailVerification EmailTemplateType = "email_verification"
)

const defaultEmailAttempts = 3

// EmailRetryBackoff is the wait before the next attempt, indexed by the number of failed attempts.
// Failures past the end of the table reuse its last entry.
var EmailRetryBackoff = []time.Duration{0, time.Minute, 5 * time.Minute}

// EmailJob is an account email waiting in the outgoing queue.
type EmailJob struct {
	ID             uuid.UUID
	TemplateType   EmailTemplateType
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]string
	Status         EmailStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ProviderID     string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewEmailJob creates a pending job that is due at now.
func NewEmailJob(templateType EmailTemplateType, to, name, subject string, data map[string]string, now time.Time) *EmailJob {
	return &EmailJob{
		ID:             uuid.New(),
		TemplateType:   templateType,
		RecipientEmail: to,
		RecipientName:  name,
		Subject:        subject,
		TemplateData:   data,
		Status:         EmailStatusPending,
		MaxAttempts:    defaultEmailAttempts,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkProcessing claims the job for the current worker pass.
func (e *EmailJob) MarkProcessing() {
	e.Status = EmailStatusProcessing
}

// MarkSent finishes the job with the provider's message id.
func (e *EmailJob) MarkSent(providerID string, now time.Time) {
	e.Status = EmailStatusSent
	e.ProviderID = providerID
	e.ProcessedAt = &now
}

// MarkFailed records a failed attempt. Permanent failures and the last allowed
// attempt finish the job; anything else reschedules it after EmailRetryBackoff.
func (e *EmailJob) MarkFailed(cause error, permanent bool, now time.Time) {
	e.Attempts++
	e.LastError = cause.Error()

	if permanent || !e.CanRetry() {
		e.Status = EmailStatusFailed
		e.ProcessedAt = &now
		return
	}

	i := min(e.Attempts, len(EmailRetryBackoff)-1)
	e.Status = EmailStatusPending
	e.ScheduledAt = now.Add(EmailRetryBackoff[i])
}

// CanRetry reports whether another attempt is allowed.
func (e *EmailJob) CanRetry() bool {
	return e.Attempts < e.MaxAttempts
}
