// Package email provides email sending functionality.
package email

import (
	"context"
	"time"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

// Service turns account events into queued email jobs. Delivery happens in Worker.
type Service struct {
	queue adapter.EmailQueue
	now   func() time.Time
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueue) *Service {
	return &Service{
		queue: queue,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	job := entity.NewEmailJob(
		entity.TemplatePasswordReset,
		input.UserEmail,
		input.UserName,
		"Reset your password - Budget Planner",
		map[string]string{
			"user_name":  input.UserName,
			"reset_url":  input.ResetURL,
			"expires_in": input.ExpiresIn,
		},
		s.now(),
	)
	return s.enqueue(ctx, job, "failed to queue password reset email")
}

// QueueVerificationEmail queues an email address verification email.
func (s *Service) QueueVerificationEmail(ctx context.Context, input adapter.QueueVerificationInput) error {
	job := entity.NewEmailJob(
		entity.TemplateEmailVerification,
		input.UserEmail,
		input.UserName,
		"Confirm your email - Budget Planner",
		map[string]string{
			"user_name":  input.UserName,
			"verify_url": input.VerifyURL,
			"expires_in": input.ExpiresIn,
		},
		s.now(),
	)
	return s.enqueue(ctx, job, "failed to queue verification email")
}

func (s *Service) enqueue(ctx context.Context, job *entity.EmailJob, message string) error {
	if err := s.queue.Enqueue(ctx, job); err != nil {
		return domainerror.NewEmailError(domainerror.ErrCodeEmailQueueFailed, message, err)
	}
	return nil
}

var _ adapter.EmailService = (*Service)(nil)
