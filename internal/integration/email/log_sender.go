// Package email provides email sending functionality.
package email

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

// LogSender writes emails to the log instead of delivering them. It is used when
// no provider key is configured and keeps the sent messages for inspection.
type LogSender struct {
	mu        sync.Mutex
	sent      []adapter.SendEmailInput
	failErr   error
	permanent bool
}

// NewLogSender creates a new LogSender.
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send implements adapter.EmailSender.
func (s *LogSender) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failErr != nil {
		code := domainerror.ErrCodeTemporaryEmailFailure
		if s.permanent {
			code = domainerror.ErrCodePermanentEmailFailure
		}
		return nil, domainerror.NewEmailError(code, "email delivery failed", s.failErr)
	}

	s.sent = append(s.sent, input)
	slog.Info("Email delivered to log",
		"to", input.To,
		"subject", input.Subject,
	)
	return &adapter.SendEmailResult{ProviderID: "log-" + uuid.NewString()}, nil
}

// Sent returns a copy of the emails sent so far.
func (s *LogSender) Sent() []adapter.SendEmailInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]adapter.SendEmailInput(nil), s.sent...)
}

// FailWith makes subsequent sends fail with err until Reset is called.
func (s *LogSender) FailWith(err error, permanent bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failErr = err
	s.permanent = permanent
}

// Reset clears sent emails and the failure configuration.
func (s *LogSender) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = nil
	s.failErr = nil
	s.permanent = false
}

var _ adapter.EmailSender = (*LogSender)(nil)
