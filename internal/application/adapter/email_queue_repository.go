package adapter

import (
	"context"
	"time"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// EmailQueue is the durable outbox between the auth flows and the email worker.
type EmailQueue interface {
	Enqueue(ctx context.Context, job *entity.EmailJob) error
	// Due returns up to limit pending jobs scheduled at or before now, oldest first.
	Due(ctx context.Context, now time.Time, limit int) ([]*entity.EmailJob, error)
	Save(ctx context.Context, job *entity.EmailJob) error
	// ForRecipient lists the jobs addressed to email, newest first.
	ForRecipient(ctx context.Context, email string) ([]*entity.EmailJob, error)
	// PurgeSent drops sent jobs processed before the cutoff and reports how many went.
	PurgeSent(ctx context.Context, before time.Time) (int64, error)
}
