package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/persistence/model"
)

type emailQueue struct {
	db *gorm.DB
}

// NewEmailQueueRepository stores the email outbox in the email_queue table.
func NewEmailQueueRepository(db *gorm.DB) adapter.EmailQueue {
	return &emailQueue{db: db}
}

func (q *emailQueue) Enqueue(ctx context.Context, job *entity.EmailJob) error {
	if err := q.db.WithContext(ctx).Create(model.EmailQueueModelFromEntity(job)).Error; err != nil {
		return domainerror.NewEmailError(domainerror.ErrCodeEmailQueueFailed, "cannot enqueue email", err)
	}
	return nil
}

func (q *emailQueue) Due(ctx context.Context, now time.Time, limit int) ([]*entity.EmailJob, error) {
	return q.list(q.db.WithContext(ctx).
		Where("status = ? AND scheduled_at <= ?", entity.EmailStatusPending, now).
		Order("scheduled_at").
		Limit(limit))
}

func (q *emailQueue) Save(ctx context.Context, job *entity.EmailJob) error {
	return q.db.WithContext(ctx).Save(model.EmailQueueModelFromEntity(job)).Error
}

func (q *emailQueue) ForRecipient(ctx context.Context, email string) ([]*entity.EmailJob, error) {
	return q.list(q.db.WithContext(ctx).
		Where("recipient_email = ?", email).
		Order("created_at DESC"))
}

func (q *emailQueue) PurgeSent(ctx context.Context, before time.Time) (int64, error) {
	res := q.db.WithContext(ctx).
		Where("status = ? AND processed_at < ?", entity.EmailStatusSent, before).
		Delete(&model.EmailQueueModel{})
	return res.RowsAffected, res.Error
}

func (q *emailQueue) list(tx *gorm.DB) ([]*entity.EmailJob, error) {
	var rows []model.EmailQueueModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	jobs := make([]*entity.EmailJob, 0, len(rows))
	for i := range rows {
		jobs = append(jobs, rows[i].ToEntity())
	}
	return jobs, nil
}
