package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailJob_RetryBackoff(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	job := NewEmailJob(TemplateEmailVerification, "ana@example.com", "Ana", "Confirm", nil, start)
	require.Equal(t, start, job.ScheduledAt)

	job.MarkFailed(errors.New("timeout"), false, start)
	assert.Equal(t, EmailStatusPending, job.Status)
	assert.Equal(t, start.Add(time.Minute), job.ScheduledAt)

	job.MarkFailed(errors.New("timeout"), false, start)
	assert.Equal(t, EmailStatusPending, job.Status)
	assert.Equal(t, start.Add(5*time.Minute), job.ScheduledAt)

	job.MarkFailed(errors.New("timeout"), false, start)
	assert.Equal(t, EmailStatusFailed, job.Status)
	assert.False(t, job.CanRetry())
	require.NotNil(t, job.ProcessedAt)
	assert.Equal(t, "timeout", job.LastError)
}

func TestEmailJob_PermanentFailureEndsImmediately(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	job := NewEmailJob(TemplatePasswordReset, "ana@example.com", "Ana", "Reset", nil, now)

	job.MarkFailed(errors.New("invalid recipient"), true, now)

	assert.Equal(t, EmailStatusFailed, job.Status)
	assert.Equal(t, 1, job.Attempts)
	assert.True(t, job.CanRetry())
}

func TestEmailJob_MarkSent(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	job := NewEmailJob(TemplatePasswordReset, "ana@example.com", "Ana", "Reset", nil, now)

	job.MarkProcessing()
	assert.Equal(t, EmailStatusProcessing, job.Status)

	job.MarkSent("re_123", now.Add(time.Second))
	assert.Equal(t, EmailStatusSent, job.Status)
	assert.Equal(t, "re_123", job.ProviderID)
	assert.Equal(t, now.Add(time.Second), *job.ProcessedAt)
}
