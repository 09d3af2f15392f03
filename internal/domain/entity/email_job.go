package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus is the delivery state of a queued email.
type EmailStatus string

const (
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusProcessing EmailStatus = "processing"
	EmailStatusSent       EmailStatus = "sent"
	EmailStatusFailed     EmailStatus = "failed"
)

// EmailTemplateType selects the renderer for a queued email.
type EmailTemplateType string

const (
	TemplateWelcome       EmailTemplateType = "welcome"
	TemplateMonthlyReport EmailTemplateType = "monthly_report"
)

// DefaultEmailAttempts is how many sends a job gets before it is abandoned.
const DefaultEmailAttempts = 3

// emailRetryDelays is indexed by the number of attempts already made.
var emailRetryDelays = []time.Duration{0, time.Minute, 5 * time.Minute}

// EmailJob is an outgoing email persisted until a worker delivers it.
type EmailJob struct {
	ID             uuid.UUID
	TemplateType   EmailTemplateType
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]interface{}
	Status         EmailStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ResendID       string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewEmailJob returns a pending job that is due immediately at now.
func NewEmailJob(templateType EmailTemplateType, recipientEmail, recipientName, subject string, data map[string]interface{}, now time.Time) *EmailJob {
	now = now.UTC()
	return &EmailJob{
		ID:             uuid.New(),
		TemplateType:   templateType,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		TemplateData:   data,
		Status:         EmailStatusPending,
		MaxAttempts:    DefaultEmailAttempts,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkProcessing claims the job for a send attempt.
func (e *EmailJob) MarkProcessing() {
	e.Status = EmailStatusProcessing
}

// MarkSent records a successful delivery with the provider's message id.
func (e *EmailJob) MarkSent(resendID string, at time.Time) {
	at = at.UTC()
	e.Status = EmailStatusSent
	e.ResendID = resendID
	e.ProcessedAt = &at
}

// MarkFailed records a failed attempt. The job is rescheduled unless the
// failure is permanent or it has used up its attempts.
func (e *EmailJob) MarkFailed(err error, permanent bool, at time.Time) {
	at = at.UTC()
	e.Attempts++
	e.LastError = err.Error()

	if permanent || e.Attempts >= e.MaxAttempts {
		e.Status = EmailStatusFailed
		e.ProcessedAt = &at
		return
	}

	e.Status = EmailStatusPending
	e.ScheduledAt = at.Add(RetryDelay(e.Attempts))
}

// RetryDelay is the wait before the next send once attempts sends have failed.
func RetryDelay(attempts int) time.Duration {
	if attempts < len(emailRetryDelays) {
		return emailRetryDelays[attempts]
	}
	return emailRetryDelays[len(emailRetryDelays)-1]
}
