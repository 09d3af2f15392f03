package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/reports-api/internal/domain/entity"
)

// EmailQueueRepository persists outgoing email jobs between enqueue and delivery.
type EmailQueueRepository interface {
	Create(ctx context.Context, job *entity.EmailJob) error
	Update(ctx context.Context, job *entity.EmailJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error)

	// DueJobs returns at most limit pending jobs scheduled at or before
	// asOf, earliest first.
	DueJobs(ctx context.Context, asOf time.Time, limit int) ([]*entity.EmailJob, error)

	// GetByRecipient lists an address's jobs, newest first.
	GetByRecipient(ctx context.Context, email string) ([]*entity.EmailJob, error)

	// DeleteSentBefore purges sent jobs processed before cutoff.
	DeleteSentBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
