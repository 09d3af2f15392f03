package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/reports-api/internal/domain/entity"
)

// TransactionRepository stores ledger entries. Lists come back newest
// first: by date, then by creation time.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	Update(ctx context.Context, transaction *entity.Transaction) error
	// Delete soft-deletes; the row stops appearing in lookups and reports.
	Delete(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)
	// FindByPeriod returns entries dated within the calendar month.
	FindByPeriod(ctx context.Context, userID uuid.UUID, month, year int) ([]*entity.Transaction, error)
}
