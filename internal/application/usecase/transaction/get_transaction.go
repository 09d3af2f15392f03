package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	"github.com/finance-tracker/reports-api/internal/domain/entity"
)

// GetTransactionUseCase loads a single transaction owned by the caller.
type GetTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionUseCase {
	return &GetTransactionUseCase{transactionRepo: transactionRepo}
}

// Execute returns the transaction if it exists and belongs to userID.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, userID, transactionID uuid.UUID) (*entity.Transaction, error) {
	return loadOwned(ctx, uc.transactionRepo, transactionID, userID)
}
