package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	"github.com/finance-tracker/reports-api/internal/domain/entity"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
	"github.com/finance-tracker/reports-api/internal/domain/report"
)

// ListTransactionsInput represents the input for listing transactions.
// Month and Year must be given together; when both are nil every
// transaction of the user is returned.
type ListTransactionsInput struct {
	UserID uuid.UUID
	Month  *int
	Year   *int
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	var (
		transactions []*entity.Transaction
		err          error
	)

	switch {
	case input.Month == nil && input.Year == nil:
		transactions, err = uc.transactionRepo.FindByUser(ctx, input.UserID)
	case input.Month != nil && input.Year != nil:
		if report.ValidateMonth(*input.Month) != nil || report.ValidateYear(*input.Year) != nil {
			return nil, invalidPeriod()
		}
		transactions, err = uc.transactionRepo.FindByPeriod(ctx, input.UserID, *input.Month, *input.Year)
	default:
		return nil, invalidPeriod()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	if transactions == nil {
		transactions = []*entity.Transaction{}
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}

func invalidPeriod() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeInvalidTransactionPeriod,
		"month must be between 1 and 12 and year must be given with it",
		domainerror.ErrInvalidTransactionPeriod,
	)
}
