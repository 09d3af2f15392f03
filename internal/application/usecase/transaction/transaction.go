// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	"github.com/finance-tracker/reports-api/internal/domain/entity"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 255
	// MaxCategoryLength is the maximum allowed length for category names.
	MaxCategoryLength = 100
)

func validateType(t entity.TransactionType) error {
	if !t.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must not be negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	return nil
}

func validateCategory(category string) error {
	if utf8.RuneCountInString(category) > MaxCategoryLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryTooLong,
			fmt.Sprintf("category must not exceed %d characters", MaxCategoryLength),
			domainerror.ErrCategoryTooLong,
		)
	}
	return nil
}

func missingFields(fields []string) error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeMissingTransactionFields,
		"missing required fields: "+strings.Join(fields, ", "),
		nil,
	)
}

// loadOwned fetches a transaction and checks it belongs to userID.
func loadOwned(ctx context.Context, repo adapter.TransactionRepository, id, userID uuid.UUID) (*entity.Transaction, error) {
	transaction, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if transaction.UserID != userID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to access this transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	return transaction, nil
}

// announce publishes a ledger event. Failures never fail the write.
func announce(ctx context.Context, publisher adapter.EventPublisher, transaction *entity.Transaction, action entity.LedgerAction) {
	if publisher == nil {
		return
	}
	event := entity.NewLedgerEvent(transaction.UserID, entity.LedgerEntityTransaction, action, transaction.ID)
	if err := publisher.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish ledger event",
			"user_id", transaction.UserID,
			"transaction_id", transaction.ID,
			"action", action,
			"error", err,
		)
	}
}
