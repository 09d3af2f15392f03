package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/reports-api/internal/domain/entity"
	"github.com/finance-tracker/reports-api/internal/domain/report"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Amount accepts a JSON number or a decimal string.
type CreateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Description string           `json:"description"`
	Type        string           `json:"type"`
	Category    string           `json:"category"`
	Date        string           `json:"date"`
}

// UpdateTransactionRequest represents the request body for a partial update.
// Omitted fields keep their current value.
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
	Type        *string          `json:"type,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Date        *string          `json:"date,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		UserID:      t.UserID.String(),
		Amount:      t.Amount.StringFixed(2),
		Description: t.Description,
		Type:        string(t.Type),
		Category:    t.Category,
		Date:        t.Date.Format(report.DateLayout),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToTransactionResponses converts transactions, never returning nil.
func ToTransactionResponses(transactions []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = ToTransactionResponse(t)
	}
	return responses
}

// ToTransactionListResponse wraps transactions with their count.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	return TransactionListResponse{
		Transactions: ToTransactionResponses(transactions),
		Count:        len(transactions),
	}
}
