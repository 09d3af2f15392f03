package adapter

import (
	"context"

	"github.com/finance-tracker/reports-api/internal/domain/entity"
)

// EventPublisher defines the interface for announcing ledger writes.
type EventPublisher interface {
	// Publish emits the event. Implementations must be safe for concurrent use.
	Publish(ctx context.Context, event entity.LedgerEvent) error
}
