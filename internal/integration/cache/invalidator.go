package cache

import (
	"context"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	"github.com/finance-tracker/reports-api/internal/domain/entity"
)

// Invalidator is an EventPublisher that drops the event owner's cached
// reports in-process. It stands in for the message bus when AMQP is off,
// and is the handler the bus consumer calls when it is on.
type Invalidator struct {
	cache adapter.ReportCache
}

// NewInvalidator creates an Invalidator over cache.
func NewInvalidator(cache adapter.ReportCache) *Invalidator {
	return &Invalidator{cache: cache}
}

// Publish invalidates the cached reports of event.UserID.
func (i *Invalidator) Publish(ctx context.Context, event entity.LedgerEvent) error {
	if i.cache == nil {
		return nil
	}
	return i.cache.Invalidate(ctx, event.UserID)
}
