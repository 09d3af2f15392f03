// Package messaging carries ledger events over RabbitMQ.
package messaging

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/reports-api/internal/domain/entity"
)

// ledgerMessage is the wire form of entity.LedgerEvent.
type ledgerMessage struct {
	UserID     uuid.UUID           `json:"user_id"`
	Entity     entity.LedgerEntity `json:"entity"`
	Action     entity.LedgerAction `json:"action"`
	EntityID   uuid.UUID           `json:"entity_id"`
	OccurredAt time.Time           `json:"occurred_at"`
}

// EncodeEvent serializes a ledger event to JSON.
func EncodeEvent(event entity.LedgerEvent) ([]byte, error) {
	return json.Marshal(ledgerMessage{
		UserID:     event.UserID,
		Entity:     event.Entity,
		Action:     event.Action,
		EntityID:   event.EntityID,
		OccurredAt: event.OccurredAt,
	})
}

// DecodeEvent parses a ledger event and rejects messages without an owner
// or with an unknown entity or action.
func DecodeEvent(body []byte) (entity.LedgerEvent, error) {
	var msg ledgerMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return entity.LedgerEvent{}, fmt.Errorf("unmarshal ledger event: %w", err)
	}
	if msg.UserID == uuid.Nil {
		return entity.LedgerEvent{}, fmt.Errorf("ledger event has no user_id")
	}
	switch msg.Entity {
	case entity.LedgerEntityTransaction, entity.LedgerEntityGoal:
	default:
		return entity.LedgerEvent{}, fmt.Errorf("unknown ledger entity %q", msg.Entity)
	}
	switch msg.Action {
	case entity.LedgerActionCreated, entity.LedgerActionUpdated, entity.LedgerActionDeleted:
	default:
		return entity.LedgerEvent{}, fmt.Errorf("unknown ledger action %q", msg.Action)
	}

	return entity.LedgerEvent{
		UserID:     msg.UserID,
		Entity:     msg.Entity,
		Action:     msg.Action,
		EntityID:   msg.EntityID,
		OccurredAt: msg.OccurredAt,
	}, nil
}
