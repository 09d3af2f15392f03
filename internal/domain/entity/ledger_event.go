package entity

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEntity names the kind of record a ledger event refers to.
type LedgerEntity string

const (
	LedgerEntityTransaction LedgerEntity = "transaction"
	LedgerEntityGoal        LedgerEntity = "goal"
)

// LedgerAction names the write that happened.
type LedgerAction string

const (
	LedgerActionCreated LedgerAction = "created"
	LedgerActionUpdated LedgerAction = "updated"
	LedgerActionDeleted LedgerAction = "deleted"
)

// LedgerEvent is emitted after a successful write to a user's transactions
// or goals. Consumers use it to drop derived data such as cached reports.
type LedgerEvent struct {
	UserID     uuid.UUID
	Entity     LedgerEntity
	Action     LedgerAction
	EntityID   uuid.UUID
	OccurredAt time.Time
}

// NewLedgerEvent creates a LedgerEvent stamped with the current time.
func NewLedgerEvent(userID uuid.UUID, ent LedgerEntity, action LedgerAction, entityID uuid.UUID) LedgerEvent {
	return LedgerEvent{
		UserID:     userID,
		Entity:     ent,
		Action:     action,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
}
