package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a monthly savings target. A user has at most one goal per
// (TargetMonth, TargetYear).
type Goal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	TargetAmount decimal.Decimal
	TargetMonth  int
	TargetYear   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewGoal creates a new Goal entity.
func NewGoal(userID uuid.UUID, targetAmount decimal.Decimal, targetMonth, targetYear int) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:           uuid.New(),
		UserID:       userID,
		TargetAmount: targetAmount,
		TargetMonth:  targetMonth,
		TargetYear:   targetYear,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
