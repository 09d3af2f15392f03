// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/reports-api/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
// One goal per user and month is enforced by idx_goals_user_period.
type GoalModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_goals_user_period,priority:1"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TargetMonth  int             `gorm:"type:smallint;not null;uniqueIndex:idx_goals_user_period,priority:3"`
	TargetYear   int             `gorm:"type:integer;not null;uniqueIndex:idx_goals_user_period,priority:2"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:           m.ID,
		UserID:       m.UserID,
		TargetAmount: m.TargetAmount,
		TargetMonth:  m.TargetMonth,
		TargetYear:   m.TargetYear,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:           goal.ID,
		UserID:       goal.UserID,
		TargetAmount: goal.TargetAmount,
		TargetMonth:  goal.TargetMonth,
		TargetYear:   goal.TargetYear,
		CreatedAt:    goal.CreatedAt,
		UpdatedAt:    goal.UpdatedAt,
	}
}
