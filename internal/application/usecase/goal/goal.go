// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	"github.com/finance-tracker/reports-api/internal/domain/entity"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
	"github.com/finance-tracker/reports-api/internal/domain/report"
)

func validateTarget(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must not be negative",
			domainerror.ErrInvalidTargetAmount,
		)
	}
	return nil
}

func validatePeriod(month, year int) error {
	if report.ValidateMonth(month) != nil {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidGoalMonth,
		)
	}
	if report.ValidateYear(year) != nil {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalYear,
			"year is out of range",
			domainerror.ErrInvalidGoalYear,
		)
	}
	return nil
}

func alreadyExists() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeGoalAlreadyExists,
		"a goal already exists for this month",
		domainerror.ErrGoalAlreadyExists,
	)
}

func notFound() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeGoalNotFound,
		"goal not found",
		domainerror.ErrGoalNotFound,
	)
}

// loadOwned fetches a goal and checks it belongs to userID.
func loadOwned(ctx context.Context, repo adapter.GoalRepository, id, userID uuid.UUID) (*entity.Goal, error) {
	goal, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if goal.UserID != userID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"not authorized to access this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	return goal, nil
}

func announce(ctx context.Context, publisher adapter.EventPublisher, goal *entity.Goal, action entity.LedgerAction) {
	if publisher == nil {
		return
	}
	event := entity.NewLedgerEvent(goal.UserID, entity.LedgerEntityGoal, action, goal.ID)
	if err := publisher.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish ledger event",
			"user_id", goal.UserID,
			"goal_id", goal.ID,
			"action", action,
			"error", err,
		)
	}
}
