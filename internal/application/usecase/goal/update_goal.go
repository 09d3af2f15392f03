package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	"github.com/finance-tracker/reports-api/internal/domain/entity"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update.
// Nil fields are left unchanged.
type UpdateGoalInput struct {
	GoalID       uuid.UUID
	UserID       uuid.UUID
	TargetAmount *decimal.Decimal
	TargetMonth  *int
	TargetYear   *int
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo  adapter.GoalRepository
	publisher adapter.EventPublisher
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, publisher adapter.EventPublisher) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo:  goalRepo,
		publisher: publisher,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := loadOwned(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.TargetAmount != nil {
		if err := validateTarget(*input.TargetAmount); err != nil {
			return nil, err
		}
		goal.TargetAmount = *input.TargetAmount
	}

	month, year := goal.TargetMonth, goal.TargetYear
	if input.TargetMonth != nil {
		month = *input.TargetMonth
	}
	if input.TargetYear != nil {
		year = *input.TargetYear
	}

	// Moving the goal must not collide with another goal of the user
	if month != goal.TargetMonth || year != goal.TargetYear {
		if err := validatePeriod(month, year); err != nil {
			return nil, err
		}
		exists, err := uc.goalRepo.ExistsByPeriod(ctx, input.UserID, month, year)
		if err != nil {
			return nil, fmt.Errorf("failed to check goal existence: %w", err)
		}
		if exists {
			return nil, alreadyExists()
		}
		goal.TargetMonth, goal.TargetYear = month, year
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		if errors.Is(err, domainerror.ErrGoalAlreadyExists) {
			return nil, alreadyExists()
		}
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	announce(ctx, uc.publisher, goal, entity.LedgerActionUpdated)

	return &UpdateGoalOutput{Goal: goal}, nil
}
