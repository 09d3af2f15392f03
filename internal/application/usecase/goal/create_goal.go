package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	"github.com/finance-tracker/reports-api/internal/domain/entity"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID       uuid.UUID
	TargetAmount decimal.Decimal
	TargetMonth  int
	TargetYear   int
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo  adapter.GoalRepository
	publisher adapter.EventPublisher
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, publisher adapter.EventPublisher) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo:  goalRepo,
		publisher: publisher,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if err := validateTarget(input.TargetAmount); err != nil {
		return nil, err
	}
	if err := validatePeriod(input.TargetMonth, input.TargetYear); err != nil {
		return nil, err
	}

	// One goal per month
	exists, err := uc.goalRepo.ExistsByPeriod(ctx, input.UserID, input.TargetMonth, input.TargetYear)
	if err != nil {
		return nil, fmt.Errorf("failed to check goal existence: %w", err)
	}
	if exists {
		return nil, alreadyExists()
	}

	goal := entity.NewGoal(input.UserID, input.TargetAmount, input.TargetMonth, input.TargetYear)

	// Save goal to database
	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		if errors.Is(err, domainerror.ErrGoalAlreadyExists) {
			return nil, alreadyExists()
		}
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	announce(ctx, uc.publisher, goal, entity.LedgerActionCreated)

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
