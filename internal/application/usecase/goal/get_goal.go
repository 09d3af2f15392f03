package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	"github.com/finance-tracker/reports-api/internal/domain/entity"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
)

// GetGoalUseCase loads a single goal owned by the caller.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{goalRepo: goalRepo}
}

// Execute returns the goal if it exists and belongs to userID.
func (uc *GetGoalUseCase) Execute(ctx context.Context, userID, goalID uuid.UUID) (*entity.Goal, error) {
	return loadOwned(ctx, uc.goalRepo, goalID, userID)
}

// GetGoalByPeriodInput represents the input for looking up a month's goal.
type GetGoalByPeriodInput struct {
	UserID uuid.UUID
	Month  int
	Year   int
}

// GetGoalByPeriodUseCase loads the goal a user set for a month.
type GetGoalByPeriodUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalByPeriodUseCase creates a new GetGoalByPeriodUseCase instance.
func NewGetGoalByPeriodUseCase(goalRepo adapter.GoalRepository) *GetGoalByPeriodUseCase {
	return &GetGoalByPeriodUseCase{goalRepo: goalRepo}
}

// Execute returns the goal for the month or a not-found error.
func (uc *GetGoalByPeriodUseCase) Execute(ctx context.Context, input GetGoalByPeriodInput) (*entity.Goal, error) {
	if err := validatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}

	goal, err := uc.goalRepo.FindByPeriod(ctx, input.UserID, input.Month, input.Year)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	return goal, nil
}
