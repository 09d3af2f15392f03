package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	"github.com/finance-tracker/reports-api/internal/domain/entity"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// DeleteGoalUseCase handles goal deletion logic.
type DeleteGoalUseCase struct {
	goalRepo  adapter.GoalRepository
	publisher adapter.EventPublisher
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository, publisher adapter.EventPublisher) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo:  goalRepo,
		publisher: publisher,
	}
}

// Execute removes the goal, freeing its month for a new one.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	goal, err := loadOwned(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return err
	}

	if err := uc.goalRepo.Delete(ctx, goal.ID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	announce(ctx, uc.publisher, goal, entity.LedgerActionDeleted)
	return nil
}
