package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/reports-api/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByUser retrieves all goals for a given user, most recent period first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// FindByPeriod retrieves the user's goal for a month.
	// Returns domainerror.ErrGoalNotFound when there is none.
	FindByPeriod(ctx context.Context, userID uuid.UUID, month, year int) (*entity.Goal, error)

	// ExistsByPeriod checks if the user already has a goal for the month.
	ExistsByPeriod(ctx context.Context, userID uuid.UUID, month, year int) (bool, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete permanently removes a goal from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
