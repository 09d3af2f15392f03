package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/reports-api/internal/domain/entity"
)

// UserRepository stores accounts. Lookups of a missing account return
// ErrUserNotFound; emails are stored lowercased.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
}
