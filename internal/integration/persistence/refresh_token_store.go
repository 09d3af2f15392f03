package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/reports-api/internal/integration/persistence/model"
)

// RefreshTokenStore records issued refresh tokens so they can be revoked
// before their JWT expiry.
type RefreshTokenStore interface {
	Save(ctx context.Context, token string, userID uuid.UUID, issuedAt, expiresAt time.Time) error
	// IsLive reports whether token is on record, unrevoked and unexpired at at.
	IsLive(ctx context.Context, token string, at time.Time) (bool, error)
	Revoke(ctx context.Context, token string) error
	RevokeForUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type refreshTokenStore struct {
	db *gorm.DB
}

// NewRefreshTokenStore returns the gorm-backed RefreshTokenStore.
func NewRefreshTokenStore(db *gorm.DB) RefreshTokenStore {
	return &refreshTokenStore{db: db}
}

func (s *refreshTokenStore) Save(ctx context.Context, token string, userID uuid.UUID, issuedAt, expiresAt time.Time) error {
	return s.db.WithContext(ctx).Create(&model.RefreshTokenModel{
		ID:        uuid.New(),
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt.UTC(),
		CreatedAt: issuedAt.UTC(),
	}).Error
}

func (s *refreshTokenStore) IsLive(ctx context.Context, token string, at time.Time) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token = ? AND invalidated = ? AND expires_at > ?", token, false, at.UTC()).
		Count(&count).Error
	return count > 0, err
}

func (s *refreshTokenStore) Revoke(ctx context.Context, token string) error {
	return s.revokeWhere(ctx, "token = ?", token)
}

func (s *refreshTokenStore) RevokeForUser(ctx context.Context, userID uuid.UUID) error {
	return s.revokeWhere(ctx, "user_id = ? AND invalidated = ?", userID, false)
}

func (s *refreshTokenStore) revokeWhere(ctx context.Context, query string, args ...any) error {
	return s.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where(query, args...).
		Update("invalidated", true).Error
}

func (s *refreshTokenStore) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("expires_at <= ?", before.UTC()).
		Delete(&model.RefreshTokenModel{})
	return result.RowsAffected, result.Error
}
