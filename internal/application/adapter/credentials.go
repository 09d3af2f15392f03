package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair is handed to a client when it signs in or rotates its session.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims identifies the user a token was issued to.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService issues and checks session tokens. A refresh token is
// accepted until it is revoked, which happens on rotation and on logout.
type TokenService interface {
	IssueTokens(ctx context.Context, userID uuid.UUID, email string, rememberMe bool) (*TokenPair, error)

	// ParseAccessToken fails with ErrExpiredToken for an expired token and
	// ErrInvalidToken for anything else it cannot accept.
	ParseAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// ParseRefreshToken additionally fails with ErrTokenRevoked when the
	// token is no longer on record as live.
	ParseRefreshToken(ctx context.Context, token string) (*TokenClaims, error)

	RevokeRefreshToken(ctx context.Context, token string) error
	RevokeAllRefreshTokens(ctx context.Context, userID uuid.UUID) error
}

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
	// CheckPolicy rejects passwords that may not be used for an account.
	CheckPolicy(password string) error
}
