// Package adapters holds the credential and insight implementations of the
// application ports.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
	"github.com/finance-tracker/reports-api/internal/integration/persistence"
)

const (
	tokenIssuer = "finance-reports"

	kindAccess  = "access"
	kindRefresh = "refresh"

	// rememberMeFactor stretches both lifetimes for "remember me" sign-ins.
	rememberMeFactor = 4
)

// TokenDurations configures token lifetimes.
type TokenDurations struct {
	Access  time.Duration
	Refresh time.Duration
}

// DefaultTokenDurations returns the lifetimes used when none are configured.
func DefaultTokenDurations() TokenDurations {
	return TokenDurations{
		Access:  15 * time.Minute,
		Refresh: 7 * 24 * time.Hour,
	}
}

// sessionClaims is the JWT payload of both token kinds.
type sessionClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenService signs HS256 session tokens and tracks refresh tokens in a
// RefreshTokenStore.
type TokenService struct {
	secret    []byte
	durations TokenDurations
	store     persistence.RefreshTokenStore
	now       func() time.Time
}

var _ adapter.TokenService = (*TokenService)(nil)

// NewTokenService fills zero durations from DefaultTokenDurations.
func NewTokenService(secret string, durations TokenDurations, store persistence.RefreshTokenStore) *TokenService {
	defaults := DefaultTokenDurations()
	if durations.Access <= 0 {
		durations.Access = defaults.Access
	}
	if durations.Refresh <= 0 {
		durations.Refresh = defaults.Refresh
	}
	return &TokenService{
		secret:    []byte(secret),
		durations: durations,
		store:     store,
		now:       time.Now,
	}
}

func (s *TokenService) IssueTokens(ctx context.Context, userID uuid.UUID, email string, rememberMe bool) (*adapter.TokenPair, error) {
	access, refresh := s.durations.Access, s.durations.Refresh
	if rememberMe {
		access *= rememberMeFactor
		refresh *= rememberMeFactor
	}

	issuedAt := s.now().UTC()
	accessToken, err := s.sign(userID, email, kindAccess, issuedAt, access)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refreshToken, err := s.sign(userID, email, kindRefresh, issuedAt, refresh)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	if err := s.store.Save(ctx, refreshToken, userID, issuedAt, issuedAt.Add(refresh)); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &adapter.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *TokenService) ParseAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return s.parse(token, kindAccess)
}

func (s *TokenService) ParseRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims, err := s.parse(token, kindRefresh)
	if err != nil {
		return nil, err
	}
	live, err := s.store.IsLive(ctx, token, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if !live {
		return nil, domainerror.ErrTokenRevoked
	}
	return claims, nil
}

func (s *TokenService) RevokeRefreshToken(ctx context.Context, token string) error {
	return s.store.Revoke(ctx, token)
}

func (s *TokenService) RevokeAllRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	return s.store.RevokeForUser(ctx, userID)
}

// PurgeExpired deletes stored refresh tokens whose lifetime is over.
func (s *TokenService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.store.DeleteExpired(ctx, s.now())
}

// RunPurger calls PurgeExpired every interval until ctx is done.
func (s *TokenService) RunPurger(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.PurgeExpired(ctx)
			if err != nil {
				slog.Error("Failed to purge expired refresh tokens", "error", err)
				continue
			}
			if removed > 0 {
				slog.Info("Purged expired refresh tokens", "count", removed)
			}
		}
	}
}

// sign mints a token with a random jti so two tokens issued in the same
// second still differ.
func (s *TokenService) sign(userID uuid.UUID, email, kind string, issuedAt time.Time, ttl time.Duration) (string, error) {
	claims := sessionClaims{
		UserID:    userID.String(),
		Email:     email,
		TokenType: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *TokenService) parse(raw, kind string) (*adapter.TokenClaims, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, fmt.Errorf("%w: %w", domainerror.ErrExpiredToken, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", domainerror.ErrInvalidToken, err)
	}

	if claims.TokenType != kind {
		return nil, fmt.Errorf("%w: not a %s token", domainerror.ErrInvalidToken, kind)
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad user id: %w", domainerror.ErrInvalidToken, err)
	}

	return &adapter.TokenClaims{
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
