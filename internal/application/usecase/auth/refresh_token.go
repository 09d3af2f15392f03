package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
)

// RefreshTokenInput represents the input for token refresh.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput represents the output of token refresh.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// RefreshTokenUseCase rotates a refresh token: the presented token is
// revoked and a fresh pair is issued.
type RefreshTokenUseCase struct {
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewRefreshTokenUseCase creates a new RefreshTokenUseCase instance.
func NewRefreshTokenUseCase(userRepo adapter.UserRepository, tokenService adapter.TokenService) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute performs the token refresh.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error) {
	claims, err := uc.tokenService.ParseRefreshToken(ctx, input.RefreshToken)
	switch {
	case errors.Is(err, domainerror.ErrTokenRevoked):
		return nil, rejectedRefresh("refresh token has been revoked", err)
	case errors.Is(err, domainerror.ErrInvalidToken), errors.Is(err, domainerror.ErrExpiredToken):
		return nil, rejectedRefresh("invalid or expired refresh token", err)
	case err != nil:
		return nil, fmt.Errorf("failed to check refresh token: %w", err)
	}

	user, err := uc.userRepo.FindByID(ctx, claims.UserID)
	if err != nil && !errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to load token owner: %w", err)
	}
	if user == nil || !user.IsActive {
		_ = uc.tokenService.RevokeAllRefreshTokens(ctx, claims.UserID)
		return nil, rejectedRefresh("refresh token owner is no longer active", domainerror.ErrInvalidToken)
	}

	if err := uc.tokenService.RevokeRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	tokenPair, err := uc.tokenService.IssueTokens(ctx, user.ID, user.Email, false)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new tokens: %w", err)
	}

	return &RefreshTokenOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	}, nil
}

func rejectedRefresh(message string, err error) error {
	return domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, message, err)
}
