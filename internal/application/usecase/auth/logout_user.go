package auth

import (
	"context"
	"fmt"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	RefreshToken string
	// AllDevices revokes every refresh token of the token's owner.
	AllDevices bool
}

// LogoutUserOutput represents the output of user logout.
type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase handles user logout logic.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute performs the user logout by invalidating the refresh token.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	if input.AllDevices {
		claims, err := uc.tokenService.ParseRefreshToken(ctx, input.RefreshToken)
		if err == nil {
			if err := uc.tokenService.RevokeAllRefreshTokens(ctx, claims.UserID); err != nil {
				return nil, fmt.Errorf("failed to revoke tokens: %w", err)
			}
			return &LogoutUserOutput{Message: "Logged out from all devices"}, nil
		}
	}

	// Logging out with an unknown or already revoked token still succeeds.
	_ = uc.tokenService.RevokeRefreshToken(ctx, input.RefreshToken)

	return &LogoutUserOutput{
		Message: "Successfully logged out",
	}, nil
}
