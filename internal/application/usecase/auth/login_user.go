package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	"github.com/finance-tracker/reports-api/internal/domain/entity"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	userRepo     adapter.UserRepository
	passwords    adapter.PasswordHasher
	tokenService adapter.TokenService
	now          func() time.Time
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwords adapter.PasswordHasher,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:     userRepo,
		passwords:    passwords,
		tokenService: tokenService,
		now:          time.Now,
	}
}

// Execute performs the user login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	// Find user by email
	user, err := uc.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		// Return generic error to prevent email enumeration
		return nil, invalidCredentials()
	}

	if !user.IsActive {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeAccountInactive,
			"account is deactivated",
			domainerror.ErrAccountInactive,
		)
	}

	// Verify password
	if err := uc.passwords.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, invalidCredentials()
	}

	user.RecordLogin(uc.now().UTC())
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to record last login: %w", err)
	}

	// Generate tokens
	tokenPair, err := uc.tokenService.IssueTokens(ctx, user.ID, user.Email, input.RememberMe)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &LoginUserOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

func invalidCredentials() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)
}
