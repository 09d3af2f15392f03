// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	"github.com/finance-tracker/reports-api/internal/domain/entity"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
	"github.com/finance-tracker/reports-api/internal/domain/report"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Email       string
	Name        string
	Password    string
	DateOfBirth string // YYYY-MM-DD, optional
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo     adapter.UserRepository
	passwords    adapter.PasswordHasher
	tokenService adapter.TokenService
	emailService adapter.EmailService
	now          func() time.Time
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
// emailService may be nil, in which case no welcome email is queued.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwords adapter.PasswordHasher,
	tokenService adapter.TokenService,
	emailService adapter.EmailService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:     userRepo,
		passwords:    passwords,
		tokenService: tokenService,
		emailService: emailService,
		now:          time.Now,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)

	if name == "" || email == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"name, email and password are required",
			nil,
		)
	}

	// Validate email format
	if !isValidEmail(email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	// Validate password strength
	if err := uc.passwords.CheckPolicy(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			err.Error(),
			domainerror.ErrWeakPassword,
		)
	}

	dateOfBirth, err := uc.parseDateOfBirth(input.DateOfBirth)
	if err != nil {
		return nil, err
	}

	// Check if email already exists
	exists, err := uc.userRepo.EmailTaken(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, emailExistsError()
	}

	// Hash password
	passwordHash, err := uc.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(email, name, passwordHash, dateOfBirth)

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			return nil, emailExistsError()
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Generate tokens
	tokenPair, err := uc.tokenService.IssueTokens(ctx, user.ID, user.Email, false)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if uc.emailService != nil {
		welcome := adapter.QueueWelcomeInput{UserEmail: user.Email, UserName: user.Name}
		if err := uc.emailService.QueueWelcomeEmail(ctx, welcome); err != nil {
			slog.Warn("Failed to queue welcome email", "user_id", user.ID, "error", err)
		}
	}

	return &RegisterUserOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

func (uc *RegisterUserUseCase) parseDateOfBirth(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	dob, err := report.ParseDate(value)
	if err != nil || dob.After(uc.now().UTC()) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidDateOfBirth,
			"date_of_birth must be a past date in YYYY-MM-DD format",
			domainerror.ErrInvalidDateOfBirth,
		)
	}
	return &dob, nil
}

func emailExistsError() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeEmailExists,
		"email already exists",
		domainerror.ErrEmailAlreadyExists,
	)
}

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
