package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	"github.com/finance-tracker/reports-api/internal/domain/entity"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
)

func fixedClock() time.Time {
	return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
}

func newRegisterUseCase(repo *fakeUserRepo, tokens *fakeTokenService, mail adapter.EmailService) *RegisterUserUseCase {
	uc := NewRegisterUserUseCase(repo, fakeHasher{}, tokens, mail)
	uc.now = fixedClock
	return uc
}

func TestRegisterUser(t *testing.T) {
	tests := []struct {
		name     string
		input    RegisterUserInput
		wantCode domainerror.AuthErrorCode
	}{
		{
			name:  "valid registration",
			input: RegisterUserInput{Email: "  Ana@Example.com ", Name: "Ana", Password: "secret1", DateOfBirth: "1990-04-01"},
		},
		{
			name:     "missing name",
			input:    RegisterUserInput{Email: "ana@example.com", Password: "secret1"},
			wantCode: domainerror.ErrCodeMissingFields,
		},
		{
			name:     "invalid email",
			input:    RegisterUserInput{Email: "not-an-email", Name: "Ana", Password: "secret1"},
			wantCode: domainerror.ErrCodeInvalidEmail,
		},
		{
			name:     "weak password",
			input:    RegisterUserInput{Email: "ana@example.com", Name: "Ana", Password: "123"},
			wantCode: domainerror.ErrCodeWeakPassword,
		},
		{
			name:     "malformed date of birth",
			input:    RegisterUserInput{Email: "ana@example.com", Name: "Ana", Password: "secret1", DateOfBirth: "01/04/1990"},
			wantCode: domainerror.ErrCodeInvalidDateOfBirth,
		},
		{
			name:     "date of birth in the future",
			input:    RegisterUserInput{Email: "ana@example.com", Name: "Ana", Password: "secret1", DateOfBirth: "2030-01-01"},
			wantCode: domainerror.ErrCodeInvalidDateOfBirth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			mail := &fakeEmailService{}
			uc := newRegisterUseCase(repo, newFakeTokenService(), mail)

			out, err := uc.Execute(context.Background(), tt.input)
			if tt.wantCode != "" {
				if got := authCode(t, err); got != tt.wantCode {
					t.Fatalf("error code = %q, want %q (err = %v)", got, tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.User.Email != "ana@example.com" {
				t.Errorf("email = %q, want lowercased and trimmed", out.User.Email)
			}
			if out.User.PasswordHash != "hashed:secret1" {
				t.Errorf("password was not hashed")
			}
			if out.User.DateOfBirth == nil || out.User.DateOfBirth.Format("2006-01-02") != "1990-04-01" {
				t.Errorf("date of birth = %v", out.User.DateOfBirth)
			}
			if out.AccessToken == "" || out.RefreshToken == "" {
				t.Error("expected a token pair")
			}
			if len(mail.welcomes) != 1 || mail.welcomes[0].UserName != "Ana" {
				t.Errorf("welcome emails = %+v", mail.welcomes)
			}
		})
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	existing := entity.NewUser("ana@example.com", "Ana", "hashed:secret1", nil)
	uc := newRegisterUseCase(newFakeUserRepo(existing), newFakeTokenService(), nil)

	_, err := uc.Execute(context.Background(), RegisterUserInput{
		Email: "ANA@example.com", Name: "Other", Password: "secret1",
	})
	if got := authCode(t, err); got != domainerror.ErrCodeEmailExists {
		t.Fatalf("error code = %q, want %q", got, domainerror.ErrCodeEmailExists)
	}
	if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
		t.Error("error should wrap ErrEmailAlreadyExists")
	}
}

func TestRegisterUser_WelcomeEmailFailureIsIgnored(t *testing.T) {
	mail := &fakeEmailService{err: errors.New("queue down")}
	uc := newRegisterUseCase(newFakeUserRepo(), newFakeTokenService(), mail)

	_, err := uc.Execute(context.Background(), RegisterUserInput{
		Email: "ana@example.com", Name: "Ana", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("registration should succeed when the email queue fails: %v", err)
	}
}

func TestLoginUser(t *testing.T) {
	active := entity.NewUser("ana@example.com", "Ana", "hashed:secret1", nil)
	inactive := entity.NewUser("bob@example.com", "Bob", "hashed:secret1", nil)
	inactive.IsActive = false

	tests := []struct {
		name     string
		input    LoginUserInput
		wantCode domainerror.AuthErrorCode
	}{
		{"valid credentials", LoginUserInput{Email: "ANA@example.com", Password: "secret1", RememberMe: true}, ""},
		{"wrong password", LoginUserInput{Email: "ana@example.com", Password: "nope"}, domainerror.ErrCodeInvalidCredentials},
		{"unknown email", LoginUserInput{Email: "eve@example.com", Password: "secret1"}, domainerror.ErrCodeInvalidCredentials},
		{"inactive account", LoginUserInput{Email: "bob@example.com", Password: "secret1"}, domainerror.ErrCodeAccountInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo(active, inactive)
			tokens := newFakeTokenService()
			uc := NewLoginUserUseCase(repo, fakeHasher{}, tokens)
			uc.now = fixedClock

			out, err := uc.Execute(context.Background(), tt.input)
			if tt.wantCode != "" {
				if got := authCode(t, err); got != tt.wantCode {
					t.Fatalf("error code = %q, want %q", got, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.User.LastLogin == nil || !out.User.LastLogin.Equal(fixedClock()) {
				t.Errorf("last login = %v, want %v", out.User.LastLogin, fixedClock())
			}
			if repo.updates != 1 {
				t.Errorf("updates = %d, want 1", repo.updates)
			}
			if !tokens.lastRemember {
				t.Error("remember me flag was not forwarded")
			}
		})
	}
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()
	user := entity.NewUser("ana@example.com", "Ana", "hashed:secret1", nil)
	repo := newFakeUserRepo(user)
	tokens := newFakeTokenService()
	pair, _ := tokens.IssueTokens(ctx, user.ID, user.Email, false)

	uc := NewRefreshTokenUseCase(repo, tokens)

	out, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RefreshToken == pair.RefreshToken {
		t.Error("refresh token was not rotated")
	}

	// The rotated token cannot be used twice.
	_, err = uc.Execute(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken})
	if got := authCode(t, err); got != domainerror.ErrCodeInvalidToken {
		t.Errorf("reuse error code = %q, want %q", got, domainerror.ErrCodeInvalidToken)
	}

	_, err = uc.Execute(ctx, RefreshTokenInput{RefreshToken: "garbage"})
	if got := authCode(t, err); got != domainerror.ErrCodeInvalidToken {
		t.Errorf("garbage error code = %q, want %q", got, domainerror.ErrCodeInvalidToken)
	}
}

func TestRefreshToken_InactiveOwner(t *testing.T) {
	ctx := context.Background()
	user := entity.NewUser("ana@example.com", "Ana", "hashed:secret1", nil)
	user.IsActive = false
	tokens := newFakeTokenService()
	pair, _ := tokens.IssueTokens(ctx, user.ID, user.Email, false)

	_, err := NewRefreshTokenUseCase(newFakeUserRepo(user), tokens).Execute(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken})
	if got := authCode(t, err); got != domainerror.ErrCodeInvalidToken {
		t.Fatalf("error code = %q, want %q", got, domainerror.ErrCodeInvalidToken)
	}
	if len(tokens.revokedAll) != 1 || tokens.revokedAll[0] != user.ID {
		t.Errorf("revokedAll = %v, want [%s]", tokens.revokedAll, user.ID)
	}
}

func TestLogoutUser(t *testing.T) {
	ctx := context.Background()
	user := entity.NewUser("ana@example.com", "Ana", "hashed:secret1", nil)
	tokens := newFakeTokenService()
	first, _ := tokens.IssueTokens(ctx, user.ID, user.Email, false)
	second, _ := tokens.IssueTokens(ctx, user.ID, user.Email, false)

	uc := NewLogoutUserUseCase(tokens)

	if _, err := uc.Execute(ctx, LogoutUserInput{RefreshToken: first.RefreshToken}); err != nil {
		t.Fatalf("logout error: %v", err)
	}
	if tokens.live(first.RefreshToken) {
		t.Error("logged out token is still valid")
	}
	if !tokens.live(second.RefreshToken) {
		t.Error("single logout revoked another session")
	}

	out, err := uc.Execute(ctx, LogoutUserInput{RefreshToken: second.RefreshToken, AllDevices: true})
	if err != nil {
		t.Fatalf("logout all error: %v", err)
	}
	if out.Message != "Logged out from all devices" {
		t.Errorf("message = %q", out.Message)
	}
	if tokens.live(second.RefreshToken) {
		t.Error("all-devices logout left a token valid")
	}
}

func TestGetProfile(t *testing.T) {
	user := entity.NewUser("ana@example.com", "Ana", "hashed:secret1", nil)
	uc := NewGetProfileUseCase(newFakeUserRepo(user))

	got, err := uc.Execute(context.Background(), user.ID)
	if err != nil || got.ID != user.ID {
		t.Fatalf("Execute() = %v, %v", got, err)
	}

	_, err = uc.Execute(context.Background(), entity.NewUser("x@example.com", "X", "", nil).ID)
	if code := authCode(t, err); code != domainerror.ErrCodeUserNotFound {
		t.Errorf("error code = %q, want %q", code, domainerror.ErrCodeUserNotFound)
	}
}
