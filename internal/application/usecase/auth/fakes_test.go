package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	"github.com/finance-tracker/reports-api/internal/domain/entity"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*entity.User
	updates int
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{byID: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		repo.byID[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == user.Email {
			return domainerror.ErrEmailAlreadyExists
		}
	}
	r.byID[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[user.ID] = user
	r.updates++
	return nil
}

func (r *fakeUserRepo) EmailTaken(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	return err == nil, nil
}

// fakeHasher "hashes" by prefixing.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (fakeHasher) CheckPolicy(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters long")
	}
	return nil
}

type fakeTokenService struct {
	mu           sync.Mutex
	issued       int
	owners       map[string]adapter.TokenClaims
	revoked      map[string]bool
	revokedAll   []uuid.UUID
	lastRemember bool
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{
		owners:  make(map[string]adapter.TokenClaims),
		revoked: make(map[string]bool),
	}
}

func (s *fakeTokenService) IssueTokens(_ context.Context, userID uuid.UUID, email string, rememberMe bool) (*adapter.TokenPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	s.lastRemember = rememberMe
	refresh := fmt.Sprintf("refresh-%d", s.issued)
	s.owners[refresh] = adapter.TokenClaims{UserID: userID, Email: email}
	return &adapter.TokenPair{
		AccessToken:  fmt.Sprintf("access-%d", s.issued),
		RefreshToken: refresh,
	}, nil
}

func (s *fakeTokenService) ParseAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if !strings.HasPrefix(token, "access-") {
		return nil, domainerror.ErrInvalidToken
	}
	return &adapter.TokenClaims{}, nil
}

func (s *fakeTokenService) ParseRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	claims, ok := s.owners[token]
	switch {
	case !ok:
		return nil, domainerror.ErrInvalidToken
	case s.revoked[token]:
		return nil, domainerror.ErrTokenRevoked
	}
	return &claims, nil
}

func (s *fakeTokenService) RevokeRefreshToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[token] = true
	return nil
}

func (s *fakeTokenService) RevokeAllRefreshTokens(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revokedAll = append(s.revokedAll, userID)
	for token, claims := range s.owners {
		if claims.UserID == userID {
			s.revoked[token] = true
		}
	}
	return nil
}

func (s *fakeTokenService) live(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.owners[token]
	return ok && !s.revoked[token]
}

type fakeEmailService struct {
	welcomes []adapter.QueueWelcomeInput
	err      error
}

func (s *fakeEmailService) QueueWelcomeEmail(_ context.Context, input adapter.QueueWelcomeInput) error {
	if s.err != nil {
		return s.err
	}
	s.welcomes = append(s.welcomes, input)
	return nil
}

func (s *fakeEmailService) QueueMonthlyReportEmail(context.Context, adapter.QueueMonthlyReportInput) error {
	return nil
}

func authCode(t testing.TB, err error) domainerror.AuthErrorCode {
	t.Helper()
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		return authErr.Code
	}
	return ""
}
