package adapters

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
)

const (
	// DefaultBcryptCost is the hashing cost used in production.
	DefaultBcryptCost = 12
	// MinPasswordLength is the shortest password an account may use.
	MinPasswordLength = 6
	// bcrypt silently truncates input past 72 bytes, so longer passwords are refused.
	maxPasswordBytes = 72
)

// BcryptHasher implements adapter.PasswordHasher with bcrypt.
type BcryptHasher struct {
	cost int
}

var _ adapter.PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher uses DefaultBcryptCost when cost is outside bcrypt's range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(hash), err
}

func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (h *BcryptHasher) CheckPolicy(password string) error {
	switch {
	case len(password) < MinPasswordLength:
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	case len(password) > maxPasswordBytes:
		return fmt.Errorf("password must be at most %d bytes long", maxPasswordBytes)
	}
	return nil
}
