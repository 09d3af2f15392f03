// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. Email is stored lowercased.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	DateOfBirth  *time.Time
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new active User.
func NewUser(email, name, passwordHash string, dateOfBirth *time.Time) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		DateOfBirth:  dateOfBirth,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// RecordLogin stamps the last successful login time.
func (u *User) RecordLogin(at time.Time) {
	u.LastLogin = &at
	u.UpdatedAt = at
}
