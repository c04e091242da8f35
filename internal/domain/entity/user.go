// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role represents the access level of a user.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleFinance  Role = "finance"
	RoleAdmin    Role = "admin"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleFinance, RoleAdmin:
		return true
	}
	return false
}

// User represents a user of the expense segmentation system.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User entity with the employee role.
func NewUser(name, email, passwordHash string) *User {
	now := time.Now().UTC()

	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleEmployee,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
