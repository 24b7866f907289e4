// Package user models staff accounts. Customers never get accounts; the
// public intake form runs on anonymous sessions.
package user

import (
	"context"
	"fmt"
	"time"
)

type User struct {
	id           uint
	email        string
	passwordHash string
	role         string
	createdAt    time.Time
	updatedAt    time.Time
}

const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

func NewUser(email, passwordHash, role string) (*User, error) {
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if role != RoleStaff && role != RoleAdmin {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	now := time.Now()
	return &User{
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(id uint, email, passwordHash, role string, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uint             { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() string         { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	u.id = id
	return nil
}

// Repository persists staff users. GetByEmail returns (nil, nil) when no
// user exists.
type Repository interface {
	Save(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
}
