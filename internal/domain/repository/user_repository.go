// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fitplan/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when an email already belongs to another user.
	ErrEmailTaken = errors.New("email already in use")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// FindByID retrieves a user by identity subject.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Upsert inserts the user or refreshes its claims on conflict by id.
	Upsert(ctx context.Context, user *entity.User) error
}
