// Package repository defines the interfaces for the state layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"solarjuice/internal/domain/entity"
	"solarjuice/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserEmailTaken is returned by Create when the email is already registered.
	ErrUserEmailTaken = errors.New("user email already registered")
)

// UserRepository defines the standard operations for user storage.
type UserRepository interface {
	// Create stores a new user. Emails are unique across all roles.
	Create(ctx context.Context, user *entity.User) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail matches the email case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByEmailAndRole is the login lookup: an account only signs in under its own role.
	FindByEmailAndRole(ctx context.Context, email string, role entity.Role) (*entity.User, error)
}
