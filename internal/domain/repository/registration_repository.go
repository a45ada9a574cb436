package repository

import (
	"context"

	"solarjuice/internal/domain/entity"
	"solarjuice/internal/errors"

	"github.com/google/uuid"
)

// ErrRegistrationNotFound is returned when no registration matches the lookup.
var ErrRegistrationNotFound = errors.New("shop registration not found")

// RegistrationFilter narrows registration listings. Zero values match everything.
type RegistrationFilter struct {
	Status       *entity.RegistrationStatus
	ShopkeeperID *uuid.UUID
}

// RegistrationRepository stores shop registrations.
type RegistrationRepository interface {
	Create(ctx context.Context, registration *entity.ShopRegistration) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ShopRegistration, error)

	// List returns matching registrations, newest first.
	List(ctx context.Context, filter RegistrationFilter) ([]*entity.ShopRegistration, error)

	// Update applies fn to the stored registration. Nothing is written if fn fails.
	Update(ctx context.Context, id uuid.UUID, fn func(*entity.ShopRegistration) error) (*entity.ShopRegistration, error)
}
