package repository

import (
	"context"

	"solarjuice/internal/domain/entity"
	"solarjuice/internal/errors"

	"github.com/google/uuid"
)

// ErrMachineNotFound is returned when no machine matches the lookup.
var ErrMachineNotFound = errors.New("machine not found")

// MachineRepository stores the vending machines.
//
// Updates are read-modify-write under the store lock so that operator
// changes never overwrite a concurrent simulation tick.
type MachineRepository interface {
	Create(ctx context.Context, machine *entity.Machine) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Machine, error)
	FindByShopID(ctx context.Context, shopID uuid.UUID) (*entity.Machine, error)
	List(ctx context.Context) ([]*entity.Machine, error)

	// Update applies fn to the stored machine. Nothing is written if fn fails.
	Update(ctx context.Context, id uuid.UUID, fn func(*entity.Machine) error) (*entity.Machine, error)

	// UpdateAll replaces every machine with fn(machine) in a single snapshot swap
	// and returns the new values.
	UpdateAll(ctx context.Context, fn func(entity.Machine) entity.Machine) ([]entity.Machine, error)
}
