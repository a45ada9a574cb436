package repository

import (
	"context"

	"solarjuice/internal/domain/entity"
	"solarjuice/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when no order matches the lookup.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository stores customer orders. List methods return newest first.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Order, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// Update applies fn to the stored order. Nothing is written if fn fails.
	Update(ctx context.Context, id uuid.UUID, fn func(*entity.Order) error) (*entity.Order, error)
}
