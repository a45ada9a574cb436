package repository

import (
	"context"

	"solarjuice/internal/domain/entity"
	"solarjuice/internal/errors"

	"github.com/google/uuid"
)

// ErrShopNotFound is returned when no shop matches the lookup.
var ErrShopNotFound = errors.New("shop not found")

// ShopRepository stores shops created by registration approval.
type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// FindByOwner returns the shops owned by the given shopkeeper, oldest first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Shop, error)

	// ListApproved returns every approved shop in creation order.
	ListApproved(ctx context.Context) ([]*entity.Shop, error)

	// Update applies fn to the stored shop. Nothing is written if fn fails.
	Update(ctx context.Context, id uuid.UUID, fn func(*entity.Shop) error) (*entity.Shop, error)
}
