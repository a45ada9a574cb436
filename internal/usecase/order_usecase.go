package usecase

import (
	"context"

	"solarjuice/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput represents the input for placing an order
type CreateOrderInput struct {
	ShopID     uuid.UUID `json:"shop_id"`
	GlassCount int       `json:"glass_count"`
}

// ShopOrder is an order as the shopkeeper sees it
type ShopOrder struct {
	*entity.Order
	ShortID          string `json:"short_id"`
	SugarcanesNeeded int    `json:"sugarcanes_needed"`
}

// OrderUsecase defines the order lifecycle use cases
type OrderUsecase interface {
	CreateOrder(ctx context.Context, customerID uuid.UUID, input *CreateOrderInput) (*entity.Order, error)

	// ProcessOrder and CompleteOrder move the order one step forward.
	ProcessOrder(ctx context.Context, shopkeeperID, orderID uuid.UUID) (*entity.Order, error)
	CompleteOrder(ctx context.Context, shopkeeperID, orderID uuid.UUID) (*entity.Order, error)

	// Both listings are newest first.
	ListShopOrders(ctx context.Context, shopkeeperID uuid.UUID) ([]*ShopOrder, error)
	ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)
}
