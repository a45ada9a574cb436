package usecase

import (
	"context"

	"solarjuice/internal/domain/entity"

	"github.com/google/uuid"
)

// ShopWithDistance is a shop annotated with its distance from the caller
type ShopWithDistance struct {
	*entity.Shop
	DistanceMeters float64 `json:"distance_meters"`
}

// NearbyShopsResult lists approved shops nearest first
type NearbyShopsResult struct {
	Origin       entity.Location     `json:"origin"`
	UsedFallback bool                `json:"used_fallback"` // The caller's location was missing or invalid
	Shops        []*ShopWithDistance `json:"shops"`
}

// Directions describes the route from the caller to a shop
type Directions struct {
	Shop           *entity.Shop    `json:"shop"`
	Origin         entity.Location `json:"origin"`
	Destination    entity.Location `json:"destination"`
	DistanceMeters int             `json:"distance_meters"`
}

// ShopUsecase defines the customer and shopkeeper views of shops
type ShopUsecase interface {
	// ListNearbyShops resolves origin (nil or invalid means the configured fallback).
	ListNearbyShops(ctx context.Context, origin *entity.Location) (*NearbyShopsResult, error)
	GetShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error)
	SelectShop(ctx context.Context, customerID, shopID uuid.UUID) (*entity.Shop, error)
	GetDirections(ctx context.Context, customerID, shopID uuid.UUID, origin *entity.Location) (*Directions, error)

	// GetMyShop returns the approved shop owned by the shopkeeper.
	GetMyShop(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error)

	GenerateShopQR(ctx context.Context, shopID uuid.UUID) ([]byte, error)
	ResolveShopQR(ctx context.Context, qrData string) (*entity.Shop, error)
}
