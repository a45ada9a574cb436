package impl

import (
	"testing"

	"solarjuice/internal/domain/entity"
	domainerrors "solarjuice/internal/domain/errors"
	"solarjuice/internal/infra/persistence/memory"
	"solarjuice/internal/infra/qrcode"
	"solarjuice/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestShopService(t *testing.T) (usecase.ShopUsecase, *testEnv) {
	t.Helper()

	env := newTestEnv(t)
	svc := NewShopService(ShopServiceParams{
		ShopRepo:  env.shops,
		QRService: qrcode.NewQRCodeServiceWith(128, "medium"),
		Effects:   env.effects,
		Config:    env.config,
		Logger:    env.logger,
	})

	return svc, env
}

func TestShopService_ListNearbyShops_Fallback(t *testing.T) {
	svc, _ := createTestShopService(t)

	result, err := svc.ListNearbyShops(t.Context(), nil)
	require.NoError(t, err)

	assert.True(t, result.UsedFallback)
	assert.Equal(t, entity.Location{Lat: 28.6139, Lng: 77.2090}, result.Origin)
	require.Len(t, result.Shops, 2)
	assert.Equal(t, memory.SeedShop1ID, result.Shops[0].ID)
	assert.InDelta(t, 0, result.Shops[0].DistanceMeters, 0.001)
	assert.InDelta(t, 1005, result.Shops[1].DistanceMeters, 5)
}

func TestShopService_ListNearbyShops_SortedFromOrigin(t *testing.T) {
	svc, _ := createTestShopService(t)

	result, err := svc.ListNearbyShops(t.Context(), &entity.Location{Lat: 28.6300, Lng: 77.2080})
	require.NoError(t, err)

	assert.False(t, result.UsedFallback)
	require.Len(t, result.Shops, 2)
	assert.Equal(t, memory.SeedShop2ID, result.Shops[0].ID)
	assert.Less(t, result.Shops[0].DistanceMeters, result.Shops[1].DistanceMeters)
}

func TestShopService_ListNearbyShops_InvalidLocationFallsBack(t *testing.T) {
	svc, _ := createTestShopService(t)

	result, err := svc.ListNearbyShops(t.Context(), &entity.Location{Lat: 123, Lng: 77})
	require.NoError(t, err)
	assert.True(t, result.UsedFallback)
}

func TestShopService_ListNearbyShops_Radius(t *testing.T) {
	svc, env := createTestShopService(t)
	env.config.Geolocation.NearbyRadiusKm = 0.5
	svc = NewShopService(ShopServiceParams{
		ShopRepo: env.shops,
		Effects:  env.effects,
		Config:   env.config,
		Logger:   env.logger,
	})

	result, err := svc.ListNearbyShops(t.Context(), nil)
	require.NoError(t, err)
	require.Len(t, result.Shops, 1)
	assert.Equal(t, memory.SeedShop1ID, result.Shops[0].ID)
}

func TestShopService_ListNearbyShops_RadiusAcrossBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		origin entity.Location
		shop   entity.Location
	}{
		{"east of antimeridian", entity.Location{Lat: -17, Lng: 179.95}, entity.Location{Lat: -17, Lng: -179.95}},
		{"west of antimeridian", entity.Location{Lat: -17, Lng: -179.95}, entity.Location{Lat: -17, Lng: 179.95}},
		{"across the north pole", entity.Location{Lat: 89.9, Lng: 0}, entity.Location{Lat: 89.9, Lng: 180}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.config.Geolocation.NearbyRadiusKm = 50
			svc := NewShopService(ShopServiceParams{
				ShopRepo: env.shops,
				Effects:  env.effects,
				Config:   env.config,
				Logger:   env.logger,
			})

			shop := &entity.Shop{
				ID:         uuid.New(),
				Name:       "Edge Juice",
				OwnerID:    memory.SeedShopkeeper1ID,
				Location:   tt.shop,
				IsApproved: true,
			}
			require.NoError(t, env.shops.Create(t.Context(), shop))

			result, err := svc.ListNearbyShops(t.Context(), &tt.origin)
			require.NoError(t, err)
			require.Len(t, result.Shops, 1)
			assert.Equal(t, shop.ID, result.Shops[0].ID)
			assert.Less(t, result.Shops[0].DistanceMeters, 50_000.0)
		})
	}
}

func TestSearchBounds(t *testing.T) {
	inside := func(bounds []orb.Bound, lat, lng float64) bool {
		return withinAny(bounds, orb.Point{lng, lat})
	}

	plain := searchBounds(entity.Location{Lat: 28.6, Lng: 77.2}, 1000)
	require.Len(t, plain, 1)
	assert.True(t, inside(plain, 28.6, 77.205))
	assert.False(t, inside(plain, 28.6, 77.3))

	wrapped := searchBounds(entity.Location{Lat: 0, Lng: 179.9}, 50_000)
	require.Len(t, wrapped, 2)
	assert.True(t, inside(wrapped, 0, -179.9))
	assert.True(t, inside(wrapped, 0, 179.8))
	assert.False(t, inside(wrapped, 0, 0))

	polar := searchBounds(entity.Location{Lat: 89.9, Lng: 10}, 50_000)
	require.Len(t, polar, 1)
	assert.True(t, inside(polar, 89.9, -170))
	assert.False(t, inside(polar, 80, 10))
}

func TestShopService_SelectShop(t *testing.T) {
	svc, env := createTestShopService(t)

	shop, err := svc.SelectShop(t.Context(), memory.SeedCustomer1ID, memory.SeedShop2ID)
	require.NoError(t, err)
	assert.Equal(t, "Solar Sips", shop.Name)

	toasts := env.notifier.toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, memory.SeedCustomer1ID, toasts[0].RecipientID)
	assert.Equal(t, "Shop selected", toasts[0].Title)
	assert.Equal(t, "You've selected Solar Sips", toasts[0].Description)

	_, err = svc.SelectShop(t.Context(), memory.SeedCustomer1ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestShopService_GetDirections(t *testing.T) {
	svc, env := createTestShopService(t)

	directions, err := svc.GetDirections(t.Context(), memory.SeedCustomer1ID, memory.SeedShop2ID, nil)
	require.NoError(t, err)

	assert.Equal(t, entity.Location{Lat: 28.6139, Lng: 77.2090}, directions.Origin)
	assert.Equal(t, entity.Location{Lat: 28.6229, Lng: 77.2080}, directions.Destination)
	assert.InDelta(t, 1005, directions.DistanceMeters, 5)

	toasts := env.notifier.toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "Directions", toasts[0].Title)
	assert.Contains(t, toasts[0].Description, "Directions to Solar Sips (")
	assert.Contains(t, toasts[0].Description, " meters)")
}

func TestShopService_GetMyShop(t *testing.T) {
	svc, _ := createTestShopService(t)

	shop, err := svc.GetMyShop(t.Context(), memory.SeedShopkeeper2ID)
	require.NoError(t, err)
	assert.Equal(t, memory.SeedShop2ID, shop.ID)

	_, err = svc.GetMyShop(t.Context(), memory.SeedCustomer1ID)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestShopService_QRCodeRoundTrip(t *testing.T) {
	svc, _ := createTestShopService(t)

	png, err := svc.GenerateShopQR(t.Context(), memory.SeedShop1ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])

	shop, err := svc.ResolveShopQR(t.Context(), `{"shop_id":"`+memory.SeedShop1ID.String()+`","type":"shop"}`)
	require.NoError(t, err)
	assert.Equal(t, memory.SeedShop1ID, shop.ID)

	_, err = svc.ResolveShopQR(t.Context(), "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQRCode)
}
