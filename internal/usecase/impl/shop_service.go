package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"solarjuice/config"
	"solarjuice/internal/domain/calc"
	"solarjuice/internal/domain/entity"
	domainerrors "solarjuice/internal/domain/errors"
	"solarjuice/internal/domain/repository"
	"solarjuice/internal/domain/service"
	"solarjuice/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// metersPerDegreeLat is the length of one degree of latitude on the calc sphere.
const metersPerDegreeLat = calc.EarthRadiusMeters * math.Pi / 180

type shopService struct {
	shopRepo  repository.ShopRepository
	qrService service.QRCodeService
	effects   *Effects
	geo       config.GeolocationConfig
	logger    *slog.Logger
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	ShopRepo  repository.ShopRepository
	QRService service.QRCodeService
	Effects   *Effects
	Config    *config.Config
	Logger    *slog.Logger
}

// NewShopService creates a new shop service instance
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	return &shopService{
		shopRepo:  params.ShopRepo,
		qrService: params.QRService,
		effects:   params.Effects,
		geo:       params.Config.Geolocation,
		logger:    params.Logger,
	}
}

// resolveOrigin substitutes the fallback location when the caller has none.
func (s *shopService) resolveOrigin(origin *entity.Location) (entity.Location, bool) {
	if origin != nil && origin.Valid() {
		return *origin, false
	}

	return entity.Location{Lat: s.geo.FallbackLat, Lng: s.geo.FallbackLng}, true
}

func (s *shopService) ListNearbyShops(ctx context.Context, origin *entity.Location) (*usecase.NearbyShopsResult, error) {
	from, fallback := s.resolveOrigin(origin)

	shops, err := s.shopRepo.ListApproved(ctx)
	if err != nil {
		return nil, translate(err, "list approved shops")
	}

	radiusMeters := s.geo.NearbyRadiusKm * 1000
	var bounds []orb.Bound
	if radiusMeters > 0 {
		bounds = searchBounds(from, radiusMeters)
	}

	result := make([]*usecase.ShopWithDistance, 0, len(shops))
	for _, shop := range shops {
		if radiusMeters > 0 && !withinAny(bounds, shop.Location.Point()) {
			continue
		}

		d := calc.DistanceMeters(from.Lat, from.Lng, shop.Location.Lat, shop.Location.Lng)
		if radiusMeters > 0 && d > radiusMeters {
			continue
		}
		result = append(result, &usecase.ShopWithDistance{Shop: shop, DistanceMeters: d})
	}

	slices.SortStableFunc(result, func(a, b *usecase.ShopWithDistance) int {
		return cmp.Compare(a.DistanceMeters, b.DistanceMeters)
	})

	return &usecase.NearbyShopsResult{
		Origin:       from,
		UsedFallback: fallback,
		Shops:        result,
	}, nil
}

// searchBounds returns lat/lng boxes that together enclose every point
// within radiusMeters of center. A box crossing the antimeridian is split in
// two, and a box reaching a pole spans every longitude.
func searchBounds(center entity.Location, radiusMeters float64) []orb.Bound {
	dLat := radiusMeters / metersPerDegreeLat
	minLat := math.Max(-90, center.Lat-dLat)
	maxLat := math.Min(90, center.Lat+dLat)

	cosLat := math.Cos(center.Lat * math.Pi / 180)
	if center.Lat+dLat >= 90 || center.Lat-dLat <= -90 || cosLat <= 1e-9 || dLat/cosLat >= 180 {
		return []orb.Bound{{Min: orb.Point{-180, minLat}, Max: orb.Point{180, maxLat}}}
	}

	dLng := dLat / cosLat
	minLng, maxLng := center.Lng-dLng, center.Lng+dLng
	switch {
	case minLng < -180:
		return []orb.Bound{
			{Min: orb.Point{-180, minLat}, Max: orb.Point{maxLng, maxLat}},
			{Min: orb.Point{minLng + 360, minLat}, Max: orb.Point{180, maxLat}},
		}
	case maxLng > 180:
		return []orb.Bound{
			{Min: orb.Point{minLng, minLat}, Max: orb.Point{180, maxLat}},
			{Min: orb.Point{-180, minLat}, Max: orb.Point{maxLng - 360, maxLat}},
		}
	default:
		return []orb.Bound{{Min: orb.Point{minLng, minLat}, Max: orb.Point{maxLng, maxLat}}}
	}
}

func withinAny(bounds []orb.Bound, p orb.Point) bool {
	return slices.ContainsFunc(bounds, func(b orb.Bound) bool { return b.Contains(p) })
}

func (s *shopService) GetShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error) {
	shop, err := s.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return nil, translate(err, "find shop")
	}

	return shop, nil
}

// SelectShop confirms the customer's choice of an approved shop.
func (s *shopService) SelectShop(ctx context.Context, customerID, shopID uuid.UUID) (*entity.Shop, error) {
	shop, err := s.approvedShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	s.effects.toast(ctx, customerID, "Shop selected", fmt.Sprintf("You've selected %s", shop.Name),
		map[string]string{"shop_id": shop.ID.String()})

	return shop, nil
}

func (s *shopService) GetDirections(ctx context.Context, customerID, shopID uuid.UUID, origin *entity.Location) (*usecase.Directions, error) {
	shop, err := s.approvedShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	from, _ := s.resolveOrigin(origin)
	meters := int(math.Round(calc.DistanceMeters(from.Lat, from.Lng, shop.Location.Lat, shop.Location.Lng)))

	s.effects.toast(ctx, customerID, "Directions",
		fmt.Sprintf("Directions to %s (%d meters)", shop.Name, meters),
		map[string]string{"shop_id": shop.ID.String()})

	return &usecase.Directions{
		Shop:           shop,
		Origin:         from,
		Destination:    shop.Location,
		DistanceMeters: meters,
	}, nil
}

func (s *shopService) GetMyShop(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	return findOwnedShop(ctx, s.shopRepo, ownerID)
}

func (s *shopService) GenerateShopQR(ctx context.Context, shopID uuid.UUID) ([]byte, error) {
	shop, err := s.approvedShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrService.GenerateShopQR(shop.ID)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	return png, nil
}

func (s *shopService) ResolveShopQR(ctx context.Context, qrData string) (*entity.Shop, error) {
	shopID, err := s.qrService.ParseShopQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidQRCode.WithDetails(err.Error())
	}

	return s.approvedShop(ctx, shopID)
}

// approvedShop hides shops that are not approved from customers.
func (s *shopService) approvedShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error) {
	shop, err := s.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return nil, translate(err, "find shop")
	}
	if !shop.IsApproved {
		return nil, domainerrors.ErrShopNotFound
	}

	return shop, nil
}

// findOwnedShop returns the shopkeeper's first approved shop.
func findOwnedShop(ctx context.Context, shops repository.ShopRepository, ownerID uuid.UUID) (*entity.Shop, error) {
	owned, err := shops.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, translate(err, "find shops by owner")
	}

	for _, shop := range owned {
		if shop.IsApproved {
			return shop, nil
		}
	}

	return nil, domainerrors.ErrShopNotFound.WithDetails("no approved shop for this shopkeeper")
}
