package memory

import (
	"context"
	"time"

	"solarjuice/internal/domain/entity"
	"solarjuice/internal/domain/service"
	"solarjuice/internal/errors"

	"github.com/facebookgo/clock"
	"github.com/google/uuid"
)

// Demo ids loaded by Seed.
var (
	SeedAdminID       = uuid.MustParse("a0000000-0000-4000-8000-000000000001")
	SeedShopkeeper1ID = uuid.MustParse("a0000000-0000-4000-8000-000000000002")
	SeedShopkeeper2ID = uuid.MustParse("a0000000-0000-4000-8000-000000000003")
	SeedCustomer1ID   = uuid.MustParse("a0000000-0000-4000-8000-000000000004")
	SeedCustomer2ID   = uuid.MustParse("a0000000-0000-4000-8000-000000000005")

	SeedShop1ID = uuid.MustParse("b0000000-0000-4000-8000-000000000001")
	SeedShop2ID = uuid.MustParse("b0000000-0000-4000-8000-000000000002")

	SeedMachine1ID = uuid.MustParse("c0000000-0000-4000-8000-000000000001")
	SeedMachine2ID = uuid.MustParse("c0000000-0000-4000-8000-000000000002")
	// SeedMachine3ID is referenced by the pending registration but not installed anywhere.
	SeedMachine3ID = uuid.MustParse("c0000000-0000-4000-8000-000000000003")

	SeedOrder1ID = uuid.MustParse("d0000000-0000-4000-8000-000000000001")
	SeedOrder2ID = uuid.MustParse("d0000000-0000-4000-8000-000000000002")

	SeedRegistrationID = uuid.MustParse("e0000000-0000-4000-8000-000000000001")
)

// Seed loads the demo data set. Every account gets password.
// Timestamps are relative to clk so orders and registrations look recent.
func Seed(ctx context.Context, store *Store, hasher service.PasswordHasher, clk clock.Clock, password string) error {
	hash, err := hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "hash demo password")
	}

	now := clk.Now()
	machine1, machine2, machine3 := SeedMachine1ID, SeedMachine2ID, SeedMachine3ID

	users := []entity.User{
		{ID: SeedAdminID, Name: "Admin User", Email: "admin@example.com", Role: entity.RoleAdmin},
		{ID: SeedShopkeeper1ID, Name: "Shop Owner 1", Email: "shop1@example.com", Role: entity.RoleShopkeeper},
		{ID: SeedShopkeeper2ID, Name: "Shop Owner 2", Email: "shop2@example.com", Role: entity.RoleShopkeeper},
		{ID: SeedCustomer1ID, Name: "Customer 1", Email: "customer1@example.com", Role: entity.RoleCustomer},
		{ID: SeedCustomer2ID, Name: "Customer 2", Email: "customer2@example.com", Role: entity.RoleCustomer},
	}

	shops := []entity.Shop{
		{
			ID:         SeedShop1ID,
			Name:       "Green Juice Haven",
			OwnerID:    SeedShopkeeper1ID,
			Location:   entity.Location{Lat: 28.6139, Lng: 77.2090},
			Address:    "123 Green St, Delhi",
			Rating:     4.5,
			MachineID:  &machine1,
			IsApproved: true,
			CreatedAt:  now.Add(-30 * 24 * time.Hour),
		},
		{
			ID:         SeedShop2ID,
			Name:       "Solar Sips",
			OwnerID:    SeedShopkeeper2ID,
			Location:   entity.Location{Lat: 28.6229, Lng: 77.2080},
			Address:    "456 Solar Ave, Delhi",
			Rating:     4.2,
			MachineID:  &machine2,
			IsApproved: true,
			CreatedAt:  now.Add(-20 * 24 * time.Hour),
		},
	}

	machines := []entity.Machine{
		{
			ID:                 SeedMachine1ID,
			ShopID:             SeedShop1ID,
			BatteryPercentage:  75,
			SolarEfficiency:    0.8,
			IsCharging:         true,
			Speed:              70,
			IsPaymentMachineOn: true,
			IsLightOn:          false,
			FanSpeed:           entity.FanMedium,
		},
		{
			ID:                 SeedMachine2ID,
			ShopID:             SeedShop2ID,
			BatteryPercentage:  45,
			SolarEfficiency:    0.6,
			IsCharging:         true,
			Speed:              60,
			IsPaymentMachineOn: true,
			IsLightOn:          true,
			FanSpeed:           entity.FanLow,
		},
	}

	orders := []entity.Order{
		{
			ID:         SeedOrder1ID,
			CustomerID: SeedCustomer1ID,
			ShopID:     SeedShop1ID,
			GlassCount: 2,
			Status:     entity.OrderCompleted,
			CreatedAt:  now.Add(-24 * time.Hour),
			UpdatedAt:  now.Add(-23 * time.Hour),
		},
		{
			ID:         SeedOrder2ID,
			CustomerID: SeedCustomer2ID,
			ShopID:     SeedShop1ID,
			GlassCount: 1,
			Status:     entity.OrderProcessing,
			CreatedAt:  now.Add(-time.Hour),
			UpdatedAt:  now.Add(-50 * time.Minute),
		},
	}

	registrations := []entity.ShopRegistration{
		{
			ID:           SeedRegistrationID,
			ShopkeeperID: SeedShopkeeper2ID,
			ShopName:     "Eco Juice Corner",
			Address:      "789 Eco Blvd, Delhi",
			Location:     entity.Location{Lat: 28.6329, Lng: 77.2195},
			MachineID:    &machine3,
			Status:       entity.RegistrationPending,
			CreatedAt:    now.Add(-48 * time.Hour),
		},
	}

	return store.update(ctx, func(s *state) error {
		for i := range users {
			users[i].PasswordHash = hash
			users[i].CreatedAt = now.Add(-60 * 24 * time.Hour)
		}
		s.users = append(s.users, users...)
		s.shops = append(s.shops, shops...)
		s.machines = append(s.machines, machines...)
		s.orders = append(s.orders, orders...)
		s.registrations = append(s.registrations, registrations...)

		return nil
	})
}
