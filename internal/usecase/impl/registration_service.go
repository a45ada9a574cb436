package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "solarjuice/internal/delivery/context"
	"solarjuice/internal/domain/entity"
	domainerrors "solarjuice/internal/domain/errors"
	"solarjuice/internal/domain/repository"
	"solarjuice/internal/domain/service"
	"solarjuice/internal/errors"
	"solarjuice/internal/usecase"

	"github.com/facebookgo/clock"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

type registrationService struct {
	registrationRepo repository.RegistrationRepository
	txManager        repository.TransactionManager
	effects          *Effects
	clock            clock.Clock
	logger           *slog.Logger
}

// RegistrationServiceParams holds dependencies for RegistrationService, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	RegistrationRepo repository.RegistrationRepository
	TxManager        repository.TransactionManager
	Effects          *Effects
	Clock            clock.Clock
	Logger           *slog.Logger
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	return &registrationService{
		registrationRepo: params.RegistrationRepo,
		txManager:        params.TxManager,
		effects:          params.Effects,
		clock:            params.Clock,
		logger:           params.Logger,
	}
}

func (s *registrationService) Submit(ctx context.Context, shopkeeperID uuid.UUID, input *usecase.SubmitRegistrationInput) (*entity.ShopRegistration, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}

	name := strings.TrimSpace(input.ShopName)
	address := strings.TrimSpace(input.Address)
	switch {
	case name == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("shop_name is required")
	case address == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("address is required")
	case !input.Location.Valid():
		return nil, domainerrors.ErrValidationFailed.WithDetails("location is out of range")
	}

	registration := &entity.ShopRegistration{
		ID:           uuid.New(),
		ShopkeeperID: shopkeeperID,
		ShopName:     name,
		Address:      address,
		Location:     input.Location,
		MachineID:    input.MachineID,
		Status:       entity.RegistrationPending,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		return nil, translate(err, "create registration")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("shop registration submitted",
		slog.String("registration_id", registration.ID.String()),
		slog.String("shopkeeper_id", shopkeeperID.String()),
	)

	s.effects.toast(ctx, shopkeeperID, "Registration submitted",
		"Your shop registration has been submitted for approval",
		map[string]string{"registration_id": registration.ID.String()})
	s.effects.publish(ctx, service.EventRegistrationSubmitted, registration.ID, map[string]string{
		"shopkeeper_id": shopkeeperID.String(),
		"shop_name":     registration.ShopName,
	})

	return registration, nil
}

func (s *registrationService) ListRegistrations(ctx context.Context, status *entity.RegistrationStatus) ([]*entity.ShopRegistration, error) {
	if status != nil && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown registration status")
	}

	registrations, err := s.registrationRepo.List(ctx, repository.RegistrationFilter{Status: status})
	if err != nil {
		return nil, translate(err, "list registrations")
	}

	return registrations, nil
}

func (s *registrationService) ListMyRegistrations(ctx context.Context, shopkeeperID uuid.UUID) ([]*entity.ShopRegistration, error) {
	registrations, err := s.registrationRepo.List(ctx, repository.RegistrationFilter{ShopkeeperID: &shopkeeperID})
	if err != nil {
		return nil, translate(err, "list shopkeeper registrations")
	}

	return registrations, nil
}

// Approve turns a pending registration into an approved shop with a machine.
// Every write happens in one transaction.
func (s *registrationService) Approve(ctx context.Context, adminID, registrationID uuid.UUID) (*usecase.ApprovalResult, error) {
	now := s.clock.Now()
	result := &usecase.ApprovalResult{}

	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		registrations := txRepoFactory.NewRegistrationRepository()
		shops := txRepoFactory.NewShopRepository()
		machines := txRepoFactory.NewMachineRepository()

		registration, err := registrations.Update(ctx, registrationID, func(r *entity.ShopRegistration) error {
			return markReviewed(r, entity.RegistrationApproved, adminID, now)
		})
		if err != nil {
			return err
		}

		shop := &entity.Shop{
			ID:         uuid.New(),
			Name:       registration.ShopName,
			OwnerID:    registration.ShopkeeperID,
			Location:   registration.Location,
			Address:    registration.Address,
			Rating:     0,
			IsApproved: true,
			CreatedAt:  now,
		}

		machine, err := s.installMachine(ctx, shops, machines, shop, registration.MachineID)
		if err != nil {
			return err
		}

		if err := shops.Create(ctx, shop); err != nil {
			return errors.Wrap(err, "create shop")
		}

		result.Registration = registration
		result.Shop = shop
		result.Machine = machine

		return nil
	})
	if err != nil {
		return nil, translate(err, "approve registration")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("shop registration approved",
		slog.String("registration_id", registrationID.String()),
		slog.String("shop_id", result.Shop.ID.String()),
		slog.String("admin_id", adminID.String()),
	)

	s.effects.toast(ctx, result.Registration.ShopkeeperID, "Registration approved",
		"Your shop "+result.Shop.Name+" has been approved",
		map[string]string{"registration_id": registrationID.String(), "shop_id": result.Shop.ID.String()})
	s.effects.publish(ctx, service.EventRegistrationReviewed, registrationID, map[string]string{
		"status":  string(entity.RegistrationApproved),
		"shop_id": result.Shop.ID.String(),
	})

	return result, nil
}

// installMachine links a machine to the new shop. Without a requested machine a
// default one is provisioned. A requested machine that exists is moved from its
// previous shop; one that does not exist stays referenced but is not created.
func (s *registrationService) installMachine(
	ctx context.Context,
	shops repository.ShopRepository,
	machines repository.MachineRepository,
	shop *entity.Shop,
	requested *uuid.UUID,
) (*entity.Machine, error) {
	if requested == nil {
		machine := entity.NewDefaultMachine(uuid.New(), shop.ID)
		if err := machines.Create(ctx, &machine); err != nil {
			return nil, errors.Wrap(err, "create machine")
		}
		shop.MachineID = &machine.ID

		return &machine, nil
	}

	machineID := *requested
	shop.MachineID = &machineID

	var previousShopID uuid.UUID
	machine, err := machines.Update(ctx, machineID, func(m *entity.Machine) error {
		previousShopID = m.ShopID
		m.ShopID = shop.ID

		return nil
	})
	if errors.Is(err, repository.ErrMachineNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "rebind machine")
	}

	_, err = shops.Update(ctx, previousShopID, func(prev *entity.Shop) error {
		if prev.MachineID != nil && *prev.MachineID == machineID {
			prev.MachineID = nil
		}

		return nil
	})
	if err != nil && !errors.Is(err, repository.ErrShopNotFound) {
		return nil, errors.Wrap(err, "unlink previous shop")
	}

	return machine, nil
}

func (s *registrationService) Reject(ctx context.Context, adminID, registrationID uuid.UUID, reason string) (*entity.ShopRegistration, error) {
	now := s.clock.Now()
	registration, err := s.registrationRepo.Update(ctx, registrationID, func(r *entity.ShopRegistration) error {
		if err := markReviewed(r, entity.RegistrationRejected, adminID, now); err != nil {
			return err
		}
		r.RejectReason = strings.TrimSpace(reason)

		return nil
	})
	if err != nil {
		return nil, translate(err, "reject registration")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("shop registration rejected",
		slog.String("registration_id", registrationID.String()),
		slog.String("admin_id", adminID.String()),
	)

	description := "Your shop registration for " + registration.ShopName + " was rejected"
	if registration.RejectReason != "" {
		description += ": " + registration.RejectReason
	}
	s.effects.toast(ctx, registration.ShopkeeperID, "Registration rejected", description,
		map[string]string{"registration_id": registrationID.String()})
	s.effects.publish(ctx, service.EventRegistrationReviewed, registrationID, map[string]string{
		"status": string(entity.RegistrationRejected),
	})

	return registration, nil
}

func markReviewed(r *entity.ShopRegistration, status entity.RegistrationStatus, adminID uuid.UUID, at time.Time) error {
	if r.Status.IsTerminal() {
		return domainerrors.ErrRegistrationNotPending.WithDetails("registration is already " + string(r.Status))
	}

	r.Status = status
	r.ReviewedBy = &adminID
	r.ReviewedAt = &at

	return nil
}
