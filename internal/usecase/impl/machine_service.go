package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "solarjuice/internal/delivery/context"
	"solarjuice/internal/domain/calc"
	"solarjuice/internal/domain/entity"
	domainerrors "solarjuice/internal/domain/errors"
	"solarjuice/internal/domain/repository"
	"solarjuice/internal/domain/slider"
	"solarjuice/internal/usecase"
	"solarjuice/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type machineService struct {
	machineRepo repository.MachineRepository
	shopRepo    repository.ShopRepository
	logger      *slog.Logger
}

// MachineServiceParams holds dependencies for MachineService, injected by Fx.
type MachineServiceParams struct {
	fx.In

	MachineRepo repository.MachineRepository
	ShopRepo    repository.ShopRepository
	Logger      *slog.Logger
}

// NewMachineService creates a new machine service instance
func NewMachineService(params MachineServiceParams) usecase.MachineUsecase {
	return &machineService{
		machineRepo: params.MachineRepo,
		shopRepo:    params.ShopRepo,
		logger:      params.Logger,
	}
}

func (s *machineService) GetMachine(ctx context.Context, machineID uuid.UUID) (*entity.Machine, error) {
	machine, err := s.machineRepo.FindByID(ctx, machineID)
	if err != nil {
		return nil, translate(err, "find machine")
	}

	return machine, nil
}

func (s *machineService) GetMachineByShop(ctx context.Context, shopID uuid.UUID) (*entity.Machine, error) {
	machine, err := s.machineRepo.FindByShopID(ctx, shopID)
	if err != nil {
		return nil, translate(err, "find machine by shop")
	}

	return machine, nil
}

// GetMachineStatus derives the battery figures shown on the control panel.
func (s *machineService) GetMachineStatus(ctx context.Context, machineID uuid.UUID) (*usecase.MachineStatus, error) {
	machine, err := s.GetMachine(ctx, machineID)
	if err != nil {
		return nil, err
	}

	return buildMachineStatus(machine), nil
}

func buildMachineStatus(machine *entity.Machine) *usecase.MachineStatus {
	status := &usecase.MachineStatus{
		Machine:          machine,
		Efficiency:       calc.Efficiency(machine.BatteryPercentage),
		MaxGlasses:       calc.MaxGlassesWithBattery(machine.BatteryPercentage),
		DrainRatePerHour: calc.BatteryDrainRate(machine.IsPaymentMachineOn, machine.IsLightOn, string(machine.FanSpeed)),
	}

	if machine.IsCharging {
		status.ChargeRatePerHour = calc.BaseChargeRatePerHour * machine.SolarEfficiency
	}
	if status.ChargeRatePerHour <= 0 {
		status.ChargingError = domainerrors.ErrNoSolarCharge.ErrorCode()
		return status
	}

	hours, err := calc.ChargingTimeHours(machine.BatteryPercentage, machine.SolarEfficiency)
	if err != nil {
		status.ChargingError = domainerrors.ErrNoSolarCharge.ErrorCode()
		return status
	}

	status.ChargingTimeHours = &hours
	status.ChargingTime = util.FormatDuration(util.HoursToDuration(hours))

	return status
}

// UpdateMachine applies the non-nil fields of input. Validation runs before
// anything is written.
func (s *machineService) UpdateMachine(ctx context.Context, ownerID, machineID uuid.UUID, input *usecase.UpdateMachineInput) (*entity.Machine, error) {
	if err := validateMachineUpdate(input); err != nil {
		return nil, err
	}

	return s.update(ctx, ownerID, machineID, func(m *entity.Machine) error {
		if input.Speed != nil {
			m.Speed = *input.Speed
		}
		if input.IsCharging != nil {
			m.IsCharging = *input.IsCharging
		}
		if input.IsPaymentMachineOn != nil {
			m.IsPaymentMachineOn = *input.IsPaymentMachineOn
		}
		if input.IsLightOn != nil {
			m.IsLightOn = *input.IsLightOn
		}
		if input.FanSpeed != nil {
			m.FanSpeed = *input.FanSpeed
		}
		if input.SolarEfficiency != nil {
			m.SolarEfficiency = *input.SolarEfficiency
		}

		return nil
	})
}

func validateMachineUpdate(input *usecase.UpdateMachineInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}
	if input.Speed != nil && (*input.Speed < entity.MinMachineSpeed || *input.Speed > entity.MaxMachineSpeed) {
		return domainerrors.ErrValidationFailed.WithDetails("speed must be between 0 and 100")
	}
	if input.SolarEfficiency != nil {
		eff := *input.SolarEfficiency
		if math.IsNaN(eff) || eff < 0 || eff > 1 {
			return domainerrors.ErrValidationFailed.WithDetails("solar_efficiency must be between 0 and 1")
		}
	}
	if input.FanSpeed != nil && !input.FanSpeed.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("fan_speed must be one of off, low, medium, high")
	}

	return nil
}

func (s *machineService) CycleFanSpeed(ctx context.Context, ownerID, machineID uuid.UUID) (*entity.Machine, error) {
	return s.update(ctx, ownerID, machineID, func(m *entity.Machine) error {
		m.FanSpeed = m.FanSpeed.Next()
		return nil
	})
}

// SetSpeedFromSlider converts a knob or track reading into the juicer speed.
func (s *machineService) SetSpeedFromSlider(ctx context.Context, ownerID, machineID uuid.UUID, input *usecase.SliderInput) (*entity.Machine, error) {
	speed, err := sliderSpeed(input)
	if err != nil {
		return nil, err
	}

	return s.update(ctx, ownerID, machineID, func(m *entity.Machine) error {
		m.Speed = speed
		return nil
	})
}

func sliderSpeed(input *usecase.SliderInput) (int, error) {
	if input == nil || (input.Radial == nil) == (input.Vertical == nil) {
		return 0, domainerrors.ErrValidationFailed.WithDetails("exactly one of radial or vertical is required")
	}

	if v := input.Vertical; v != nil {
		if v.Height <= 0 {
			return 0, domainerrors.ErrValidationFailed.WithDetails("height must be positive")
		}

		return slider.VerticalValue(v.OffsetY, v.Height, entity.MinMachineSpeed, entity.MaxMachineSpeed), nil
	}

	r := input.Radial
	switch {
	case r.AngleDeg != nil && r.Point == nil:
		return slider.RadialValue(*r.AngleDeg, entity.MinMachineSpeed, entity.MaxMachineSpeed), nil
	case r.Point != nil && r.AngleDeg == nil:
		p := r.Point
		return slider.RadialValueFromPoint(p.X, p.Y, p.CenterX, p.CenterY, entity.MinMachineSpeed, entity.MaxMachineSpeed), nil
	default:
		return 0, domainerrors.ErrValidationFailed.WithDetails("radial needs exactly one of angle_deg or point")
	}
}

// update checks that the caller owns the machine's shop, then applies fn atomically.
func (s *machineService) update(ctx context.Context, ownerID, machineID uuid.UUID, fn func(*entity.Machine) error) (*entity.Machine, error) {
	machine, err := s.machineRepo.FindByID(ctx, machineID)
	if err != nil {
		return nil, translate(err, "find machine")
	}

	shop, err := s.shopRepo.FindByID(ctx, machine.ShopID)
	if err != nil {
		return nil, translate(err, "find machine shop")
	}
	if shop.OwnerID != ownerID {
		return nil, domainerrors.ErrForbidden.WithDetails("machine belongs to another shop")
	}

	updated, err := s.machineRepo.Update(ctx, machineID, fn)
	if err != nil {
		return nil, translate(err, "update machine")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("machine updated",
		slog.String("machine_id", machineID.String()),
		slog.Int("speed", updated.Speed),
		slog.String("fan_speed", string(updated.FanSpeed)),
	)

	return updated, nil
}
