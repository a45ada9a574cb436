package usecase

import (
	"context"

	"solarjuice/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateMachineInput is a partial update. Nil fields are left untouched.
type UpdateMachineInput struct {
	Speed              *int             `json:"speed,omitempty"`
	IsCharging         *bool            `json:"is_charging,omitempty"`
	IsPaymentMachineOn *bool            `json:"is_payment_machine_on,omitempty"`
	IsLightOn          *bool            `json:"is_light_on,omitempty"`
	FanSpeed           *entity.FanSpeed `json:"fan_speed,omitempty"`
	SolarEfficiency    *float64         `json:"solar_efficiency,omitempty"`
}

// SliderPoint is a pointer position on a radial knob in screen coordinates
type SliderPoint struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
}

// RadialSliderInput sets the knob by angle or by pointer position
type RadialSliderInput struct {
	AngleDeg *float64    `json:"angle_deg,omitempty"`
	Point    *SliderPoint `json:"point,omitempty"`
}

// VerticalSliderInput is the pointer offset from the top of the track
type VerticalSliderInput struct {
	OffsetY float64 `json:"offset_y"`
	Height  float64 `json:"height"`
}

// SliderInput carries exactly one slider reading
type SliderInput struct {
	Radial   *RadialSliderInput   `json:"radial,omitempty"`
	Vertical *VerticalSliderInput `json:"vertical,omitempty"`
}

// MachineStatus is the machine with its derived battery figures
type MachineStatus struct {
	Machine           *entity.Machine `json:"machine"`
	Efficiency        float64         `json:"efficiency"`
	MaxGlasses        int             `json:"max_glasses"`
	DrainRatePerHour  float64         `json:"drain_rate_per_hour"`
	ChargeRatePerHour float64         `json:"charge_rate_per_hour"`
	ChargingTimeHours *float64        `json:"charging_time_hours"` // Nil when the machine cannot charge
	ChargingTime      string          `json:"charging_time,omitempty"`
	ChargingError     string          `json:"charging_error,omitempty"`
}

// MachineUsecase defines the machine control panel use cases
type MachineUsecase interface {
	GetMachine(ctx context.Context, machineID uuid.UUID) (*entity.Machine, error)
	GetMachineByShop(ctx context.Context, shopID uuid.UUID) (*entity.Machine, error)
	GetMachineStatus(ctx context.Context, machineID uuid.UUID) (*MachineStatus, error)

	// The mutating operations are limited to the owner of the machine's shop.
	UpdateMachine(ctx context.Context, ownerID, machineID uuid.UUID, input *UpdateMachineInput) (*entity.Machine, error)
	CycleFanSpeed(ctx context.Context, ownerID, machineID uuid.UUID) (*entity.Machine, error)
	SetSpeedFromSlider(ctx context.Context, ownerID, machineID uuid.UUID, input *SliderInput) (*entity.Machine, error)
}
