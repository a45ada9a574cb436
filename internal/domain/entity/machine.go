package entity

import (
	"github.com/google/uuid"
)

// FanSpeed is the setting of the machine's cooling fan.
type FanSpeed string

const (
	FanOff    FanSpeed = "off"
	FanLow    FanSpeed = "low"
	FanMedium FanSpeed = "medium"
	FanHigh   FanSpeed = "high"
)

// fanCycle is the order a single fan button press walks through.
var fanCycle = []FanSpeed{FanOff, FanLow, FanMedium, FanHigh}

// IsValid checks if the FanSpeed is a declared value.
func (f FanSpeed) IsValid() bool {
	switch f {
	case FanOff, FanLow, FanMedium, FanHigh:
		return true
	default:
		return false
	}
}

// Next returns the following setting, wrapping from high back to off.
// Unknown values restart the cycle at low.
func (f FanSpeed) Next() FanSpeed {
	for i, s := range fanCycle {
		if s == f {
			return fanCycle[(i+1)%len(fanCycle)]
		}
	}

	return FanLow
}

// Juicer speed range shared by direct updates and the slider controls.
const (
	MinMachineSpeed = 0
	MaxMachineSpeed = 100
)

// Machine is the solar-powered juicer installed at a shop.
type Machine struct {
	ID                 uuid.UUID `json:"id"`
	ShopID             uuid.UUID `json:"shop_id"`
	BatteryPercentage  float64   `json:"battery_percentage"` // Always within [0, 100].
	SolarEfficiency    float64   `json:"solar_efficiency"`   // Weather and panel factor within [0, 1].
	IsCharging         bool      `json:"is_charging"`
	Speed              int       `json:"speed"` // Juicer speed within [0, 100].
	IsPaymentMachineOn bool      `json:"is_payment_machine_on"`
	IsLightOn          bool      `json:"is_light_on"`
	FanSpeed           FanSpeed  `json:"fan_speed"`
}

// NewDefaultMachine returns the machine provisioned for a newly approved shop.
func NewDefaultMachine(id, shopID uuid.UUID) Machine {
	return Machine{
		ID:                 id,
		ShopID:             shopID,
		BatteryPercentage:  100,
		SolarEfficiency:    0.7,
		IsCharging:         true,
		Speed:              50,
		IsPaymentMachineOn: true,
		IsLightOn:          false,
		FanSpeed:           FanOff,
	}
}
