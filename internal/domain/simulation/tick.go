// Package simulation advances the battery state of vending machines.
package simulation

import (
	"solarjuice/internal/domain/entity"
)

// Per-tick battery deltas in percentage points.
const (
	ChargePerTick       = 0.05 // Scaled by solar efficiency.
	PaymentDrainPerTick = 0.001
	LightDrainPerTick   = 0.002
)

// FanDrainPerTick returns the per-tick cost of running the fan at the given speed.
func FanDrainPerTick(speed entity.FanSpeed) float64 {
	switch speed {
	case entity.FanLow:
		return 0.003
	case entity.FanMedium:
		return 0.005
	case entity.FanHigh:
		return 0.008
	default:
		return 0
	}
}

// Delta is the battery change one tick applies to m, before clamping.
func Delta(m entity.Machine) float64 {
	var delta float64
	if m.IsCharging {
		delta += ChargePerTick * m.SolarEfficiency
	}
	if m.IsPaymentMachineOn {
		delta -= PaymentDrainPerTick
	}
	if m.IsLightOn {
		delta -= LightDrainPerTick
	}

	return delta - FanDrainPerTick(m.FanSpeed)
}

// Tick returns m with its battery advanced by one step and clamped to [0, 100].
// No other field changes.
func Tick(m entity.Machine) entity.Machine {
	m.BatteryPercentage = clamp(m.BatteryPercentage+Delta(m), 0, 100)

	return m
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
