// Package calc holds the juice, battery and distance formulas used by the
// shop dashboards. Every function is pure.
package calc

import (
	"math"

	"solarjuice/internal/errors"
)

const (
	// JuiceYieldPerCaneMl is the juice one sugarcane produces.
	JuiceYieldPerCaneMl = 250.0
	// GlassSizeMl is the volume of one glass sold.
	GlassSizeMl = 200.0
	// BatteryPerGlass is the battery percentage spent juicing one glass.
	BatteryPerGlass = 0.5
	// BaseChargeRatePerHour is the battery percentage gained per hour at full solar efficiency.
	BaseChargeRatePerHour = 5.0
	// EarthRadiusMeters is the mean Earth radius used by DistanceMeters.
	EarthRadiusMeters = 6371000.0

	// lowBatteryThreshold is the level below which the machine is derated.
	lowBatteryThreshold = 20.0
)

// Hourly appliance drains in battery percentage.
const (
	PaymentDrainPerHour = 0.1
	LightDrainPerHour   = 0.2
)

// FanDrainPerHour is the hourly battery cost keyed by fan speed name.
// Off is absent and costs nothing.
var FanDrainPerHour = map[string]float64{
	"low":    0.3,
	"medium": 0.5,
	"high":   0.8,
}

// ErrNoSolarCharge is returned by ChargingTimeHours when the effective charge rate is zero.
var ErrNoSolarCharge = errors.New("no solar charge: effective charging rate is zero")

// SugarcanesNeeded is the number of whole canes required to fill glassCount glasses.
func SugarcanesNeeded(glassCount int) int {
	if glassCount <= 0 {
		return 0
	}

	return int(math.Ceil(float64(glassCount) * GlassSizeMl / JuiceYieldPerCaneMl))
}

// MaxGlassesWithBattery is how many glasses the remaining battery can still produce.
func MaxGlassesWithBattery(batteryPct float64) int {
	if batteryPct <= 0 {
		return 0
	}

	return int(math.Floor(batteryPct / BatteryPerGlass))
}

// JuiceBatteryUsage is the battery percentage spent on glassCount glasses.
func JuiceBatteryUsage(glassCount int) float64 {
	return float64(glassCount) * BatteryPerGlass
}

// HasEnoughBattery reports whether glassCount glasses fit in the remaining battery.
func HasEnoughBattery(glassCount int, batteryPct float64) bool {
	return JuiceBatteryUsage(glassCount) <= batteryPct
}

// ChargingTimeHours estimates hours until the battery is full.
// A full battery needs no time. A zero effective rate yields ErrNoSolarCharge.
func ChargingTimeHours(batteryPct, solarEfficiency float64) (float64, error) {
	if batteryPct >= 100 {
		return 0, nil
	}

	rate := BaseChargeRatePerHour * solarEfficiency
	if rate <= 0 {
		return 0, ErrNoSolarCharge
	}

	return (100 - batteryPct) / rate, nil
}

// Efficiency derates the machine linearly below 20% battery, from 0.7 at empty up to 1.
func Efficiency(batteryPct float64) float64 {
	if batteryPct >= lowBatteryThreshold {
		return 1
	}

	return 0.7 + batteryPct/100*0.3
}

// DistanceMeters is the great-circle distance between two points using the haversine formula.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// AppliancesBatteryUsage is the battery spent running the appliances for the given hours.
func AppliancesBatteryUsage(paymentHours, lightHours, fanHours float64, fanSpeed string) float64 {
	return paymentHours*PaymentDrainPerHour +
		lightHours*LightDrainPerHour +
		fanHours*FanDrainPerHour[fanSpeed]
}

// BatteryDrainRate is the hourly drain of the appliances currently switched on.
func BatteryDrainRate(paymentOn, lightOn bool, fanSpeed string) float64 {
	return AppliancesBatteryUsage(onHours(paymentOn), onHours(lightOn), 1, fanSpeed)
}

func onHours(on bool) float64 {
	if on {
		return 1
	}

	return 0
}
