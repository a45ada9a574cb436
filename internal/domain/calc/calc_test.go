package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSugarcanesNeeded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		glass  int
		expect int
	}{
		{name: "zero glasses", glass: 0, expect: 0},
		{name: "negative glasses", glass: -3, expect: 0},
		{name: "one glass", glass: 1, expect: 1},
		{name: "two glasses", glass: 2, expect: 2},
		{name: "five glasses fill four canes", glass: 5, expect: 4},
		{name: "six glasses", glass: 6, expect: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, SugarcanesNeeded(tt.glass))
		})
	}
}

func TestSugarcanesNeeded_Monotonic(t *testing.T) {
	prev := SugarcanesNeeded(0)
	for n := 1; n <= 200; n++ {
		got := SugarcanesNeeded(n)
		assert.GreaterOrEqual(t, got, prev, "glass count %d", n)
		prev = got
	}
}

func TestMaxGlassesWithBattery(t *testing.T) {
	assert.Equal(t, 0, MaxGlassesWithBattery(0))
	assert.Equal(t, 0, MaxGlassesWithBattery(0.4))
	assert.Equal(t, 1, MaxGlassesWithBattery(0.5))
	assert.Equal(t, 150, MaxGlassesWithBattery(75))
	assert.Equal(t, 200, MaxGlassesWithBattery(100))
}

func TestHasEnoughBattery_MatchesMaxGlasses(t *testing.T) {
	for _, battery := range []float64{0, 0.3, 0.5, 1, 12.7, 45, 99.9, 100} {
		for glasses := 0; glasses <= 250; glasses++ {
			assert.Equal(t,
				MaxGlassesWithBattery(battery) >= glasses,
				HasEnoughBattery(glasses, battery),
				"battery=%v glasses=%d", battery, glasses)
		}
	}
}

func TestChargingTimeHours(t *testing.T) {
	t.Run("partial battery", func(t *testing.T) {
		hours, err := ChargingTimeHours(75, 0.8)
		require.NoError(t, err)
		assert.InDelta(t, 6.25, hours, 1e-9)
	})

	t.Run("full battery needs no time", func(t *testing.T) {
		hours, err := ChargingTimeHours(100, 0)
		require.NoError(t, err)
		assert.Zero(t, hours)
	})

	t.Run("zero efficiency surfaces an error", func(t *testing.T) {
		_, err := ChargingTimeHours(50, 0)
		assert.ErrorIs(t, err, ErrNoSolarCharge)
	})
}

func TestEfficiency(t *testing.T) {
	assert.InDelta(t, 1.0, Efficiency(20), 1e-12)
	assert.InDelta(t, 1.0, Efficiency(87), 1e-12)
	assert.InDelta(t, 0.7, Efficiency(0), 1e-12)
	assert.InDelta(t, 0.73, Efficiency(10), 1e-12)
}

func TestDistanceMeters(t *testing.T) {
	t.Run("identical points", func(t *testing.T) {
		assert.Zero(t, DistanceMeters(28.6139, 77.2090, 28.6139, 77.2090))
		assert.Zero(t, DistanceMeters(-33.9, 151.2, -33.9, 151.2))
	})

	t.Run("seeded shops are about one kilometre apart", func(t *testing.T) {
		d := DistanceMeters(28.6139, 77.2090, 28.6229, 77.2080)
		assert.InDelta(t, 1005, d, 5)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := DistanceMeters(28.6139, 77.2090, 28.6329, 77.2195)
		b := DistanceMeters(28.6329, 77.2195, 28.6139, 77.2090)
		assert.InDelta(t, a, b, 1e-9)
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		assert.InDelta(t, 111195, DistanceMeters(0, 0, 1, 0), 1)
	})
}

func TestBatteryDrainRate(t *testing.T) {
	assert.Zero(t, BatteryDrainRate(false, false, "off"))
	assert.InDelta(t, 0.8, BatteryDrainRate(true, false, "medium"), 1e-12)
	assert.InDelta(t, 1.1, BatteryDrainRate(true, true, "high"), 1e-12)
}

func TestAppliancesBatteryUsage(t *testing.T) {
	assert.InDelta(t, 0.1*2+0.2*3+0.3*4, AppliancesBatteryUsage(2, 3, 4, "low"), 1e-12)
	assert.InDelta(t, 0.1, AppliancesBatteryUsage(1, 0, 5, "off"), 1e-12)
}
