package slider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRadialValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		angle  float64
		expect int
	}{
		{name: "arc start is min", angle: 225, expect: 0},
		{name: "arc end is max", angle: -45, expect: 100},
		{name: "top is midpoint", angle: 90, expect: 50},
		{name: "right is two thirds", angle: 0, expect: 83},
		{name: "left is one sixth", angle: 180, expect: 17},
		{name: "wrapped angle", angle: 450, expect: 50},
		{name: "negative wrapped angle", angle: -270, expect: 50},
		{name: "dead zone near start snaps to min", angle: 250, expect: 0},
		{name: "dead zone near end snaps to max", angle: -60, expect: 100},
		{name: "equivalent of dead zone near end", angle: 300, expect: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, RadialValue(tt.angle, 0, 100))
		})
	}
}

func TestRadialValue_CustomRange(t *testing.T) {
	assert.Equal(t, 10, RadialValue(225, 10, 20))
	assert.Equal(t, 20, RadialValue(-45, 10, 20))
	assert.Equal(t, 15, RadialValue(90, 10, 20))
	assert.Equal(t, 7, RadialValue(90, 7, 7))
}

func TestRadialAngle_RoundTrip(t *testing.T) {
	for v := 0; v <= 100; v++ {
		assert.Equal(t, v, RadialValue(RadialAngle(v, 0, 100), 0, 100), "value %d", v)
	}
	assert.Equal(t, 225.0, RadialAngle(-5, 0, 100))
	assert.Equal(t, -45.0, RadialAngle(500, 0, 100))
}

func TestRadialValueFromPoint(t *testing.T) {
	// Knob centred at (50, 50) in screen space.
	assert.Equal(t, 50, RadialValueFromPoint(50, 0, 50, 50, 0, 100))   // straight up
	assert.Equal(t, 83, RadialValueFromPoint(100, 50, 50, 50, 0, 100)) // right
	assert.Equal(t, 17, RadialValueFromPoint(0, 50, 50, 50, 0, 100))   // left
	assert.Equal(t, 0, RadialValueFromPoint(0, 100, 50, 50, 0, 100))   // bottom-left
	assert.Equal(t, 100, RadialValueFromPoint(100, 100, 50, 50, 0, 100))
}

func TestVerticalValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		offsetY float64
		height  float64
		expect  int
	}{
		{name: "top is max", offsetY: 0, height: 200, expect: 100},
		{name: "bottom is min", offsetY: 200, height: 200, expect: 0},
		{name: "middle", offsetY: 100, height: 200, expect: 50},
		{name: "rounds to nearest", offsetY: 62, height: 200, expect: 69},
		{name: "above the track clamps", offsetY: -40, height: 200, expect: 100},
		{name: "below the track clamps", offsetY: 260, height: 200, expect: 0},
		{name: "zero height", offsetY: 10, height: 0, expect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, VerticalValue(tt.offsetY, tt.height, 0, 100))
		})
	}
}
