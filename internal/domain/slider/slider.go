// Package slider maps pointer positions on the machine control widgets to
// bounded integer values.
//
// The radial knob sweeps a 270 degree arc. Angles follow the math convention
// (0 points right, counter-clockwise positive): the arc starts at 225 degrees
// for min and runs clockwise to -45 degrees for max. The 90 degree gap at the
// bottom is a dead zone that snaps to the nearer end.
package slider

import (
	"math"
)

const (
	arcStart = 225.0
	arcEnd   = -45.0
	arcSweep = arcStart - arcEnd
)

// RadialValue maps a knob angle in degrees to a value in [min, max].
func RadialValue(angleDeg float64, min, max int) int {
	a := normalize(angleDeg)

	switch {
	case a > arcStart:
		a = arcStart
	case a < arcEnd:
		a = arcEnd
	}

	return scale((arcStart-a)/arcSweep, min, max)
}

// RadialValueFromPoint maps a pointer position to a value, given the knob centre.
// Coordinates are in screen space where y grows downwards.
func RadialValueFromPoint(x, y, centerX, centerY float64, min, max int) int {
	angle := math.Atan2(centerY-y, x-centerX) * 180 / math.Pi

	return RadialValue(angle, min, max)
}

// RadialAngle is the inverse of RadialValue: the knob angle showing value.
func RadialAngle(value, min, max int) float64 {
	if max <= min {
		return arcStart
	}

	frac := float64(value-min) / float64(max-min)
	frac = math.Max(0, math.Min(1, frac))

	return arcStart - frac*arcSweep
}

// VerticalValue maps a pointer offset from the top of a vertical track to a
// value in [min, max]. The top of the track is max.
func VerticalValue(offsetY, height float64, min, max int) int {
	if height <= 0 {
		return min
	}

	return scale(1-offsetY/height, min, max)
}

// scale maps frac to [min, max], rounding to the nearest integer.
func scale(frac float64, min, max int) int {
	if max <= min {
		return min
	}
	frac = math.Max(0, math.Min(1, frac))

	v := int(math.Round(frac*float64(max-min))) + min
	if v < min {
		return min
	}
	if v > max {
		return max
	}

	return v
}

// normalize returns the equivalent angle in [-90, 270).
func normalize(deg float64) float64 {
	a := math.Mod(deg+90, 360)
	if a < 0 {
		a += 360
	}

	return a - 90
}
