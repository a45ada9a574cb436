package entity

import (
	"math"

	"github.com/paulmach/orb"
)

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point returns the location as an orb point.
func (l Location) Point() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// Valid reports whether the coordinate is a finite point on Earth.
func (l Location) Valid() bool {
	if math.IsNaN(l.Lat) || math.IsNaN(l.Lng) || math.IsInf(l.Lat, 0) || math.IsInf(l.Lng, 0) {
		return false
	}

	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}
