package util

import (
	"fmt"
	"math"
	"time"
)

// maxHours is the largest hour count representable as a time.Duration.
var maxHours = float64(math.MaxInt64) / float64(time.Hour)

// HoursToDuration converts fractional hours into a Duration, saturating at the
// largest representable value. Negative and NaN inputs yield zero.
func HoursToDuration(hours float64) time.Duration {
	if math.IsNaN(hours) || hours <= 0 {
		return 0
	}
	if hours >= maxHours {
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(hours * float64(time.Hour))
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
