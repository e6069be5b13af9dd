package player

import (
	"fmt"
	"math"
)

// FormatTime renders seconds as "m:ss", truncating fractional seconds.
// Negative and non-finite values render as "0:00".
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}

	totalSeconds := int(seconds)
	minutes := totalSeconds / 60
	secs := totalSeconds % 60
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// NewProgress builds display values for a position within duration
func NewProgress(position, duration float64) Progress {
	if duration < 0 || math.IsNaN(duration) {
		duration = 0
	}
	position = clamp(position, 0, duration)

	return Progress{
		Value:    position,
		Duration: duration,
		Current:  FormatTime(position),
		Total:    FormatTime(duration),
	}
}

// Fraction returns the position normalized to [0, 1]
func (p Progress) Fraction() float64 {
	if p.Duration <= 0 {
		return 0
	}
	return p.Value / p.Duration
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
