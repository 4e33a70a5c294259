package normalize

import "math"

// Round2 rounds to 2 decimal places, half away from zero (math.Round).
// Pinned by tests: 0.125 rounds to 0.13, -0.125 to -0.13.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
