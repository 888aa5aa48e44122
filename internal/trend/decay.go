package trend

import (
	"math"
	"time"
)

// DecayFunc maps a review's age to a multiplier in [0, 1]. Implementations
// must be monotonically non-increasing in age and return exactly 1.0 at age 0.
// The scorer only calls it for ages inside [0, window).
type DecayFunc func(age, window time.Duration) float64

// LinearDecay falls off linearly from 1.0 at age 0 to 0 at the window
// boundary.
func LinearDecay(age, window time.Duration) float64 {
	if window <= 0 || age >= window {
		return 0
	}
	if age <= 0 {
		return 1
	}
	return 1 - float64(age)/float64(window)
}

// ExponentialDecay returns a DecayFunc with e^-rate falloff over the window:
// 1.0 at age 0 down to e^-rate at the window boundary.
func ExponentialDecay(rate float64) DecayFunc {
	return func(age, window time.Duration) float64 {
		if window <= 0 || age >= window {
			return 0
		}
		if age <= 0 {
			return 1
		}
		return math.Exp(-rate * float64(age) / float64(window))
	}
}
