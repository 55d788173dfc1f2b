package trajectory

import (
	"errors"
	"math"
)

// ErrDegenerateRange is returned by Skew when low == high.
var ErrDegenerateRange = errors.New("trajectory: degenerate velocity range (low == high)")

// worstGravity is the weakest gravity a trajectory can be assigned
// (Gravity + GravityJitter). Weaker gravity means higher peaks.
const worstGravity = Gravity + GravityJitter

// Skew maps value from [low, high] through 1-(n-1)^2 and back, biasing draws
// toward the top of the range. Skew(low) == low and Skew(high) == high.
func Skew(value, low, high float64) (float64, error) {
	width := high - low
	if width == 0 {
		return 0, ErrDegenerateRange
	}
	n := (value - low) / width
	skewed := 1 - (n-1)*(n-1)
	return skewed*width + low, nil
}

// DefaultMaxVelocity is the largest launch speed whose peak stays inside a
// grid of the given height, from v^2 = -2gh with the weakest gravity any
// trajectory can get.
func DefaultMaxVelocity(height int) int {
	if height <= 0 {
		return 0
	}
	return int(math.Floor(math.Sqrt(-2 * worstGravity * float64(height))))
}
