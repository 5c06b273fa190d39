package mathutil

import "math"

// TwoPi is one full turn in radians.
const TwoPi = 2 * math.Pi

// NormalizeAngle folds an angle into [0, 2π).
//
// Only one correction is applied per branch, so the result is exact only for
// inputs within roughly [-2π, 4π]. Callers that accumulate rotation must keep
// the stored angle normalized every step rather than relying on this to undo
// many turns at once.
func NormalizeAngle(angle float64) float64 {
	switch {
	case angle > TwoPi:
		return angle - TwoPi
	case angle < -TwoPi:
		return angle + 2*TwoPi
	case angle < 0:
		return angle + TwoPi
	}
	return angle
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
