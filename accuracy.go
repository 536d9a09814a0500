package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// DefaultAccuracy is a default value for methods that take an accuracy
	// argument. It is suitable for general-purpose modeling.
	DefaultAccuracy = 1e-6

	// LengthAccuracy is the tolerance under which two lengths, or two
	// points, are considered coincident.
	LengthAccuracy = 1e-8

	// AngleAccuracy is the tolerance, in radians, under which two angles
	// are considered equal. Perpendicularity and parallelism checks use it.
	AngleAccuracy = 1e-6
)

// EqualWithin reports whether a and b differ by at most accuracy.
func EqualWithin(a, b, accuracy float64) bool {
	return scalar.EqualWithinAbs(a, b, accuracy)
}

// zeroWithin reports whether x is within accuracy of zero.
func zeroWithin(x, accuracy float64) bool {
	return scalar.EqualWithinAbs(x, 0, accuracy)
}

// wrapAngle maps an angle to the equivalent value in [0, 2π).
func wrapAngle(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}
