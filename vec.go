package geom

import (
	"fmt"
	"math"
)

// Vec2 is a displacement in a two-dimensional sketch plane.
type Vec2 struct {
	X float64
	Y float64
}

// V2 returns the vector ⟨x, y⟩.
func V2(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

// Vec2FromAngle returns a unit vector of the given angle, which is expressed
// in radians. With θ = 0, the result is the positive x unit vector. At π/2,
// it is the positive y unit vector.
func Vec2FromAngle(th float64) Vec2 {
	y, x := math.Sincos(th)
	return Vec2{
		X: x,
		Y: y,
	}
}

// Splat returns the vector's x and y coordinates.
func (v Vec2) Splat() (float64, float64) {
	return v.X, v.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec2.Hypot].
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Angle returns the angle in radians between the vector and ⟨1, 0⟩ in the
// positive y direction. This is atan2(y, x).
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Lerp linearly interpolates between two vectors.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// It fails with [ErrDegenerateInput] if the magnitude is too close to zero.
func (v Vec2) Normalize() (Vec2, error) {
	h := v.Hypot()
	if zeroWithin(h, LengthAccuracy) {
		return Vec2{}, fmt.Errorf("%w: cannot normalize zero vector %v", ErrDegenerateInput, v)
	}
	return v.Div(h), nil
}

// Perp returns the vector rotated a quarter turn counterclockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{
		X: -v.Y,
		Y: v.X,
	}
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vec2) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

func (v Vec2) Div(f float64) Vec2 {
	return Vec2{
		X: v.X / f,
		Y: v.Y / f,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}

// Vec3 is a displacement in three-dimensional model space.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// V3 returns the vector ⟨x, y, z⟩.
func V3(x, y, z float64) Vec3 {
	return Vec3{
		X: x,
		Y: y,
		Z: z,
	}
}

// Splat returns the vector's x, y and z coordinates.
func (v Vec3) Splat() (float64, float64, float64) {
	return v.X, v.Y, v.Z
}

func (v Vec3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Hypot returns the magnitude of the vector.
func (v Vec3) Hypot() float64 {
	return math.Sqrt(v.Dot(v))
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec3.Hypot].
func (v Vec3) Hypot2() float64 {
	return v.Dot(v)
}

// AngleTo returns the unsigned angle in radians between v and o, in the
// range [0, π].
func (v Vec3) AngleTo(o Vec3) float64 {
	return math.Atan2(v.Cross(o).Hypot(), v.Dot(o))
}

// Lerp linearly interpolates between two vectors.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// It fails with [ErrDegenerateInput] if the magnitude is too close to zero.
func (v Vec3) Normalize() (Vec3, error) {
	h := v.Hypot()
	if zeroWithin(h, LengthAccuracy) {
		return Vec3{}, fmt.Errorf("%w: cannot normalize zero vector %v", ErrDegenerateInput, v)
	}
	return v.Div(h), nil
}

// Rotate returns the vector rotated by theta radians about the given axis,
// following the right-hand rule.
func (v Vec3) Rotate(axis UnitVec3, theta float64) Vec3 {
	// Rodrigues' formula.
	k := axis.Vec3()
	sin, cos := math.Sincos(theta)
	return v.Mul(cos).
		Add(k.Cross(v).Mul(sin)).
		Add(k.Mul(k.Dot(v) * (1 - cos)))
}

// IsInf reports whether at least one coordinate is infinite.
func (v Vec3) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

// IsNaN reports whether at least one coordinate is NaN.
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

func (v Vec3) Mul(f float64) Vec3 {
	return Vec3{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
	}
}

func (v Vec3) Div(f float64) Vec3 {
	return Vec3{
		X: v.X / f,
		Y: v.Y / f,
		Z: v.Z / f,
	}
}

// Negate returns a new vector with the signs of all coordinates flipped.
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}
