package geom

import (
	"fmt"
	"math"
)

// UnitVec3 is a direction in three-dimensional model space, a vector of
// magnitude 1. The zero value is not a valid direction; construct values
// with [Unit3] or [MustUnit3]. Components cannot be modified after
// construction, which keeps the magnitude invariant intact.
type UnitVec3 struct {
	x, y, z float64
}

// The global coordinate axes.
var (
	XAxis = UnitVec3{x: 1}
	YAxis = UnitVec3{y: 1}
	ZAxis = UnitVec3{z: 1}
)

// Unit3 returns the direction of v. It fails with [ErrDegenerateInput] if
// the magnitude of v is too close to zero.
func Unit3(v Vec3) (UnitVec3, error) {
	n, err := v.Normalize()
	if err != nil {
		return UnitVec3{}, err
	}
	return UnitVec3{x: n.X, y: n.Y, z: n.Z}, nil
}

// MustUnit3 is like [Unit3] but panics on degenerate input. It is intended
// for statically known vectors.
func MustUnit3(v Vec3) UnitVec3 {
	u, err := Unit3(v)
	if err != nil {
		panic(err)
	}
	return u
}

// X returns the x component.
func (u UnitVec3) X() float64 { return u.x }

// Y returns the y component.
func (u UnitVec3) Y() float64 { return u.y }

// Z returns the z component.
func (u UnitVec3) Z() float64 { return u.z }

// Vec3 returns the direction as a plain vector.
func (u UnitVec3) Vec3() Vec3 {
	return Vec3{X: u.x, Y: u.y, Z: u.z}
}

// Splat returns the direction's x, y and z components.
func (u UnitVec3) Splat() (float64, float64, float64) {
	return u.x, u.y, u.z
}

func (u UnitVec3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", u.x, u.y, u.z)
}

// Negate returns the opposite direction.
func (u UnitVec3) Negate() UnitVec3 {
	return UnitVec3{x: -u.x, y: -u.y, z: -u.z}
}

// Dot returns the dot product of u and o, the cosine of the angle between
// them.
func (u UnitVec3) Dot(o UnitVec3) float64 {
	return u.x*o.x + u.y*o.y + u.z*o.z
}

// Cross returns the cross product of u and o. The result is a plain vector;
// it has magnitude 1 only if u and o are perpendicular.
func (u UnitVec3) Cross(o UnitVec3) Vec3 {
	return u.Vec3().Cross(o.Vec3())
}

// Mul returns the direction scaled to magnitude f.
func (u UnitVec3) Mul(f float64) Vec3 {
	return Vec3{X: u.x * f, Y: u.y * f, Z: u.z * f}
}

// AngleTo returns the unsigned angle in radians between u and o, in the
// range [0, π].
func (u UnitVec3) AngleTo(o UnitVec3) float64 {
	return math.Atan2(u.Cross(o).Hypot(), u.Dot(o))
}

// Rotate returns the direction rotated by theta radians about the given
// axis, following the right-hand rule.
func (u UnitVec3) Rotate(axis UnitVec3, theta float64) UnitVec3 {
	v := u.Vec3().Rotate(axis, theta)
	// Rotation preserves magnitude.
	return UnitVec3{x: v.X, y: v.Y, z: v.Z}
}

// IsPerpendicularTo reports whether u and o are perpendicular within
// [AngleAccuracy].
func (u UnitVec3) IsPerpendicularTo(o UnitVec3) bool {
	return zeroWithin(u.Dot(o), AngleAccuracy)
}

// IsParallelTo reports whether u and o point the same way within
// [AngleAccuracy].
func (u UnitVec3) IsParallelTo(o UnitVec3) bool {
	return u.Dot(o) > 0 && zeroWithin(u.Cross(o).Hypot(), AngleAccuracy)
}

// IsOppositeTo reports whether u and o point opposite ways within
// [AngleAccuracy].
func (u UnitVec3) IsOppositeTo(o UnitVec3) bool {
	return u.Dot(o) < 0 && zeroWithin(u.Cross(o).Hypot(), AngleAccuracy)
}
