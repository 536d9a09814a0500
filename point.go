package geom

import (
	"fmt"
	"math"
)

// Point2 is a position in a two-dimensional sketch plane.
type Point2 struct {
	X float64
	Y float64
}

// Pt2 returns the point (x, y).
func Pt2(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

func (pt Point2) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point2) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point2) Translate(o Vec2) Point2 {
	return Point2{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Transform applies the homogeneous transform m, treating pt as the row
// vector [x, y, 1].
func (pt Point2) Transform(m Matrix3) Point2 {
	return m.ApplyPoint2(pt)
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point2) Sub(o Point2) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point2) Lerp(o Point2, t float64) Point2 {
	return Point2(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point2) Midpoint(o Point2) Point2 {
	return Point2{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point2) Distance(o Point2) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point2) DistanceSquared(o Point2) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point2) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point2) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// Point3 is a position in three-dimensional model space.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func (pt Point3) Splat() (float64, float64, float64) {
	return pt.X, pt.Y, pt.Z
}

func (pt Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

func (pt Point3) Translate(o Vec3) Point3 {
	return Point3{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
		Z: pt.Z + o.Z,
	}
}

// Transform applies the homogeneous transform m, treating pt as the row
// vector [x, y, z, 1].
func (pt Point3) Transform(m Matrix4) Point3 {
	return m.ApplyPoint3(pt)
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point3) Sub(o Point3) Vec3 {
	return Vec3{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
		Z: pt.Z - o.Z,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point3) Lerp(o Point3, t float64) Point3 {
	return Point3(Vec3(pt).Lerp(Vec3(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point3) Midpoint(o Point3) Point3 {
	return Point3{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
		Z: 0.5 * (pt.Z + o.Z),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point3) Distance(o Point3) float64 {
	return pt.Sub(o).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point3) DistanceSquared(o Point3) float64 {
	return pt.Sub(o).Hypot2()
}

// IsInf reports whether at least one coordinate is infinite.
func (pt Point3) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) || math.IsInf(pt.Z, 0)
}

// IsNaN reports whether at least one coordinate is NaN.
func (pt Point3) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z)
}
