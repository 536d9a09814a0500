package geom

import (
	"fmt"
	"math"
)

// Circle is a full circle in model space. The parameter is the angle in
// radians from the frame's x direction, winding counterclockwise about the
// frame's z direction.
type Circle struct {
	frame  Frame
	radius float64
}

// NewCircle returns the circle of the given radius centered at origin,
// lying in the plane of the global x and y axes. It fails with
// [ErrConstruction] if the radius is not positive.
func NewCircle(origin Point3, radius float64) (Circle, error) {
	return NewCircleIn(StandardFrame(origin), radius)
}

// NewCircleIn returns the circle of the given radius centered at the
// frame's origin. Angle zero lies along the frame's x direction and the
// circle winds about its z direction. It fails with [ErrConstruction] if
// the radius is not positive.
func NewCircleIn(f Frame, radius float64) (Circle, error) {
	if radius <= 0 {
		return Circle{}, fmt.Errorf("%w: circle radius must be positive, got %g", ErrConstruction, radius)
	}
	return Circle{frame: f, radius: radius}, nil
}

// Frame returns the frame the circle lies in.
func (c Circle) Frame() Frame { return c.frame }

// Origin returns the circle's center.
func (c Circle) Origin() Point3 { return c.frame.origin }

// Radius returns the circle's radius.
func (c Circle) Radius() float64 { return c.radius }

// Perimeter returns the circumference of the circle.
func (c Circle) Perimeter() float64 {
	return 2 * math.Pi * c.radius
}

// Area returns the area enclosed by the circle.
func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

func (c Circle) Kind() CurveKind { return CircleKind }

func (c Circle) Parameterization() Parameterization {
	return Parameterization{
		Form:   PeriodicForm,
		Type:   CircularParam,
		Domain: Interval{Start: 0, End: 2 * math.Pi},
	}
}

func (c Circle) Evaluate(t float64) *CurveEval {
	return newCurveEval(c, t)
}

// ProjectPoint returns the evaluation at the angle closest to pt, in
// [0, 2π). A point on the circle's axis projects to angle zero.
func (c Circle) ProjectPoint(pt Point3) (*CurveEval, error) {
	local := c.frame.Local(pt)
	if zeroWithin(math.Hypot(local.X, local.Y), LengthAccuracy) {
		return c.Evaluate(0), nil
	}
	return c.Evaluate(wrapAngle(math.Atan2(local.Y, local.X))), nil
}

// Transformed returns the circle with its frame mapped through m. The
// radius is carried over unchanged, so m is expected to be rigid. It fails
// if m degenerates the frame.
func (c Circle) Transformed(m Matrix4) (Circle, error) {
	f, err := c.frame.Transformed(m)
	if err != nil {
		return Circle{}, err
	}
	return Circle{frame: f, radius: c.radius}, nil
}

func (c Circle) TransformedCurve(m Matrix4) (Curve, error) {
	nc, err := c.Transformed(m)
	if err != nil {
		return nil, err
	}
	return nc, nil
}

// Mirrored returns the circle winding the opposite way, with the reference
// and axis directions of its frame negated.
func (c Circle) Mirrored() Circle {
	return Circle{frame: c.frame.Mirrored(), radius: c.radius}
}

func (c Circle) MirroredCurve() Curve {
	return c.Mirrored()
}

func (c Circle) point(t float64) Point3 {
	sin, cos := math.Sincos(t)
	return c.frame.Global(c.radius*cos, c.radius*sin, 0)
}

func (c Circle) derivative(t float64) Vec3 {
	sin, cos := math.Sincos(t)
	return c.frame.dirX.Mul(-c.radius * sin).Add(c.frame.dirY.Mul(c.radius * cos))
}

func (c Circle) secondDerivative(t float64) Vec3 {
	sin, cos := math.Sincos(t)
	return c.frame.dirX.Mul(-c.radius * cos).Add(c.frame.dirY.Mul(-c.radius * sin))
}

func (c Circle) curvature(t float64) float64 {
	return 1 / c.radius
}
