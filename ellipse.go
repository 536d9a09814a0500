package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Ellipse is a full ellipse in model space. The major radius runs along the
// frame's x direction, the minor radius along its y direction. The
// parameter t traces position(t) = origin + a·cos(t)·x + b·sin(t)·y; note
// that t is the construction angle of that formula, not the polar angle of
// the resulting position.
type Ellipse struct {
	frame Frame
	major float64
	minor float64
}

// NewEllipse returns the ellipse with the given semi-axes centered at
// origin, lying in the plane of the global x and y axes. It fails with
// [ErrConstruction] if either radius is not positive or if the major radius
// is smaller than the minor one.
func NewEllipse(origin Point3, major, minor float64) (Ellipse, error) {
	return NewEllipseIn(StandardFrame(origin), major, minor)
}

// NewEllipseIn returns the ellipse with the given semi-axes centered at the
// frame's origin, with the major axis along the frame's x direction. It
// fails with [ErrConstruction] if either radius is not positive or if the
// major radius is smaller than the minor one.
func NewEllipseIn(f Frame, major, minor float64) (Ellipse, error) {
	if major <= 0 || minor <= 0 {
		return Ellipse{}, fmt.Errorf("%w: ellipse radii must be positive, got %g and %g", ErrConstruction, major, minor)
	}
	if major < minor {
		return Ellipse{}, fmt.Errorf("%w: major radius %g is smaller than minor radius %g", ErrConstruction, major, minor)
	}
	return Ellipse{frame: f, major: major, minor: minor}, nil
}

// Frame returns the frame the ellipse lies in.
func (e Ellipse) Frame() Frame { return e.frame }

// Origin returns the ellipse's center.
func (e Ellipse) Origin() Point3 { return e.frame.origin }

// MajorRadius returns the semi-major axis length.
func (e Ellipse) MajorRadius() float64 { return e.major }

// MinorRadius returns the semi-minor axis length.
func (e Ellipse) MinorRadius() float64 { return e.minor }

// Eccentricity returns the ellipse's eccentricity, in [0, 1).
func (e Ellipse) Eccentricity() float64 {
	ratio := e.minor / e.major
	ecc := math.Sqrt(1 - ratio*ratio)
	if ecc >= 1 {
		// The constructor rejects the radii that would make this a
		// parabola or hyperbola.
		panic("unreachable")
	}
	return ecc
}

// LinearEccentricity returns the distance from the center to either focus.
func (e Ellipse) LinearEccentricity() float64 {
	return math.Sqrt(e.major*e.major - e.minor*e.minor)
}

// SemiLatusRectum returns half the chord length through a focus,
// perpendicular to the major axis.
func (e Ellipse) SemiLatusRectum() float64 {
	return e.minor * e.minor / e.major
}

// Area returns the area enclosed by the ellipse.
func (e Ellipse) Area() float64 {
	return math.Pi * e.major * e.minor
}

// Perimeter returns the circumference of the ellipse, which has no closed
// form. It is computed as the complete elliptic integral of the second
// kind, 4a·E(e), using fixed Legendre quadrature over [0, π/2].
func (e Ellipse) Perimeter(accuracy float64) float64 {
	ecc := e.Eccentricity()
	e2 := ecc * ecc
	f := func(theta float64) float64 {
		sin := math.Sin(theta)
		return math.Sqrt(1 - e2*sin*sin)
	}
	// The integrand is smooth, so the node count can stay modest. Very
	// eccentric ellipses converge more slowly and get more nodes.
	n := 32
	if accuracy < 1e-10 || e2 > 0.99 {
		n = 64
	}
	return 4 * e.major * quad.Fixed(f, 0, math.Pi/2, n, nil, 0)
}

func (e Ellipse) Kind() CurveKind { return EllipseKind }

func (e Ellipse) Parameterization() Parameterization {
	return Parameterization{
		Form:   PeriodicForm,
		Type:   CircularParam,
		Domain: Interval{Start: 0, End: 2 * math.Pi},
	}
}

func (e Ellipse) Evaluate(t float64) *CurveEval {
	return newCurveEval(e, t)
}

// ProjectPoint returns the evaluation at the construction angle of pt, in
// [0, 2π): the in-plane components of pt are divided by the respective
// semi-axes before taking the angle, which makes projection the exact
// inverse of Evaluate for points on the ellipse. A point on the axis
// through the center projects to angle zero.
func (e Ellipse) ProjectPoint(pt Point3) (*CurveEval, error) {
	local := e.frame.Local(pt)
	x := local.X / e.major
	y := local.Y / e.minor
	if zeroWithin(math.Hypot(x, y), LengthAccuracy) {
		return e.Evaluate(0), nil
	}
	return e.Evaluate(wrapAngle(math.Atan2(y, x))), nil
}

// Transformed returns the ellipse with its frame mapped through m. The
// radii are carried over unchanged, so m is expected to be rigid. It fails
// if m degenerates the frame.
func (e Ellipse) Transformed(m Matrix4) (Ellipse, error) {
	f, err := e.frame.Transformed(m)
	if err != nil {
		return Ellipse{}, err
	}
	return Ellipse{frame: f, major: e.major, minor: e.minor}, nil
}

func (e Ellipse) TransformedCurve(m Matrix4) (Curve, error) {
	ne, err := e.Transformed(m)
	if err != nil {
		return nil, err
	}
	return ne, nil
}

// Mirrored returns the ellipse winding the opposite way, with the
// reference and axis directions of its frame negated.
func (e Ellipse) Mirrored() Ellipse {
	return Ellipse{frame: e.frame.Mirrored(), major: e.major, minor: e.minor}
}

func (e Ellipse) MirroredCurve() Curve {
	return e.Mirrored()
}

func (e Ellipse) point(t float64) Point3 {
	sin, cos := math.Sincos(t)
	return e.frame.Global(e.major*cos, e.minor*sin, 0)
}

func (e Ellipse) derivative(t float64) Vec3 {
	sin, cos := math.Sincos(t)
	return e.frame.dirX.Mul(-e.major * sin).Add(e.frame.dirY.Mul(e.minor * cos))
}

func (e Ellipse) secondDerivative(t float64) Vec3 {
	sin, cos := math.Sincos(t)
	return e.frame.dirX.Mul(-e.major * cos).Add(e.frame.dirY.Mul(-e.minor * sin))
}

func (e Ellipse) curvature(t float64) float64 {
	sin, cos := math.Sincos(t)
	q := e.major*e.major*sin*sin + e.minor*e.minor*cos*cos
	return e.major * e.minor / (q * math.Sqrt(q))
}
