package geom

import (
	"fmt"
	"math"
)

// Cylinder is an infinite right circular cylinder. The u parameter is the
// angle in radians from the frame's x direction, winding counterclockwise
// about the frame's z direction; the v parameter is the distance along
// that axis.
type Cylinder struct {
	frame  Frame
	radius float64
}

// NewCylinder returns the cylinder of the given radius around the global z
// axis through origin. It fails with [ErrConstruction] if the radius is
// not positive.
func NewCylinder(origin Point3, radius float64) (Cylinder, error) {
	return NewCylinderIn(StandardFrame(origin), radius)
}

// NewCylinderIn returns the cylinder of the given radius around the
// frame's z direction. It fails with [ErrConstruction] if the radius is
// not positive.
func NewCylinderIn(f Frame, radius float64) (Cylinder, error) {
	if radius <= 0 {
		return Cylinder{}, fmt.Errorf("%w: cylinder radius must be positive, got %g", ErrConstruction, radius)
	}
	return Cylinder{frame: f, radius: radius}, nil
}

// Frame returns the frame the cylinder is oriented by.
func (c Cylinder) Frame() Frame { return c.frame }

// Origin returns the point the cylinder's axis passes through at v = 0.
func (c Cylinder) Origin() Point3 { return c.frame.origin }

// Axis returns the direction of the cylinder's axis.
func (c Cylinder) Axis() UnitVec3 { return c.frame.dirZ }

// Radius returns the cylinder's radius.
func (c Cylinder) Radius() float64 { return c.radius }

func (c Cylinder) Kind() SurfaceKind { return CylinderKind }

func (c Cylinder) Parameterization() (u, v Parameterization) {
	u = Parameterization{
		Form:   PeriodicForm,
		Type:   CircularParam,
		Domain: Interval{Start: 0, End: 2 * math.Pi},
	}
	v = Parameterization{
		Form:   OpenForm,
		Type:   LinearParam,
		Domain: Interval{Start: math.Inf(-1), End: math.Inf(1)},
	}
	return u, v
}

func (c Cylinder) Evaluate(u, v float64) *SurfaceEval {
	return newSurfaceEval(c, u, v)
}

// ProjectPoint returns the evaluation closest to pt: the angle of pt
// around the axis and its height along it. A point on the axis projects to
// angle zero.
func (c Cylinder) ProjectPoint(pt Point3) (*SurfaceEval, error) {
	local := c.frame.Local(pt)
	u := 0.0
	if !zeroWithin(math.Hypot(local.X, local.Y), LengthAccuracy) {
		u = wrapAngle(math.Atan2(local.Y, local.X))
	}
	return c.Evaluate(u, local.Z), nil
}

// Transformed returns the cylinder with its frame mapped through m. The
// radius is carried over unchanged, so m is expected to be rigid. It fails
// if m degenerates the frame.
func (c Cylinder) Transformed(m Matrix4) (Cylinder, error) {
	f, err := c.frame.Transformed(m)
	if err != nil {
		return Cylinder{}, err
	}
	return Cylinder{frame: f, radius: c.radius}, nil
}

func (c Cylinder) TransformedSurface(m Matrix4) (Surface, error) {
	nc, err := c.Transformed(m)
	if err != nil {
		return nil, err
	}
	return nc, nil
}

// Mirrored returns the cylinder winding the opposite way, with the
// reference and axis directions of its frame negated.
func (c Cylinder) Mirrored() Cylinder {
	return Cylinder{frame: c.frame.Mirrored(), radius: c.radius}
}

func (c Cylinder) MirroredSurface() Surface {
	return c.Mirrored()
}

func (c Cylinder) point(u, v float64) Point3 {
	sin, cos := math.Sincos(u)
	return c.frame.Global(c.radius*cos, c.radius*sin, v)
}

func (c Cylinder) partials(u, v float64) (su, sv Vec3) {
	sin, cos := math.Sincos(u)
	su = c.frame.dirX.Mul(-c.radius * sin).Add(c.frame.dirY.Mul(c.radius * cos))
	return su, c.frame.dirZ.Vec3()
}

func (c Cylinder) secondPartials(u, v float64) (suu, suv, svv Vec3) {
	sin, cos := math.Sincos(u)
	suu = c.frame.dirX.Mul(-c.radius * cos).Add(c.frame.dirY.Mul(-c.radius * sin))
	return suu, Vec3{}, Vec3{}
}

// curvatures of a cylinder are zero along the axis and 1/radius around it.
func (c Cylinder) curvatures(u, v float64) (minC, maxC PrincipalCurvature, err error) {
	sin, cos := math.Sincos(u)
	around := MustUnit3(c.frame.dirX.Mul(-sin).Add(c.frame.dirY.Mul(cos)))
	minC = PrincipalCurvature{Value: 0, Direction: c.frame.dirZ}
	maxC = PrincipalCurvature{Value: 1 / c.radius, Direction: around}
	return minC, maxC, nil
}
