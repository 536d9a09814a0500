package geom

import (
	"fmt"
	"math"
)

// Cone is an infinite right circular cone, parameterized like a cylinder
// whose radius grows linearly along the axis: the radius at height v is
// radius + v·tan(halfAngle). The u parameter is the angle in radians from
// the frame's x direction; the v parameter is the distance along the
// frame's z direction. The v domain ends where the radius reaches zero, at
// the apex.
type Cone struct {
	frame     Frame
	radius    float64
	halfAngle float64
}

// NewCone returns the cone with the given radius at origin, opening with
// the given half-angle along the global z axis. It fails with
// [ErrConstruction] if the radius is not positive or the half-angle is not
// in (−π/2, 0) ∪ (0, π/2).
func NewCone(origin Point3, radius, halfAngle float64) (Cone, error) {
	return NewConeIn(StandardFrame(origin), radius, halfAngle)
}

// NewConeIn is like [NewCone] with the axis and angle reference taken from
// the frame.
func NewConeIn(f Frame, radius, halfAngle float64) (Cone, error) {
	if radius <= 0 {
		return Cone{}, fmt.Errorf("%w: cone radius must be positive, got %g", ErrConstruction, radius)
	}
	if halfAngle <= -math.Pi/2 || halfAngle >= math.Pi/2 || halfAngle == 0 {
		return Cone{}, fmt.Errorf("%w: cone half-angle must be in (−π/2, 0) or (0, π/2), got %g", ErrConstruction, halfAngle)
	}
	return Cone{frame: f, radius: radius, halfAngle: halfAngle}, nil
}

// Frame returns the frame the cone is oriented by.
func (c Cone) Frame() Frame { return c.frame }

// Origin returns the point on the cone's axis at v = 0.
func (c Cone) Origin() Point3 { return c.frame.origin }

// Axis returns the direction of the cone's axis.
func (c Cone) Axis() UnitVec3 { return c.frame.dirZ }

// Radius returns the cone's radius at v = 0.
func (c Cone) Radius() float64 { return c.radius }

// HalfAngle returns the angle between the cone's axis and its surface.
func (c Cone) HalfAngle() float64 { return c.halfAngle }

// Apex returns the point where the cone's radius reaches zero.
func (c Cone) Apex() Point3 {
	return c.frame.Global(0, 0, c.apexV())
}

// apexV is the v parameter of the apex, −radius/tan(halfAngle).
func (c Cone) apexV() float64 {
	return -c.radius / math.Tan(c.halfAngle)
}

// RadiusAt returns the cone's radius at height v, which is negative beyond
// the apex.
func (c Cone) RadiusAt(v float64) float64 {
	return c.radius + v*math.Tan(c.halfAngle)
}

func (c Cone) Kind() SurfaceKind { return ConeKind }

func (c Cone) Parameterization() (u, v Parameterization) {
	u = Parameterization{
		Form:   PeriodicForm,
		Type:   CircularParam,
		Domain: Interval{Start: 0, End: 2 * math.Pi},
	}
	v = Parameterization{
		Form:   OpenForm,
		Type:   LinearParam,
		Domain: c.vDomain(),
	}
	return u, v
}

// vDomain is the v range on the origin's side of the apex: the radius is
// nonnegative there.
func (c Cone) vDomain() Interval {
	if c.halfAngle > 0 {
		return Interval{Start: c.apexV(), End: math.Inf(1)}
	}
	return Interval{Start: math.Inf(-1), End: c.apexV()}
}

func (c Cone) Evaluate(u, v float64) *SurfaceEval {
	return newSurfaceEval(c, u, v)
}

// ProjectPoint returns the evaluation closest to pt: the angle of pt
// around the axis, and the height found by dropping pt onto the slanted
// generator line at that angle, clamped at the apex. A point on the axis
// projects to angle zero.
func (c Cone) ProjectPoint(pt Point3) (*SurfaceEval, error) {
	local := c.frame.Local(pt)
	rho := math.Hypot(local.X, local.Y)
	u := 0.0
	if !zeroWithin(rho, LengthAccuracy) {
		u = wrapAngle(math.Atan2(local.Y, local.X))
	}
	// In the (radial, axial) half-plane the cone is the line through
	// (radius, 0) with unit direction (sin α, cos α).
	sin, cos := math.Sincos(c.halfAngle)
	t := (rho-c.radius)*sin + local.Z*cos
	v := c.vDomain().Clamp(t * cos)
	return c.Evaluate(u, v), nil
}

// Transformed returns the cone with its frame mapped through m. The radius
// and half-angle are carried over unchanged, so m is expected to be rigid.
// It fails if m degenerates the frame.
func (c Cone) Transformed(m Matrix4) (Cone, error) {
	f, err := c.frame.Transformed(m)
	if err != nil {
		return Cone{}, err
	}
	return Cone{frame: f, radius: c.radius, halfAngle: c.halfAngle}, nil
}

func (c Cone) TransformedSurface(m Matrix4) (Surface, error) {
	nc, err := c.Transformed(m)
	if err != nil {
		return nil, err
	}
	return nc, nil
}

// Mirrored returns the cone winding the opposite way, with the reference
// and axis directions of its frame negated.
func (c Cone) Mirrored() Cone {
	return Cone{frame: c.frame.Mirrored(), radius: c.radius, halfAngle: c.halfAngle}
}

func (c Cone) MirroredSurface() Surface {
	return c.Mirrored()
}

func (c Cone) point(u, v float64) Point3 {
	sin, cos := math.Sincos(u)
	r := c.RadiusAt(v)
	return c.frame.Global(r*cos, r*sin, v)
}

func (c Cone) partials(u, v float64) (su, sv Vec3) {
	sin, cos := math.Sincos(u)
	r := c.RadiusAt(v)
	tan := math.Tan(c.halfAngle)
	su = c.frame.dirX.Mul(-r * sin).Add(c.frame.dirY.Mul(r * cos))
	sv = c.frame.dirX.Mul(tan * cos).Add(c.frame.dirY.Mul(tan * sin)).Add(c.frame.dirZ.Vec3())
	return su, sv
}

func (c Cone) secondPartials(u, v float64) (suu, suv, svv Vec3) {
	sin, cos := math.Sincos(u)
	r := c.RadiusAt(v)
	tan := math.Tan(c.halfAngle)
	suu = c.frame.dirX.Mul(-r * cos).Add(c.frame.dirY.Mul(-r * sin))
	suv = c.frame.dirX.Mul(-tan * sin).Add(c.frame.dirY.Mul(tan * cos))
	return suu, suv, Vec3{}
}

// curvatures of a cone are zero along the slanted generator and the
// reciprocal of the local radius around the axis. They are undefined at
// the apex.
func (c Cone) curvatures(u, v float64) (minC, maxC PrincipalCurvature, err error) {
	r := c.RadiusAt(v)
	if zeroWithin(r, LengthAccuracy) {
		return minC, maxC, fmt.Errorf("%w: cone curvatures at the apex", ErrDegenerateInput)
	}
	sinU, cosU := math.Sincos(u)
	sinA, cosA := math.Sincos(c.halfAngle)
	around := MustUnit3(c.frame.dirX.Mul(-sinU).Add(c.frame.dirY.Mul(cosU)))
	slant := MustUnit3(c.frame.dirX.Mul(sinA * cosU).
		Add(c.frame.dirY.Mul(sinA * sinU)).
		Add(c.frame.dirZ.Mul(cosA)))
	minC = PrincipalCurvature{Value: 0, Direction: slant}
	maxC = PrincipalCurvature{Value: 1 / r, Direction: around}
	return minC, maxC, nil
}
