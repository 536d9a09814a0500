package geom

import (
	"fmt"
	"math"
)

// Torus is the surface swept by a circle of the minor radius whose center
// travels the circle of the major radius about the frame's z direction.
// The u parameter is the angle in radians around the axis from the frame's
// x direction; the v parameter is the angle around the swept tube, with
// v = 0 pointing away from the axis. A minor radius exceeding the major
// one gives a self-intersecting spindle torus, which is allowed.
type Torus struct {
	frame Frame
	major float64
	minor float64
}

// NewTorus returns the torus of the given radii centered at origin, around
// the global z axis. It fails with [ErrConstruction] if either radius is
// not positive.
func NewTorus(origin Point3, major, minor float64) (Torus, error) {
	return NewTorusIn(StandardFrame(origin), major, minor)
}

// NewTorusIn is like [NewTorus] with the axis and angle reference taken
// from the frame.
func NewTorusIn(f Frame, major, minor float64) (Torus, error) {
	if major <= 0 || minor <= 0 {
		return Torus{}, fmt.Errorf("%w: torus radii must be positive, got %g and %g", ErrConstruction, major, minor)
	}
	return Torus{frame: f, major: major, minor: minor}, nil
}

// Frame returns the frame the torus is oriented by.
func (t Torus) Frame() Frame { return t.frame }

// Origin returns the torus's center.
func (t Torus) Origin() Point3 { return t.frame.origin }

// MajorRadius returns the radius of the circle the tube centers travel.
func (t Torus) MajorRadius() float64 { return t.major }

// MinorRadius returns the radius of the swept tube.
func (t Torus) MinorRadius() float64 { return t.minor }

// Volume returns the volume enclosed by the torus, 2π²Rr².
func (t Torus) Volume() float64 {
	return 2 * math.Pi * math.Pi * t.major * t.minor * t.minor
}

// SurfaceArea returns the area of the torus, 4π²Rr.
func (t Torus) SurfaceArea() float64 {
	return 4 * math.Pi * math.Pi * t.major * t.minor
}

func (t Torus) Kind() SurfaceKind { return TorusKind }

func (t Torus) Parameterization() (u, v Parameterization) {
	circular := Parameterization{
		Form:   PeriodicForm,
		Type:   CircularParam,
		Domain: Interval{Start: 0, End: 2 * math.Pi},
	}
	return circular, circular
}

func (t Torus) Evaluate(u, v float64) *SurfaceEval {
	return newSurfaceEval(t, u, v)
}

// ProjectPoint returns the evaluation closest to pt: the angle of pt
// around the axis, and the angle around the tube at that azimuth. On a
// spindle torus the tubes of opposite azimuths overlap, and the nearer of
// the two candidate evaluations is chosen. A point on the axis projects to
// azimuth zero; a point on the circle of tube centers projects to tube
// angle zero.
func (t Torus) ProjectPoint(pt Point3) (*SurfaceEval, error) {
	local := t.frame.Local(pt)
	rho := math.Hypot(local.X, local.Y)
	u := 0.0
	if !zeroWithin(rho, LengthAccuracy) {
		u = wrapAngle(math.Atan2(local.Y, local.X))
	}
	v := 0.0
	if !zeroWithin(math.Hypot(rho-t.major, local.Z), LengthAccuracy) {
		v = wrapAngle(math.Atan2(local.Z, rho-t.major))
	}
	ev := t.Evaluate(u, v)
	if t.minor <= t.major {
		return ev, nil
	}
	// Spindle torus: the tube half a turn away reaches across the axis, so
	// it can be the closer one.
	u2 := wrapAngle(u + math.Pi)
	v2 := wrapAngle(math.Atan2(local.Z, -rho-t.major))
	ev2 := t.Evaluate(u2, v2)
	if ev2.Position().DistanceSquared(pt) < ev.Position().DistanceSquared(pt) {
		return ev2, nil
	}
	return ev, nil
}

// Transformed returns the torus with its frame mapped through m. The radii
// are carried over unchanged, so m is expected to be rigid. It fails if m
// degenerates the frame.
func (t Torus) Transformed(m Matrix4) (Torus, error) {
	f, err := t.frame.Transformed(m)
	if err != nil {
		return Torus{}, err
	}
	return Torus{frame: f, major: t.major, minor: t.minor}, nil
}

func (t Torus) TransformedSurface(m Matrix4) (Surface, error) {
	nt, err := t.Transformed(m)
	if err != nil {
		return nil, err
	}
	return nt, nil
}

// Mirrored returns the torus winding the opposite way, with the reference
// and axis directions of its frame negated.
func (t Torus) Mirrored() Torus {
	return Torus{frame: t.frame.Mirrored(), major: t.major, minor: t.minor}
}

func (t Torus) MirroredSurface() Surface {
	return t.Mirrored()
}

func (t Torus) point(u, v float64) Point3 {
	sinU, cosU := math.Sincos(u)
	sinV, cosV := math.Sincos(v)
	rho := t.major + t.minor*cosV
	return t.frame.Global(rho*cosU, rho*sinU, t.minor*sinV)
}

func (t Torus) partials(u, v float64) (su, sv Vec3) {
	sinU, cosU := math.Sincos(u)
	sinV, cosV := math.Sincos(v)
	rho := t.major + t.minor*cosV
	su = t.frame.dirX.Mul(-rho * sinU).Add(t.frame.dirY.Mul(rho * cosU))
	sv = t.frame.dirX.Mul(-t.minor * sinV * cosU).
		Add(t.frame.dirY.Mul(-t.minor * sinV * sinU)).
		Add(t.frame.dirZ.Mul(t.minor * cosV))
	return su, sv
}

func (t Torus) secondPartials(u, v float64) (suu, suv, svv Vec3) {
	sinU, cosU := math.Sincos(u)
	sinV, cosV := math.Sincos(v)
	rho := t.major + t.minor*cosV
	suu = t.frame.dirX.Mul(-rho * cosU).Add(t.frame.dirY.Mul(-rho * sinU))
	suv = t.frame.dirX.Mul(t.minor * sinV * sinU).Add(t.frame.dirY.Mul(-t.minor * sinV * cosU))
	svv = t.frame.dirX.Mul(-t.minor * cosV * cosU).
		Add(t.frame.dirY.Mul(-t.minor * cosV * sinU)).
		Add(t.frame.dirZ.Mul(-t.minor * sinV))
	return suu, suv, svv
}

// curvatures of a torus pair the tube curvature 1/minor with the reach
// curvature, the reciprocal distance from the torus center to the
// position. The smaller magnitude is the minimum. They are undefined where
// the tube meets the axis.
func (t Torus) curvatures(u, v float64) (minC, maxC PrincipalCurvature, err error) {
	su, sv := t.partials(u, v)
	around, err := Unit3(su)
	if err != nil {
		return minC, maxC, fmt.Errorf("%w: torus curvatures where the tube crosses the axis", ErrDegenerateInput)
	}
	tube := PrincipalCurvature{Value: 1 / t.minor, Direction: MustUnit3(sv)}
	reach := PrincipalCurvature{
		Value:     1 / t.point(u, v).Distance(t.frame.origin),
		Direction: around,
	}
	if math.Abs(reach.Value) <= math.Abs(tube.Value) {
		return reach, tube, nil
	}
	return tube, reach, nil
}
