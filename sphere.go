package geom

import (
	"fmt"
	"math"
)

// Sphere is a full sphere. The u parameter is the azimuth in radians from
// the frame's x direction, winding counterclockwise about the frame's z
// direction; the v parameter is the latitude in radians, from −π/2 at the
// south pole to π/2 at the north pole.
type Sphere struct {
	frame  Frame
	radius float64
}

// NewSphere returns the sphere of the given radius centered at origin,
// with its poles on the global z axis. It fails with [ErrConstruction] if
// the radius is not positive.
func NewSphere(origin Point3, radius float64) (Sphere, error) {
	return NewSphereIn(StandardFrame(origin), radius)
}

// NewSphereIn is like [NewSphere] with the poles and azimuth reference
// taken from the frame.
func NewSphereIn(f Frame, radius float64) (Sphere, error) {
	if radius <= 0 {
		return Sphere{}, fmt.Errorf("%w: sphere radius must be positive, got %g", ErrConstruction, radius)
	}
	return Sphere{frame: f, radius: radius}, nil
}

// Frame returns the frame the sphere is oriented by.
func (s Sphere) Frame() Frame { return s.frame }

// Origin returns the sphere's center.
func (s Sphere) Origin() Point3 { return s.frame.origin }

// Radius returns the sphere's radius.
func (s Sphere) Radius() float64 { return s.radius }

// Volume returns the volume enclosed by the sphere.
func (s Sphere) Volume() float64 {
	return 4.0 / 3.0 * math.Pi * s.radius * s.radius * s.radius
}

// SurfaceArea returns the area of the sphere.
func (s Sphere) SurfaceArea() float64 {
	return 4 * math.Pi * s.radius * s.radius
}

func (s Sphere) Kind() SurfaceKind { return SphereKind }

func (s Sphere) Parameterization() (u, v Parameterization) {
	u = Parameterization{
		Form:   PeriodicForm,
		Type:   CircularParam,
		Domain: Interval{Start: 0, End: 2 * math.Pi},
	}
	v = Parameterization{
		Form:   OpenForm,
		Type:   CircularParam,
		Domain: Interval{Start: -math.Pi / 2, End: math.Pi / 2},
	}
	return u, v
}

func (s Sphere) Evaluate(u, v float64) *SurfaceEval {
	return newSurfaceEval(s, u, v)
}

// ProjectPoint returns the evaluation closest to pt: its azimuth and
// latitude as seen from the center. The center itself projects to (0, 0),
// and points on the polar axis project to azimuth zero.
func (s Sphere) ProjectPoint(pt Point3) (*SurfaceEval, error) {
	local := s.frame.Local(pt)
	if zeroWithin(local.Hypot(), LengthAccuracy) {
		return s.Evaluate(0, 0), nil
	}
	rho := math.Hypot(local.X, local.Y)
	u := 0.0
	if !zeroWithin(rho, LengthAccuracy) {
		u = wrapAngle(math.Atan2(local.Y, local.X))
	}
	return s.Evaluate(u, math.Atan2(local.Z, rho)), nil
}

// Transformed returns the sphere with its frame mapped through m. The
// radius is carried over unchanged, so m is expected to be rigid. It fails
// if m degenerates the frame.
func (s Sphere) Transformed(m Matrix4) (Sphere, error) {
	f, err := s.frame.Transformed(m)
	if err != nil {
		return Sphere{}, err
	}
	return Sphere{frame: f, radius: s.radius}, nil
}

func (s Sphere) TransformedSurface(m Matrix4) (Surface, error) {
	ns, err := s.Transformed(m)
	if err != nil {
		return nil, err
	}
	return ns, nil
}

// Mirrored returns the sphere winding the opposite way, with the reference
// and axis directions of its frame negated.
func (s Sphere) Mirrored() Sphere {
	return Sphere{frame: s.frame.Mirrored(), radius: s.radius}
}

func (s Sphere) MirroredSurface() Surface {
	return s.Mirrored()
}

func (s Sphere) point(u, v float64) Point3 {
	sinU, cosU := math.Sincos(u)
	sinV, cosV := math.Sincos(v)
	return s.frame.Global(s.radius*cosV*cosU, s.radius*cosV*sinU, s.radius*sinV)
}

func (s Sphere) partials(u, v float64) (su, sv Vec3) {
	sinU, cosU := math.Sincos(u)
	sinV, cosV := math.Sincos(v)
	su = s.frame.dirX.Mul(-s.radius * cosV * sinU).Add(s.frame.dirY.Mul(s.radius * cosV * cosU))
	sv = s.frame.dirX.Mul(-s.radius * sinV * cosU).
		Add(s.frame.dirY.Mul(-s.radius * sinV * sinU)).
		Add(s.frame.dirZ.Mul(s.radius * cosV))
	return su, sv
}

func (s Sphere) secondPartials(u, v float64) (suu, suv, svv Vec3) {
	sinU, cosU := math.Sincos(u)
	sinV, cosV := math.Sincos(v)
	suu = s.frame.dirX.Mul(-s.radius * cosV * cosU).Add(s.frame.dirY.Mul(-s.radius * cosV * sinU))
	suv = s.frame.dirX.Mul(s.radius * sinV * sinU).Add(s.frame.dirY.Mul(-s.radius * sinV * cosU))
	svv = s.frame.dirX.Mul(-s.radius * cosV * cosU).
		Add(s.frame.dirY.Mul(-s.radius * cosV * sinU)).
		Add(s.frame.dirZ.Mul(-s.radius * sinV))
	return suu, suv, svv
}

// curvatures of a sphere are 1/radius in every tangent direction. The
// azimuthal and meridional directions are reported; they are undefined at
// the poles.
func (s Sphere) curvatures(u, v float64) (minC, maxC PrincipalCurvature, err error) {
	su, sv := s.partials(u, v)
	around, err := Unit3(su)
	if err != nil {
		return minC, maxC, fmt.Errorf("%w: sphere curvature directions at a pole", ErrDegenerateInput)
	}
	minC = PrincipalCurvature{Value: 1 / s.radius, Direction: around}
	maxC = PrincipalCurvature{Value: 1 / s.radius, Direction: MustUnit3(sv)}
	return minC, maxC, nil
}
