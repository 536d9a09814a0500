package geom

import (
	"fmt"
	"math"
)

// Plane is an unbounded flat surface in model space. The parameters are
// distances along the frame's x and y directions; the frame's z direction
// is the surface normal.
type Plane struct {
	frame Frame
}

// NewPlane returns the plane through origin spanned by dirX and dirY, with
// dirX × dirY as its normal. It fails with [ErrConstruction] if the two
// directions are not perpendicular.
func NewPlane(origin Point3, dirX, dirY UnitVec3) (Plane, error) {
	if !dirX.IsPerpendicularTo(dirY) {
		return Plane{}, fmt.Errorf("%w: plane directions %v and %v are not perpendicular", ErrConstruction, dirX, dirY)
	}
	f, err := NewFrame(origin, dirX, MustUnit3(dirX.Cross(dirY)))
	if err != nil {
		return Plane{}, err
	}
	return Plane{frame: f}, nil
}

// NewPlaneIn returns the plane spanned by the frame's x and y directions.
func NewPlaneIn(f Frame) Plane {
	return Plane{frame: f}
}

// XYPlane returns the plane through origin spanned by the global x and y
// axes.
func XYPlane(origin Point3) Plane {
	return Plane{frame: StandardFrame(origin)}
}

// Frame returns the frame the plane lies in.
func (p Plane) Frame() Frame { return p.frame }

// Origin returns the plane's origin, the position at (0, 0).
func (p Plane) Origin() Point3 { return p.frame.origin }

// Normal returns the plane's unit normal, the frame's z direction.
func (p Plane) Normal() UnitVec3 { return p.frame.dirZ }

// LiftPoint maps a sketch-plane point onto the plane in model space.
func (p Plane) LiftPoint(pt Point2) Point3 {
	return p.frame.Global(pt.X, pt.Y, 0)
}

// SignedDistance returns the distance from pt to the plane, positive on
// the side the normal points into.
func (p Plane) SignedDistance(pt Point3) float64 {
	return p.frame.Local(pt).Z
}

func (p Plane) Kind() SurfaceKind { return PlaneKind }

func (p Plane) Parameterization() (u, v Parameterization) {
	linear := Parameterization{
		Form:   OpenForm,
		Type:   LinearParam,
		Domain: Interval{Start: math.Inf(-1), End: math.Inf(1)},
	}
	return linear, linear
}

func (p Plane) Evaluate(u, v float64) *SurfaceEval {
	return newSurfaceEval(p, u, v)
}

// ProjectPoint drops pt perpendicularly onto the plane. It never fails.
func (p Plane) ProjectPoint(pt Point3) (*SurfaceEval, error) {
	local := p.frame.Local(pt)
	return p.Evaluate(local.X, local.Y), nil
}

// Transformed returns the plane with its frame mapped through m. It fails
// if m degenerates the frame.
func (p Plane) Transformed(m Matrix4) (Plane, error) {
	f, err := p.frame.Transformed(m)
	if err != nil {
		return Plane{}, err
	}
	return Plane{frame: f}, nil
}

func (p Plane) TransformedSurface(m Matrix4) (Surface, error) {
	np, err := p.Transformed(m)
	if err != nil {
		return nil, err
	}
	return np, nil
}

// Mirrored returns the plane with the reference and axis directions of its
// frame negated, flipping the normal.
func (p Plane) Mirrored() Plane {
	return Plane{frame: p.frame.Mirrored()}
}

func (p Plane) MirroredSurface() Surface {
	return p.Mirrored()
}

func (p Plane) point(u, v float64) Point3 {
	return p.frame.Global(u, v, 0)
}

func (p Plane) partials(u, v float64) (su, sv Vec3) {
	return p.frame.dirX.Vec3(), p.frame.dirY.Vec3()
}

func (p Plane) secondPartials(u, v float64) (suu, suv, svv Vec3) {
	return Vec3{}, Vec3{}, Vec3{}
}

func (p Plane) curvatures(u, v float64) (minC, maxC PrincipalCurvature, err error) {
	minC = PrincipalCurvature{Value: 0, Direction: p.frame.dirX}
	maxC = PrincipalCurvature{Value: 0, Direction: p.frame.dirY}
	return minC, maxC, nil
}
