package geom

import "math"

// Line is an unbounded straight curve through an origin point. The
// parameter measures signed distance from the origin along the line's
// direction.
type Line struct {
	origin    Point3
	direction UnitVec3
}

// NewLine returns the line through origin along direction. Using a
// [UnitVec3] for the direction rules out degenerate input, so unlike the
// other curve constructors this one cannot fail.
func NewLine(origin Point3, direction UnitVec3) Line {
	return Line{origin: origin, direction: direction}
}

// LineThrough returns the line through p0 and p1, directed from p0 towards
// p1. It fails with [ErrDegenerateInput] if the points are coincident.
func LineThrough(p0, p1 Point3) (Line, error) {
	dir, err := Unit3(p1.Sub(p0))
	if err != nil {
		return Line{}, err
	}
	return NewLine(p0, dir), nil
}

// Origin returns the point at parameter zero.
func (l Line) Origin() Point3 { return l.origin }

// Direction returns the line's direction.
func (l Line) Direction() UnitVec3 { return l.direction }

func (l Line) Kind() CurveKind { return LineKind }

func (l Line) Parameterization() Parameterization {
	return Parameterization{
		Form:   OpenForm,
		Type:   LinearParam,
		Domain: Interval{Start: math.Inf(-1), End: math.Inf(1)},
	}
}

func (l Line) Evaluate(t float64) *CurveEval {
	return newCurveEval(l, t)
}

// ProjectPoint returns the evaluation at the foot of the perpendicular
// dropped from pt onto the line.
func (l Line) ProjectPoint(pt Point3) (*CurveEval, error) {
	return l.Evaluate(pt.Sub(l.origin).Dot(l.direction.Vec3())), nil
}

// Transformed returns the line mapped through m. It fails if m collapses
// the line's direction.
func (l Line) Transformed(m Matrix4) (Line, error) {
	dir, err := Unit3(m.ApplyVec3(l.direction.Vec3()))
	if err != nil {
		return Line{}, err
	}
	return Line{origin: l.origin.Transform(m), direction: dir}, nil
}

func (l Line) TransformedCurve(m Matrix4) (Curve, error) {
	nl, err := l.Transformed(m)
	if err != nil {
		return nil, err
	}
	return nl, nil
}

// Mirrored returns the line with its direction reversed.
func (l Line) Mirrored() Line {
	return Line{origin: l.origin, direction: l.direction.Negate()}
}

func (l Line) MirroredCurve() Curve {
	return l.Mirrored()
}

func (l Line) point(t float64) Point3 {
	return l.origin.Translate(l.direction.Mul(t))
}

func (l Line) derivative(t float64) Vec3 {
	return l.direction.Vec3()
}

func (l Line) secondDerivative(t float64) Vec3 {
	return Vec3{}
}

func (l Line) curvature(t float64) float64 {
	return 0
}
