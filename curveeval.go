package geom

// CurveEval is a snapshot of a curve at one parameter value. Derived
// quantities are computed on first access and cached for the lifetime of
// the evaluation, so repeated access is cheap. An evaluation must not be
// shared between goroutines without synchronization.
type CurveEval struct {
	curve Curve
	t     float64

	pos  memo[Point3]
	d1   memo[Vec3]
	d2   memo[Vec3]
	curv memo[float64]
}

func newCurveEval(c Curve, t float64) *CurveEval {
	return &CurveEval{curve: c, t: t}
}

// Curve returns the curve that was evaluated.
func (ev *CurveEval) Curve() Curve { return ev.curve }

// Parameter returns the parameter the curve was evaluated at.
func (ev *CurveEval) Parameter() float64 { return ev.t }

// Position returns the position of the curve at the parameter.
func (ev *CurveEval) Position() Point3 {
	return ev.pos.get(func() Point3 { return ev.curve.point(ev.t) })
}

// FirstDerivative returns the first derivative of the curve with respect to
// its parameter.
func (ev *CurveEval) FirstDerivative() Vec3 {
	return ev.d1.get(func() Vec3 { return ev.curve.derivative(ev.t) })
}

// SecondDerivative returns the second derivative of the curve with respect
// to its parameter.
func (ev *CurveEval) SecondDerivative() Vec3 {
	return ev.d2.get(func() Vec3 { return ev.curve.secondDerivative(ev.t) })
}

// Tangent returns the unit tangent direction. It fails with
// [ErrDegenerateInput] where the first derivative vanishes, which cannot
// happen for the analytic curve types.
func (ev *CurveEval) Tangent() (UnitVec3, error) {
	return Unit3(ev.FirstDerivative())
}

// Curvature returns the curvature of the curve at the parameter, the
// reciprocal of the osculating circle's radius. It is zero for straight
// geometry.
func (ev *CurveEval) Curvature() float64 {
	return ev.curv.get(func() float64 { return ev.curve.curvature(ev.t) })
}

// generalCurvature computes curvature from the first two derivatives:
// ‖C′ × C″‖ / ‖C′‖³. Where the speed vanishes the curvature is reported as
// zero.
func generalCurvature(d1, d2 Vec3) float64 {
	speed := d1.Hypot()
	if zeroWithin(speed, LengthAccuracy) {
		return 0
	}
	return d1.Cross(d2).Hypot() / (speed * speed * speed)
}
