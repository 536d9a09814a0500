package geom

import "math"

// SurfaceEval is a snapshot of a surface at one parameter pair. Derived
// quantities are computed on first access and cached for the lifetime of
// the evaluation, so repeated access is cheap. An evaluation must not be
// shared between goroutines without synchronization.
type SurfaceEval struct {
	surface Surface
	u, v    float64

	pos  memo[Point3]
	d1   memo[surfacePartials]
	d2   memo[surfaceSecondPartials]
	norm memo[normalResult]
	curv memo[curvatureResult]
}

type surfacePartials struct {
	su, sv Vec3
}

type surfaceSecondPartials struct {
	suu, suv, svv Vec3
}

type normalResult struct {
	normal UnitVec3
	err    error
}

type curvatureResult struct {
	min, max PrincipalCurvature
	err      error
}

// PrincipalCurvature is one of the two extremal normal curvatures at a
// surface point, paired with the tangent direction it occurs in.
type PrincipalCurvature struct {
	Value     float64
	Direction UnitVec3
}

func newSurfaceEval(s Surface, u, v float64) *SurfaceEval {
	return &SurfaceEval{surface: s, u: u, v: v}
}

// Surface returns the surface that was evaluated.
func (ev *SurfaceEval) Surface() Surface { return ev.surface }

// Parameters returns the parameter pair the surface was evaluated at.
func (ev *SurfaceEval) Parameters() (u, v float64) { return ev.u, ev.v }

// Position returns the position of the surface at the parameters.
func (ev *SurfaceEval) Position() Point3 {
	return ev.pos.get(func() Point3 { return ev.surface.point(ev.u, ev.v) })
}

func (ev *SurfaceEval) firstPartials() surfacePartials {
	return ev.d1.get(func() surfacePartials {
		su, sv := ev.surface.partials(ev.u, ev.v)
		return surfacePartials{su: su, sv: sv}
	})
}

func (ev *SurfaceEval) allSecondPartials() surfaceSecondPartials {
	return ev.d2.get(func() surfaceSecondPartials {
		suu, suv, svv := ev.surface.secondPartials(ev.u, ev.v)
		return surfaceSecondPartials{suu: suu, suv: suv, svv: svv}
	})
}

// PartialU returns the first partial derivative with respect to u.
func (ev *SurfaceEval) PartialU() Vec3 { return ev.firstPartials().su }

// PartialV returns the first partial derivative with respect to v.
func (ev *SurfaceEval) PartialV() Vec3 { return ev.firstPartials().sv }

// SecondPartialUU returns the second partial derivative with respect to u.
func (ev *SurfaceEval) SecondPartialUU() Vec3 { return ev.allSecondPartials().suu }

// SecondPartialUV returns the mixed second partial derivative.
func (ev *SurfaceEval) SecondPartialUV() Vec3 { return ev.allSecondPartials().suv }

// SecondPartialVV returns the second partial derivative with respect to v.
func (ev *SurfaceEval) SecondPartialVV() Vec3 { return ev.allSecondPartials().svv }

// Normal returns the unit surface normal, the normalized cross product of
// the u and v partials. It fails with [ErrDegenerateInput] at parameters
// where the partials vanish or line up, such as the apex of a cone or the
// poles of a sphere.
func (ev *SurfaceEval) Normal() (UnitVec3, error) {
	r := ev.norm.get(func() normalResult {
		p := ev.firstPartials()
		n, err := Unit3(p.su.Cross(p.sv))
		return normalResult{normal: n, err: err}
	})
	return r.normal, r.err
}

// MinCurvature returns the principal curvature of smaller magnitude at the
// parameters. It fails with [ErrDegenerateInput] where the surface has no
// well-defined normal.
func (ev *SurfaceEval) MinCurvature() (PrincipalCurvature, error) {
	r := ev.principalCurvatures()
	return r.min, r.err
}

// MaxCurvature returns the principal curvature of larger magnitude at the
// parameters. It fails with [ErrDegenerateInput] where the surface has no
// well-defined normal.
func (ev *SurfaceEval) MaxCurvature() (PrincipalCurvature, error) {
	r := ev.principalCurvatures()
	return r.max, r.err
}

// GaussianCurvature returns the product of the principal curvatures.
func (ev *SurfaceEval) GaussianCurvature() (float64, error) {
	r := ev.principalCurvatures()
	if r.err != nil {
		return 0, r.err
	}
	return r.min.Value * r.max.Value, nil
}

// MeanCurvature returns the average of the principal curvatures.
func (ev *SurfaceEval) MeanCurvature() (float64, error) {
	r := ev.principalCurvatures()
	if r.err != nil {
		return 0, r.err
	}
	return 0.5 * (r.min.Value + r.max.Value), nil
}

func (ev *SurfaceEval) principalCurvatures() curvatureResult {
	return ev.curv.get(func() curvatureResult {
		minC, maxC, err := ev.surface.curvatures(ev.u, ev.v)
		return curvatureResult{min: minC, max: maxC, err: err}
	})
}

// fundamentalCurvatures solves the principal curvature eigenproblem from
// the first and second fundamental forms: the normal curvatures are the
// roots of (EG−F²)κ² − (EN+GL−2FM)κ + (LN−M²) = 0. The pair is ordered by
// magnitude. Free-form surfaces use this; the quadrics have closed forms.
func fundamentalCurvatures(p surfacePartials, sp surfaceSecondPartials, normal UnitVec3) (minC, maxC PrincipalCurvature) {
	e := p.su.Dot(p.su)
	f := p.su.Dot(p.sv)
	g := p.sv.Dot(p.sv)
	l := normal.Vec3().Dot(sp.suu)
	m := normal.Vec3().Dot(sp.suv)
	n := normal.Vec3().Dot(sp.svv)

	roots, num := SolveQuadratic(l*n-m*m, -(e*n+g*l-2*f*m), e*g-f*f)
	var k1, k2 float64
	switch num {
	case 2:
		k1, k2 = roots[0], roots[1]
	case 1:
		k1, k2 = roots[0], roots[0]
	default:
		// Round-off can push the discriminant of a repeated root slightly
		// negative. Both curvatures equal the mean curvature then.
		h := (e*n + g*l - 2*f*m) / (2 * (e*g - f*f))
		k1, k2 = h, h
	}
	if math.Abs(k1) > math.Abs(k2) {
		k1, k2 = k2, k1
	}

	minC = PrincipalCurvature{Value: k1, Direction: principalDirection(p, e, f, g, l, m, n, k1)}
	maxC = PrincipalCurvature{Value: k2, Direction: principalDirection(p, e, f, g, l, m, n, k2)}
	return minC, maxC
}

// principalDirection solves (II − κ·I)·(du, dv) = 0 for the tangent
// direction of the normal curvature κ. The two rows of the singular system
// are linearly dependent; the larger one is used.
func principalDirection(p surfacePartials, e, f, g, l, m, n, k float64) UnitVec3 {
	a := l - k*e
	b := m - k*f
	c := n - k*g
	var du, dv float64
	if math.Hypot(a, b) >= math.Hypot(b, c) {
		du, dv = b, -a
	} else {
		du, dv = c, -b
	}
	dir, err := Unit3(p.su.Mul(du).Add(p.sv.Mul(dv)))
	if err != nil {
		// Umbilic point, every tangent direction is principal.
		return MustUnit3(p.su)
	}
	return dir
}
