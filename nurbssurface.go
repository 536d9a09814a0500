package geom

import (
	"fmt"
	"math"
	"slices"
)

// NurbsSurface is a non-uniform rational B-spline surface in model space,
// a tensor product of B-spline bases over a rectangular grid of control
// points with optional weights. Free-form geometry that the analytic
// surface types cannot represent is carried as a NurbsSurface.
type NurbsSurface struct {
	uDegree int
	vDegree int
	control [][]Point3
	weights [][]float64
	uKnots  []float64
	vKnots  []float64
}

// NewNurbsSurface returns the surface of the given degrees over the given
// control grid, indexed control[i][j] with i along u and j along v. A nil
// weights grid builds a polynomial B-spline surface; otherwise weights
// must match the control grid in shape, with positive entries. Each knot
// vector must hold count+degree+1 non-decreasing values for its
// direction's control count. The inputs are copied.
func NewNurbsSurface(uDegree, vDegree int, control [][]Point3, weights [][]float64, uKnots, vKnots []float64) (NurbsSurface, error) {
	if uDegree < 1 || vDegree < 1 {
		return NurbsSurface{}, fmt.Errorf("%w: surface degrees must be at least 1, got %d and %d", ErrConstruction, uDegree, vDegree)
	}
	if len(control) < uDegree+1 {
		return NurbsSurface{}, fmt.Errorf("%w: degree %d needs at least %d control rows, got %d", ErrConstruction, uDegree, uDegree+1, len(control))
	}
	cols := len(control[0])
	for i, row := range control {
		if len(row) != cols {
			return NurbsSurface{}, fmt.Errorf("%w: control row %d has %d points, row 0 has %d", ErrConstruction, i, len(row), cols)
		}
	}
	if cols < vDegree+1 {
		return NurbsSurface{}, fmt.Errorf("%w: degree %d needs at least %d control columns, got %d", ErrConstruction, vDegree, vDegree+1, cols)
	}
	if weights != nil {
		if len(weights) != len(control) {
			return NurbsSurface{}, fmt.Errorf("%w: %d weight rows for %d control rows", ErrConstruction, len(weights), len(control))
		}
		for i, row := range weights {
			if len(row) != cols {
				return NurbsSurface{}, fmt.Errorf("%w: weight row %d has %d entries, control rows have %d", ErrConstruction, i, len(row), cols)
			}
			for j, w := range row {
				if w <= 0 {
					return NurbsSurface{}, fmt.Errorf("%w: weight (%d, %d) must be positive, got %g", ErrConstruction, i, j, w)
				}
			}
		}
	}
	if err := validateKnots(uDegree, len(control), uKnots); err != nil {
		return NurbsSurface{}, err
	}
	if err := validateKnots(vDegree, cols, vKnots); err != nil {
		return NurbsSurface{}, err
	}
	return NurbsSurface{
		uDegree: uDegree,
		vDegree: vDegree,
		control: clonePointGrid(control),
		weights: cloneFloatGrid(weights),
		uKnots:  slices.Clone(uKnots),
		vKnots:  slices.Clone(vKnots),
	}, nil
}

func clonePointGrid(g [][]Point3) [][]Point3 {
	out := make([][]Point3, len(g))
	for i, row := range g {
		out[i] = slices.Clone(row)
	}
	return out
}

func cloneFloatGrid(g [][]float64) [][]float64 {
	if g == nil {
		return nil
	}
	out := make([][]float64, len(g))
	for i, row := range g {
		out[i] = slices.Clone(row)
	}
	return out
}

// UDegree returns the surface's degree along u.
func (s NurbsSurface) UDegree() int { return s.uDegree }

// VDegree returns the surface's degree along v.
func (s NurbsSurface) VDegree() int { return s.vDegree }

// ControlPoints returns a copy of the surface's control grid.
func (s NurbsSurface) ControlPoints() [][]Point3 { return clonePointGrid(s.control) }

// Weights returns a copy of the surface's weight grid, or nil for a
// polynomial B-spline surface.
func (s NurbsSurface) Weights() [][]float64 { return cloneFloatGrid(s.weights) }

// UKnots returns a copy of the surface's knot vector along u.
func (s NurbsSurface) UKnots() []float64 { return slices.Clone(s.uKnots) }

// VKnots returns a copy of the surface's knot vector along v.
func (s NurbsSurface) VKnots() []float64 { return slices.Clone(s.vKnots) }

// UDomain returns the u parameter range spanned by the interior knots.
func (s NurbsSurface) UDomain() Interval {
	return Interval{
		Start: s.uKnots[s.uDegree],
		End:   s.uKnots[len(s.uKnots)-s.uDegree-1],
	}
}

// VDomain returns the v parameter range spanned by the interior knots.
func (s NurbsSurface) VDomain() Interval {
	return Interval{
		Start: s.vKnots[s.vDegree],
		End:   s.vKnots[len(s.vKnots)-s.vDegree-1],
	}
}

func (s NurbsSurface) weight(i, j int) float64 {
	if s.weights == nil {
		return 1
	}
	return s.weights[i][j]
}

func (s NurbsSurface) Kind() SurfaceKind { return NurbsSurfaceKind }

func (s NurbsSurface) Parameterization() (u, v Parameterization) {
	ud, vd := s.UDomain(), s.VDomain()
	uForm, vForm := OpenForm, OpenForm
	if s.point(ud.Start, vd.Midpoint()).Distance(s.point(ud.End, vd.Midpoint())) <= LengthAccuracy {
		uForm = ClosedForm
	}
	if s.point(ud.Midpoint(), vd.Start).Distance(s.point(ud.Midpoint(), vd.End)) <= LengthAccuracy {
		vForm = ClosedForm
	}
	u = Parameterization{Form: uForm, Type: OtherParam, Domain: ud}
	v = Parameterization{Form: vForm, Type: OtherParam, Domain: vd}
	return u, v
}

func (s NurbsSurface) Evaluate(u, v float64) *SurfaceEval {
	return newSurfaceEval(s, u, v)
}

// SurfaceProjectOptions tunes the iterative point projection of NURBS
// surfaces. The zero value selects the defaults.
type SurfaceProjectOptions struct {
	// SeedU and SeedV are the parameters the iteration starts from. They
	// are honored only when HasSeed is true; otherwise the search starts
	// at the midpoint of the domains.
	SeedU   float64
	SeedV   float64
	HasSeed bool
	// MaxIterations bounds the number of refinement steps. Zero selects
	// [DefaultProjectIterations].
	MaxIterations int
	// Accuracy is the tolerance of the convergence tests. Zero selects
	// [DefaultAccuracy].
	Accuracy float64
}

func (opts SurfaceProjectOptions) withDefaults(ud, vd Interval) SurfaceProjectOptions {
	if !opts.HasSeed {
		opts.SeedU = ud.Midpoint()
		opts.SeedV = vd.Midpoint()
	}
	if opts.MaxIterations == 0 {
		opts.MaxIterations = DefaultProjectIterations
	}
	if opts.Accuracy == 0 {
		opts.Accuracy = DefaultAccuracy
	}
	return opts
}

// ProjectPoint returns the evaluation nearest to pt found by a Newton
// iteration seeded at the midpoint of the domains. See
// [NurbsSurface.ProjectPointOpts] for control over the seed and budget.
func (s NurbsSurface) ProjectPoint(pt Point3) (*SurfaceEval, error) {
	return s.ProjectPointOpts(pt, SurfaceProjectOptions{})
}

// ProjectPointOpts projects pt onto the surface by Newton iteration on the
// stationarity conditions Su·(S−p) = 0 and Sv·(S−p) = 0, with steps
// clamped to the domains. The iteration converges to the solution nearest
// the seed, which for free-form geometry need not be the global closest
// point; callers with a better estimate should pass it as the seed. It
// fails with [ErrNoConvergence] when the iteration budget runs out.
func (s NurbsSurface) ProjectPointOpts(pt Point3, opts SurfaceProjectOptions) (*SurfaceEval, error) {
	ud, vd := s.UDomain(), s.VDomain()
	opts = opts.withDefaults(ud, vd)

	u := ud.Clamp(opts.SeedU)
	v := vd.Clamp(opts.SeedV)
	for range opts.MaxIterations {
		pos, su, sv, suu, suv, svv := s.derivs(u, v, 2)
		r := pos.Sub(pt)
		dist := r.Hypot()
		if dist <= opts.Accuracy {
			return s.Evaluate(u, v), nil
		}
		fu := su.Dot(r)
		fv := sv.Dot(r)
		if math.Abs(fu) <= opts.Accuracy*su.Hypot()*dist &&
			math.Abs(fv) <= opts.Accuracy*sv.Hypot()*dist {
			// The residual is perpendicular to the tangent plane.
			return s.Evaluate(u, v), nil
		}
		j11 := su.Dot(su) + r.Dot(suu)
		j12 := su.Dot(sv) + r.Dot(suv)
		j22 := sv.Dot(sv) + r.Dot(svv)
		det := j11*j22 - j12*j12
		if det == 0 {
			break
		}
		du := (-fu*j22 + fv*j12) / det
		dv := (-fv*j11 + fu*j12) / det
		nextU := ud.Clamp(u + du)
		nextV := vd.Clamp(v + dv)
		if math.Abs(nextU-u) <= opts.Accuracy*(1+math.Abs(u)) &&
			math.Abs(nextV-v) <= opts.Accuracy*(1+math.Abs(v)) {
			return s.Evaluate(nextU, nextV), nil
		}
		u, v = nextU, nextV
	}
	return nil, fmt.Errorf("%w: point projection stalled after %d iterations", ErrNoConvergence, opts.MaxIterations)
}

// Transformed returns the surface with its control grid mapped through m.
// Weights and knots are unaffected, since affine maps commute with the
// rational form.
func (s NurbsSurface) Transformed(m Matrix4) NurbsSurface {
	control := make([][]Point3, len(s.control))
	for i, row := range s.control {
		control[i] = make([]Point3, len(row))
		for j, p := range row {
			control[i][j] = p.Transform(m)
		}
	}
	return NurbsSurface{
		uDegree: s.uDegree,
		vDegree: s.vDegree,
		control: control,
		weights: cloneFloatGrid(s.weights),
		uKnots:  slices.Clone(s.uKnots),
		vKnots:  slices.Clone(s.vKnots),
	}
}

func (s NurbsSurface) TransformedSurface(m Matrix4) (Surface, error) {
	return s.Transformed(m), nil
}

// Mirrored returns the surface with the x and z coordinates of its control
// points negated, a half turn about the global y axis, matching the
// mirroring of the frame-carrying surfaces.
func (s NurbsSurface) Mirrored() NurbsSurface {
	control := make([][]Point3, len(s.control))
	for i, row := range s.control {
		control[i] = make([]Point3, len(row))
		for j, p := range row {
			control[i][j] = Pt3(-p.X, p.Y, -p.Z)
		}
	}
	return NurbsSurface{
		uDegree: s.uDegree,
		vDegree: s.vDegree,
		control: control,
		weights: cloneFloatGrid(s.weights),
		uKnots:  slices.Clone(s.uKnots),
		vKnots:  slices.Clone(s.vKnots),
	}
}

func (s NurbsSurface) MirroredSurface() Surface {
	return s.Mirrored()
}

func (s NurbsSurface) point(u, v float64) Point3 {
	spanU := findSpan(len(s.control)-1, s.uDegree, u, s.uKnots)
	spanV := findSpan(len(s.control[0])-1, s.vDegree, v, s.vKnots)
	basisU := basisFuns(spanU, s.uDegree, u, s.uKnots)
	basisV := basisFuns(spanV, s.vDegree, v, s.vKnots)
	var num Vec3
	var den float64
	for i := 0; i <= s.uDegree; i++ {
		for j := 0; j <= s.vDegree; j++ {
			ci := spanU - s.uDegree + i
			cj := spanV - s.vDegree + j
			b := basisU[i] * basisV[j] * s.weight(ci, cj)
			num = num.Add(Vec3(s.control[ci][cj]).Mul(b))
			den += b
		}
	}
	return Point3(num.Div(den))
}

// derivs evaluates position and all partial derivatives up to total order
// nd ≤ 2 at (u, v), applying the rational corrections of Piegl & Tiller
// A4.4 to the tensor-product derivatives.
func (s NurbsSurface) derivs(u, v float64, nd int) (pos Point3, su, sv, suu, suv, svv Vec3) {
	spanU := findSpan(len(s.control)-1, s.uDegree, u, s.uKnots)
	spanV := findSpan(len(s.control[0])-1, s.vDegree, v, s.vKnots)
	kU := min(nd, s.uDegree)
	kV := min(nd, s.vDegree)
	dersU := dersBasisFuns(spanU, s.uDegree, kU, u, s.uKnots)
	dersV := dersBasisFuns(spanV, s.vDegree, kV, v, s.vKnots)

	// Derivatives of the weighted sum A(u, v) and of the weight function
	// w(u, v). Orders beyond a direction's degree stay zero.
	var aders [3][3]Vec3
	var wders [3][3]float64
	for k := 0; k <= kU; k++ {
		for l := 0; l <= kV; l++ {
			if k+l > nd {
				continue
			}
			for i := 0; i <= s.uDegree; i++ {
				for j := 0; j <= s.vDegree; j++ {
					ci := spanU - s.uDegree + i
					cj := spanV - s.vDegree + j
					b := dersU[k][i] * dersV[l][j] * s.weight(ci, cj)
					aders[k][l] = aders[k][l].Add(Vec3(s.control[ci][cj]).Mul(b))
					wders[k][l] += b
				}
			}
		}
	}

	w := wders[0][0]
	p := aders[0][0].Div(w)
	su = aders[1][0].Sub(p.Mul(wders[1][0])).Div(w)
	sv = aders[0][1].Sub(p.Mul(wders[0][1])).Div(w)
	suu = aders[2][0].Sub(su.Mul(2 * wders[1][0])).Sub(p.Mul(wders[2][0])).Div(w)
	suv = aders[1][1].Sub(su.Mul(wders[0][1])).Sub(sv.Mul(wders[1][0])).Sub(p.Mul(wders[1][1])).Div(w)
	svv = aders[0][2].Sub(sv.Mul(2 * wders[0][1])).Sub(p.Mul(wders[0][2])).Div(w)
	return Point3(p), su, sv, suu, suv, svv
}

func (s NurbsSurface) partials(u, v float64) (su, sv Vec3) {
	_, su, sv, _, _, _ = s.derivs(u, v, 1)
	return su, sv
}

func (s NurbsSurface) secondPartials(u, v float64) (suu, suv, svv Vec3) {
	_, _, _, suu, suv, svv = s.derivs(u, v, 2)
	return suu, suv, svv
}

func (s NurbsSurface) curvatures(u, v float64) (minC, maxC PrincipalCurvature, err error) {
	_, su, sv, suu, suv, svv := s.derivs(u, v, 2)
	normal, err := Unit3(su.Cross(sv))
	if err != nil {
		return minC, maxC, fmt.Errorf("%w: surface normal vanishes at (%g, %g)", ErrDegenerateInput, u, v)
	}
	minC, maxC = fundamentalCurvatures(
		surfacePartials{su: su, sv: sv},
		surfaceSecondPartials{suu: suu, suv: suv, svv: svv},
		normal,
	)
	return minC, maxC, nil
}
