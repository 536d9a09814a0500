package geom

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/integrate/quad"
)

// NurbsCurve is a non-uniform rational B-spline curve in model space,
// defined by a degree, control points, optional weights and a knot vector.
// Free-form geometry that the analytic curve types cannot represent is
// carried as a NurbsCurve.
type NurbsCurve struct {
	degree  int
	control []Point3
	weights []float64
	knots   []float64
}

// NewNurbsCurve returns the curve of the given degree over the given
// control points. A nil weights slice builds a polynomial B-spline;
// otherwise weights must pair up with the control points and be positive.
// The knot vector must hold len(control)+degree+1 non-decreasing values.
// The inputs are copied, so later changes to the slices do not affect the
// curve.
func NewNurbsCurve(degree int, control []Point3, weights, knots []float64) (NurbsCurve, error) {
	if degree < 1 {
		return NurbsCurve{}, fmt.Errorf("%w: curve degree must be at least 1, got %d", ErrConstruction, degree)
	}
	if len(control) < degree+1 {
		return NurbsCurve{}, fmt.Errorf("%w: degree %d needs at least %d control points, got %d", ErrConstruction, degree, degree+1, len(control))
	}
	if weights != nil {
		if len(weights) != len(control) {
			return NurbsCurve{}, fmt.Errorf("%w: %d weights for %d control points", ErrConstruction, len(weights), len(control))
		}
		for i, w := range weights {
			if w <= 0 {
				return NurbsCurve{}, fmt.Errorf("%w: weight %d must be positive, got %g", ErrConstruction, i, w)
			}
		}
	}
	if err := validateKnots(degree, len(control), knots); err != nil {
		return NurbsCurve{}, err
	}
	return NurbsCurve{
		degree:  degree,
		control: slices.Clone(control),
		weights: slices.Clone(weights),
		knots:   slices.Clone(knots),
	}, nil
}

// NewNurbsArc returns the exact rational quadratic representation of a
// circular arc in the given frame, from startAngle to endAngle in radians
// about the frame's z direction. Sweeps are normalized into (0, 2π]; equal
// angles produce a full circle. It fails with [ErrConstruction] if the
// radius is not positive.
func NewNurbsArc(f Frame, radius, startAngle, endAngle float64) (NurbsCurve, error) {
	if radius <= 0 {
		return NurbsCurve{}, fmt.Errorf("%w: arc radius must be positive, got %g", ErrConstruction, radius)
	}
	sweep, err := arcSweep(startAngle, endAngle)
	if err != nil {
		return NurbsCurve{}, err
	}
	return nurbsEllipseArc(f, radius, radius, startAngle, sweep), nil
}

// NewNurbsEllipticalArc is like [NewNurbsArc] for an elliptical arc with
// separate radii along the frame's x and y directions.
func NewNurbsEllipticalArc(f Frame, xRadius, yRadius, startAngle, endAngle float64) (NurbsCurve, error) {
	if xRadius <= 0 || yRadius <= 0 {
		return NurbsCurve{}, fmt.Errorf("%w: arc radii must be positive, got %g and %g", ErrConstruction, xRadius, yRadius)
	}
	sweep, err := arcSweep(startAngle, endAngle)
	if err != nil {
		return NurbsCurve{}, err
	}
	return nurbsEllipseArc(f, xRadius, yRadius, startAngle, sweep), nil
}

// NewNurbsCircle returns the exact rational quadratic representation of a
// circle: nine control points over four quadrant arcs.
func NewNurbsCircle(c Circle) NurbsCurve {
	return nurbsEllipseArc(c.frame, c.radius, c.radius, 0, 2*math.Pi)
}

// NewNurbsEllipse returns the exact rational quadratic representation of an
// ellipse.
func NewNurbsEllipse(e Ellipse) NurbsCurve {
	return nurbsEllipseArc(e.frame, e.major, e.minor, 0, 2*math.Pi)
}

func arcSweep(startAngle, endAngle float64) (float64, error) {
	sweep := endAngle - startAngle
	if sweep <= 0 {
		sweep += 2 * math.Pi
	}
	if sweep <= 0 || sweep > 2*math.Pi+AngleAccuracy {
		return 0, fmt.Errorf("%w: arc sweep from %g to %g is not within (0, 2π]", ErrConstruction, startAngle, endAngle)
	}
	return min(sweep, 2*math.Pi), nil
}

// nurbsEllipseArc builds the arc following Piegl & Tiller's algorithm
// A7.1: one rational quadratic Bézier segment per (partial) quadrant, with
// interior knots doubled. The construction runs on the unit circle in
// frame-local coordinates; scaling the control points by the radii and
// lifting them into the frame preserves the rational form because both are
// affine maps.
func nurbsEllipseArc(f Frame, xRadius, yRadius, startAngle, sweep float64) NurbsCurve {
	numArcs := 4
	switch {
	case sweep <= math.Pi/2:
		numArcs = 1
	case sweep <= math.Pi:
		numArcs = 2
	case sweep <= 3*math.Pi/2:
		numArcs = 3
	}
	dtheta := sweep / float64(numArcs)
	w1 := math.Cos(dtheta / 2)

	lift := func(p Point2) Point3 {
		return f.Global(xRadius*p.X, yRadius*p.Y, 0)
	}

	sin0, cos0 := math.Sincos(startAngle)
	p0 := Pt2(cos0, sin0)
	t0 := V2(-sin0, cos0)

	control := make([]Point3, 2*numArcs+1)
	weights := make([]float64, 2*numArcs+1)
	control[0] = lift(p0)
	weights[0] = 1

	index := 0
	angle := startAngle
	for range numArcs {
		angle += dtheta
		sin, cos := math.Sincos(angle)
		p2 := Pt2(cos, sin)
		t2 := V2(-sin, cos)

		// The middle control point sits where the end tangents cross.
		u := p2.Sub(p0).Cross(t2) / t0.Cross(t2)
		p1 := p0.Translate(t0.Mul(u))

		control[index+1] = lift(p1)
		weights[index+1] = w1
		control[index+2] = lift(p2)
		weights[index+2] = 1
		index += 2

		p0, t0 = p2, t2
	}

	knots := make([]float64, 2*numArcs+4)
	for i := range 3 {
		knots[i] = 0
		knots[2*numArcs+1+i] = 1
	}
	for i := 1; i < numArcs; i++ {
		v := float64(i) / float64(numArcs)
		knots[2*i+1] = v
		knots[2*i+2] = v
	}

	return NurbsCurve{degree: 2, control: control, weights: weights, knots: knots}
}

// Degree returns the curve's degree.
func (c NurbsCurve) Degree() int { return c.degree }

// ControlPoints returns a copy of the curve's control points.
func (c NurbsCurve) ControlPoints() []Point3 { return slices.Clone(c.control) }

// Weights returns a copy of the curve's weights, or nil for a polynomial
// B-spline.
func (c NurbsCurve) Weights() []float64 { return slices.Clone(c.weights) }

// Knots returns a copy of the curve's knot vector.
func (c NurbsCurve) Knots() []float64 { return slices.Clone(c.knots) }

// Domain returns the parameter range spanned by the interior knots.
func (c NurbsCurve) Domain() Interval {
	return Interval{
		Start: c.knots[c.degree],
		End:   c.knots[len(c.knots)-c.degree-1],
	}
}

// SpanCount returns the number of non-degenerate knot spans.
func (c NurbsCurve) SpanCount() int {
	return spanCount(c.degree, c.knots)
}

func (c NurbsCurve) weight(i int) float64 {
	if c.weights == nil {
		return 1
	}
	return c.weights[i]
}

// Length returns the arc length of the curve over its whole domain. The
// speed is integrated span by span, so interior knot multiplicities do not
// degrade the quadrature. The node budget follows max(50, 10·spans),
// doubled for accuracies below 1e-10.
func (c NurbsCurve) Length(accuracy float64) float64 {
	return c.lengthTo(c.Domain().End, c.speedNodes(accuracy))
}

// ParameterAtLength returns the parameter at which the arc length measured
// from the start of the domain reaches s, inverting [NurbsCurve.Length] by
// bracketed root solving. It fails with [ErrConstruction] if s is negative
// or exceeds the total length.
func (c NurbsCurve) ParameterAtLength(s, accuracy float64) (float64, error) {
	nodes := c.speedNodes(accuracy)
	dom := c.Domain()
	total := c.lengthTo(dom.End, nodes)
	if s < 0 || s > total+accuracy {
		return 0, fmt.Errorf("%w: arc length %g is outside [0, %g]", ErrConstruction, s, total)
	}
	if s == 0 {
		return dom.Start, nil
	}
	if s >= total {
		return dom.End, nil
	}
	f := func(u float64) float64 {
		return c.lengthTo(u, nodes) - s
	}
	// The length grows monotonically in u, so the crossing is bracketed by
	// the domain. The length accuracy converts to a parameter epsilon by
	// the average speed.
	eps := max(accuracy*dom.Span()/total, 1e-12*dom.Span())
	return SolveITP(f, dom.Start, dom.End, eps, 1, 0.2/dom.Span(), -s, total-s), nil
}

func (c NurbsCurve) speedNodes(accuracy float64) int {
	spans := c.SpanCount()
	budget := max(50, 10*spans)
	perSpan := max(10, (budget+spans-1)/spans)
	if accuracy < 1e-10 {
		perSpan *= 2
	}
	return perSpan
}

// lengthTo integrates the speed over the domain up to u, with the given
// quadrature nodes per span.
func (c NurbsCurve) lengthTo(u float64, nodes int) float64 {
	speed := func(x float64) float64 {
		_, d1, _ := c.derivs(x, 1)
		return d1.Hypot()
	}
	total := 0.0
	for i := c.degree; i < len(c.knots)-c.degree-1; i++ {
		lo, hi := c.knots[i], c.knots[i+1]
		if hi <= lo {
			continue
		}
		if u <= lo {
			break
		}
		total += quad.Fixed(speed, lo, min(hi, u), nodes, nil, 0)
	}
	return total
}

func (c NurbsCurve) Kind() CurveKind { return NurbsCurveKind }

func (c NurbsCurve) Parameterization() Parameterization {
	dom := c.Domain()
	form := OpenForm
	if c.point(dom.Start).Distance(c.point(dom.End)) <= LengthAccuracy {
		form = ClosedForm
	}
	return Parameterization{
		Form:   form,
		Type:   OtherParam,
		Domain: dom,
	}
}

func (c NurbsCurve) Evaluate(t float64) *CurveEval {
	return newCurveEval(c, t)
}

// DefaultProjectIterations is the iteration budget used by point
// projection when [ProjectOptions.MaxIterations] is zero.
const DefaultProjectIterations = 64

// ProjectOptions tunes the iterative point projection of NURBS geometry.
// The zero value selects the defaults.
type ProjectOptions struct {
	// Seed is the parameter the iteration starts from. It is honored only
	// when HasSeed is true; otherwise the search starts at the midpoint of
	// the domain.
	Seed    float64
	HasSeed bool
	// MaxIterations bounds the number of refinement steps. Zero selects
	// [DefaultProjectIterations].
	MaxIterations int
	// Accuracy is the tolerance of the convergence tests. Zero selects
	// [DefaultAccuracy].
	Accuracy float64
}

func (opts ProjectOptions) withDefaults(dom Interval) ProjectOptions {
	if !opts.HasSeed {
		opts.Seed = dom.Midpoint()
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
// iteration seeded at the midpoint of the domain. See
// [NurbsCurve.ProjectPointOpts] for control over the seed and budget.
func (c NurbsCurve) ProjectPoint(pt Point3) (*CurveEval, error) {
	return c.ProjectPointOpts(pt, ProjectOptions{})
}

// ProjectPointOpts projects pt onto the curve by Newton iteration on the
// stationarity condition C′(u)·(C(u)−p) = 0, with steps clamped to the
// domain. The iteration converges to the solution nearest the seed, which
// for free-form geometry need not be the global closest point; callers
// with a better estimate should pass it as the seed. It fails with
// [ErrNoConvergence] when the iteration budget runs out.
func (c NurbsCurve) ProjectPointOpts(pt Point3, opts ProjectOptions) (*CurveEval, error) {
	dom := c.Domain()
	opts = opts.withDefaults(dom)

	u := dom.Clamp(opts.Seed)
	for range opts.MaxIterations {
		pos, d1, d2 := c.derivs(u, 2)
		r := pos.Sub(pt)
		dist := r.Hypot()
		if dist <= opts.Accuracy {
			return c.Evaluate(u), nil
		}
		g := d1.Dot(r)
		speed := d1.Hypot()
		if math.Abs(g) <= opts.Accuracy*speed*dist {
			// The residual is perpendicular to the tangent.
			return c.Evaluate(u), nil
		}
		gp := d2.Dot(r) + d1.Dot(d1)
		if gp == 0 {
			break
		}
		du := -g / gp
		next := dom.Clamp(u + du)
		if math.Abs(next-u) <= opts.Accuracy*(1+math.Abs(u)) {
			return c.Evaluate(next), nil
		}
		u = next
	}
	return nil, fmt.Errorf("%w: point projection stalled after %d iterations", ErrNoConvergence, opts.MaxIterations)
}

// Transformed returns the curve with its control points mapped through m.
// Weights and knots are unaffected, since affine maps commute with the
// rational form.
func (c NurbsCurve) Transformed(m Matrix4) NurbsCurve {
	control := make([]Point3, len(c.control))
	for i, p := range c.control {
		control[i] = p.Transform(m)
	}
	return NurbsCurve{
		degree:  c.degree,
		control: control,
		weights: slices.Clone(c.weights),
		knots:   slices.Clone(c.knots),
	}
}

func (c NurbsCurve) TransformedCurve(m Matrix4) (Curve, error) {
	return c.Transformed(m), nil
}

// Mirrored returns the curve with the x and z coordinates of its control
// points negated, a half turn about the global y axis. This matches the
// reference and axis negation of the frame-carrying curves, which have a
// frame to express it in; a NURBS curve does not, so the global frame is
// used.
func (c NurbsCurve) Mirrored() NurbsCurve {
	control := make([]Point3, len(c.control))
	for i, p := range c.control {
		control[i] = Pt3(-p.X, p.Y, -p.Z)
	}
	return NurbsCurve{
		degree:  c.degree,
		control: control,
		weights: slices.Clone(c.weights),
		knots:   slices.Clone(c.knots),
	}
}

func (c NurbsCurve) MirroredCurve() Curve {
	return c.Mirrored()
}

func (c NurbsCurve) point(u float64) Point3 {
	n := len(c.control) - 1
	span := findSpan(n, c.degree, u, c.knots)
	basis := basisFuns(span, c.degree, u, c.knots)
	var num Vec3
	var den float64
	for j := 0; j <= c.degree; j++ {
		i := span - c.degree + j
		b := basis[j] * c.weight(i)
		num = num.Add(Vec3(c.control[i]).Mul(b))
		den += b
	}
	return Point3(num.Div(den))
}

// derivs evaluates position and the first nd ≤ 2 derivatives at u,
// following the rational derivative formulas of Piegl & Tiller A4.2.
func (c NurbsCurve) derivs(u float64, nd int) (Point3, Vec3, Vec3) {
	n := len(c.control) - 1
	span := findSpan(n, c.degree, u, c.knots)
	kmax := min(nd, c.degree)
	ders := dersBasisFuns(span, c.degree, kmax, u, c.knots)

	// Derivatives of the weighted sum A(u) and of the weight function
	// w(u). Orders beyond the degree stay zero.
	var aders [3]Vec3
	var wders [3]float64
	for k := 0; k <= kmax; k++ {
		for j := 0; j <= c.degree; j++ {
			i := span - c.degree + j
			b := ders[k][j] * c.weight(i)
			aders[k] = aders[k].Add(Vec3(c.control[i]).Mul(b))
			wders[k] += b
		}
	}

	pos := aders[0].Div(wders[0])
	d1 := aders[1].Sub(pos.Mul(wders[1])).Div(wders[0])
	d2 := aders[2].Sub(d1.Mul(2 * wders[1])).Sub(pos.Mul(wders[2])).Div(wders[0])
	return Point3(pos), d1, d2
}

func (c NurbsCurve) derivative(u float64) Vec3 {
	_, d1, _ := c.derivs(u, 1)
	return d1
}

func (c NurbsCurve) secondDerivative(u float64) Vec3 {
	_, _, d2 := c.derivs(u, 2)
	return d2
}

func (c NurbsCurve) curvature(u float64) float64 {
	_, d1, d2 := c.derivs(u, 2)
	return generalCurvature(d1, d2)
}
