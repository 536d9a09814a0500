package geom

// CurveKind identifies the concrete type behind a [Curve].
type CurveKind int

const (
	LineKind CurveKind = iota
	CircleKind
	EllipseKind
	NurbsCurveKind
)

// Curve is a parametric curve in model space: a map from one parameter to
// positions. The concrete types are [Line], [Circle], [Ellipse] and
// [NurbsCurve]; the set is closed, and [Curve.Kind] supports exhaustive
// dispatch over it.
//
// Curves are immutable. Transforming or mirroring returns a new curve.
type Curve interface {
	// Kind identifies the concrete curve type.
	Kind() CurveKind

	// Parameterization describes the curve's parameter: the topology and
	// bounds of its domain and what the parameter measures.
	Parameterization() Parameterization

	// Evaluate returns an evaluation of the curve at parameter t. The
	// parameter is not validated against the domain: periodic curves wrap
	// naturally and open curves extrapolate. Callers that need domain
	// checking use [Interval.ContainsValue] on the parameterization.
	Evaluate(t float64) *CurveEval

	// ProjectPoint returns an evaluation at the parameter whose position
	// is closest to pt, resolving ambiguous inputs (such as a point on a
	// circle's axis) to the start of the domain.
	ProjectPoint(pt Point3) (*CurveEval, error)

	// TransformedCurve returns a copy of the curve mapped through m. It
	// fails if m degenerates the curve, for example by collapsing a
	// direction its frame needs.
	TransformedCurve(m Matrix4) (Curve, error)

	// MirroredCurve returns a copy of the curve with its orientation
	// reversed by negating the reference and axis directions of its frame.
	MirroredCurve() Curve

	// The geometry functions evaluations are built from. Unexported so
	// that the set of curve types stays closed.
	point(t float64) Point3
	derivative(t float64) Vec3
	secondDerivative(t float64) Vec3
	curvature(t float64) float64
}

var (
	_ Curve = Line{}
	_ Curve = Circle{}
	_ Curve = Ellipse{}
	_ Curve = NurbsCurve{}
)
