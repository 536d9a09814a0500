package geom

// SurfaceKind identifies the concrete type behind a [Surface].
type SurfaceKind int

const (
	PlaneKind SurfaceKind = iota
	CylinderKind
	ConeKind
	SphereKind
	TorusKind
	NurbsSurfaceKind
)

// Surface is a parametric surface in model space: a map from two
// parameters to positions. The concrete types are [Plane], [Cylinder],
// [Cone], [Sphere], [Torus] and [NurbsSurface]; the set is closed, and
// [Surface.Kind] supports exhaustive dispatch over it.
//
// Surfaces are immutable. Transforming or mirroring returns a new surface.
type Surface interface {
	// Kind identifies the concrete surface type.
	Kind() SurfaceKind

	// Parameterization describes both surface parameters, u first.
	Parameterization() (u, v Parameterization)

	// Evaluate returns an evaluation of the surface at (u, v). The
	// parameters are not validated against the domain: periodic directions
	// wrap naturally and open directions extrapolate. Callers that need
	// domain checking use [Interval.ContainsValue] on the
	// parameterizations.
	Evaluate(u, v float64) *SurfaceEval

	// ProjectPoint returns an evaluation at the parameters whose position
	// is closest to pt, resolving ambiguous inputs (such as the center of
	// a sphere) to the start of the domains.
	ProjectPoint(pt Point3) (*SurfaceEval, error)

	// TransformedSurface returns a copy of the surface mapped through m.
	// It fails if m degenerates the surface, for example by collapsing a
	// direction its frame needs.
	TransformedSurface(m Matrix4) (Surface, error)

	// MirroredSurface returns a copy of the surface with its orientation
	// reversed by negating the reference and axis directions of its
	// frame.
	MirroredSurface() Surface

	// The geometry functions evaluations are built from. Unexported so
	// that the set of surface types stays closed.
	point(u, v float64) Point3
	partials(u, v float64) (su, sv Vec3)
	secondPartials(u, v float64) (suu, suv, svv Vec3)
	curvatures(u, v float64) (minC, maxC PrincipalCurvature, err error)
}

var (
	_ Surface = Plane{}
	_ Surface = Cylinder{}
	_ Surface = Cone{}
	_ Surface = Sphere{}
	_ Surface = Torus{}
	_ Surface = NurbsSurface{}
)
