// Package geom provides primitives and routines for 3D parametric geometry:
// points, vectors, and frames; analytic and NURBS curves and surfaces; and
// solvers for projecting points onto geometry and for constructing
// constrained circular arcs. It was designed to serve the needs of
// CAD-style modeling applications, but it is intended to be general enough
// to be useful for other applications.
//
// # Features
//
// We provide the following notable features:
//
//   - Analytic curves and surfaces with exact derivatives and curvatures
//     (see [Curve] and [Surface])
//   - NURBS curves and surfaces (see [NurbsCurve] and [NurbsSurface])
//   - Exact rational arcs, circles, and ellipses in NURBS form (see
//     [NewNurbsArc] and [NewNurbsCircle])
//   - Point projection onto curves and surfaces (see [Curve.ProjectPoint]
//     and [Surface.ProjectPoint])
//   - Arc length and its inverse (see [NurbsCurve.Length] and
//     [NurbsCurve.ParameterAtLength])
//   - Constrained arc construction (see [ArcFromThreePoints],
//     [ArcFromStartEndRadius], and [ArcFromStartCenterAngle])
//   - Affine transformations (see [Matrix4])
//
// # Coordinates, frames, and transformations
//
// Points and vectors come in 2D and 3D variants ([Point2], [Point3],
// [Vec2], [Vec3]). [UnitVec3] is a vector whose length is known to be one;
// directions in this package, such as curve tangents, surface normals, and
// frame axes, use it so that normalization failures surface where the
// vector is made rather than where it is used.
//
// Transformations are the row-major matrices [Matrix3] and [Matrix4],
// applied to row vectors. Composition reads left to right: A.Mul(B) is the
// transform that applies A first and B second.
//
// A [Frame] is a right-handed orthonormal coordinate system. Oriented
// geometry carries a frame that fixes where angle zero lies and which way
// the geometry winds; construction functions come in pairs like
// [NewCylinder], which aligns the geometry with the global axes, and
// [NewCylinderIn], which places it in an explicit frame.
//
// # Parameterization
//
// Every curve is a map from a parameter t to points in space, and every
// surface is a map from a parameter pair (u, v). [Parameterization]
// describes such a parameter: the topology of its domain ([OpenForm],
// [ClosedForm], [PeriodicForm]), the meaning of the parameter
// ([LinearParam] for signed distances, [CircularParam] for angles in
// radians), and the domain itself as an [Interval]. Intervals may be
// unbounded, as they are for the axis parameter of a cylinder.
//
// Evaluation does not clamp: evaluating outside the domain extrapolates
// the defining formula. Construction and projection, in contrast, validate
// their inputs and report errors.
//
// # Curves
//
// [Curve] describes parametric curves in space. It is a sealed interface
// with a closed set of implementations:
//   - [Line]
//   - [Circle]
//   - [Ellipse]
//   - [NurbsCurve]
//
// Evaluating a curve yields a [CurveEval], which gives access to the
// position, the first and second derivatives, the unit tangent, and the
// curvature at the parameter. The evaluation computes each of these
// lazily, at most once, so passing a *CurveEval around is cheaper than
// passing a parameter and re-deriving.
//
// # Surfaces
//
// [Surface] describes parametric surfaces, again as a sealed interface:
//   - [Plane]
//   - [Cylinder]
//   - [Cone]
//   - [Sphere]
//   - [Torus]
//   - [NurbsSurface]
//
// Evaluating a surface yields a [SurfaceEval] with the position, the first
// and second partial derivatives, the unit normal, and the principal,
// Gaussian, and mean curvatures, all computed lazily. For the analytic
// quadrics the principal curvatures come from closed forms; for NURBS
// surfaces they come from the first and second fundamental forms.
//
// # Projection
//
// Projection finds the parameter of the point on a curve or surface
// closest to a query point. For analytic geometry this is a closed-form
// computation that cannot fail to converge. For NURBS geometry it is a
// Newton iteration on the stationarity of the distance function, seeded at
// the domain midpoint unless [ProjectOptions] or [SurfaceProjectOptions]
// supply a guess, and it fails with [ErrNoConvergence] when the iteration
// budget runs out. Projecting a sphere's center, a point on a torus axis,
// and similar degenerate queries resolve to a documented canonical
// parameter rather than an error.
//
// # NURBS
//
// [NurbsCurve] and [NurbsSurface] follow the algorithms of Piegl and
// Tiller: knot span location, basis function and derivative evaluation,
// and the rational derivative corrections. Weights are optional; a nil
// weight slice means the curve or surface is polynomial. [NewNurbsArc],
// [NewNurbsEllipticalArc], [NewNurbsCircle], and [NewNurbsEllipse] build
// exact rational representations of conic arcs, one quadratic segment per
// quadrant.
//
// Arc length is computed by fixed-order Gauss-Legendre quadrature per knot
// span, and [NurbsCurve.ParameterAtLength] inverts it with the ITP root
// finder (see [SolveITP]).
//
// # Sketching
//
// 2D sketch entities describe profiles that are later placed in space:
//   - [Arc], a directed circular arc built from constraints
//   - [Segment], a directed line segment
//   - [Polygon], a regular polygon described by its inscribed circle
//
// Each entity can lift itself onto a [Plane], producing the corresponding
// 3D curve and the parameter interval that traces the entity (see
// [Arc.Curve3D] and [Segment.Curve3D]).
//
// # Records
//
// [CurveRecord] and [SurfaceRecord] are flat, exported-field snapshots of
// any curve or surface, suitable for serialization or interchange.
// Rebuilding geometry from a record runs the ordinary constructors, so a
// record that was tampered with fails the same validation as any other
// input.
//
// # Accuracy and errors
//
// Operations that approximate, such as arc length and projection, take an
// accuracy parameter; [DefaultAccuracy] is a reasonable choice for
// geometry on the scale of unity. Comparisons against exact degeneracy,
// such as a zero-length direction, use the tighter [LengthAccuracy] and
// [AngleAccuracy].
//
// Failures are classified by three sentinel errors, recognizable with
// [errors.Is]: [ErrConstruction] for invalid construction inputs,
// [ErrDegenerateInput] for geometry that collapses (a zero direction, a
// curvature direction at a pole), and [ErrNoConvergence] for iterations
// that exhaust their budget.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [The NURBS Book] by Piegl and Tiller, for all B-spline and rational
//     evaluation algorithms
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]
//     by Oliveira and Takahashi, for the ITP root finder
//   - [Principal curvature] and the fundamental forms, for surface
//     curvature
//
// [The NURBS Book]: https://link.springer.com/book/10.1007/978-3-642-59223-2
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [Principal curvature]: https://en.wikipedia.org/wiki/Principal_curvature
package geom
