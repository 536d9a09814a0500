package geom

import "errors"

// Errors reported by constructors and solvers. Call sites wrap these with
// fmt.Errorf("%w: ...") so callers can branch with errors.Is while still
// seeing the offending values.
var (
	// ErrConstruction reports input that violates a geometric invariant:
	// a non-positive radius, a frame whose reference and axis are not
	// perpendicular, a malformed knot vector, an arc whose chord is longer
	// than its diameter.
	ErrConstruction = errors.New("invalid construction")

	// ErrDegenerateInput reports input that collapses to a lower dimension:
	// normalizing a zero vector, coincident points where distinct ones are
	// required, collinear points offered as a circle, a singular matrix.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrNoConvergence reports an iterative solve that exhausted its
	// iteration budget before reaching the requested accuracy.
	ErrNoConvergence = errors.New("no convergence")
)
