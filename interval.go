package geom

import (
	"fmt"
	"math"
)

// Interval is a range of parameter values.
//
// Start is expected to be less than or equal to End; [NewInterval] enforces
// this. The sole exception is [EmptyInterval], which inverts infinite bounds
// to mark the absence of a range.
type Interval struct {
	Start float64
	End   float64
}

// EmptyInterval is the empty interval, as returned by [Interval.Intersect]
// for disjoint inputs.
var EmptyInterval = Interval{Start: math.Inf(1), End: math.Inf(-1)}

// NewInterval returns the interval [start, end]. It fails with
// [ErrConstruction] if start is greater than end.
func NewInterval(start, end float64) (Interval, error) {
	if start > end {
		return Interval{}, fmt.Errorf("%w: interval start %g exceeds end %g", ErrConstruction, start, end)
	}
	return Interval{Start: start, End: end}, nil
}

func (iv Interval) String() string {
	if iv.IsEmpty() {
		return "[empty]"
	}
	return fmt.Sprintf("[%g, %g]", iv.Start, iv.End)
}

// IsEmpty reports whether the interval is the empty interval.
func (iv Interval) IsEmpty() bool {
	return math.IsInf(iv.Start, 1) && math.IsInf(iv.End, -1)
}

// Span returns End − Start.
func (iv Interval) Span() float64 {
	return iv.End - iv.Start
}

// Midpoint returns the parameter halfway between Start and End.
func (iv Interval) Midpoint() float64 {
	return 0.5 * (iv.Start + iv.End)
}

// ContainsValue reports whether t lies within the interval, widened by
// accuracy at both ends. The check tolerates intervals whose bounds are
// stored in descending order. The empty interval contains nothing.
func (iv Interval) ContainsValue(t, accuracy float64) bool {
	if iv.IsEmpty() {
		return false
	}
	lo, hi := iv.Start, iv.End
	if lo > hi {
		lo, hi = hi, lo
	}
	return t >= lo-accuracy && t <= hi+accuracy
}

// Clamp returns t limited to the interval's bounds.
func (iv Interval) Clamp(t float64) float64 {
	return min(max(t, iv.Start), iv.End)
}

// Union returns the smallest interval enclosing iv and o. The empty
// interval is the identity.
func (iv Interval) Union(o Interval) Interval {
	if iv.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return iv
	}
	return Interval{
		Start: min(iv.Start, o.Start),
		End:   max(iv.End, o.End),
	}
}

// Intersect returns the overlap of two intervals. The boolean reports
// whether the intervals overlap at all, judged with the given accuracy; if
// they do not, the empty interval is returned.
func (iv Interval) Intersect(o Interval, accuracy float64) (Interval, bool) {
	if iv.IsEmpty() || o.IsEmpty() {
		return EmptyInterval, false
	}
	lo := max(iv.Start, o.Start)
	hi := min(iv.End, o.End)
	if lo > hi+accuracy {
		return EmptyInterval, false
	}
	return Interval{Start: lo, End: max(lo, hi)}, true
}

// Inflate expands the interval by delta at both ends. It fails with
// [ErrDegenerateInput] on the empty interval, and with [ErrConstruction] if
// a negative delta would invert the bounds.
func (iv Interval) Inflate(delta float64) (Interval, error) {
	if iv.IsEmpty() {
		return Interval{}, fmt.Errorf("%w: cannot inflate the empty interval", ErrDegenerateInput)
	}
	if iv.Span()+2*delta < 0 {
		return Interval{}, fmt.Errorf("%w: inflating %v by %g inverts the bounds", ErrConstruction, iv, delta)
	}
	return Interval{Start: iv.Start - delta, End: iv.End + delta}, nil
}

// ApproxEq reports whether the bounds of iv and o match within accuracy.
// Two empty intervals are equal.
func (iv Interval) ApproxEq(o Interval, accuracy float64) bool {
	if iv.IsEmpty() || o.IsEmpty() {
		return iv.IsEmpty() && o.IsEmpty()
	}
	return EqualWithin(iv.Start, o.Start, accuracy) && EqualWithin(iv.End, o.End, accuracy)
}
