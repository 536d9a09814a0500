package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewInterval(t *testing.T) {
	iv, err := NewInterval(1, 3)
	require.NoError(t, err)
	diff(t, Interval{Start: 1, End: 3}, iv)

	// A single value is a valid interval.
	_, err = NewInterval(2, 2)
	require.NoError(t, err)

	_, err = NewInterval(3, 1)
	require.ErrorIs(t, err, ErrConstruction)
}

func TestIntervalSpan(t *testing.T) {
	iv := Interval{Start: 1, End: 4}
	if s := iv.Span(); s != 3 {
		t.Errorf("got span %v, expected 3", s)
	}
	if m := iv.Midpoint(); m != 2.5 {
		t.Errorf("got midpoint %v, expected 2.5", m)
	}
	if s := (Interval{Start: 0, End: math.Inf(1)}).Span(); !math.IsInf(s, 1) {
		t.Errorf("got span %v, expected +Inf", s)
	}
}

func TestIntervalContainsValue(t *testing.T) {
	iv := Interval{Start: 0, End: 2 * math.Pi}
	for _, v := range []float64{0, 1, 2 * math.Pi} {
		if !iv.ContainsValue(v, 0) {
			t.Errorf("%v does not contain %v, but should", iv, v)
		}
	}
	if iv.ContainsValue(-0.1, 0) {
		t.Errorf("%v contains -0.1, but shouldn't", iv)
	}
	// Widening by the accuracy admits values just outside.
	if !iv.ContainsValue(-0.1, 0.2) {
		t.Errorf("%v widened by 0.2 does not contain -0.1, but should", iv)
	}
	// Bounds stored in descending order still work.
	if !(Interval{Start: 5, End: 1}).ContainsValue(3, 0) {
		t.Error("descending interval does not contain 3, but should")
	}
	if EmptyInterval.ContainsValue(0, 1e10) {
		t.Error("the empty interval contains 0, but shouldn't")
	}
}

func TestIntervalClamp(t *testing.T) {
	iv := Interval{Start: -1, End: 1}
	if c := iv.Clamp(5); c != 1 {
		t.Errorf("got %v, expected 1", c)
	}
	if c := iv.Clamp(-5); c != -1 {
		t.Errorf("got %v, expected -1", c)
	}
	if c := iv.Clamp(0.25); c != 0.25 {
		t.Errorf("got %v, expected 0.25", c)
	}
}

func TestIntervalUnion(t *testing.T) {
	a := Interval{Start: 0, End: 2}
	b := Interval{Start: 1, End: 5}
	diff(t, Interval{Start: 0, End: 5}, a.Union(b))

	// Disjoint intervals unite to their hull.
	c := Interval{Start: 10, End: 11}
	diff(t, Interval{Start: 0, End: 11}, a.Union(c))

	// The empty interval is the identity.
	diff(t, a, a.Union(EmptyInterval))
	diff(t, a, EmptyInterval.Union(a))
}

func TestIntervalIntersect(t *testing.T) {
	a := Interval{Start: 0, End: 2}
	b := Interval{Start: 1, End: 5}
	got, ok := a.Intersect(b, 0)
	if !ok {
		t.Fatal("overlapping intervals reported as disjoint")
	}
	diff(t, Interval{Start: 1, End: 2}, got)

	c := Interval{Start: 3, End: 5}
	got, ok = a.Intersect(c, 0)
	if ok {
		t.Error("disjoint intervals reported as overlapping")
	}
	if !got.IsEmpty() {
		t.Errorf("got %v, expected the empty interval", got)
	}

	// Within accuracy, touching counts as overlap.
	if _, ok := a.Intersect(Interval{Start: 2.5, End: 3}, 1); !ok {
		t.Error("intervals within accuracy reported as disjoint")
	}

	if _, ok := a.Intersect(EmptyInterval, 1e10); ok {
		t.Error("intersection with the empty interval reported as overlapping")
	}
}

func TestIntervalInflate(t *testing.T) {
	iv, err := (Interval{Start: 1, End: 3}).Inflate(0.5)
	require.NoError(t, err)
	diff(t, Interval{Start: 0.5, End: 3.5}, iv)

	// Shrinking is allowed until the bounds would cross.
	iv, err = (Interval{Start: 1, End: 3}).Inflate(-1)
	require.NoError(t, err)
	diff(t, Interval{Start: 2, End: 2}, iv)

	_, err = (Interval{Start: 1, End: 3}).Inflate(-2)
	require.ErrorIs(t, err, ErrConstruction)

	_, err = EmptyInterval.Inflate(1)
	require.ErrorIs(t, err, ErrDegenerateInput)
}

func TestIntervalApproxEq(t *testing.T) {
	a := Interval{Start: 0, End: 1}
	if !a.ApproxEq(Interval{Start: 1e-9, End: 1 - 1e-9}, 1e-8) {
		t.Error("intervals within accuracy reported as unequal")
	}
	if a.ApproxEq(Interval{Start: 0.1, End: 1}, 1e-8) {
		t.Error("distinct intervals reported as equal")
	}
	if !EmptyInterval.ApproxEq(EmptyInterval, 0) {
		t.Error("empty intervals reported as unequal")
	}
	if a.ApproxEq(EmptyInterval, math.Inf(1)) {
		t.Error("interval equal to the empty interval, but shouldn't be")
	}
}
