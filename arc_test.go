package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestNewArc(t *testing.T) {
	a, err := NewArc(Pt2(1, 0), Pt2(0, 1), Pt2(0, 0), false)
	require.NoError(t, err)
	diff(t, Pt2(1, 0), a.Start())
	diff(t, Pt2(0, 1), a.End())
	diff(t, Pt2(0, 0), a.Center())
	if a.Clockwise() {
		t.Error("got a clockwise arc, expected counterclockwise")
	}
	if got := a.Radius(); got != 1 {
		t.Errorf("got radius %v, expected 1", got)
	}

	// Start and end must be equidistant from the center.
	_, err = NewArc(Pt2(1, 0), Pt2(0, 2), Pt2(0, 0), false)
	require.ErrorIs(t, err, ErrConstruction)

	_, err = NewArc(Pt2(1, 0), Pt2(1, 0), Pt2(0, 0), false)
	require.ErrorIs(t, err, ErrDegenerateInput)
	_, err = NewArc(Pt2(1, 0), Pt2(0, 0), Pt2(0, 0), false)
	require.ErrorIs(t, err, ErrDegenerateInput)
}

func TestArcFromThreePoints(t *testing.T) {
	a, err := ArcFromThreePoints(Pt2(1, 0), Pt2(0, 1), Pt2(-1, 0))
	require.NoError(t, err)
	diff(t, Pt2(0, 0), a.Center())
	if got := a.Radius(); got != 1 {
		t.Errorf("got radius %v, expected 1", got)
	}
	if a.Clockwise() {
		t.Error("got a clockwise arc, expected counterclockwise")
	}

	// The same endpoints through the lower half wind the other way.
	a, err = ArcFromThreePoints(Pt2(1, 0), Pt2(0, -1), Pt2(-1, 0))
	require.NoError(t, err)
	diff(t, Pt2(0, 0), a.Center())
	if !a.Clockwise() {
		t.Error("got a counterclockwise arc, expected clockwise")
	}

	a, err = ArcFromThreePoints(Pt2(7, 1), Pt2(2, 6), Pt2(-3, 1))
	require.NoError(t, err)
	diff(t, Pt2(2, 1), a.Center())
	if got := a.Radius(); got != 5 {
		t.Errorf("got radius %v, expected 5", got)
	}
	if got := a.Angle(); got != math.Pi {
		t.Errorf("got sweep %v, expected π", got)
	}
	diff(t, 5*math.Pi, a.Length(), cmpopts.EquateApprox(0, 1e-14))

	_, err = ArcFromThreePoints(Pt2(0, 0), Pt2(1, 1), Pt2(2, 2))
	require.ErrorIs(t, err, ErrDegenerateInput)
	_, err = ArcFromThreePoints(Pt2(1, 0), Pt2(1, 0), Pt2(-1, 0))
	require.ErrorIs(t, err, ErrDegenerateInput)
}

func TestArcFromStartEndRadius(t *testing.T) {
	a, err := ArcFromStartEndRadius(Pt2(0, 0), Pt2(6, 0), 5, false, false)
	require.NoError(t, err)
	diff(t, Pt2(3, 4), a.Center())
	if got := a.Radius(); got != 5 {
		t.Errorf("got radius %v, expected 5", got)
	}
	if a.Clockwise() {
		t.Error("got a clockwise arc, expected counterclockwise")
	}

	// Convex picks the center on the other side of the chord.
	a, err = ArcFromStartEndRadius(Pt2(0, 0), Pt2(6, 0), 5, true, false)
	require.NoError(t, err)
	diff(t, Pt2(3, -4), a.Center())

	a, err = ArcFromStartEndRadius(Pt2(0, 0), Pt2(6, 0), 5, false, true)
	require.NoError(t, err)
	if !a.Clockwise() {
		t.Error("got a counterclockwise arc, expected clockwise")
	}

	// A chord matching the diameter puts the center on the midpoint.
	a, err = ArcFromStartEndRadius(Pt2(-1, 0), Pt2(1, 0), 1, false, false)
	require.NoError(t, err)
	diff(t, Pt2(0, 0), a.Center())
	if got := a.Angle(); got != math.Pi {
		t.Errorf("got sweep %v, expected π", got)
	}

	_, err = ArcFromStartEndRadius(Pt2(0, 0), Pt2(6, 0), 0, false, false)
	require.ErrorIs(t, err, ErrConstruction)
	_, err = ArcFromStartEndRadius(Pt2(0, 0), Pt2(6, 0), -5, false, false)
	require.ErrorIs(t, err, ErrConstruction)
	_, err = ArcFromStartEndRadius(Pt2(1, 2), Pt2(1, 2), 3, false, false)
	require.ErrorIs(t, err, ErrDegenerateInput)
	_, err = ArcFromStartEndRadius(Pt2(0, 0), Pt2(4, 0), 1.5, false, false)
	require.ErrorIs(t, err, ErrConstruction)
}

func TestArcFromStartCenterAngle(t *testing.T) {
	a, err := ArcFromStartCenterAngle(Pt2(2, 0), Pt2(0, 0), math.Pi/2, false)
	require.NoError(t, err)
	diff(t, Pt2(0, 2), a.End(), cmpopts.EquateApprox(0, 1e-15))
	diff(t, math.Pi/2, a.Angle(), cmpopts.EquateApprox(0, 1e-15))
	if got := a.Radius(); got != 2 {
		t.Errorf("got radius %v, expected 2", got)
	}

	// Clockwise sweeps rotate the start the other way.
	a, err = ArcFromStartCenterAngle(Pt2(2, 0), Pt2(0, 0), math.Pi/2, true)
	require.NoError(t, err)
	diff(t, Pt2(0, -2), a.End(), cmpopts.EquateApprox(0, 1e-15))
	diff(t, math.Pi/2, a.Angle(), cmpopts.EquateApprox(0, 1e-15))

	a, err = ArcFromStartCenterAngle(Pt2(3, 1), Pt2(1, 1), math.Pi, false)
	require.NoError(t, err)
	diff(t, Pt2(-1, 1), a.End(), cmpopts.EquateApprox(0, 1e-15))
	if got := a.Radius(); got != 2 {
		t.Errorf("got radius %v, expected 2", got)
	}

	for _, angle := range []float64{0, -0.5, 2 * math.Pi, 7} {
		_, err = ArcFromStartCenterAngle(Pt2(2, 0), Pt2(0, 0), angle, false)
		require.ErrorIs(t, err, ErrConstruction)
	}
	_, err = ArcFromStartCenterAngle(Pt2(1, 1), Pt2(1, 1), math.Pi/2, false)
	require.ErrorIs(t, err, ErrDegenerateInput)
}

func TestArcAngleLength(t *testing.T) {
	a, err := NewArc(Pt2(1, 0), Pt2(0, 1), Pt2(0, 0), false)
	require.NoError(t, err)
	if got := a.Angle(); got != math.Pi/2 {
		t.Errorf("got sweep %v, expected π/2", got)
	}
	if got := a.Length(); got != math.Pi/2 {
		t.Errorf("got length %v, expected π/2", got)
	}

	// The same endpoints wound the other way sweep the major arc.
	a, err = NewArc(Pt2(1, 0), Pt2(0, 1), Pt2(0, 0), true)
	require.NoError(t, err)
	diff(t, 3*math.Pi/2, a.Angle(), cmpopts.EquateApprox(0, 1e-15))

	a, err = NewArc(Pt2(1, 0), Pt2(-1, 0), Pt2(0, 0), false)
	require.NoError(t, err)
	if got := a.Angle(); got != math.Pi {
		t.Errorf("got sweep %v, expected π", got)
	}
	a, err = NewArc(Pt2(1, 0), Pt2(-1, 0), Pt2(0, 0), true)
	require.NoError(t, err)
	if got := a.Angle(); got != math.Pi {
		t.Errorf("got sweep %v, expected π", got)
	}

	a, err = NewArc(Pt2(2, 0), Pt2(0, 2), Pt2(0, 0), false)
	require.NoError(t, err)
	if got := a.Length(); got != math.Pi {
		t.Errorf("got length %v, expected π", got)
	}
}

func TestArcCurve3D(t *testing.T) {
	a, err := NewArc(Pt2(1, 0), Pt2(0, 1), Pt2(0, 0), false)
	require.NoError(t, err)
	c, dom, err := a.Curve3D(XYPlane(Pt3(0, 0, 0)))
	require.NoError(t, err)
	diff(t, Pt3(0, 0, 0), c.Origin())
	if got := c.Radius(); got != 1 {
		t.Errorf("got radius %v, expected 1", got)
	}
	diff(t, Interval{Start: 0, End: math.Pi / 2}, dom)
	diff(t, V3(0, 0, 1), c.Frame().DirZ().Vec3())
	diff(t, Pt3(1, 0, 0), c.Evaluate(dom.Start).Position())
	diff(t, Pt3(0, 1, 0), c.Evaluate(dom.End).Position(), cmpopts.EquateApprox(0, 1e-15))

	// A clockwise arc runs along a circle winding the other way, so the
	// parameter still increases from start to end.
	a, err = NewArc(Pt2(1, 0), Pt2(0, -1), Pt2(0, 0), true)
	require.NoError(t, err)
	c, dom, err = a.Curve3D(XYPlane(Pt3(0, 0, 0)))
	require.NoError(t, err)
	diff(t, V3(0, 0, -1), c.Frame().DirZ().Vec3())
	diff(t, Interval{Start: 0, End: math.Pi / 2}, dom)
	diff(t, Pt3(1, 0, 0), c.Evaluate(dom.Start).Position())
	diff(t, Pt3(0, -1, 0), c.Evaluate(dom.End).Position(), cmpopts.EquateApprox(0, 1e-15))

	pl, err := NewPlane(Pt3(1, 2, 3), YAxis, ZAxis)
	require.NoError(t, err)
	a, err = NewArc(Pt2(2, 0), Pt2(0, 2), Pt2(0, 0), false)
	require.NoError(t, err)
	c, dom, err = a.Curve3D(pl)
	require.NoError(t, err)
	diff(t, Pt3(1, 2, 3), c.Origin())
	if got := c.Radius(); got != 2 {
		t.Errorf("got radius %v, expected 2", got)
	}
	diff(t, Pt3(1, 4, 3), c.Evaluate(dom.Start).Position())
	diff(t, Pt3(1, 2, 5), c.Evaluate(dom.End).Position(), cmpopts.EquateApprox(0, 1e-15))
}
