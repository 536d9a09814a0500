package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestNewCone(t *testing.T) {
	_, err := NewCone(Pt3(0, 0, 0), 0, math.Pi/4)
	require.ErrorIs(t, err, ErrConstruction)
	_, err = NewCone(Pt3(0, 0, 0), 2, 0)
	require.ErrorIs(t, err, ErrConstruction)
	_, err = NewCone(Pt3(0, 0, 0), 2, math.Pi/2)
	require.ErrorIs(t, err, ErrConstruction)
	_, err = NewCone(Pt3(0, 0, 0), 2, -2)
	require.ErrorIs(t, err, ErrConstruction)

	c, err := NewCone(Pt3(1, 2, 3), 2, math.Pi/4)
	require.NoError(t, err)
	diff(t, Pt3(1, 2, 3), c.Origin())
	diff(t, ZAxis.Vec3(), c.Axis().Vec3())
	if c.Radius() != 2 || c.HalfAngle() != math.Pi/4 {
		t.Errorf("got radius %v and half-angle %v, expected 2 and π/4", c.Radius(), c.HalfAngle())
	}
}

func TestConeApex(t *testing.T) {
	c, err := NewCone(Pt3(0, 0, 0), 2, math.Pi/4)
	require.NoError(t, err)
	diff(t, Pt3(0, 0, -2), c.Apex(), cmpopts.EquateApprox(0, 1e-14))
	if r := c.RadiusAt(0); r != 2 {
		t.Errorf("got radius %v at v=0, expected 2", r)
	}
	if r := c.RadiusAt(3); !EqualWithin(r, 5, 1e-14) {
		t.Errorf("got radius %v at v=3, expected 5", r)
	}
	if r := c.RadiusAt(-2); !EqualWithin(r, 0, 1e-14) {
		t.Errorf("got radius %v at the apex height, expected 0", r)
	}

	// A negative half-angle narrows toward +z instead.
	n, err := NewCone(Pt3(0, 0, 0), 2, -math.Pi/4)
	require.NoError(t, err)
	diff(t, Pt3(0, 0, 2), n.Apex(), cmpopts.EquateApprox(0, 1e-14))
}

func TestConeEvaluate(t *testing.T) {
	c, err := NewCone(Pt3(0, 0, 0), 2, math.Pi/4)
	require.NoError(t, err)

	diff(t, Pt3(3, 0, 1), c.Evaluate(0, 1).Position(), cmpopts.EquateApprox(0, 1e-14))
	diff(t, Pt3(0, 1, -1), c.Evaluate(math.Pi/2, -1).Position(), cmpopts.EquateApprox(0, 1e-14))

	// The radius grows linearly along the axis.
	for i := range 12 {
		u := float64(i) / 12 * 2 * math.Pi
		v := float64(i)/2 - 2
		pos := c.Evaluate(u, v).Position()
		if d := math.Hypot(pos.X, pos.Y); !EqualWithin(d, c.RadiusAt(v), 1e-12) {
			t.Errorf("got distance %v from the axis at v=%v, expected %v", d, v, c.RadiusAt(v))
		}
	}
}

func TestConeDerivatives(t *testing.T) {
	c, err := NewCone(Pt3(0, 0, 0), 2, math.Pi/4)
	require.NoError(t, err)

	ev := c.Evaluate(0, 0)
	tan := math.Tan(math.Pi / 4)
	diff(t, V3(0, 2, 0), ev.PartialU())
	diff(t, V3(tan, 0, 1), ev.PartialV())
	diff(t, V3(-2, 0, 0), ev.SecondPartialUU())
	diff(t, V3(0, tan, 0), ev.SecondPartialUV())
	diff(t, V3(0, 0, 0), ev.SecondPartialVV())

	// The normal is perpendicular to both partials.
	n, err := ev.Normal()
	require.NoError(t, err)
	if d := n.Vec3().Dot(ev.PartialU()); !EqualWithin(d, 0, 1e-15) {
		t.Errorf("got normal with u tangent component %v, expected 0", d)
	}
	if d := n.Vec3().Dot(ev.PartialV()); !EqualWithin(d, 0, 1e-15) {
		t.Errorf("got normal with v tangent component %v, expected 0", d)
	}
}

func TestConeParameterization(t *testing.T) {
	c, err := NewCone(Pt3(0, 0, 0), 2, math.Pi/4)
	require.NoError(t, err)
	u, v := c.Parameterization()
	diff(t, Parameterization{Form: PeriodicForm, Type: CircularParam, Domain: Interval{Start: 0, End: 2 * math.Pi}}, u)
	diff(t, OpenForm, v.Form)
	diff(t, LinearParam, v.Type)
	if !EqualWithin(v.Domain.Start, -2, 1e-14) || !math.IsInf(v.Domain.End, 1) {
		t.Errorf("got v domain %v, expected [-2, +Inf]", v.Domain)
	}

	// A negative half-angle puts the apex above instead.
	n, err := NewCone(Pt3(0, 0, 0), 2, -math.Pi/4)
	require.NoError(t, err)
	_, v = n.Parameterization()
	if !math.IsInf(v.Domain.Start, -1) || !EqualWithin(v.Domain.End, 2, 1e-14) {
		t.Errorf("got v domain %v, expected [-Inf, 2]", v.Domain)
	}
}

func TestConeProjectPoint(t *testing.T) {
	c, err := NewCone(Pt3(0, 0, 0), 2, math.Pi/4)
	require.NoError(t, err)

	// A point on the surface projects to itself.
	ev, err := c.ProjectPoint(Pt3(3, 0, 1))
	require.NoError(t, err)
	if u, v := ev.Parameters(); u != 0 || !EqualWithin(v, 1, 1e-14) {
		t.Errorf("got parameters (%v, %v), expected (0, 1)", u, v)
	}
	diff(t, Pt3(3, 0, 1), ev.Position(), cmpopts.EquateApprox(0, 1e-13))

	// The residual of an off-surface point is perpendicular to the
	// slanted generator.
	ev, err = c.ProjectPoint(Pt3(5, 0, 0))
	require.NoError(t, err)
	if u, v := ev.Parameters(); u != 0 || !EqualWithin(v, 1.5, 1e-14) {
		t.Errorf("got parameters (%v, %v), expected (0, 1.5)", u, v)
	}
	r := ev.Position().Sub(Pt3(5, 0, 0))
	if d := r.Dot(ev.PartialV()); !EqualWithin(d, 0, 1e-13) {
		t.Errorf("got residual with generator component %v, expected 0", d)
	}

	// Beyond the apex the projection clamps to it.
	ev, err = c.ProjectPoint(Pt3(0, 0, -10))
	require.NoError(t, err)
	diff(t, c.Apex(), ev.Position(), cmpopts.EquateApprox(0, 1e-12))

	// A point on the axis projects to angle zero.
	ev, err = c.ProjectPoint(Pt3(0, 0, 5))
	require.NoError(t, err)
	if u, _ := ev.Parameters(); u != 0 {
		t.Errorf("got angle %v, expected 0", u)
	}
}

func TestConeCurvatures(t *testing.T) {
	c, err := NewCone(Pt3(0, 0, 0), 2, math.Pi/4)
	require.NoError(t, err)

	ev := c.Evaluate(0, 2)
	minC, err := ev.MinCurvature()
	require.NoError(t, err)
	maxC, err := ev.MaxCurvature()
	require.NoError(t, err)
	if minC.Value != 0 {
		t.Errorf("got min curvature %v, expected 0", minC.Value)
	}
	if want := 1 / c.RadiusAt(2); maxC.Value != want {
		t.Errorf("got max curvature %v, expected %v", maxC.Value, want)
	}
	diff(t, YAxis.Vec3(), maxC.Direction.Vec3())

	// The flat direction runs along the slanted generator.
	sin, cos := math.Sincos(math.Pi / 4)
	diff(t, V3(sin, 0, cos), minC.Direction.Vec3(), cmpopts.EquateApprox(0, 1e-15))

	// Curvatures are undefined at the apex.
	_, err = c.Evaluate(1, c.Apex().Z).MinCurvature()
	require.ErrorIs(t, err, ErrDegenerateInput)
}

func TestConeTransformed(t *testing.T) {
	c, err := NewCone(Pt3(0, 0, 0), 2, math.Pi/4)
	require.NoError(t, err)
	m := RotationAbout(XAxis, math.Pi/2)
	ct, err := c.Transformed(m)
	require.NoError(t, err)
	diff(t, V3(0, -1, 0), ct.Axis().Vec3(), cmpopts.EquateApprox(0, 1e-15))
	if ct.Radius() != 2 || ct.HalfAngle() != math.Pi/4 {
		t.Errorf("got radius %v and half-angle %v, expected 2 and π/4", ct.Radius(), ct.HalfAngle())
	}

	for _, uv := range [][2]float64{{0, 0}, {1, 2}, {3, -1}} {
		want := c.Evaluate(uv[0], uv[1]).Position().Transform(m)
		got := ct.Evaluate(uv[0], uv[1]).Position()
		diff(t, want, got, cmpopts.EquateApprox(0, 1e-14))
	}

	_, err = c.Transformed(Scaling3(0, 1, 1))
	require.ErrorIs(t, err, ErrDegenerateInput)
}

func TestConeMirrored(t *testing.T) {
	c, err := NewCone(Pt3(0, 0, 0), 2, math.Pi/4)
	require.NoError(t, err)
	m := c.Mirrored()

	// The apex flips to the other side of the origin.
	diff(t, Pt3(0, 0, 2), m.Apex(), cmpopts.EquateApprox(0, 1e-14))
	diff(t, Pt3(-3, 0, -1), m.Evaluate(0, 1).Position(), cmpopts.EquateApprox(0, 1e-14))
}
