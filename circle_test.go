package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestNewCircle(t *testing.T) {
	_, err := NewCircle(Pt3(0, 0, 0), 0)
	require.ErrorIs(t, err, ErrConstruction)
	_, err = NewCircle(Pt3(0, 0, 0), -1)
	require.ErrorIs(t, err, ErrConstruction)

	c, err := NewCircle(Pt3(5, 5, 0), 5)
	require.NoError(t, err)
	if r := c.Radius(); r != 5 {
		t.Errorf("got radius %v, expected 5", r)
	}
	if a := c.Area(); !EqualWithin(a, 25*math.Pi, 1e-7) {
		t.Errorf("got area %v, expected %v", a, 25*math.Pi)
	}
	if p := c.Perimeter(); !EqualWithin(p, 10*math.Pi, 1e-7) {
		t.Errorf("got perimeter %v, expected %v", p, 10*math.Pi)
	}
}

func TestCircleEvaluate(t *testing.T) {
	c, err := NewCircle(Pt3(1, 2, 3), 2)
	require.NoError(t, err)

	diff(t, Pt3(3, 2, 3), c.Evaluate(0).Position())
	diff(t, Pt3(1, 4, 3), c.Evaluate(math.Pi/2).Position(), cmpopts.EquateApprox(0, 1e-14))

	// Every point of the circle lies at the radius from the center.
	for i := 0; i < 16; i++ {
		u := float64(i) / 16 * 2 * math.Pi
		if d := c.Evaluate(u).Position().Distance(c.Origin()); !EqualWithin(d, 2, 1e-12) {
			t.Errorf("got distance %v at parameter %v, expected 2", d, u)
		}
	}

	// The parameter is periodic.
	diff(t, c.Evaluate(1).Position(), c.Evaluate(1+2*math.Pi).Position(), cmpopts.EquateApprox(0, 1e-13))
}

func TestCircleDerivatives(t *testing.T) {
	c, err := NewCircle(Pt3(0, 0, 0), 2)
	require.NoError(t, err)

	ev := c.Evaluate(0)
	diff(t, V3(0, 2, 0), ev.FirstDerivative())
	diff(t, V3(-2, 0, 0), ev.SecondDerivative())

	tan, err := ev.Tangent()
	require.NoError(t, err)
	diff(t, YAxis.Vec3(), tan.Vec3())

	// The tangent is perpendicular to the radius everywhere.
	for _, u := range []float64{0.3, 1.7, 4.4} {
		ev := c.Evaluate(u)
		radial := ev.Position().Sub(c.Origin())
		if d := radial.Dot(ev.FirstDerivative()); !zeroWithin(d, 1e-12) {
			t.Errorf("tangent not perpendicular to radius at %v, dot %v", u, d)
		}
		if k := ev.Curvature(); k != 0.5 {
			t.Errorf("got curvature %v at %v, expected 0.5", k, u)
		}
	}
}

func TestCircleParameterization(t *testing.T) {
	c, err := NewCircle(Pt3(0, 0, 0), 1)
	require.NoError(t, err)
	p := c.Parameterization()
	if p.Form != PeriodicForm {
		t.Errorf("got form %v, expected PeriodicForm", p.Form)
	}
	if p.Type != CircularParam {
		t.Errorf("got type %v, expected CircularParam", p.Type)
	}
	diff(t, Interval{Start: 0, End: 2 * math.Pi}, p.Domain)
}

func TestCircleProjectPoint(t *testing.T) {
	c, err := NewCircle(Pt3(1, 1, 0), 2)
	require.NoError(t, err)

	// Projection inverts evaluation for points on the circle.
	for _, u := range []float64{0, 1, math.Pi, 5} {
		ev, err := c.ProjectPoint(c.Evaluate(u).Position())
		require.NoError(t, err)
		if d := math.Abs(ev.Parameter() - u); d > 1e-12 {
			t.Errorf("got parameter %v, expected %v", ev.Parameter(), u)
		}
	}

	// Points off the circle project to the nearest angle.
	ev, err := c.ProjectPoint(Pt3(1, 10, 4))
	require.NoError(t, err)
	if d := math.Abs(ev.Parameter() - math.Pi/2); d > 1e-12 {
		t.Errorf("got parameter %v, expected %v", ev.Parameter(), math.Pi/2)
	}

	// A point on the axis has no nearest angle; it resolves to zero.
	ev, err = c.ProjectPoint(Pt3(1, 1, 9))
	require.NoError(t, err)
	if ev.Parameter() != 0 {
		t.Errorf("got parameter %v, expected 0", ev.Parameter())
	}
}

func TestCircleTransformed(t *testing.T) {
	c, err := NewCircle(Pt3(1, 0, 0), 2)
	require.NoError(t, err)

	m := RotationAbout(ZAxis, math.Pi/2).Mul(Translation3(V3(0, 0, 4)))
	ct, err := c.Transformed(m)
	require.NoError(t, err)
	diff(t, Pt3(0, 1, 4), ct.Origin(), cmpopts.EquateApprox(0, 1e-14))
	if r := ct.Radius(); r != 2 {
		t.Errorf("got radius %v, expected 2", r)
	}

	// Applying the inverse restores the original circle's points.
	inv, err := m.Inverse()
	require.NoError(t, err)
	back, err := ct.Transformed(inv)
	require.NoError(t, err)
	for _, u := range []float64{0, 1, 2, 3} {
		diff(t, c.Evaluate(u).Position(), back.Evaluate(u).Position(), cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestCircleMirrored(t *testing.T) {
	c, err := NewCircle(Pt3(0, 0, 0), 1)
	require.NoError(t, err)
	m := c.Mirrored()

	// The mirrored circle traces the same point set in the opposite
	// angular direction.
	diff(t, c.Evaluate(0).Position().Sub(c.Origin()).Negate(), m.Evaluate(0).Position().Sub(m.Origin()))
	diff(t, c.Evaluate(1).Position(), m.Mirrored().Evaluate(1).Position())

	// Winding flips: the axis is negated.
	diff(t, c.Frame().DirZ().Negate().Vec3(), m.Frame().DirZ().Vec3())
}
