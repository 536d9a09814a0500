package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestNewSegment(t *testing.T) {
	s, err := NewSegment(Pt2(1, 2), Pt2(4, 6))
	require.NoError(t, err)
	diff(t, Pt2(1, 2), s.Start())
	diff(t, Pt2(4, 6), s.End())
	if got := s.Length(); got != 5 {
		t.Errorf("got length %v, expected 5", got)
	}
	diff(t, Pt2(2.5, 4), s.Midpoint())
	diff(t, V2(0.6, 0.8), s.Direction())

	_, err = NewSegment(Pt2(1, 2), Pt2(1, 2))
	require.ErrorIs(t, err, ErrDegenerateInput)
}

func TestSegmentCurve3D(t *testing.T) {
	s, err := NewSegment(Pt2(1, 2), Pt2(4, 6))
	require.NoError(t, err)
	line, dom, err := s.Curve3D(XYPlane(Pt3(0, 0, 5)))
	require.NoError(t, err)
	diff(t, Pt3(1, 2, 5), line.Origin())
	diff(t, V3(0.6, 0.8, 0), line.Direction().Vec3())
	diff(t, Interval{Start: 0, End: 5}, dom)
	diff(t, Pt3(1, 2, 5), line.Evaluate(dom.Start).Position())
	diff(t, Pt3(4, 6, 5), line.Evaluate(dom.End).Position())
}

func TestNewPolygon(t *testing.T) {
	p, err := NewPolygon(Pt2(1, 2), 3, 5)
	require.NoError(t, err)
	diff(t, Pt2(1, 2), p.Center())
	if got := p.InnerRadius(); got != 3 {
		t.Errorf("got inner radius %v, expected 3", got)
	}
	if got := p.Sides(); got != 5 {
		t.Errorf("got %v sides, expected 5", got)
	}

	_, err = NewPolygon(Pt2(0, 0), 1, 2)
	require.ErrorIs(t, err, ErrConstruction)
	_, err = NewPolygon(Pt2(0, 0), 0, 6)
	require.ErrorIs(t, err, ErrConstruction)
	_, err = NewPolygon(Pt2(0, 0), -1, 6)
	require.ErrorIs(t, err, ErrConstruction)
}

func TestPolygonScalars(t *testing.T) {
	// A square with inscribed radius 1 has side 2 and circumradius √2.
	p, err := NewPolygon(Pt2(0, 0), 1, 4)
	require.NoError(t, err)
	diff(t, math.Sqrt2, p.OuterRadius(), cmpopts.EquateApprox(0, 1e-15))
	diff(t, 2.0, p.SideLength(), cmpopts.EquateApprox(0, 1e-15))
	diff(t, 8.0, p.Perimeter(), cmpopts.EquateApprox(0, 1e-14))
	diff(t, 4.0, p.Area(), cmpopts.EquateApprox(0, 1e-14))

	tri, err := NewPolygon(Pt2(0, 0), 1, 3)
	require.NoError(t, err)
	diff(t, 2.0, tri.OuterRadius(), cmpopts.EquateApprox(0, 1e-14))
	diff(t, 2*math.Sqrt(3), tri.SideLength(), cmpopts.EquateApprox(0, 1e-14))
	diff(t, 6*math.Sqrt(3), tri.Perimeter(), cmpopts.EquateApprox(0, 1e-13))
	diff(t, 3*math.Sqrt(3), tri.Area(), cmpopts.EquateApprox(0, 1e-13))
}

func TestPolygonVertices(t *testing.T) {
	p, err := NewPolygon(Pt2(10, 20), 1, 4)
	require.NoError(t, err)
	verts := p.Vertices()
	want := []Point2{
		Pt2(10+math.Sqrt2, 20),
		Pt2(10, 20+math.Sqrt2),
		Pt2(10-math.Sqrt2, 20),
		Pt2(10, 20-math.Sqrt2),
	}
	diff(t, want, verts, cmpopts.EquateApprox(0, 1e-14))

	// Every vertex lies on the circumscribed circle, every side has the
	// same length.
	for i, v := range verts {
		diff(t, p.OuterRadius(), v.Distance(p.Center()), cmpopts.EquateApprox(0, 1e-14))
		diff(t, p.SideLength(), v.Distance(verts[(i+1)%len(verts)]), cmpopts.EquateApprox(0, 1e-14))
	}
}

func TestPolygonVertices3D(t *testing.T) {
	pl, err := NewPlane(Pt3(0, 0, 0), YAxis, ZAxis)
	require.NoError(t, err)
	p, err := NewPolygon(Pt2(0, 0), 1, 4)
	require.NoError(t, err)
	out := p.Vertices3D(pl)
	if got := len(out); got != 4 {
		t.Fatalf("got %v vertices, expected 4", got)
	}
	diff(t, Pt3(0, p.OuterRadius(), 0), out[0])
	diff(t, Pt3(0, 0, p.OuterRadius()), out[1], cmpopts.EquateApprox(0, 1e-14))
	verts := p.Vertices()
	for i := range verts {
		diff(t, pl.LiftPoint(verts[i]), out[i])
	}
}
