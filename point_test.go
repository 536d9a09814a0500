package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt2(-10, 0), Pt2(0, 0).Translate(V2(-10, 0)))
	diff(t, V2(3, 4), Pt2(3, 5).Sub(Pt2(0, 1)))
	diff(t, Pt3(1, 1, 1), Pt3(0, 0, 0).Translate(V3(1, 1, 1)))
	diff(t, V3(0, 2, 0), Pt3(1, 2, 3).Sub(Pt3(1, 0, 3)))
}

func TestPointDistance(t *testing.T) {
	if d := Pt2(0, 10).Distance(Pt2(0, 5)); d != 5 {
		t.Errorf("got distance %v, expected 5", d)
	}
	if d := Pt2(-11, 1).Distance(Pt2(-7, -2)); d != 5 {
		t.Errorf("got distance %v, expected 5", d)
	}
	if d := Pt3(1, 2, 2).Distance(Pt3(0, 0, 0)); d != 3 {
		t.Errorf("got distance %v, expected 3", d)
	}
	if d := Pt3(1, 2, 2).DistanceSquared(Pt3(0, 0, 0)); d != 9 {
		t.Errorf("got squared distance %v, expected 9", d)
	}
}

func TestPointLerp(t *testing.T) {
	diff(t, Pt3(1, 2, 3), Pt3(0, 0, 0).Lerp(Pt3(2, 4, 6), 0.5))
	diff(t, Pt3(2, 4, 6), Pt3(0, 0, 0).Lerp(Pt3(1, 2, 3), 2))
	diff(t, Pt2(1, 1), Pt2(0, 0).Midpoint(Pt2(2, 2)))
	diff(t, Pt3(0, 1, 0), Pt3(0, 0, 0).Midpoint(Pt3(0, 2, 0)))
}

func TestPointTransform(t *testing.T) {
	m := Translation3(V3(1, 2, 3))
	diff(t, Pt3(2, 3, 4), Pt3(1, 1, 1).Transform(m))

	m = Translation3(V3(1, 0, 0)).Mul(Scaling3(2, 2, 2))
	diff(t, Pt3(4, 2, 2), Pt3(1, 1, 1).Transform(m))

	m2 := Translation2(V2(5, 0)).Mul(Rotation2(0))
	diff(t, Pt2(6, 1), Pt2(1, 1).Transform(m2), cmpopts.EquateApprox(0, 1e-15))
}
