package geom

import (
	"math"
	"sort"
	"testing"
)

func checkRoots(t *testing.T, roots, expected []float64) {
	t.Helper()
	if len(roots) != len(expected) {
		t.Fatalf("got %d roots, expected %d", len(roots), len(expected))
	}
	const epsilon = 1e-12
	sort.Float64s(roots)
	sort.Float64s(expected)
	for i := range roots {
		if math.Abs(roots[i]-expected[i]) > epsilon {
			t.Errorf("root %d is %v but we expected %v", i, roots[i], expected[i])
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	slice := func(roots [2]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveQuadratic(-5.0, 0.0, 1.0)), []float64{-math.Sqrt(5), math.Sqrt(5)})
	checkRoots(t, slice(SolveQuadratic(5.0, 0.0, 1.0)), []float64{})
	checkRoots(t, slice(SolveQuadratic(5.0, 1.0, 0.0)), []float64{-5.0})
	checkRoots(t, slice(SolveQuadratic(1.0, 2.0, 1.0)), []float64{-1.0})
}

func TestSolveITP(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - x - 2.0 }
	x := SolveITP(f, 1.0, 2.0, 1e-12, 0, 0.2, f(1.0), f(2.0))
	if n := math.Abs(f(x)); n > 6e-12 {
		t.Errorf("%v > 6e-12", n)
	}
}

func TestSolveITPMonotone(t *testing.T) {
	// The shape of the problem ParameterAtLength poses: find the parameter
	// at which a monotone arc-length function reaches a target.
	f := func(x float64) float64 { return math.Sinh(x) - 1.5 }
	x := SolveITP(f, 0.0, 3.0, 1e-9, 1, 0.2/3.0, f(0.0), f(3.0))
	if d := math.Abs(x - math.Asinh(1.5)); d > 1e-8 {
		t.Errorf("got %v, expected %v", x, math.Asinh(1.5))
	}
}
