package geom

import "fmt"

// B-spline basis evaluation, following the algorithms in Piegl & Tiller,
// "The NURBS Book", chapter 2. The curve and surface types build their
// rational evaluation on top of these.

// validateKnots checks a knot vector against a control point count and
// degree: the length must be count+degree+1, the values must not decrease,
// and the domain spanned by the interior knots must not be empty.
func validateKnots(degree, count int, knots []float64) error {
	if want := count + degree + 1; len(knots) != want {
		return fmt.Errorf("%w: knot vector has %d values, want control+degree+1 = %d", ErrConstruction, len(knots), want)
	}
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return fmt.Errorf("%w: knot vector decreases at index %d (%g after %g)", ErrConstruction, i, knots[i], knots[i-1])
		}
	}
	if knots[degree] >= knots[len(knots)-degree-1] {
		return fmt.Errorf("%w: knot vector spans an empty domain", ErrConstruction)
	}
	return nil
}

// findSpan returns the knot span index i with knots[i] ≤ u < knots[i+1],
// clamped to the domain so that out-of-domain parameters extrapolate from
// the boundary spans. n is the highest control point index. This is
// algorithm A2.1, with a binary search over the interior knots.
func findSpan(n, degree int, u float64, knots []float64) int {
	if u >= knots[n+1] {
		return n
	}
	if u <= knots[degree] {
		return degree
	}
	lo, hi := degree, n+1
	mid := (lo + hi) / 2
	for u < knots[mid] || u >= knots[mid+1] {
		if u < knots[mid] {
			hi = mid
		} else {
			lo = mid
		}
		mid = (lo + hi) / 2
	}
	return mid
}

// basisFuns returns the degree+1 basis functions that do not vanish on the
// given span, evaluated at u. This is algorithm A2.2.
func basisFuns(span, degree int, u float64, knots []float64) []float64 {
	n := make([]float64, degree+1)
	left := make([]float64, degree+1)
	right := make([]float64, degree+1)
	n[0] = 1
	for j := 1; j <= degree; j++ {
		left[j] = u - knots[span+1-j]
		right[j] = knots[span+j] - u
		saved := 0.0
		for r := 0; r < j; r++ {
			temp := n[r] / (right[r+1] + left[j-r])
			n[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		n[j] = saved
	}
	return n
}

// dersBasisFuns returns the derivatives of orders 0 through nd of the
// nonvanishing basis functions at u: ders[k][j] is the k-th derivative of
// the j-th function on the span. This is algorithm A2.3.
func dersBasisFuns(span, degree, nd int, u float64, knots []float64) [][]float64 {
	ndu := make([][]float64, degree+1)
	for i := range ndu {
		ndu[i] = make([]float64, degree+1)
	}
	ndu[0][0] = 1
	left := make([]float64, degree+1)
	right := make([]float64, degree+1)
	for j := 1; j <= degree; j++ {
		left[j] = u - knots[span+1-j]
		right[j] = knots[span+j] - u
		saved := 0.0
		for r := 0; r < j; r++ {
			// Lower triangle holds knot differences, upper the functions.
			ndu[j][r] = right[r+1] + left[j-r]
			temp := ndu[r][j-1] / ndu[j][r]
			ndu[r][j] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		ndu[j][j] = saved
	}

	ders := make([][]float64, nd+1)
	for i := range ders {
		ders[i] = make([]float64, degree+1)
	}
	for j := 0; j <= degree; j++ {
		ders[0][j] = ndu[j][degree]
	}

	a := [2][]float64{make([]float64, degree+1), make([]float64, degree+1)}
	for r := 0; r <= degree; r++ {
		s1, s2 := 0, 1
		a[0][0] = 1
		for k := 1; k <= nd; k++ {
			d := 0.0
			rk := r - k
			pk := degree - k
			if r >= k {
				a[s2][0] = a[s1][0] / ndu[pk+1][rk]
				d = a[s2][0] * ndu[rk][pk]
			}
			j1 := 1
			if rk < -1 {
				j1 = -rk
			}
			j2 := k - 1
			if r-1 > pk {
				j2 = degree - r
			}
			for j := j1; j <= j2; j++ {
				a[s2][j] = (a[s1][j] - a[s1][j-1]) / ndu[pk+1][rk+j]
				d += a[s2][j] * ndu[rk+j][pk]
			}
			if r <= pk {
				a[s2][k] = -a[s1][k-1] / ndu[pk+1][r]
				d += a[s2][k] * ndu[r][pk]
			}
			ders[k][r] = d
			s1, s2 = s2, s1
		}
	}

	// Multiply through by the factorial-style factors p!/(p−k)!.
	f := degree
	for k := 1; k <= nd; k++ {
		for j := 0; j <= degree; j++ {
			ders[k][j] *= float64(f)
		}
		f *= degree - k
	}
	return ders
}

// spanCount returns the number of knot spans with nonzero width inside the
// domain.
func spanCount(degree int, knots []float64) int {
	count := 0
	for i := degree; i < len(knots)-degree-1; i++ {
		if knots[i+1] > knots[i] {
			count++
		}
	}
	return count
}
