package curve

// solveNaturalSpline computes the spline's second derivative at each anchor
// under the natural boundary condition (zero curvature at both ends).
//
// The interior second derivatives satisfy the standard tridiagonal system
//
//	h[i-1]*m[i-1] + 2*(h[i-1]+h[i])*m[i] + h[i]*m[i+1] = 6*(s[i] - s[i-1])
//
// where h[i] is the segment width and s[i] the segment slope. The system is
// solved in O(n) with the Thomas algorithm. With only two anchors there are
// no interior nodes and the result is all zeros, which collapses the spline
// to the linear interpolant.
func solveNaturalSpline(anchors []Anchor) []float64 {
	n := len(anchors)
	second := make([]float64, n)
	if n == 2 {
		return second
	}

	// Forward elimination over interior nodes 1..n-2.
	upper := make([]float64, n)
	rhs := make([]float64, n)
	for i := 1; i <= n-2; i++ {
		hPrev := anchors[i].Time - anchors[i-1].Time
		hNext := anchors[i+1].Time - anchors[i].Time
		diag := 2 * (hPrev + hNext)
		d := 6 * ((anchors[i+1].Rate-anchors[i].Rate)/hNext -
			(anchors[i].Rate-anchors[i-1].Rate)/hPrev)

		if i == 1 {
			upper[i] = hNext / diag
			rhs[i] = d / diag
			continue
		}
		den := diag - hPrev*upper[i-1]
		upper[i] = hNext / den
		rhs[i] = (d - hPrev*rhs[i-1]) / den
	}

	// Back substitution; second[0] and second[n-1] stay zero (natural ends).
	for i := n - 2; i >= 1; i-- {
		second[i] = rhs[i] - upper[i]*second[i+1]
	}
	return second
}

// splineRate evaluates the cached natural cubic spline at t.
//
// For t outside the anchor range, the boundary segment's cubic polynomial is
// continued past its domain, so extrapolated values are smooth through the
// boundary anchor but are not a straight continuation of the boundary slope.
func (c *ZeroCurve) splineRate(t float64) float64 {
	i := c.segment(t)
	a, b := c.anchors[i], c.anchors[i+1]

	h := b.Time - a.Time
	wa := (b.Time - t) / h
	wb := (t - a.Time) / h
	return wa*a.Rate + wb*b.Rate +
		((wa*wa*wa-wa)*c.second[i]+(wb*wb*wb-wb)*c.second[i+1])*h*h/6
}
