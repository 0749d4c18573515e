package SP1D

// BasisFunctions computes the p+1 basis functions that do not vanish on the
// knot span containing u (The NURBS Book alg A2.2). The returned slice is
// ordered so that entry j is function number span-p+j.
func BasisFunctions(kv KnotVec, span int, u float64, p int) (N []float64) {
	var (
		left  = make([]float64, p+1)
		right = make([]float64, p+1)
	)
	N = make([]float64, p+1)
	N[0] = 1
	for j := 1; j <= p; j++ {
		left[j] = u - kv[span+1-j]
		right[j] = kv[span+j] - u
		var saved float64
		for r := 0; r < j; r++ {
			temp := N[r] / (right[r+1] + left[j-r])
			N[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		N[j] = saved
	}
	return
}

// BasisFunctionsAndDerivs computes the non-vanishing basis functions and
// their first derivatives at u (The NURBS Book alg A2.3, truncated to first
// order). Row 0 of the result holds values, row 1 first derivatives.
func BasisFunctionsAndDerivs(kv KnotVec, span int, u float64, p int) (ders [2][]float64) {
	var (
		ndu   = make([][]float64, p+1)
		left  = make([]float64, p+1)
		right = make([]float64, p+1)
	)
	for i := range ndu {
		ndu[i] = make([]float64, p+1)
	}
	ndu[0][0] = 1
	for j := 1; j <= p; j++ {
		left[j] = u - kv[span+1-j]
		right[j] = kv[span+j] - u
		var saved float64
		for r := 0; r < j; r++ {
			// lower triangle stores knot differences, upper the functions
			ndu[j][r] = right[r+1] + left[j-r]
			temp := ndu[r][j-1] / ndu[j][r]
			ndu[r][j] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		ndu[j][j] = saved
	}
	ders[0] = make([]float64, p+1)
	ders[1] = make([]float64, p+1)
	for j := 0; j <= p; j++ {
		ders[0][j] = ndu[j][p]
	}
	if p == 0 {
		return
	}
	// first derivative from the p-1 degree functions
	for r := 0; r <= p; r++ {
		var d float64
		if r >= 1 {
			d = ndu[r-1][p-1] / ndu[p][r-1]
		}
		if r <= p-1 {
			d -= ndu[r][p-1] / ndu[p][r]
		}
		ders[1][r] = float64(p) * d
	}
	return
}
