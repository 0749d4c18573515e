package SP1D

import (
	"fmt"
)

// KnotVec is a nondecreasing open knot vector. For degree P the first and
// last knots are repeated P+1 times so the basis interpolates the ends.
type KnotVec []float64

func NewUniformKnots(p, nel int) (kv KnotVec) {
	// Open uniform knot vector on [0,1] with nel nonzero spans
	kv = make(KnotVec, 0, 2*(p+1)+nel-1)
	for i := 0; i < p+1; i++ {
		kv = append(kv, 0)
	}
	for i := 1; i < nel; i++ {
		kv = append(kv, float64(i)/float64(nel))
	}
	for i := 0; i < p+1; i++ {
		kv = append(kv, 1)
	}
	return
}

func (kv KnotVec) Validate(p int) error {
	if len(kv) < 2*(p+1) {
		return fmt.Errorf("knot vector has %d knots, need at least %d for degree %d", len(kv), 2*(p+1), p)
	}
	for i := 1; i < len(kv); i++ {
		if kv[i] < kv[i-1] {
			return fmt.Errorf("knot vector is decreasing at position %d: %v > %v", i, kv[i-1], kv[i])
		}
	}
	return nil
}

// Span locates the knot span index containing u, per the search in
// The NURBS Book (Piegl & Tiller), alg A2.1
func (kv KnotVec) Span(p int, u float64) int {
	n := len(kv) - p - 2
	if u >= kv[n+1] {
		return n
	}
	low, high := p, n+1
	mid := (low + high) / 2
	for u < kv[mid] || u >= kv[mid+1] {
		if u < kv[mid] {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}
	return mid
}

// NumBasis is the dimension of the spline space on this knot vector
func (kv KnotVec) NumBasis(p int) int {
	return len(kv) - p - 1
}

// ElementSpans returns the knot span index of each nonzero-length span, in
// order. Each span is one element of the parametric mesh.
func (kv KnotVec) ElementSpans(p int) (spans []int) {
	for i := p; i < len(kv)-p-1; i++ {
		if kv[i+1] > kv[i] {
			spans = append(spans, i)
		}
	}
	return
}
