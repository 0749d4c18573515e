package SP1D

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGaussLegendre(t *testing.T) {
	{ // 3 point rule, known nodes and weights
		X, W := GaussLegendre(3)
		sq35 := math.Sqrt(3. / 5.)
		assert.True(t, nearVec([]float64{-sq35, 0, sq35}, X.Data(), 0.0000001))
		assert.True(t, nearVec([]float64{5. / 9., 8. / 9., 5. / 9.}, W.Data(), 0.0000001))
	}
	{ // weights always sum to the interval length
		for nq := 1; nq <= 8; nq++ {
			_, W := GaussLegendre(nq)
			assert.True(t, near(2., W.Sum(), 0.0000001))
		}
	}
	{ // nq points integrate x^(2nq-1) exactly
		X, W := GaussLegendre(4)
		var integral float64
		for i := 0; i < X.Len(); i++ {
			integral += W.AtVec(i) * math.Pow(X.AtVec(i), 6)
		}
		assert.True(t, near(2./7., integral, 0.0000001))
	}
}

func TestKnotVec(t *testing.T) {
	kv := NewUniformKnots(2, 4)
	assert.Equal(t, KnotVec{0, 0, 0, 0.25, 0.5, 0.75, 1, 1, 1}, kv)
	assert.NoError(t, kv.Validate(2))
	assert.Equal(t, 6, kv.NumBasis(2))
	assert.Equal(t, []int{2, 3, 4, 5}, kv.ElementSpans(2))
	assert.Equal(t, 2, kv.Span(2, 0.))
	assert.Equal(t, 3, kv.Span(2, 0.3))
	assert.Equal(t, 5, kv.Span(2, 1.)) // the end point belongs to the last span

	bad := KnotVec{0, 0, 1, 0.5, 1, 1}
	assert.Error(t, bad.Validate(1))
}

func TestSpace1D(t *testing.T) {
	var (
		p  = 2
		nq = 3
	)
	sp, err := NewSpace1D(p, NewUniformKnots(p, 4), nq)
	assert.NoError(t, err)
	assert.Equal(t, 4, sp.Nel)
	assert.Equal(t, 6, sp.Ndof)
	assert.Equal(t, 3, sp.NshMax)
	assert.Equal(t, []int{1, 2, 3, 4}, sp.FirstDof)

	{ // partition of unity and zero derivative sum at every node
		for e := 0; e < sp.Nel; e++ {
			for q := 0; q < sp.Nqn; q++ {
				var sum, dsum float64
				for j := 0; j < sp.NshMax; j++ {
					sum += sp.Shape.At(q, j, e)
					dsum += sp.DShape.At(q, j, e)
				}
				assert.True(t, near(1., sum, 0.0000001))
				assert.True(t, near(0., dsum, 0.0000001))
			}
		}
	}
	{ // the rule integrates the quadratic basis exactly: each function
		// integrates to (span of support)/(p+1)
		integrals := make([]float64, sp.Ndof)
		for e := 0; e < sp.Nel; e++ {
			for q := 0; q < sp.Nqn; q++ {
				for j := 0; j < sp.NshMax; j++ {
					integrals[sp.FirstDof[e]+j-1] += sp.QW.At(q, e) * sp.Shape.At(q, j, e)
				}
			}
		}
		var total float64
		for _, val := range integrals {
			total += val
		}
		assert.True(t, near(1., total, 0.0000001)) // PU integrates to the domain length
		// symmetric basis, symmetric integrals
		assert.True(t, near(integrals[0], integrals[5], 0.0000001))
		assert.True(t, near(integrals[1], integrals[4], 0.0000001))
	}
	{ // derivatives match a central finite difference of the basis
		e, q := 1, 2
		span := sp.Knots.ElementSpans(p)[e]
		u := sp.QP.At(q, e)
		h := 1.e-6
		up := BasisFunctions(sp.Knots, span, u+h, p)
		um := BasisFunctions(sp.Knots, span, u-h, p)
		for j := 0; j <= p; j++ {
			fd := (up[j] - um[j]) / (2 * h)
			if !near(fd, sp.DShape.At(q, j, e), 0.0001) {
				fmt.Printf("fd = %v, dshape = %v\n", fd, sp.DShape.At(q, j, e))
			}
			assert.True(t, near(fd, sp.DShape.At(q, j, e), 0.0001))
		}
	}
	{ // Greville points reproduce the identity map
		g := sp.GrevillePoints()
		for e := 0; e < sp.Nel; e++ {
			for q := 0; q < sp.Nqn; q++ {
				var x float64
				for j := 0; j < sp.NshMax; j++ {
					x += sp.Shape.At(q, j, e) * g[sp.FirstDof[e]+j-1]
				}
				assert.True(t, near(sp.QP.At(q, e), x, 0.0000001))
			}
		}
	}
}

func nearVec(a, b []float64, tol float64) (l bool) {
	for i, val := range a {
		if !near(b[i], val, tol) {
			fmt.Printf("Diff = %v, Left[%d] = %v, Right[%d] = %v\n", math.Abs(val-b[i]), i, val, i, b[i])
			return false
		}
	}
	return true
}

func near(a, b float64, tolI ...float64) (l bool) {
	var (
		tol float64
	)
	if len(tolI) == 0 {
		tol = 1.e-08
	} else {
		tol = tolI[0]
	}
	bound := math.Max(tol, tol*math.Abs(a))
	if math.Abs(a-b) <= bound {
		l = true
	}
	return
}
