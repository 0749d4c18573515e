package SP1D

import (
	"fmt"

	"github.com/notargets/iga/utils"
)

/*
Space1D holds the evaluation of a univariate B-spline space at the Gauss
points of every knot span (element) along one parametric direction. The
dense tensors are indexed (node, local slot, element). Local slot j of
element e is global basis function FirstDof[e]+j (1-based).
*/
type Space1D struct {
	P        int // Polynomial degree
	Nel      int // Number of nonzero knot spans
	Ndof     int // Dimension of the spline space
	NshMax   int // Max nonvanishing functions on any element
	Nqn      int // Quadrature nodes per element
	Nsh      []int
	FirstDof []int

	Knots KnotVec
	// Quadrature points and weights per element, weights include the span
	// length scaling so they integrate directly in parametric coordinates
	QP, QW utils.Matrix // (node, element)

	Shape  utils.Tensor3 // (node, slot, element) basis values
	DShape utils.Tensor3 // (node, slot, element) first derivatives
}

func NewSpace1D(p int, kv KnotVec, nq int) (sp *Space1D, err error) {
	if err = kv.Validate(p); err != nil {
		return
	}
	spans := kv.ElementSpans(p)
	var (
		nel  = len(spans)
		ndof = kv.NumBasis(p)
		nsh  = p + 1
	)
	if nel == 0 {
		err = fmt.Errorf("knot vector %v has no nonzero spans for degree %d", kv, p)
		return
	}
	sp = &Space1D{
		P:        p,
		Nel:      nel,
		Ndof:     ndof,
		NshMax:   nsh,
		Nqn:      nq,
		Nsh:      make([]int, nel),
		FirstDof: make([]int, nel),
		Knots:    kv,
		QP:       utils.NewMatrix(nq, nel),
		QW:       utils.NewMatrix(nq, nel),
		Shape:    utils.NewTensor3(nq, nsh, nel),
		DShape:   utils.NewTensor3(nq, nsh, nel),
	}
	X, W := GaussLegendre(nq)
	for e, span := range spans {
		ua, ub := kv[span], kv[span+1]
		sp.Nsh[e] = nsh
		sp.FirstDof[e] = span - p + 1 // 1-based global function index
		for q := 0; q < nq; q++ {
			// map the reference rule from [-1,1] onto [ua,ub]
			u := ((ub-ua)*X.AtVec(q) + (ub + ua)) / 2.
			sp.QP.Set(q, e, u)
			sp.QW.Set(q, e, W.AtVec(q)*(ub-ua)/2.)
			ders := BasisFunctionsAndDerivs(kv, span, u, p)
			for j := 0; j <= p; j++ {
				sp.Shape.Set(q, j, e, ders[0][j])
				sp.DShape.Set(q, j, e, ders[1][j])
			}
		}
	}
	return
}

// GrevillePoints returns the Greville abscissae, one per degree of freedom,
// used to seed control nets for isoparametric geometry.
func (sp *Space1D) GrevillePoints() (g []float64) {
	g = make([]float64, sp.Ndof)
	for i := 0; i < sp.Ndof; i++ {
		var sum float64
		for j := 1; j <= sp.P; j++ {
			sum += sp.Knots[i+j]
		}
		if sp.P > 0 {
			g[i] = sum / float64(sp.P)
		} else {
			g[i] = (sp.Knots[i] + sp.Knots[i+1]) / 2.
		}
	}
	return
}
