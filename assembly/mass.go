package assembly

import (
	"math"
	"sync"

	"github.com/notargets/iga/SP2D"
	"github.com/notargets/iga/utils"
)

/*
Row-by-row Galerkin assembly of the global mass matrix

	M[a,b] = integral R_a R_b dx

driving the slice evaluator one row of elements at a time, so peak memory
stays proportional to one row of the mesh rather than the whole grid.
Entries land in a sparse DOK and convert to CSR for products.
*/

type triplet struct {
	i, j int
	val  float64
}

// MassMatrix assembles the global mass matrix serially.
func MassMatrix(sp *SP2D.Space2D, msh *SP2D.Mesh2D) (M utils.CSR, err error) {
	dok := utils.NewDOK(sp.Ndof, sp.Ndof)
	for row := 1; row <= msh.Nelv; row++ {
		var trips []triplet
		if trips, err = rowContribution(sp, msh, row); err != nil {
			return
		}
		for _, t := range trips {
			dok.Accumulate(t.i, t.j, t.val)
		}
	}
	M = dok.ToCSR()
	return
}

// MassMatrixParallel assembles with np workers, one row of elements per
// task. Rows are independent evaluations over shared read-only inputs;
// only the merge into the global matrix is serialized.
func MassMatrixParallel(sp *SP2D.Space2D, msh *SP2D.Mesh2D, np int) (M utils.CSR, err error) {
	if np < 1 {
		np = 1
	}
	var (
		dok  = utils.NewDOK(sp.Ndof, sp.Ndof)
		mtx  sync.Mutex
		wg   sync.WaitGroup
		errs = make([]error, np)
	)
	for n := 0; n < np; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for row := n + 1; row <= msh.Nelv; row += np {
				trips, lerr := rowContribution(sp, msh, row)
				if lerr != nil {
					errs[n] = lerr
					return
				}
				mtx.Lock()
				for _, t := range trips {
					dok.Accumulate(t.i, t.j, t.val)
				}
				mtx.Unlock()
			}
		}(n)
	}
	wg.Wait()
	for _, lerr := range errs {
		if lerr != nil {
			err = lerr
			return
		}
	}
	M = dok.ToCSR()
	return
}

func rowContribution(sp *SP2D.Space2D, msh *SP2D.Mesh2D, row int) (trips []triplet, err error) {
	var (
		se    *SP2D.SliceEval
		elems utils.Index
	)
	if se, elems, err = sp.EvaluateRow(msh, row, SP2D.EvalOptions{Value: true, Gradient: false}); err != nil {
		return
	}
	jac, err := msh.Geom.JacobianSamples(elems)
	if err != nil {
		return
	}
	var (
		R      = *se.ShapeFunctions
		nshMax = se.NshMax
		nqn    = msh.Nqn
	)
	// quadrature weight times Jacobian determinant per (node, element)
	wq := utils.NewMatrix(nqn, len(elems))
	for i, elem := range elems {
		eu, ev := msh.ElemDir(elem)
		for qv := 0; qv < msh.Nqnv; qv++ {
			for qu := 0; qu < msh.Nqnu; qu++ {
				q := qv*msh.Nqnu + qu
				det := jac.At(0, 0, q, i)*jac.At(1, 1, q, i) - jac.At(0, 1, q, i)*jac.At(1, 0, q, i)
				wq.Set(q, i, sp.SpU.QW.At(qu, eu-1)*sp.SpV.QW.At(qv, ev-1)*math.Abs(det))
			}
		}
	}
	for i := range elems {
		for a := 1; a <= nshMax; a++ {
			ga := se.Connectivity.At(a, i+1)
			if ga == 0 {
				continue
			}
			for b := 1; b <= nshMax; b++ {
				gb := se.Connectivity.At(b, i+1)
				if gb == 0 {
					continue
				}
				var m float64
				for q := 0; q < nqn; q++ {
					m += wq.At(q, i) * R.At(q, a-1, i) * R.At(q, b-1, i)
				}
				trips = append(trips, triplet{ga - 1, gb - 1, m})
			}
		}
	}
	return
}
