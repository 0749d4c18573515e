package SP2D

import (
	"math"

	"github.com/notargets/iga/utils"
)

/*
SliceEval is the result of evaluating the rational basis on one row or
column of elements. ShapeFunctions and ShapeFunctionGradients are attached
only when requested through EvalOptions; a nil pointer means the field was
not computed, not that it is zero.

ShapeFunctions is indexed (node, slot, element in slice).
ShapeFunctionGradients is indexed (direction, node, slot, element in
slice): directions are (u,v) parametric from EvaluateCol, (x,y) physical
from EvaluateRow.
*/
type SliceEval struct {
	NshMax, Ndof           int
	NdofDir                [2]int
	Nsh                    []int
	Connectivity           ConnTable
	ShapeFunctions         *utils.Tensor3
	ShapeFunctionGradients *utils.Tensor4
}

// EvaluateRow computes the rational basis on row k of the element grid.
// Gradients, when requested, are pushed to physical coordinates through
// the geometry Jacobian. Returns the result record and the row's global
// element indices.
func (sp *Space2D) EvaluateRow(msh *Mesh2D, k int, opts EvalOptions) (se *SliceEval, elems utils.Index, err error) {
	if elems, err = msh.RowElements(k); err != nil {
		return
	}
	euIdx := utils.NewStride(1, msh.Nelu, 1)
	evIdx := utils.NewConstant(msh.Nelu, k)
	if se, err = sp.evaluateSlice(msh, elems, euIdx, evIdx, opts); err != nil {
		se = nil
		return
	}
	if opts.Gradient {
		var jac utils.Tensor4
		if jac, err = msh.Geom.JacobianSamples(elems); err != nil {
			se = nil
			return
		}
		var phys utils.Tensor4
		if phys, err = PushForward(*se.ShapeFunctionGradients, jac); err != nil {
			se = nil
			return
		}
		se.ShapeFunctionGradients = &phys
	}
	return
}

// EvaluateCol computes the rational basis on column k of the element grid.
// Gradients, when requested, stay in parametric coordinates; callers that
// need physical gradients apply PushForward with their own Jacobian
// samples.
func (sp *Space2D) EvaluateCol(msh *Mesh2D, k int, opts EvalOptions) (se *SliceEval, elems utils.Index, err error) {
	if elems, err = msh.ColElements(k); err != nil {
		return
	}
	euIdx := utils.NewConstant(msh.Nelv, k)
	evIdx := utils.NewStride(1, msh.Nelv, 1)
	if se, err = sp.evaluateSlice(msh, elems, euIdx, evIdx, opts); err != nil {
		se = nil
	}
	return
}

/*
evaluateSlice is the direction-parameterized core shared by row and column
evaluation. euIdx/evIdx carry, per slice element, the 1-based element index
in each parametric direction: the fixed direction is a constant list, the
varying direction counts 1..n. Each stage produces a fresh tensor, so no
stage aliases another's output.
*/
func (sp *Space2D) evaluateSlice(msh *Mesh2D, elems, euIdx, evIdx utils.Index, opts EvalOptions) (se *SliceEval, err error) {
	var (
		nel   = len(elems)
		connS = sp.Conn.Slice(elems)
	)
	se = &SliceEval{
		NshMax:       sp.NshMax,
		Ndof:         sp.Ndof,
		NdofDir:      sp.NdofDir,
		Nsh:          make([]int, nel),
		Connectivity: connS,
	}
	for i := 0; i < nel; i++ {
		se.Nsh[i] = sp.SpU.Nsh[euIdx[i]-1] * sp.SpV.Nsh[evIdx[i]-1]
	}
	if !opts.Value && !opts.Gradient {
		return
	}

	wts := sp.gatherWeights(connS)
	valU := sp.broadcast(dirU, sp.SpU.Shape, euIdx, msh)
	valV := sp.broadcast(dirV, sp.SpV.Shape, evIdx, msh)

	R, D, err := rationalize(valU, valV, wts, elems)
	if err != nil {
		return nil, err
	}
	if opts.Value {
		se.ShapeFunctions = &R
	}
	if opts.Gradient {
		gradU := sp.broadcast(dirU, sp.SpU.DShape, euIdx, msh)
		gradV := sp.broadcast(dirV, sp.SpV.DShape, evIdx, msh)
		grads := composeGradients(R, D, valU, valV, gradU, gradV, wts)
		se.ShapeFunctionGradients = &grads
	}
	return
}

type direction int

const (
	dirU direction = iota
	dirV
)

/*
broadcast expands a univariate (node, slot, element) tensor into the
bivariate layout (node, slot, element-in-slice). Bivariate nodes and slots
both enumerate u fastest:

	node = (qv-1)*Nqnu + qu,  slot = (sv-1)*NshMaxU + su

and the ordering is identical for values and gradients and for row and
column slices, matching the connectivity table. eIdx names, per slice
element, the element of the univariate direction that supplies the data;
the other direction's axes are pure replication.
*/
func (sp *Space2D) broadcast(dir direction, T utils.Tensor3, eIdx utils.Index, msh *Mesh2D) (B utils.Tensor3) {
	var (
		nel     = len(eIdx)
		nshMaxU = sp.SpU.NshMax
		nshMaxV = sp.SpV.NshMax
		nqnu    = msh.Nqnu
		nqnv    = msh.Nqnv
	)
	B = utils.NewTensor3(nqnu*nqnv, nshMaxU*nshMaxV, nel)
	for e := 0; e < nel; e++ {
		eDir := eIdx[e] - 1
		for sv := 0; sv < nshMaxV; sv++ {
			for su := 0; su < nshMaxU; su++ {
				slot := sv*nshMaxU + su
				for qv := 0; qv < nqnv; qv++ {
					for qu := 0; qu < nqnu; qu++ {
						q := qv*nqnu + qu
						if dir == dirU {
							B.Set(q, slot, e, T.At(qu, su, eDir))
						} else {
							B.Set(q, slot, e, T.At(qv, sv, eDir))
						}
					}
				}
			}
		}
	}
	return
}

// gatherWeights pulls the rational weight for every (slot, element) pair of
// the sliced connectivity. Unused slots (sentinel 0) get weight 0 so they
// drop out of every accumulation.
func (sp *Space2D) gatherWeights(connS ConnTable) (W utils.Matrix) {
	W = utils.NewMatrix(connS.NshMax, connS.Nel)
	for e := 1; e <= connS.Nel; e++ {
		for s := 1; s <= connS.NshMax; s++ {
			if g := connS.At(s, e); g != 0 {
				W.Set(s-1, e-1, sp.Weight(g))
			}
		}
	}
	return
}

/*
rationalize forms the raw weighted tensor product

	raw[q,s,e] = w[s,e] * valU[q,s,e] * valV[q,s,e]

its per-(node, element) sum D, and the normalized rational basis R = raw/D.
The slot sums of R are exactly 1 by construction (partition of unity). A
zero denominator means the weight configuration is invalid and aborts the
evaluation; elems provides the global element number for the report.
*/
func rationalize(valU, valV utils.Tensor3, wts utils.Matrix, elems utils.Index) (R utils.Tensor3, D utils.Matrix, err error) {
	var (
		nqn    = valU.D0
		nshMax = valU.D1
		nel    = valU.D2
	)
	raw := utils.NewTensor3(nqn, nshMax, nel)
	D = utils.NewMatrix(nqn, nel)
	for e := 0; e < nel; e++ {
		for s := 0; s < nshMax; s++ {
			w := wts.At(s, e)
			if w == 0 {
				continue
			}
			for q := 0; q < nqn; q++ {
				b := w * valU.At(q, s, e) * valV.At(q, s, e)
				raw.Set(q, s, e, b)
				D.Set(q, e, D.At(q, e)+b)
			}
		}
	}
	for e := 0; e < nel; e++ {
		for q := 0; q < nqn; q++ {
			if D.At(q, e) == 0 {
				err = &DegenerateBasisError{Node: q + 1, Elem: elems[e]}
				return
			}
		}
	}
	R = utils.NewTensor3(nqn, nshMax, nel)
	for e := 0; e < nel; e++ {
		for s := 0; s < nshMax; s++ {
			for q := 0; q < nqn; q++ {
				R.Set(q, s, e, raw.At(q, s, e)/D.At(q, e))
			}
		}
	}
	return
}

/*
composeGradients applies the quotient rule for the rational basis with
respect to both parametric directions, sharing the denominator D used for
the values:

	Bu[q,s,e] = w * dNu * Nv     Du[q,e] = sum_s Bu
	dR/du = (Bu - R*Du) / D

and symmetrically for v. The result is indexed (direction, node, slot,
element) with direction 0 = u, 1 = v.
*/
func composeGradients(R utils.Tensor3, D utils.Matrix, valU, valV, gradU, gradV utils.Tensor3, wts utils.Matrix) (G utils.Tensor4) {
	var (
		nqn    = R.D0
		nshMax = R.D1
		nel    = R.D2
		Bu     = utils.NewTensor3(nqn, nshMax, nel)
		Bv     = utils.NewTensor3(nqn, nshMax, nel)
		Du     = utils.NewMatrix(nqn, nel)
		Dv     = utils.NewMatrix(nqn, nel)
	)
	for e := 0; e < nel; e++ {
		for s := 0; s < nshMax; s++ {
			w := wts.At(s, e)
			if w == 0 {
				continue
			}
			for q := 0; q < nqn; q++ {
				bu := w * gradU.At(q, s, e) * valV.At(q, s, e)
				bv := w * valU.At(q, s, e) * gradV.At(q, s, e)
				Bu.Set(q, s, e, bu)
				Bv.Set(q, s, e, bv)
				Du.Set(q, e, Du.At(q, e)+bu)
				Dv.Set(q, e, Dv.At(q, e)+bv)
			}
		}
	}
	G = utils.NewTensor4(2, nqn, nshMax, nel)
	for e := 0; e < nel; e++ {
		for s := 0; s < nshMax; s++ {
			for q := 0; q < nqn; q++ {
				d := D.At(q, e)
				r := R.At(q, s, e)
				G.Set(0, q, s, e, (Bu.At(q, s, e)-r*Du.At(q, e))/d)
				G.Set(1, q, s, e, (Bv.At(q, s, e)-r*Dv.At(q, e))/d)
			}
		}
	}
	return
}

/*
PushForward contracts parametric gradients with the inverse transpose of
the geometry Jacobian to produce physical gradients:

	(dR/dx, dR/dy) = J^{-T} (dR/du, dR/dv)

grads is indexed (parametric direction, node, slot, element), jac
(physical row, parametric column, node, element), both over the same
element subset. Exposed separately so column evaluation results can be
mapped by callers that hold their own Jacobian samples.
*/
func PushForward(grads, jac utils.Tensor4) (phys utils.Tensor4, err error) {
	var (
		nqn    = grads.D1
		nshMax = grads.D2
		nel    = grads.D3
	)
	phys = utils.NewTensor4(2, nqn, nshMax, nel)
	for e := 0; e < nel; e++ {
		for q := 0; q < nqn; q++ {
			var (
				xu = jac.At(0, 0, q, e)
				xv = jac.At(0, 1, q, e)
				yu = jac.At(1, 0, q, e)
				yv = jac.At(1, 1, q, e)
			)
			det := xu*yv - xv*yu
			if math.Abs(det) < utils.NODETOL {
				err = &SingularJacobianError{Node: q + 1, Elem: e + 1, Det: det}
				return
			}
			for s := 0; s < nshMax; s++ {
				gu := grads.At(0, q, s, e)
				gv := grads.At(1, q, s, e)
				phys.Set(0, q, s, e, (yv*gu-yu*gv)/det)
				phys.Set(1, q, s, e, (-xv*gu+xu*gv)/det)
			}
		}
	}
	return
}
