package SP2D

import (
	"fmt"

	"github.com/notargets/iga/SP1D"
	"github.com/notargets/iga/utils"
)

// Geometry supplies geometry map Jacobian samples for an arbitrary subset
// of global elements. The returned tensor is indexed (physical row,
// parametric column, quadrature node, element position in the subset).
type Geometry interface {
	JacobianSamples(elems utils.Index) (utils.Tensor4, error)
}

/*
NurbsGeometry is the isoparametric map: the patch geometry is expressed in
the same rational basis as the analysis space, with one control point per
degree of freedom. The Jacobian at the quadrature nodes is the contraction
of the parametric basis gradients with the control net.
*/
type NurbsGeometry struct {
	Sp           *Space2D
	CtrlX, CtrlY utils.Vector
}

func NewNurbsGeometry(sp *Space2D, ctrlX, ctrlY []float64) (g *NurbsGeometry, err error) {
	if len(ctrlX) != sp.Ndof || len(ctrlY) != sp.Ndof {
		err = fmt.Errorf("control net size %d,%d does not match ndof = %d", len(ctrlX), len(ctrlY), sp.Ndof)
		return
	}
	g = &NurbsGeometry{
		Sp:    sp,
		CtrlX: utils.NewVector(sp.Ndof, ctrlX),
		CtrlY: utils.NewVector(sp.Ndof, ctrlY),
	}
	return
}

func (g *NurbsGeometry) JacobianSamples(elems utils.Index) (jac utils.Tensor4, err error) {
	var (
		sp    = g.Sp
		msh   = NewMesh2D(sp.SpU.Nel, sp.SpV.Nel, sp.SpU.Nqn, sp.SpV.Nqn, nil)
		nel   = len(elems)
		nqn   = msh.Nqn
		euIdx = utils.NewIndex(nel)
		evIdx = utils.NewIndex(nel)
	)
	for i, e := range elems {
		euIdx[i], evIdx[i] = msh.ElemDir(e)
	}
	se, err := sp.evaluateSlice(msh, elems, euIdx, evIdx, EvalOptions{Value: false, Gradient: true})
	if err != nil {
		return
	}
	G := *se.ShapeFunctionGradients
	jac = utils.NewTensor4(2, 2, nqn, nel)
	for e := 0; e < nel; e++ {
		for s := 1; s <= se.Connectivity.NshMax; s++ {
			gdof := se.Connectivity.At(s, e+1)
			if gdof == 0 {
				continue
			}
			px := g.CtrlX.AtVec(gdof - 1)
			py := g.CtrlY.AtVec(gdof - 1)
			for q := 0; q < nqn; q++ {
				gu := G.At(0, q, s-1, e)
				gv := G.At(1, q, s-1, e)
				jac.Set(0, 0, q, e, jac.At(0, 0, q, e)+px*gu)
				jac.Set(0, 1, q, e, jac.At(0, 1, q, e)+px*gv)
				jac.Set(1, 0, q, e, jac.At(1, 0, q, e)+py*gu)
				jac.Set(1, 1, q, e, jac.At(1, 1, q, e)+py*gv)
			}
		}
	}
	return
}

/*
BilinearGeometry maps the parametric unit square onto the quadrilateral
with the given corner coordinates, ordered (u,v) = (0,0), (1,0), (0,1),
(1,1). Closed-form Jacobian, no control net; the usual choice for
rectangular test patches and for meshes whose geometry is not spline
based.
*/
type BilinearGeometry struct {
	SpU, SpV *SP1D.Space1D
	X, Y     [4]float64
}

func NewBilinearGeometry(spU, spV *SP1D.Space1D, x, y [4]float64) *BilinearGeometry {
	return &BilinearGeometry{SpU: spU, SpV: spV, X: x, Y: y}
}

func (g *BilinearGeometry) JacobianSamples(elems utils.Index) (jac utils.Tensor4, err error) {
	var (
		nelu = g.SpU.Nel
		nqnu = g.SpU.Nqn
		nqnv = g.SpV.Nqn
		nqn  = nqnu * nqnv
		nel  = len(elems)
	)
	jac = utils.NewTensor4(2, 2, nqn, nel)
	for i, elem := range elems {
		eu := (elem-1)%nelu + 1
		ev := (elem-1)/nelu + 1
		for qv := 0; qv < nqnv; qv++ {
			v := g.SpV.QP.At(qv, ev-1)
			for qu := 0; qu < nqnu; qu++ {
				u := g.SpU.QP.At(qu, eu-1)
				q := qv*nqnu + qu
				jac.Set(0, 0, q, i, (1-v)*(g.X[1]-g.X[0])+v*(g.X[3]-g.X[2]))
				jac.Set(0, 1, q, i, (1-u)*(g.X[2]-g.X[0])+u*(g.X[3]-g.X[1]))
				jac.Set(1, 0, q, i, (1-v)*(g.Y[1]-g.Y[0])+v*(g.Y[3]-g.Y[2]))
				jac.Set(1, 1, q, i, (1-u)*(g.Y[2]-g.Y[0])+u*(g.Y[3]-g.Y[1]))
			}
		}
	}
	return
}
