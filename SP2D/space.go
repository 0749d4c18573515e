package SP2D

import (
	"fmt"

	"github.com/notargets/iga/SP1D"
	"github.com/notargets/iga/utils"
)

/*
Space2D is the bivariate rational (NURBS) space built as the tensor product
of two univariate B-spline spaces, with one positive weight per control
point. Global degree of freedom numbering follows the element numbering
convention: u-direction index fastest,

	gdof = (dv-1)*NdofU + du

Weights are looked up by that 1-based global index.
*/
type Space2D struct {
	SpU, SpV *SP1D.Space1D
	Ndof     int
	NshMax   int
	NdofDir  [2]int
	Weights  utils.Vector
	Conn     ConnTable
}

func NewSpace2D(spU, spV *SP1D.Space1D, weights []float64) (sp *Space2D, err error) {
	var (
		ndof   = spU.Ndof * spV.Ndof
		nshMax = spU.NshMax * spV.NshMax
		nel    = spU.Nel * spV.Nel
	)
	if len(weights) != ndof {
		err = fmt.Errorf("weight vector length %d does not match ndof = %d x %d", len(weights), spU.Ndof, spV.Ndof)
		return
	}
	sp = &Space2D{
		SpU:     spU,
		SpV:     spV,
		Ndof:    ndof,
		NshMax:  nshMax,
		NdofDir: [2]int{spU.Ndof, spV.Ndof},
		Weights: utils.NewVector(ndof, weights),
		Conn:    NewConnTable(nshMax, nel),
	}
	// global connectivity, u-direction slot index fastest
	for ev := 1; ev <= spV.Nel; ev++ {
		for eu := 1; eu <= spU.Nel; eu++ {
			elem := (ev-1)*spU.Nel + eu
			for sv := 1; sv <= spV.NshMax; sv++ {
				for su := 1; su <= spU.NshMax; su++ {
					slot := (sv-1)*spU.NshMax + su
					if su > spU.Nsh[eu-1] || sv > spV.Nsh[ev-1] {
						continue // slot unused, sentinel 0
					}
					du := spU.FirstDof[eu-1] + su - 1
					dv := spV.FirstDof[ev-1] + sv - 1
					sp.Conn.Set(slot, elem, (dv-1)*spU.Ndof+du)
				}
			}
		}
	}
	return
}

// Weight returns the rational weight of the 1-based global basis function.
func (sp *Space2D) Weight(gdof int) float64 {
	return sp.Weights.AtVec(gdof - 1)
}

// UnitWeights is a convenience for spaces that reduce to plain tensor
// product B-splines.
func UnitWeights(ndof int) []float64 {
	return utils.ConstArray(ndof, 1.)
}
