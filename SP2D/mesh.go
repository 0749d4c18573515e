package SP2D

import (
	"fmt"

	"github.com/notargets/iga/utils"
)

/*
Mesh2D describes the structured tensor product quadrature grid: Nelu x Nelv
elements, each carrying Nqnu x Nqnv Gauss nodes. Global elements are
numbered row-major by rows of the grid, 1-based:

	elem = (row-1)*Nelu + column

Geom supplies geometry Jacobian samples on demand for gradient pushforward.
*/
type Mesh2D struct {
	Nelu, Nelv int
	Nqnu, Nqnv int
	Nel, Nqn   int
	Geom       Geometry
}

func NewMesh2D(nelu, nelv, nqnu, nqnv int, geom Geometry) (msh *Mesh2D) {
	if nelu < 1 || nelv < 1 || nqnu < 1 || nqnv < 1 {
		panic(fmt.Errorf("mesh dimensions must be positive, have %d x %d elements, %d x %d nodes", nelu, nelv, nqnu, nqnv))
	}
	msh = &Mesh2D{
		Nelu: nelu, Nelv: nelv,
		Nqnu: nqnu, Nqnv: nqnv,
		Nel: nelu * nelv, Nqn: nqnu * nqnv,
		Geom: geom,
	}
	return
}

// RowElements returns the Nelu consecutive global element indices of row k.
// Rows are counted 1..Nelv along the v direction.
func (msh *Mesh2D) RowElements(k int) (elems utils.Index, err error) {
	if k < 1 || k > msh.Nelv {
		err = fmt.Errorf("%w: row %d not in [1,%d]", ErrSliceIndexOutOfRange, k, msh.Nelv)
		return
	}
	elems = utils.NewStride((k-1)*msh.Nelu+1, msh.Nelu, 1)
	return
}

// ColElements returns the Nelv global element indices of column k, stride
// Nelu apart. Columns are counted 1..Nelu along the u direction.
func (msh *Mesh2D) ColElements(k int) (elems utils.Index, err error) {
	if k < 1 || k > msh.Nelu {
		err = fmt.Errorf("%w: column %d not in [1,%d]", ErrSliceIndexOutOfRange, k, msh.Nelu)
		return
	}
	elems = utils.NewStride(k, msh.Nelv, msh.Nelu)
	return
}

// ElemDir splits a 1-based global element index into its 1-based
// per-direction element indices.
func (msh *Mesh2D) ElemDir(elem int) (eu, ev int) {
	eu = (elem-1)%msh.Nelu + 1
	ev = (elem-1)/msh.Nelu + 1
	return
}
