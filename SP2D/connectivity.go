package SP2D

import (
	"fmt"

	"github.com/notargets/iga/utils"
)

/*
ConnTable maps (local shape function slot, element) to a 1-based global
basis function index. An entry of 0 marks a slot unused by its element.
The slot axis enumerates the NshMaxU*NshMaxV tensor product combinations
with the u-direction local index varying fastest; row and column slice
evaluation share this one ordering so degrees of freedom associate
identically no matter which way the mesh is traversed.
*/
type ConnTable struct {
	NshMax, Nel int
	data        []int
}

func NewConnTable(nshMax, nel int) (ct ConnTable) {
	ct = ConnTable{
		NshMax: nshMax,
		Nel:    nel,
		data:   make([]int, nshMax*nel),
	}
	return
}

// At returns the global function index for 1-based slot and element-position
func (ct ConnTable) At(slot, elem int) int {
	return ct.data[slot-1+ct.NshMax*(elem-1)]
}

func (ct ConnTable) Set(slot, elem, gdof int) ConnTable {
	ct.data[slot-1+ct.NshMax*(elem-1)] = gdof
	return ct
}

// Slice restricts the element axis to the listed 1-based global elements,
// preserving slot order.
func (ct ConnTable) Slice(elems utils.Index) (R ConnTable) {
	R = NewConnTable(ct.NshMax, len(elems))
	for i, e := range elems {
		if e < 1 || e > ct.Nel {
			panic(fmt.Errorf("element %d out of connectivity range [1,%d]", e, ct.Nel))
		}
		copy(R.data[i*ct.NshMax:(i+1)*ct.NshMax], ct.data[(e-1)*ct.NshMax:e*ct.NshMax])
	}
	return
}
