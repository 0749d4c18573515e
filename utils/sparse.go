package utils

import (
	"github.com/james-bowman/sparse"
	"github.com/james-bowman/sparse/blas"
	"gonum.org/v1/gonum/mat"
)

type DOK struct {
	M *sparse.DOK
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{sparse.NewDOK(nr, nc)}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }

func (m DOK) Set(i, j int, val float64) { m.M.Set(i, j, val) }

func (m DOK) Accumulate(i, j int, val float64) {
	m.M.Set(i, j, m.M.At(i, j)+val)
}

func (m DOK) NNZ() int { return m.M.NNZ() }

func (m DOK) ToCSR() CSR {
	return CSR{m.M.ToCSR()}
}

type CSR struct {
	M *sparse.CSR
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)    { return m.M.Dims() }
func (m CSR) At(i, j int) float64 { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix       { return m.M.T() }

func (m CSR) NNZ() int { return m.M.NNZ() }

func (m CSR) RawMatrix() *blas.SparseMatrix { return m.M.RawMatrix() }

// Total returns the sum over all stored entries.
func (m CSR) Total() (sum float64) {
	m.M.DoNonZero(func(i, j int, v float64) {
		sum += v
	})
	return
}
