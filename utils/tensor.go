package utils

import "fmt"

/*
Dense rank-3 and rank-4 tensors stored flat with the first index varying
fastest, matching the column traversal order of the Matrix type. Used for
per-element basis evaluations indexed (node, slot, element) and gradient
stacks indexed (direction, node, slot, element).
*/

type Tensor3 struct {
	D0, D1, D2 int
	data       []float64
}

func NewTensor3(d0, d1, d2 int, dataO ...[]float64) (T Tensor3) {
	var d []float64
	if len(dataO) != 0 {
		if len(dataO[0]) != d0*d1*d2 {
			err := fmt.Errorf("mismatch in allocation: NewTensor3 dims = %v,%v,%v, len(data[0]) = %v\n", d0, d1, d2, len(dataO[0]))
			panic(err)
		}
		d = dataO[0]
	} else {
		d = make([]float64, d0*d1*d2)
	}
	T = Tensor3{d0, d1, d2, d}
	return
}

func (t Tensor3) At(i, j, k int) float64 {
	return t.data[i+t.D0*(j+t.D1*k)]
}

func (t Tensor3) Set(i, j, k int, val float64) Tensor3 {
	t.data[i+t.D0*(j+t.D1*k)] = val
	return t
}

func (t Tensor3) Data() []float64 { return t.data }
func (t Tensor3) Len() int        { return len(t.data) }

func (t Tensor3) Copy() (R Tensor3) {
	dataR := make([]float64, len(t.data))
	copy(dataR, t.data)
	R = NewTensor3(t.D0, t.D1, t.D2, dataR)
	return
}

type Tensor4 struct {
	D0, D1, D2, D3 int
	data           []float64
}

func NewTensor4(d0, d1, d2, d3 int, dataO ...[]float64) (T Tensor4) {
	var d []float64
	if len(dataO) != 0 {
		if len(dataO[0]) != d0*d1*d2*d3 {
			err := fmt.Errorf("mismatch in allocation: NewTensor4 dims = %v,%v,%v,%v, len(data[0]) = %v\n", d0, d1, d2, d3, len(dataO[0]))
			panic(err)
		}
		d = dataO[0]
	} else {
		d = make([]float64, d0*d1*d2*d3)
	}
	T = Tensor4{d0, d1, d2, d3, d}
	return
}

func (t Tensor4) At(i, j, k, l int) float64 {
	return t.data[i+t.D0*(j+t.D1*(k+t.D2*l))]
}

func (t Tensor4) Set(i, j, k, l int, val float64) Tensor4 {
	t.data[i+t.D0*(j+t.D1*(k+t.D2*l))] = val
	return t
}

func (t Tensor4) Data() []float64 { return t.data }
func (t Tensor4) Len() int        { return len(t.data) }

func (t Tensor4) Copy() (R Tensor4) {
	dataR := make([]float64, len(t.data))
	copy(dataR, t.data)
	R = NewTensor4(t.D0, t.D1, t.D2, t.D3, dataR)
	return
}
