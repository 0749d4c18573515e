package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTensor3(t *testing.T) {
	T := NewTensor3(2, 3, 4)
	assert.Equal(t, 24, T.Len())
	T.Set(1, 2, 3, 42.)
	assert.Equal(t, 42., T.At(1, 2, 3))
	// first index varies fastest in the flat layout
	assert.Equal(t, 42., T.Data()[1+2*(2+3*3)])

	C := T.Copy()
	C.Set(0, 0, 0, 7.)
	assert.Equal(t, 0., T.At(0, 0, 0))

	assert.Panics(t, func() { NewTensor3(2, 2, 2, make([]float64, 7)) })
}

func TestTensor4(t *testing.T) {
	T := NewTensor4(2, 2, 3, 4)
	T.Set(1, 0, 2, 3, -1.)
	assert.Equal(t, -1., T.At(1, 0, 2, 3))
	assert.Equal(t, -1., T.Data()[1+2*(0+2*(2+3*3))])
}

func TestIndex(t *testing.T) {
	assert.Equal(t, Index{3, 4, 5}, NewRange(3, 5))
	assert.Equal(t, Index{0, 1, 2}, NewRangeOffset(1, 3))
	assert.Equal(t, Index{7, 7, 7}, NewConstant(3, 7))
	assert.Equal(t, Index{2, 6, 10}, NewStride(2, 3, 4))
	assert.True(t, NewStride(2, 3, 4).Contains(6))
	assert.False(t, NewStride(2, 3, 4).Contains(5))
}

func TestMatrixInverse(t *testing.T) {
	M := NewMatrix(2, 2, []float64{4, 7, 2, 6})
	R, err := M.Inverse()
	assert.NoError(t, err)
	I := M.Mul(R)
	assert.InDelta(t, 1., I.At(0, 0), 1.e-12)
	assert.InDelta(t, 0., I.At(0, 1), 1.e-12)
	assert.InDelta(t, 0., I.At(1, 0), 1.e-12)
	assert.InDelta(t, 1., I.At(1, 1), 1.e-12)
}
