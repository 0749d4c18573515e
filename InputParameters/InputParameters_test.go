package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatchParameters(t *testing.T) {
	data := `
Title: "Test Patch"
DegreeU: 2
DegreeV: 2
KnotsU: [0, 0, 0, 0.5, 1, 1, 1]
KnotsV: [0, 0, 0, 1, 1, 1]
QuadratureOrder: 3
`
	pp := &PatchParameters2D{}
	assert.NoError(t, pp.Parse([]byte(data)))
	assert.Equal(t, "Test Patch", pp.Title)
	assert.Equal(t, 2, pp.DegreeU)
	assert.Equal(t, []float64{0, 0, 0, 0.5, 1, 1, 1}, pp.KnotsU)
	assert.Equal(t, 3, pp.QuadratureOrder)
	assert.NoError(t, pp.Validate())

	{ // weight count must match the space dimension when supplied
		pp.Weights = []float64{1, 1, 1}
		assert.Error(t, pp.Validate())
		pp.Weights = nil
	}
	{ // missing knots
		bad := &PatchParameters2D{DegreeU: 2, DegreeV: 2, QuadratureOrder: 3}
		assert.Error(t, bad.Validate())
	}
}
