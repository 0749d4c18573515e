package assembly

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/iga/SP1D"
	"github.com/notargets/iga/SP2D"
)

func buildPatch(t *testing.T, xCorners, yCorners [4]float64) (sp *SP2D.Space2D, msh *SP2D.Mesh2D) {
	t.Helper()
	spU, err := SP1D.NewSpace1D(2, SP1D.NewUniformKnots(2, 4), 3)
	require.NoError(t, err)
	spV, err := SP1D.NewSpace1D(2, SP1D.NewUniformKnots(2, 3), 3)
	require.NoError(t, err)
	sp, err = SP2D.NewSpace2D(spU, spV, SP2D.UnitWeights(spU.Ndof*spV.Ndof))
	require.NoError(t, err)
	geom := SP2D.NewBilinearGeometry(spU, spV, xCorners, yCorners)
	msh = SP2D.NewMesh2D(spU.Nel, spV.Nel, spU.Nqn, spV.Nqn, geom)
	return
}

func TestMassMatrix(t *testing.T) {
	// 2 x 3 rectangle: with a partition of unity basis the sum of all
	// mass matrix entries is the patch area
	sp, msh := buildPatch(t, [4]float64{0, 2, 0, 2}, [4]float64{0, 0, 3, 3})
	M, err := MassMatrix(sp, msh)
	require.NoError(t, err)
	nr, nc := M.Dims()
	assert.Equal(t, sp.Ndof, nr)
	assert.Equal(t, sp.Ndof, nc)
	assert.True(t, near(6., M.Total(), 0.0000001))
	{ // symmetry
		for i := 0; i < nr; i++ {
			for j := i + 1; j < nc; j++ {
				assert.True(t, near(M.At(i, j), M.At(j, i), 0.0000000001))
			}
		}
	}
}

func TestMassMatrixParallel(t *testing.T) {
	sp, msh := buildPatch(t, [4]float64{0, 1, 0, 1}, [4]float64{0, 0, 1, 1})
	MS, err := MassMatrix(sp, msh)
	require.NoError(t, err)
	MP, err := MassMatrixParallel(sp, msh, 3)
	require.NoError(t, err)
	nr, nc := MS.Dims()
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			assert.True(t, near(MS.At(i, j), MP.At(i, j), 0.000000000001))
		}
	}
	assert.True(t, near(1., MP.Total(), 0.0000001))
}

func near(a, b float64, tolI ...float64) (l bool) {
	var (
		tol float64
	)
	if len(tolI) == 0 {
		tol = 1.e-08
	} else {
		tol = tolI[0]
	}
	bound := math.Max(tol, tol*math.Abs(a))
	if math.Abs(a-b) <= bound {
		l = true
	}
	return
}
