/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/notargets/iga/InputParameters"
	"github.com/notargets/iga/SP1D"
	"github.com/notargets/iga/SP2D"
)

// evalCmd evaluates the rational basis on one row or column of elements
var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the NURBS basis on one slice of the element grid",
	Long: `Evaluate the rational basis functions, and optionally their gradients, on
one row or one column of elements of a tensor product patch read from a
YAML description file.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		patchFile, err := cmd.Flags().GetString("patchFile")
		if err != nil {
			panic(err)
		}
		row, _ := cmd.Flags().GetInt("row")
		col, _ := cmd.Flags().GetInt("col")
		optList, _ := cmd.Flags().GetString("options")
		if (row == 0) == (col == 0) {
			fmt.Printf("error: supply exactly one of --row or --col\n")
			os.Exit(1)
		}
		opts := SP2D.DefaultEvalOptions()
		if len(optList) != 0 {
			if opts, err = SP2D.EvalOptionsFromList(strings.Split(optList, ",")); err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
		}
		sp, msh := processPatch(patchFile)
		var (
			se    *SP2D.SliceEval
			elems []int
		)
		if row != 0 {
			se, elems, err = sp.EvaluateRow(msh, row, opts)
		} else {
			se, elems, err = sp.EvaluateCol(msh, col, opts)
		}
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("slice elements: %v\n", elems)
		fmt.Printf("nsh = %v, nsh_max = %d, ndof = %d (%d x %d)\n",
			se.Nsh, se.NshMax, se.Ndof, se.NdofDir[0], se.NdofDir[1])
		if se.ShapeFunctions != nil {
			fmt.Printf("partition of unity residual: %8.3e\n", puResidual(se, msh))
		}
		if se.ShapeFunctionGradients != nil {
			g := se.ShapeFunctionGradients
			fmt.Printf("gradient tensor dims: %d x %d x %d x %d\n", g.D0, g.D1, g.D2, g.D3)
		}
	},
}

func puResidual(se *SP2D.SliceEval, msh *SP2D.Mesh2D) (res float64) {
	R := *se.ShapeFunctions
	for e := 0; e < R.D2; e++ {
		for q := 0; q < msh.Nqn; q++ {
			var sum float64
			for s := 0; s < se.NshMax; s++ {
				sum += R.At(q, s, e)
			}
			if r := math.Abs(sum - 1.); r > res {
				res = r
			}
		}
	}
	return
}

func processPatch(patchFile string) (sp *SP2D.Space2D, msh *SP2D.Mesh2D) {
	var (
		err error
	)
	if len(patchFile) == 0 {
		err = fmt.Errorf("must supply a patch description file (-F, --patchFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Quarter Annulus"
DegreeU: 2
DegreeV: 2
KnotsU: [0, 0, 0, 0.5, 1, 1, 1]
KnotsV: [0, 0, 0, 0.5, 1, 1, 1]
QuadratureOrder: 3
Weights: [...]    # omit for uniform unit weights
ControlX: [...]   # omit for the unit square
ControlY: [...]
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(patchFile); err != nil {
		panic(err)
	}
	pp := &InputParameters.PatchParameters2D{}
	if err = pp.Parse(data); err != nil {
		panic(err)
	}
	if err = pp.Validate(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	pp.Print()

	spU, err := SP1D.NewSpace1D(pp.DegreeU, SP1D.KnotVec(pp.KnotsU), pp.QuadratureOrder)
	if err != nil {
		panic(err)
	}
	spV, err := SP1D.NewSpace1D(pp.DegreeV, SP1D.KnotVec(pp.KnotsV), pp.QuadratureOrder)
	if err != nil {
		panic(err)
	}
	weights := pp.Weights
	if len(weights) == 0 {
		weights = SP2D.UnitWeights(spU.Ndof * spV.Ndof)
	}
	if sp, err = SP2D.NewSpace2D(spU, spV, weights); err != nil {
		panic(err)
	}
	var geom SP2D.Geometry
	if len(pp.ControlX) != 0 {
		if geom, err = SP2D.NewNurbsGeometry(sp, pp.ControlX, pp.ControlY); err != nil {
			panic(err)
		}
	} else {
		geom = SP2D.NewBilinearGeometry(spU, spV, [4]float64{0, 1, 0, 1}, [4]float64{0, 0, 1, 1})
	}
	msh = SP2D.NewMesh2D(spU.Nel, spV.Nel, spU.Nqn, spV.Nqn, geom)
	return
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringP("patchFile", "F", "", "Patch description file in YAML format")
	evalCmd.Flags().IntP("row", "r", 0, "1-based row of elements to evaluate")
	evalCmd.Flags().IntP("col", "c", 0, "1-based column of elements to evaluate")
	evalCmd.Flags().StringP("options", "o", "", "comma separated option list like:\n\t- value,true,gradient,false")
}
