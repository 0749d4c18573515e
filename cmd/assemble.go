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
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/notargets/iga/assembly"
	"github.com/notargets/iga/utils"
)

// assembleCmd builds the global mass matrix from per-row slice evaluations
var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble the global mass matrix row of elements by row of elements",
	Run: func(cmd *cobra.Command, args []string) {
		patchFile, err := cmd.Flags().GetString("patchFile")
		if err != nil {
			panic(err)
		}
		np, _ := cmd.Flags().GetInt("parallel")
		sp, msh := processPatch(patchFile)

		var M utils.CSR
		start := time.Now()
		if np > 1 {
			M, err = assembly.MassMatrixParallel(sp, msh, np)
		} else {
			M, err = assembly.MassMatrix(sp, msh)
		}
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		elapsed := time.Since(start)
		nr, nc := M.Dims()
		fmt.Printf("assembled %d x %d mass matrix, nnz = %d, in %v\n", nr, nc, M.NNZ(), elapsed)
		// with a partition of unity basis the entry total is the patch area
		fmt.Printf("sum of all entries (patch area) = %10.7f\n", M.Total())
	},
}

func init() {
	rootCmd.AddCommand(assembleCmd)
	assembleCmd.Flags().StringP("patchFile", "F", "", "Patch description file in YAML format")
	assembleCmd.Flags().IntP("parallel", "p", 1, "number of rows of elements to assemble concurrently")
}
