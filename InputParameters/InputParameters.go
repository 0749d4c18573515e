package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML patch description file
type PatchParameters2D struct {
	Title           string    `yaml:"Title"`
	DegreeU         int       `yaml:"DegreeU"`
	DegreeV         int       `yaml:"DegreeV"`
	KnotsU          []float64 `yaml:"KnotsU"`
	KnotsV          []float64 `yaml:"KnotsV"`
	QuadratureOrder int       `yaml:"QuadratureOrder"`
	Weights         []float64 `yaml:"Weights"`
	ControlX        []float64 `yaml:"ControlX"`
	ControlY        []float64 `yaml:"ControlY"`
}

func (pp *PatchParameters2D) Parse(data []byte) error {
	return yaml.Unmarshal(data, pp)
}

func (pp *PatchParameters2D) Validate() error {
	if pp.DegreeU < 1 || pp.DegreeV < 1 {
		return fmt.Errorf("polynomial degrees must be >= 1, have (%d,%d)", pp.DegreeU, pp.DegreeV)
	}
	if len(pp.KnotsU) == 0 || len(pp.KnotsV) == 0 {
		return fmt.Errorf("both knot vectors must be supplied")
	}
	if pp.QuadratureOrder < 1 {
		return fmt.Errorf("quadrature order must be >= 1, have %d", pp.QuadratureOrder)
	}
	ndof := (len(pp.KnotsU) - pp.DegreeU - 1) * (len(pp.KnotsV) - pp.DegreeV - 1)
	if len(pp.Weights) != 0 && len(pp.Weights) != ndof {
		return fmt.Errorf("weight count %d does not match ndof = %d", len(pp.Weights), ndof)
	}
	if len(pp.ControlX) != 0 && (len(pp.ControlX) != ndof || len(pp.ControlY) != ndof) {
		return fmt.Errorf("control net size %d,%d does not match ndof = %d", len(pp.ControlX), len(pp.ControlY), ndof)
	}
	return nil
}

func (pp *PatchParameters2D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", pp.Title)
	fmt.Printf("[%d,%d]\t\t\t= Polynomial Degrees\n", pp.DegreeU, pp.DegreeV)
	fmt.Printf("[%d]\t\t\t= Quadrature Order\n", pp.QuadratureOrder)
	fmt.Printf("%d x %d\t\t\t= Knot counts\n", len(pp.KnotsU), len(pp.KnotsV))
	if len(pp.Weights) != 0 {
		fmt.Printf("[%d]\t\t\t= Rational Weights\n", len(pp.Weights))
	} else {
		fmt.Printf("[uniform]\t\t= Rational Weights\n")
	}
}
