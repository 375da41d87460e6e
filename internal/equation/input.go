package equation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

type BundleInput struct {
	Variables int      `mapstructure:"variables"`
	Equations []string `mapstructure:"equations"`
}

// BundleFromJSON reads a bundle from a JSON file of the form
// {"variables": 3, "equations": ["A+B=C"]}. A missing or zero "variables"
// field infers the universe from the equations.
func BundleFromJSON(file string) (Bundle, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Bundle{}, fmt.Errorf("cannot read input file: %w", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Bundle{}, fmt.Errorf("cannot parse input file: %w", err)
	}

	var input BundleInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return Bundle{}, fmt.Errorf("cannot decode input file: %w", err)
	}

	equations, err := ParseAll(input.Equations)
	if err != nil {
		return Bundle{}, err
	}

	if input.Variables == 0 {
		return InferBundle(equations)
	}
	return NewBundle(input.Variables, equations)
}
