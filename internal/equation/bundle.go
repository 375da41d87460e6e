package equation

import (
	"fmt"

	"github.com/samber/lo"
)

// MaxVariables bounds the universe to the capital letters A..Z.
const MaxVariables = 26

// Bundle is a set of equations sharing a common universe of the first
// Variables capital letters. A valid solution assigns the integers
// 1..Variables bijectively to the letters so that every equation holds.
type Bundle struct {
	Variables int
	Equations []Equation
}

// NewBundle builds a bundle and validates every equation against the universe.
func NewBundle(variables int, equations []Equation) (Bundle, error) {
	bundle := Bundle{Variables: variables, Equations: equations}
	if err := bundle.Validate(); err != nil {
		return Bundle{}, err
	}
	return bundle, nil
}

// InferBundle derives the universe size from the highest letter used by the
// equations, so "A+B=C" alone yields a 3-variable bundle.
func InferBundle(equations []Equation) (Bundle, error) {
	if len(equations) == 0 {
		return Bundle{}, fmt.Errorf("cannot infer a universe from an empty equation list")
	}
	variables := 0
	for _, eq := range equations {
		for _, symbol := range []byte{eq.X, eq.Y, eq.Z} {
			if Index(symbol)+1 > variables {
				variables = Index(symbol) + 1
			}
		}
	}
	return NewBundle(variables, equations)
}

func (b Bundle) Validate() error {
	if b.Variables < 1 || b.Variables > MaxVariables {
		return fmt.Errorf("variables must be between 1 and %v: got %v", MaxVariables, b.Variables)
	}
	for _, eq := range b.Equations {
		if err := eq.Validate(b.Variables); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStrict additionally requires every equation to use three pairwise
// distinct letters.
func (b Bundle) ValidateStrict() error {
	if err := b.Validate(); err != nil {
		return err
	}
	for _, eq := range b.Equations {
		if !eq.Distinct() {
			return fmt.Errorf("equation %v reuses a letter within its triple", eq)
		}
	}
	return nil
}

// Strings renders the equations in compact form, e.g. ["A+B=C", "A*B=D"].
func (b Bundle) Strings() []string {
	return lo.Map(b.Equations, func(eq Equation, _ int) string { return eq.String() })
}
