package generator

import (
	"triplets/internal/equation"
)

var operators = []equation.Operator{equation.OpAdd, equation.OpMultiply}

// All generates every triplet equation over the first n symbols with operand
// reuse allowed: 2*n^3 equations in product order (X, Y, Z major to minor,
// '+' before '*'). Out-of-range n yields nil.
func All(n int) []equation.Equation {
	if n < 1 || n > equation.MaxVariables {
		return nil
	}

	equations := make([]equation.Equation, 0, 2*n*n*n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				for _, op := range operators {
					equations = append(equations, equation.Equation{
						X:  equation.Var(x),
						Y:  equation.Var(y),
						Z:  equation.Var(z),
						Op: op,
					})
				}
			}
		}
	}
	return equations
}

// Distinct generates every triplet equation whose three letters are pairwise
// distinct: 2 * n * (n-1) * (n-2) equations.
func Distinct(n int) []equation.Equation {
	if n < 1 || n > equation.MaxVariables {
		return nil
	}

	equations := make([]equation.Equation, 0, 2*n*(n-1)*(n-2))
	for _, eq := range All(n) {
		if eq.Distinct() {
			equations = append(equations, eq)
		}
	}
	return equations
}

// Representative generates a compressed sample of the equation space: for
// each 3-letter subset (x, y, z) the eight forms
// x∘x=x, x∘x=y, x∘y=x, x∘y=z for both operators. For n < 3 a small
// hand-picked set is emitted instead.
func Representative(n int) []equation.Equation {
	if n < 1 || n > equation.MaxVariables {
		return nil
	}

	if n < 3 {
		forms := []equation.Equation{
			{X: 'A', Y: 'A', Z: 'A', Op: equation.OpAdd},
			{X: 'A', Y: 'A', Z: 'A', Op: equation.OpMultiply},
		}
		if n == 2 {
			forms = append(forms,
				equation.Equation{X: 'A', Y: 'A', Z: 'B', Op: equation.OpAdd},
				equation.Equation{X: 'A', Y: 'A', Z: 'B', Op: equation.OpMultiply},
				equation.Equation{X: 'A', Y: 'B', Z: 'A', Op: equation.OpAdd},
				equation.Equation{X: 'A', Y: 'B', Z: 'A', Op: equation.OpMultiply},
			)
		}
		return forms
	}

	equations := make([]equation.Equation, 0)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				x, y, z := equation.Var(i), equation.Var(j), equation.Var(k)
				for _, form := range [][3]byte{
					{x, x, x},
					{x, x, y},
					{x, y, x},
					{x, y, z},
				} {
					for _, op := range operators {
						equations = append(equations, equation.Equation{
							X:  form[0],
							Y:  form[1],
							Z:  form[2],
							Op: op,
						})
					}
				}
			}
		}
	}
	return equations
}
