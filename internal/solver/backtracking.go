package solver

import (
	"context"

	"triplets/internal/equation"
)

// Values are drawn from 1..n, so 0 marks a variable that has not been
// assigned yet. Checks must hold vacuously while any of their variables is
// still unassigned.
const unassigned = 0

type check struct {
	x, y, z int
	op      equation.Operator
}

func (c check) holds(values []int) bool {
	x, y, z := values[c.x], values[c.y], values[c.z]
	if x == unassigned || y == unassigned || z == unassigned {
		return true
	}
	return c.op.Apply(x, y) == z
}

func compile(bundle equation.Bundle) []check {
	checks := make([]check, 0, len(bundle.Equations))
	for _, eq := range bundle.Equations {
		checks = append(checks, check{
			x:  equation.Index(eq.X),
			y:  equation.Index(eq.Y),
			z:  equation.Index(eq.Z),
			op: eq.Op,
		})
	}
	return checks
}

type backtrackingSolver struct{}

func (s *backtrackingSolver) Solve(ctx context.Context, bundle equation.Bundle) ([]Assignment, error) {
	if err := bundle.Validate(); err != nil {
		return nil, err
	}

	checks := compile(bundle)
	values := make([]int, bundle.Variables)
	used := make([]bool, bundle.Variables+1)
	solutions := make([]Assignment, 0)

	err := search(ctx, checks, values, used, 0, &solutions)
	if err != nil {
		return nil, err
	}
	return solutions, nil
}

// search extends the partial assignment at position current with every unused
// value that violates no check, recursing until a full permutation is built.
// Solutions come out in lexicographic order of their value vectors.
func search(
	ctx context.Context,
	checks []check,
	values []int,
	used []bool,
	current int,
	solutions *[]Assignment) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	if current >= len(values) {
		solution := make(Assignment, len(values))
		copy(solution, values)
		*solutions = append(*solutions, solution)
		return nil
	}

	for value := 1; value <= len(values); value++ {
		if used[value] {
			continue
		}
		values[current] = value

		checkViolated := false
		for _, c := range checks {
			if !c.holds(values) {
				checkViolated = true
				break
			}
		}

		if checkViolated {
			continue
		}

		used[value] = true
		if err := search(ctx, checks, values, used, current+1, solutions); err != nil {
			return err
		}
		used[value] = false
	}

	values[current] = unassigned
	return nil
}
