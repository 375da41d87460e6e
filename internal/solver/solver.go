package solver

import (
	"context"

	"triplets/internal/equation"
)

// Solver finds every bijective assignment of 1..n to a bundle's variables
// that satisfies all of its equations. An empty result means the bundle has
// no solution; that is a legitimate outcome, not an error.
type Solver interface {
	Solve(ctx context.Context, bundle equation.Bundle) ([]Assignment, error)
}

func NewSolver() Solver {
	return &backtrackingSolver{}
}

func NewParallelSolver(workers int) Solver {
	return newParallelSolver(workers)
}
