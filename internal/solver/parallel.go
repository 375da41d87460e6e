package solver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"triplets/internal/equation"
)

type parallelSolver struct {
	workers int
}

func newParallelSolver(workers int) *parallelSolver {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &parallelSolver{workers: workers}
}

// Solve partitions the permutation space on the first variable's value and
// searches the branches concurrently. Branch results are merged in value
// order, so the output matches the serial solver exactly.
func (s *parallelSolver) Solve(ctx context.Context, bundle equation.Bundle) ([]Assignment, error) {
	if err := bundle.Validate(); err != nil {
		return nil, err
	}

	checks := compile(bundle)
	branches := make([][]Assignment, bundle.Variables+1)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)

	for first := 1; first <= bundle.Variables; first++ {
		first := first
		group.Go(func() error {
			values := make([]int, bundle.Variables)
			used := make([]bool, bundle.Variables+1)

			values[0] = first
			for _, c := range checks {
				if !c.holds(values) {
					return nil
				}
			}
			used[first] = true

			solutions := make([]Assignment, 0)
			if err := search(ctx, checks, values, used, 1, &solutions); err != nil {
				return err
			}
			branches[first] = solutions
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	solutions := make([]Assignment, 0)
	for _, branch := range branches {
		solutions = append(solutions, branch...)
	}
	return solutions, nil
}
