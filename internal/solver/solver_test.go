package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"triplets/internal/equation"
)

func mustBundle(t *testing.T, variables int, raws ...string) equation.Bundle {
	t.Helper()
	equations, err := equation.ParseAll(raws)
	assert.Nil(t, err)
	bundle, err := equation.NewBundle(variables, equations)
	assert.Nil(t, err)
	return bundle
}

func labels(solutions []Assignment) []map[string]int {
	result := make([]map[string]int, 0, len(solutions))
	for _, solution := range solutions {
		result = append(result, solution.Labels())
	}
	return result
}

func TestSolve(t *testing.T) {
	solver := NewSolver()

	t.Run("Single addition has two solutions", func(t *testing.T) {
		// Arrange
		bundle := mustBundle(t, 3, "A+B=C")

		// Act
		solutions, err := solver.Solve(context.Background(), bundle)

		// Assert
		assert.Nil(t, err)
		assert.Len(t, solutions, 2)
		assert.Contains(t, labels(solutions), map[string]int{"A": 1, "B": 2, "C": 3})
		assert.Contains(t, labels(solutions), map[string]int{"A": 2, "B": 1, "C": 3})
	})

	t.Run("Single multiplication has no solution over three variables", func(t *testing.T) {
		// Arrange: x*y=z needs a product inside {1,2,3} with three distinct values
		bundle := mustBundle(t, 3, "A*B=C")

		// Act
		solutions, err := solver.Solve(context.Background(), bundle)

		// Assert: zero solutions is an outcome, not an error
		assert.Nil(t, err)
		assert.Empty(t, solutions)
	})

	t.Run("Repeated letters are arithmetic, not an error", func(t *testing.T) {
		// Arrange: A*A=A forces A=1
		bundle := mustBundle(t, 1, "A*A=A")

		// Act
		solutions, err := solver.Solve(context.Background(), bundle)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, []map[string]int{{"A": 1}}, labels(solutions))
	})

	t.Run("Pinning equation makes the bundle unique", func(t *testing.T) {
		// Arrange: A*B=B forces A=1, then A+B=C forces B=2, C=3
		bundle := mustBundle(t, 3, "A*B=B", "A+B=C")

		// Act
		solutions, err := solver.Solve(context.Background(), bundle)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, []map[string]int{{"A": 1, "B": 2, "C": 3}}, labels(solutions))
	})

	t.Run("Contradictory bundle has no solution", func(t *testing.T) {
		// Arrange
		bundle := mustBundle(t, 3, "A+B=C", "B+C=A")

		// Act
		solutions, err := solver.Solve(context.Background(), bundle)

		// Assert
		assert.Nil(t, err)
		assert.Empty(t, solutions)
	})

	t.Run("Free variables multiply the solutions", func(t *testing.T) {
		// Arrange: over four variables A+B=C leaves D free
		bundle := mustBundle(t, 4, "A+B=C")

		// Act
		solutions, _ := solver.Solve(context.Background(), bundle)

		// Assert: (1,2,3), (2,1,3), (1,3,4), (3,1,4) with D taking the leftover
		assert.Len(t, solutions, 4)
	})

	t.Run("Empty bundle enumerates all permutations", func(t *testing.T) {
		// Arrange
		bundle := mustBundle(t, 4)

		// Act
		solutions, err := solver.Solve(context.Background(), bundle)

		// Assert
		assert.Nil(t, err)
		assert.Len(t, solutions, 24)
	})

	t.Run("Invalid bundle is an error", func(t *testing.T) {
		// Act
		_, err := solver.Solve(context.Background(), equation.Bundle{Variables: 0})

		// Assert
		assert.NotNil(t, err)
	})
}

func TestSolveParallel(t *testing.T) {
	t.Run("Agrees with the serial solver", func(t *testing.T) {
		// Arrange
		bundles := []equation.Bundle{
			mustBundle(t, 3, "A+B=C"),
			mustBundle(t, 4, "A+B=C", "A*B=D"),
			mustBundle(t, 5, "A+B=C", "C+A=D"),
			mustBundle(t, 5),
			mustBundle(t, 6, "A*B=C", "C+A=E", "A+B=D"),
		}
		serial := NewSolver()

		for _, workers := range []int{1, 2, 8} {
			parallel := NewParallelSolver(workers)

			for _, bundle := range bundles {
				// Act
				expected, err := serial.Solve(context.Background(), bundle)
				assert.Nil(t, err)
				actual, err := parallel.Solve(context.Background(), bundle)
				assert.Nil(t, err)

				// Assert: identical solutions in identical order
				assert.Equal(t, expected, actual)
			}
		}
	})

	t.Run("Invalid bundle is an error", func(t *testing.T) {
		// Act
		_, err := NewParallelSolver(2).Solve(context.Background(), equation.Bundle{Variables: 30})

		// Assert
		assert.NotNil(t, err)
	})
}

func TestSolveCancellation(t *testing.T) {
	// Arrange
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bundle := mustBundle(t, 8, "A+B=C")

	for _, solver := range []Solver{NewSolver(), NewParallelSolver(4)} {
		// Act
		_, err := solver.Solve(ctx, bundle)

		// Assert
		assert.ErrorIs(t, err, context.Canceled)
	}
}
