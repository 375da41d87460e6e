package generator

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"triplets/internal/equation"
)

func strings(equations []equation.Equation) []string {
	return lo.Map(equations, func(eq equation.Equation, _ int) string { return eq.String() })
}

func TestAll(t *testing.T) {
	t.Run("Counts", func(t *testing.T) {
		// Arrange
		scenarios := []struct {
			variables int
			count     int
		}{
			{1, 2},
			{2, 16},
			{3, 54},
			{4, 128},
		}

		for _, scenario := range scenarios {
			// Act
			equations := All(scenario.variables)

			// Assert: 2 * n^3
			assert.Len(t, equations, scenario.count)
		}
	})

	t.Run("Smallest universe", func(t *testing.T) {
		// Act
		equations := All(1)

		// Assert
		assert.Equal(t, []string{"A+A=A", "A*A=A"}, strings(equations))
	})

	t.Run("Out of range yields nil", func(t *testing.T) {
		// Act & Assert
		assert.Nil(t, All(0))
		assert.Nil(t, All(27))
	})
}

func TestDistinct(t *testing.T) {
	// Act
	equations := Distinct(3)

	// Assert: 2 * 3 * 2 * 1 ordered triples, all pairwise distinct
	assert.Len(t, equations, 12)
	for _, eq := range equations {
		assert.True(t, eq.Distinct(), "equation %v", eq)
	}
}

func TestRepresentative(t *testing.T) {
	t.Run("Small universes", func(t *testing.T) {
		// Act & Assert
		assert.Equal(t, []string{"A+A=A", "A*A=A"}, strings(Representative(1)))
		assert.Len(t, Representative(2), 6)
	})

	t.Run("Eight forms per 3-subset", func(t *testing.T) {
		// Act & Assert: C(n, 3) * 8
		assert.Len(t, Representative(3), 8)
		assert.Len(t, Representative(4), 32)
		assert.Len(t, Representative(5), 80)
	})

	t.Run("Forms of the first subset", func(t *testing.T) {
		// Act
		equations := strings(Representative(3))

		// Assert
		assert.Equal(t, []string{
			"A+A=A", "A*A=A",
			"A+A=B", "A*A=B",
			"A+B=A", "A*B=A",
			"A+B=C", "A*B=C",
		}, equations)
	})
}

func TestBundles(t *testing.T) {
	t.Run("Enumerates combinations", func(t *testing.T) {
		// Arrange
		equations := Distinct(3)[:4]

		// Act
		bundles := make([][]string, 0)
		err := Bundles(equations, 2, func(bundle []equation.Equation) error {
			bundles = append(bundles, strings(bundle))
			return nil
		})

		// Assert: C(4, 2)
		assert.Nil(t, err)
		assert.Len(t, bundles, 6)
		assert.Equal(t, BundleCount(4, 2), len(bundles))
	})

	t.Run("Yield errors abort the enumeration", func(t *testing.T) {
		// Arrange
		equations := All(2)
		calls := 0

		// Act
		err := Bundles(equations, 2, func(bundle []equation.Equation) error {
			calls++
			return assert.AnError
		})

		// Assert
		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 1, calls)
	})

	t.Run("Invalid size is an error", func(t *testing.T) {
		// Act & Assert
		assert.NotNil(t, Bundles(All(2), -1, nil))
		assert.NotNil(t, Bundles(All(2), 17, nil))
	})
}

func TestBundleCount(t *testing.T) {
	// Act & Assert
	assert.Equal(t, 1, BundleCount(5, 0))
	assert.Equal(t, 5, BundleCount(5, 1))
	assert.Equal(t, 10, BundleCount(5, 2))
	assert.Equal(t, 1431, BundleCount(54, 2))
	assert.Equal(t, 0, BundleCount(5, 6))
}
