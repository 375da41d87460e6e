package equation

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestCanonicalize(t *testing.T) {
	t.Run("Relabels by value and sorts", func(t *testing.T) {
		// Arrange: C=1, A=2, B=3 satisfies both equations
		g := NewWithT(t)
		equations, err := ParseAll([]string{"C+A=B", "A*C=A"})
		g.Expect(err).ToNot(HaveOccurred())
		labels := map[string]int{"A": 2, "B": 3, "C": 1}

		// Act: C takes rank A, A takes rank B, B takes rank C
		solved := Canonicalize(equations, labels)

		// Assert: '*' sorts before '+'
		g.Expect(solved.Equations).To(Equal([]string{"A*B=B", "A+B=C"}))
		g.Expect(solved.Labels).To(Equal(map[string]int{"A": 1, "B": 2, "C": 3}))
	})

	t.Run("Isomorphic bundles collide", func(t *testing.T) {
		// Arrange
		g := NewWithT(t)
		first, err := ParseAll([]string{"A+B=C"})
		g.Expect(err).ToNot(HaveOccurred())
		second, err := ParseAll([]string{"B+A=C"})
		g.Expect(err).ToNot(HaveOccurred())

		// Act
		solvedFirst := Canonicalize(first, map[string]int{"A": 1, "B": 2, "C": 3})
		solvedSecond := Canonicalize(second, map[string]int{"A": 2, "B": 1, "C": 3})

		// Assert
		g.Expect(solvedFirst).To(Equal(solvedSecond))
	})

	t.Run("Already canonical bundle is unchanged", func(t *testing.T) {
		// Arrange
		g := NewWithT(t)
		equations, err := ParseAll([]string{"A+B=C"})
		g.Expect(err).ToNot(HaveOccurred())
		labels := map[string]int{"A": 1, "B": 2, "C": 3}

		// Act
		solved := Canonicalize(equations, labels)

		// Assert
		g.Expect(solved.Equations).To(Equal([]string{"A+B=C"}))
		g.Expect(solved.Labels).To(Equal(labels))
	})
}
