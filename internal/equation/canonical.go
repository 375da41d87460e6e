package equation

import (
	"slices"
)

// Solved pairs a bundle's equations (compact strings) with a letter-to-value
// labeling that satisfies them.
type Solved struct {
	Equations []string
	Labels    map[string]int
}

// Canonicalize relabels a solved bundle so that letters sort by their values
// (the letter holding 1 becomes A, the letter holding 2 becomes B, ...),
// orders commutative operands lexicographically and sorts the equation list.
// Two bundles that are the same puzzle up to letter naming canonicalize to the
// same Solved.
func Canonicalize(equations []Equation, labels map[string]int) Solved {
	letters := make([]byte, 0, len(labels))
	for letter := range labels {
		letters = append(letters, letter[0])
	}
	slices.SortFunc(letters, func(a, b byte) int {
		return labels[string(a)] - labels[string(b)]
	})

	relabel := make(map[byte]byte, len(letters))
	for rank, letter := range letters {
		relabel[letter] = Var(rank)
	}

	canonical := make([]string, 0, len(equations))
	for _, eq := range equations {
		renamed := Equation{
			X:  relabel[eq.X],
			Y:  relabel[eq.Y],
			Z:  relabel[eq.Z],
			Op: eq.Op,
		}
		// Both operators are commutative
		if renamed.X > renamed.Y {
			renamed.X, renamed.Y = renamed.Y, renamed.X
		}
		canonical = append(canonical, renamed.String())
	}
	slices.Sort(canonical)

	newLabels := make(map[string]int, len(letters))
	for rank := range letters {
		newLabels[string(Var(rank))] = rank + 1
	}

	return Solved{Equations: canonical, Labels: newLabels}
}
