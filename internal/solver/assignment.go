package solver

import "triplets/internal/equation"

// Assignment maps variable i (symbol 'A'+i) to values[i]. A valid assignment
// is a permutation of 1..len(values).
type Assignment []int

// Labels renders the assignment as a letter-to-value map, e.g.
// {"A": 2, "B": 1, "C": 3}.
func (a Assignment) Labels() map[string]int {
	labels := make(map[string]int, len(a))
	for i, value := range a {
		labels[string(equation.Var(i))] = value
	}
	return labels
}
