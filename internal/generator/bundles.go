package generator

import (
	"fmt"

	"triplets/internal/equation"
)

// Bundles streams every size-element combination of the equation list to
// yield, in lexicographic order of equation indices. The slice passed to
// yield is reused between calls; callers that retain it must copy. A non-nil
// error from yield aborts the enumeration and is returned as-is.
func Bundles(equations []equation.Equation, size int, yield func(bundle []equation.Equation) error) error {
	if size < 0 || size > len(equations) {
		return fmt.Errorf("bundle size must be between 0 and %v: got %v", len(equations), size)
	}

	bundle := make([]equation.Equation, size)
	return combine(equations, bundle, 0, 0, yield)
}

func combine(
	equations []equation.Equation,
	bundle []equation.Equation,
	currentSlot int,
	nextIndex int,
	yield func(bundle []equation.Equation) error) error {

	if currentSlot >= len(bundle) {
		return yield(bundle)
	}

	for i := nextIndex; i <= len(equations)-(len(bundle)-currentSlot); i++ {
		bundle[currentSlot] = equations[i]
		if err := combine(equations, bundle, currentSlot+1, i+1, yield); err != nil {
			return err
		}
	}
	return nil
}

// BundleCount returns the number of size-element combinations, C(len, size).
func BundleCount(total, size int) int {
	if size < 0 || size > total {
		return 0
	}
	if size > total-size {
		size = total - size
	}
	count := 1
	for i := 1; i <= size; i++ {
		count = count * (total - size + i) / i
	}
	return count
}
