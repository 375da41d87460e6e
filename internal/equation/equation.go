package equation

import (
	"fmt"
)

// Operator of a triplet equation.
type Operator byte

const (
	OpAdd      Operator = '+'
	OpMultiply Operator = '*'
)

func (op Operator) Valid() bool {
	return op == OpAdd || op == OpMultiply
}

// Apply computes "a op b". Panics on an invalid operator since equations are
// validated before any arithmetic runs.
func (op Operator) Apply(a, b int) int {
	switch op {
	case OpAdd:
		return a + b
	case OpMultiply:
		return a * b
	}
	panic(fmt.Sprintf("unsupported operator: %q", byte(op)))
}

// Var returns the symbol of the i-th variable: 0 -> 'A', 1 -> 'B', ...
func Var(i int) byte {
	return byte('A' + i)
}

// Index returns the variable index of a symbol: 'A' -> 0, 'B' -> 1, ...
func Index(symbol byte) int {
	return int(symbol - 'A')
}

// Equation represents a triplet equation "X op Y = Z" over capital-letter
// variables.
type Equation struct {
	X, Y, Z byte
	Op      Operator
}

func (e Equation) String() string {
	return fmt.Sprintf("%c%c%c=%c", e.X, byte(e.Op), e.Y, e.Z)
}

// Holds reports whether the equation is arithmetically satisfied under the
// given symbol values. Symbols missing from values make the equation fail.
func (e Equation) Holds(values map[byte]int) bool {
	x, okX := values[e.X]
	y, okY := values[e.Y]
	z, okZ := values[e.Z]
	if !okX || !okY || !okZ {
		return false
	}
	return e.Op.Apply(x, y) == z
}

// Distinct reports whether the three variables of the triple are pairwise
// distinct.
func (e Equation) Distinct() bool {
	return e.X != e.Y && e.Y != e.Z && e.X != e.Z
}

// Equivalent reports whether two equations express the same relation. Both
// operators are commutative, so operand order on the left side is ignored.
func (e Equation) Equivalent(other Equation) bool {
	if e.Op != other.Op || e.Z != other.Z {
		return false
	}
	return (e.X == other.X && e.Y == other.Y) || (e.X == other.Y && e.Y == other.X)
}

// Validate checks that the operator is supported and that every symbol belongs
// to the universe of the first n letters.
func (e Equation) Validate(n int) error {
	if !e.Op.Valid() {
		return fmt.Errorf("unsupported operator %q in %v", byte(e.Op), e)
	}
	for _, symbol := range []byte{e.X, e.Y, e.Z} {
		if symbol < 'A' || symbol >= Var(n) {
			return fmt.Errorf("symbol %c of %v is outside the universe of %v variables", symbol, e, n)
		}
	}
	return nil
}
