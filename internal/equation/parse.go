package equation

import (
	"fmt"
	"regexp"
)

var equationPattern = regexp.MustCompile(`^\s*([A-Z])\s*([+*])\s*([A-Z])\s*=\s*([A-Z])\s*$`)

// Parse reads an equation like "A+B=C" or "A * B = C" (whitespace flexible).
func Parse(raw string) (Equation, error) {
	match := equationPattern.FindStringSubmatch(raw)
	if match == nil {
		return Equation{}, fmt.Errorf("invalid equation %q: expected \"X op Y = Z\" with capital letters and op in {+, *}", raw)
	}
	return Equation{
		X:  match[1][0],
		Op: Operator(match[2][0]),
		Y:  match[3][0],
		Z:  match[4][0],
	}, nil
}

// ParseAll parses a list of equation strings, failing on the first invalid one.
func ParseAll(raws []string) ([]Equation, error) {
	equations := make([]Equation, 0, len(raws))
	for _, raw := range raws {
		eq, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		equations = append(equations, eq)
	}
	return equations, nil
}
