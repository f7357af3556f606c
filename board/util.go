package board

import "golang.org/x/exp/constraints"

// absDiff returns |a-b| without going through a signed conversion.
func absDiff[T constraints.Integer](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
