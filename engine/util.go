package engine

import "golang.org/x/exp/constraints"

func clamp[T constraints.Integer](v, low, high T) T {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
