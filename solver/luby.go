package solver

import "math"

// luby returns y raised to the exponent of the x-th (0-based) term of the
// Luby restart sequence; with y=2 the terms are 1, 1, 2, 1, 1, 2, 4, 1, 1,
// 2, 1, 1, 2, 4, 8, ...
func luby(y float64, x int) float64 {
	size, seq := 1, 0
	for size < x+1 {
		seq++
		size = 2*size + 1
	}
	for size-1 != x {
		size = (size - 1) / 2
		seq--
		x = x % size
	}
	return math.Pow(y, float64(seq))
}
