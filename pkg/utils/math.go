// pkg/utils/math.go
package utils

// FloorDiv divides rounding toward negative infinity, so world tiles left of
// and above the origin are numbered -1, -2, ... instead of collapsing onto 0.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// TileSeed hashes integer tile coordinates into a PRNG seed. Each coordinate
// goes through its own splitmix64 round, so no two tiles near the origin share
// a seed the way an xor of the raw products would.
func TileSeed(x, y int) int64 {
	z := splitmix(uint64(int64(x)))
	z = splitmix(z ^ uint64(int64(y)))
	return int64(z)
}

// splitmix is the splitmix64 step: golden-ratio increment, then finaliser.
func splitmix(z uint64) uint64 {
	z += 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
