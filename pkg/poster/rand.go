package poster

import "math/rand/v2"

// Source is the single random stream a poster is drawn from. Every random
// decision during generation goes through one Source, so a seed fully
// determines the output.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewSource returns a PCG-backed Source for seed.
func NewSource(seed int64) Source {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0xdeadbeef))
}

// Uniform draws from [lo, hi). Reversed bounds are not swapped: the result
// then lies in (hi, lo].
func Uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}
