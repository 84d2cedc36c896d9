package gamemath

import "math/rand"

// Rand is the random source used by every spawn, oscillation and dash roll.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded source. Sessions built from the same seed roll
// the same sequence.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandInt returns an integer in [lo, hi], both ends inclusive.
func RandInt(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Uniform returns a float in [lo, hi).
func Uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// RandSign returns -1 or 1 with equal probability.
func RandSign(r Rand) int {
	if r.Intn(2) == 0 {
		return -1
	}
	return 1
}
