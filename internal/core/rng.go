package core

import "math/rand/v2"

// Rand is the random source consumed by simulation rules. Implementations must
// be deterministic for a given seed so steps can be replayed in tests.
type Rand interface {
	// Bool picks true or false with equal probability.
	Bool() bool
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntRange returns a uniform integer in [lo, hi]. It returns lo when hi <= lo.
	IntRange(lo, hi int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed restarts the sequence as if the RNG had been created with seed.
func (r *RNG) Seed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Float64 returns a random value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// IntRange returns a random integer in the closed range [lo, hi].
func (r *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo+1)
}
