package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewStream creates the private RNG for one worker. Streams for different ids
// under the same seed are independent PCG sequences.
func NewStream(seed int64, id int) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), uint64(id)+1))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// IntN returns a uniform int in [0, n). n must be positive.
func (r *RNG) IntN(n int) int { return r.r.IntN(n) }
