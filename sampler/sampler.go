// SPDX-License-Identifier: MIT
// Package: geco/sampler
//
// sampler.go — the Sampler type and its scalar draws.

package sampler

import (
	"math/rand"
)

// Sampler is a seeded source of primitive draws.
// The zero value is not usable; construct with New or FromRand.
type Sampler struct {
	rng  *rand.Rand
	seed int64
}

// New returns a Sampler whose draw sequence is fully determined by seed.
// Complexity: O(1) amortized (source initialization is fixed cost).
func New(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// FromRand adopts an already-initialized *rand.Rand. The caller gives up
// ownership: drawing from r elsewhere breaks reproducibility.
// Panics on nil to surface programmer error early.
func FromRand(r *rand.Rand) *Sampler {
	if r == nil {
		panic("sampler: FromRand(nil)")
	}
	return &Sampler{rng: r}
}

// Seed reports the seed given to New (0 for FromRand samplers).
func (s *Sampler) Seed() int64 { return s.seed }

// Rand exposes the underlying source for adapters that need math/rand APIs.
// Draws made through it count toward the Sampler's sequence.
func (s *Sampler) Rand() *rand.Rand { return s.rng }

// Float64 returns a uniform value in [0,1).
func (s *Sampler) Float64() float64 { return s.rng.Float64() }

// Uniform returns a + (b-a)*Float64(). As with Python's random.uniform the
// bounds may be given in either order; a == b yields a after one draw.
func (s *Sampler) Uniform(a, b float64) float64 {
	return a + (b-a)*s.rng.Float64()
}

// Normal returns mu + sigma·NormFloat64().
func (s *Sampler) Normal(mu, sigma float64) float64 {
	return mu + sigma*s.rng.NormFloat64()
}

// Int returns a uniform integer in the closed range [a,b] using one draw.
// Panics if b < a, matching rand.Intn on a non-positive argument; generators
// validate their ranges before drawing.
func (s *Sampler) Int(a, b int) int {
	if b < a {
		panic("sampler: Int with empty range")
	}
	return a + s.rng.Intn(b-a+1)
}

// Intn returns a uniform integer in [0,n). Panics if n <= 0.
func (s *Sampler) Intn(n int) int { return s.rng.Intn(n) }

// Int63 returns a non-negative 63-bit integer.
func (s *Sampler) Int63() int64 { return s.rng.Int63() }

// Bernoulli reports whether one Float64 draw falls below p.
func (s *Sampler) Bernoulli(p float64) bool { return s.rng.Float64() < p }

// Perm returns a pseudo-random permutation of 0..n-1.
func (s *Sampler) Perm(n int) []int { return s.rng.Perm(n) }

// Shuffle permutes n elements in place through swap.
func (s *Sampler) Shuffle(n int, swap func(i, j int)) { s.rng.Shuffle(n, swap) }

// Split consumes one Int63 draw and returns an independent child Sampler
// seeded with it. The parent's subsequent sequence does not depend on how
// the child is used.
func (s *Sampler) Split() *Sampler {
	return New(s.rng.Int63())
}
