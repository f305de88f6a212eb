// SPDX-License-Identifier: MIT
// Package: geco/sampler
//
// sample.go — draws over populations: samples without replacement and choices.

package sampler

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/geco"
)

const (
	methodSample         = "Sample"
	methodSampleFrom     = "SampleFrom"
	methodChoice         = "Choice"
	methodWeightedChoice = "WeightedChoice"
)

// Sample draws k distinct integers from 0..n-1 without replacement, in draw
// order. It performs exactly k Intn draws (partial Fisher–Yates).
//
// Errors: n < 0, k < 0 or k > n → geco.ErrInvalidParameter.
// Complexity: O(n) time and space for the index pool.
func (s *Sampler) Sample(n, k int) ([]int, error) {
	if n < 0 || k < 0 {
		return nil, fmt.Errorf("%s: n=%d, k=%d must be non-negative: %w",
			methodSample, n, k, geco.ErrInvalidParameter)
	}
	if k > n {
		return nil, fmt.Errorf("%s: k=%d exceeds population n=%d: %w",
			methodSample, k, n, geco.ErrInvalidParameter)
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}

	return s.partialShuffle(pool, k), nil
}

// SampleFrom draws k distinct elements of pop (by position) without
// replacement. pop is not modified.
//
// Errors: k < 0 or k > len(pop) → geco.ErrInvalidParameter.
func (s *Sampler) SampleFrom(pop []int, k int) ([]int, error) {
	if k < 0 || k > len(pop) {
		return nil, fmt.Errorf("%s: k=%d not in [0,%d]: %w",
			methodSampleFrom, k, len(pop), geco.ErrInvalidParameter)
	}
	pool := make([]int, len(pop))
	copy(pool, pop)

	return s.partialShuffle(pool, k), nil
}

// partialShuffle moves k uniformly chosen elements to the front of pool and
// returns a copy of that prefix.
func (s *Sampler) partialShuffle(pool []int, k int) []int {
	n := len(pool)
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	out := make([]int, k)
	copy(out, pool[:k])

	return out
}

// Choice returns one uniformly chosen element of pop.
//
// Errors: empty pop → geco.ErrInvalidParameter.
func (s *Sampler) Choice(pop []int) (int, error) {
	if len(pop) == 0 {
		return 0, fmt.Errorf("%s: empty population: %w", methodChoice, geco.ErrInvalidParameter)
	}

	return pop[s.rng.Intn(len(pop))], nil
}

// WeightedChoice returns an index i with probability w[i]/Σw using a single
// Float64 draw. Zero weights are never chosen.
//
// Errors: empty w, a negative or non-finite weight, or Σw == 0 →
// geco.ErrInvalidParameter.
// Complexity: O(len(w)) to build the cumulative table, O(log n) search.
func (s *Sampler) WeightedChoice(w []float64) (int, error) {
	if len(w) == 0 {
		return 0, fmt.Errorf("%s: no weights: %w", methodWeightedChoice, geco.ErrInvalidParameter)
	}
	cum := make([]float64, len(w))
	total := 0.0
	for i, x := range w {
		if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, fmt.Errorf("%s: weight[%d]=%g: %w",
				methodWeightedChoice, i, x, geco.ErrInvalidParameter)
		}
		total += x
		cum[i] = total
	}
	if total == 0 {
		return 0, fmt.Errorf("%s: weights sum to zero: %w", methodWeightedChoice, geco.ErrInvalidParameter)
	}

	u := s.rng.Float64() * total
	// first index whose cumulative weight strictly exceeds u
	idx := sort.Search(len(cum), func(i int) bool { return cum[i] > u })
	if idx == len(cum) { // u rounded up to total
		idx = len(cum) - 1
		for w[idx] == 0 {
			idx--
		}
	}

	return idx, nil
}
