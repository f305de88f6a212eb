// SPDX-License-Identifier: MIT
// Package: geco/generator

package generator

import (
	"fmt"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/sampler"
)

const methodExpand = "Expand"

// ExpandFunc grows core to size, drawing only the new part from s. It must
// leave core unchanged.
type ExpandFunc[P any] func(core P, size int, s *sampler.Sampler) (P, error)

// Backbone derives instances that share a fixed core parameter set.
type Backbone[P any] struct {
	core   P
	size   int
	expand ExpandFunc[P]
}

// NewBackbone wraps core, whose structural size is size. Panics if expand is
// nil or size is negative.
func NewBackbone[P any](core P, size int, expand ExpandFunc[P]) *Backbone[P] {
	if expand == nil {
		panic("generator: NewBackbone with nil ExpandFunc")
	}
	if size < 0 {
		panic("generator: NewBackbone with negative size")
	}
	return &Backbone[P]{core: core, size: size, expand: expand}
}

// Core returns the shared core.
func (b *Backbone[P]) Core() P { return b.core }

// Size returns the structural size of the core.
func (b *Backbone[P]) Size() int { return b.size }

// Expand returns the core grown to size with a fresh sampler seeded with
// seed. The result depends on (size, seed) only, never on earlier calls.
//
// Errors: size < Size() → geco.ErrInfeasibleConstruction; errors of the
// ExpandFunc are returned wrapped.
func (b *Backbone[P]) Expand(size int, seed int64) (P, error) {
	return b.expandWith(size, sampler.New(seed))
}

// Stream returns a Stream of expansions that share one sampler seeded with
// seed, so successive instances differ from each other.
func (b *Backbone[P]) Stream(size int, seed int64) *Stream[P] {
	return SeededStream(seed, func(s *sampler.Sampler) (P, error) {
		return b.expandWith(size, s)
	})
}

func (b *Backbone[P]) expandWith(size int, s *sampler.Sampler) (P, error) {
	var zero P
	if size < b.size {
		return zero, fmt.Errorf("%s: size %d < backbone size %d: %w",
			methodExpand, size, b.size, geco.ErrInfeasibleConstruction)
	}
	out, err := b.expand(b.core, size, s)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", methodExpand, err)
	}
	return out, nil
}
