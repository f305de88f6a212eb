// SPDX-License-Identifier: MIT
// Package: geco/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors PANIC on meaningless inputs (nil functions/samplers).
//   • Seeding is explicit via WithSeed or WithSampler.

package builder

import "github.com/katalvlaran/geco/sampler"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator: idx -> string. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithSampler shares an existing sampler with the constructors. The builder
// advances it; callers that reuse it afterwards see the consumed state.
// Panics on nil.
func WithSampler(s *sampler.Sampler) BuilderOption {
	if s == nil {
		panic("builder: WithSampler(nil)")
	}
	return func(c *builderConfig) { c.sampler = s }
}

// WithSeed attaches a fresh sampler seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.sampler = sampler.New(seed) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}
