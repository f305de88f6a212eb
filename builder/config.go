// SPDX-License-Identifier: MIT
// Package: geco/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn          ("0","1","2",...)
//   • sampler  = nil                  (stochastic constructors fail with ErrNeedRandSource)
//   • weightFn = DefaultWeightFn      (constant DefaultEdgeWeight)

package builder

import "github.com/katalvlaran/geco/sampler"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn     IDFn
	sampler  *sampler.Sampler
	weightFn WeightFn
}

// newBuilderConfig applies options in order; later options override earlier.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
