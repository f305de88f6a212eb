// SPDX-License-Identifier: MIT
// Package: geco/builder
//
// impl_density.go - Density(n, d, keepZero): G(n,m) with m = ⌊d·n(n-1)/2⌋,
// the base of the BiqMac pm1s/pm1d/w/pw families.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); 0 ≤ d ≤ 1 (else ErrInvalidProbability).
//   - Undirected graphs only; m counts unordered pairs.
//   - A sampler is required (else ErrNeedRandSource).
//   - keepZero=false discards edges whose drawn weight is 0 after their pair
//     was chosen, so the final density may fall below d.
//
// Draw order: identical to GNM(n, m).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geco/core"
)

const (
	methodDensity      = "Density"
	minDensityVertices = 2
)

// Density returns a Constructor for the fixed-density random graph.
func Density(n int, d float64, keepZero bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minDensityVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodDensity, n, minDensityVertices, ErrTooFewVertices)
		}
		if math.IsNaN(d) || d < 0 || d > 1 {
			return fmt.Errorf("%s: d=%g: %w", methodDensity, d, ErrInvalidProbability)
		}
		if g.Directed() {
			return fmt.Errorf("%s: directed graph: %w", methodDensity, ErrConstructFailed)
		}
		if cfg.sampler == nil {
			return fmt.Errorf("%s: %w", methodDensity, ErrNeedRandSource)
		}
		ids, err := addVertices(methodDensity, g, cfg, n)
		if err != nil {
			return err
		}

		return randomEdges(methodDensity, g, cfg, ids, DensityEdges(n, d), keepZero)
	}
}

// DensityEdges returns ⌊d·n(n-1)/2⌋, the pair count Density draws.
func DensityEdges(n int, d float64) int {
	return int(d * float64(n*(n-1)) / 2)
}
