// SPDX-License-Identifier: MIT
// Package: geco/builder
//
// impl_erdos_renyi.go - ErdosRenyi(n, p): the G(n,p) model.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - A sampler is required (else ErrNeedRandSource), even for p ∈ {0,1}, so
//     the draw count never depends on p.
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//
// Draw order:
//   - Undirected: for i asc, for j>i asc: one Float64; the edge {i,j} is kept
//     iff the draw is < p, then its weight is drawn (weighted graphs only).
//   - Directed: every ordered pair (i,j), i≠j unless loops are allowed.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geco/core"
)

const (
	methodErdosRenyi      = "ErdosRenyi"
	minErdosRenyiVertices = 1
	probMin               = 0.0
	probMax               = 1.0
)

// ErdosRenyi returns a Constructor that samples G(n,p).
// Complexity: O(n²) trials.
func ErdosRenyi(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minErdosRenyiVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodErdosRenyi, n, minErdosRenyiVertices, ErrTooFewVertices)
		}
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodErdosRenyi, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.sampler == nil {
			return fmt.Errorf("%s: %w", methodErdosRenyi, ErrNeedRandSource)
		}

		ids, err := addVertices(methodErdosRenyi, g, cfg, n)
		if err != nil {
			return err
		}

		s := cfg.sampler
		directed, loops := g.Directed(), g.Looped()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if s.Float64() >= p {
					continue
				}
				if err = addEdge(methodErdosRenyi, g, cfg, cfg.weightFn, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
