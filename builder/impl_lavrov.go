// SPDX-License-Identifier: MIT
// Package: geco/builder
//
// impl_lavrov.go — Lavrov(k): two k-rings 0..k-1 and k..2k-1 with crossed
// rungs, a family with exponentially many chordless cycles.
//
// Emission order per i asc: (i, i+1), (i+k, i+1+k), (i, i+1+k), (i+k, i+1),
// indices mod k within each ring. 2k vertices, 4k edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/geco/core"
)

const (
	methodLavrov = "Lavrov"
	minLavrovK   = 3
)

// Lavrov returns a Constructor for the Lavrov graph of order k (k ≥ 3).
func Lavrov(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minLavrovK {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodLavrov, k, minLavrovK, ErrTooFewVertices)
		}
		ids, err := addVertices(methodLavrov, g, cfg, 2*k)
		if err != nil {
			return err
		}
		for i := 0; i < k; i++ {
			next := (i + 1) % k
			pairs := [4][2]int{{i, next}, {i + k, next + k}, {i, next + k}, {i + k, next}}
			for _, p := range pairs {
				if err = addEdge(methodLavrov, g, cfg, cfg.weightFn, ids[p[0]], ids[p[1]]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
