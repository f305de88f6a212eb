// SPDX-License-Identifier: MIT
// Package: geco/builder
//
// impl_torus.go - Torus(n, keepZero): the n×n toroidal grid of the BiqMac
// t2g families.
//
// Vertex (i,j) has index i·n+j. Emission order for i asc, j asc:
//  1. horizontal (i,j)–(i,j+1 mod n), weight drawn first
//  2. vertical   (j,i)–(j+1 mod n,i)
//
// n² vertices and 2n² edges; with keepZero=false an edge whose weight is 0
// is drawn but not added. n ≥ 3 keeps every edge distinct.

package builder

import (
	"fmt"

	"github.com/katalvlaran/geco/core"
)

const (
	methodTorus  = "Torus"
	minTorusSide = 3
)

// Torus returns a Constructor for the n×n torus.
func Torus(n int, keepZero bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minTorusSide {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodTorus, n, minTorusSide, ErrTooFewVertices)
		}
		ids, err := addVertices(methodTorus, g, cfg, n*n)
		if err != nil {
			return err
		}
		at := func(i, j int) string { return ids[i*n+j] }
		edge := func(u, v string) error {
			var w float64
			if g.Weighted() {
				w = cfg.weightFn(cfg.sampler)
				if w == 0 && !keepZero {
					return nil
				}
			}
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s,%s,w=%g): %v: %w", methodTorus, u, v, w, err, ErrConstructFailed)
			}
			return nil
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				next := (j + 1) % n
				if err = edge(at(i, j), at(i, next)); err != nil {
					return err
				}
				if err = edge(at(j, i), at(next, i)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
