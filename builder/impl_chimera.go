// SPDX-License-Identifier: MIT
// Package: geco/builder
//
// impl_chimera.go — Chimera(rows, cols, t, cell, coupler) and SelbyC(m).
//
// Topology: rows×cols unit cells, each a complete bipartite K_{t,t}. Vertex
// (r,c,k,side) has index ((r·cols+c)·t+k)·2+side and is inserted in index
// order. Side-1 vertices couple horizontally to the next cell in the row,
// side-0 vertices vertically to the next cell in the column.
//
// Emission order (weights drawn per edge, in this order):
//  1. cell edges: r, c, left k, right k asc — weights from cell
//  2. horizontal couplers: r, c < cols-1, k asc — weights from coupler
//  3. vertical couplers:   r < rows-1, c, k asc — weights from coupler
//
// Edge count: rows·cols·t² + t·(rows·(cols-1) + (rows-1)·cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/geco/core"
)

const (
	methodChimera = "Chimera"
	methodSelbyC  = "SelbyC"
	selbyCellSide = 4
)

// Chimera returns a Constructor for a chimera lattice. A nil cell or coupler
// falls back to the configured weight function.
func Chimera(rows, cols, t int, cell, coupler WeightFn) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < 1 || cols < 1 || t < 1 {
			return fmt.Errorf("%s: rows=%d cols=%d t=%d must be ≥ 1: %w", methodChimera, rows, cols, t, ErrTooFewVertices)
		}
		if g.Weighted() && cfg.sampler == nil && (cell != nil || coupler != nil) {
			return fmt.Errorf("%s: weighted couplers: %w", methodChimera, ErrNeedRandSource)
		}
		if cell == nil {
			cell = cfg.weightFn
		}
		if coupler == nil {
			coupler = cfg.weightFn
		}

		ids, err := addVertices(methodChimera, g, cfg, rows*cols*t*2)
		if err != nil {
			return err
		}
		at := func(r, c, k, side int) string { return ids[((r*cols+c)*t+k)*2+side] }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				for l := 0; l < t; l++ {
					for q := 0; q < t; q++ {
						if err = addEdge(methodChimera, g, cfg, cell, at(r, c, l, 0), at(r, c, q, 1)); err != nil {
							return err
						}
					}
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c+1 < cols; c++ {
				for k := 0; k < t; k++ {
					if err = addEdge(methodChimera, g, cfg, coupler, at(r, c, k, 1), at(r, c+1, k, 1)); err != nil {
						return err
					}
				}
			}
		}
		for r := 0; r+1 < rows; r++ {
			for c := 0; c < cols; c++ {
				for k := 0; k < t; k++ {
					if err = addEdge(methodChimera, g, cfg, coupler, at(r, c, k, 0), at(r+1, c, k, 0)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// SelbyC returns the Selby c_m instance topology: an m×m chimera with 4+4
// vertex cells, cell weights in {-1.0,-0.9,…,1.0} and coupler weights in
// {-0.5,…,0.5}. Use on a weighted graph with WithSeed. 8m² vertices,
// 24m²-8m edges.
func SelbyC(m int) Constructor {
	if m < 1 {
		return func(*core.Graph, builderConfig) error {
			return fmt.Errorf("%s: m=%d < 1: %w", methodSelbyC, m, ErrTooFewVertices)
		}
	}
	return Chimera(m, m, selbyCellSide, ScaledIntWeightFn(-10, 10, 10), ScaledIntWeightFn(-5, 5, 10))
}
