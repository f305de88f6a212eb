// SPDX-License-Identifier: MIT
// Package: geco/builder
//
// impl_gnm.go - GNM(n, m): m distinct edges chosen uniformly at random.
//
// Contract:
//   - n ≥ 1, m ≥ 0 (else ErrTooFewVertices).
//   - m ≤ n(n-1)/2 undirected, m ≤ n(n-1) directed (else ErrTooManyEdges);
//     m is never clamped.
//   - A sampler is required (else ErrNeedRandSource).
//
// Draw order:
//   - Repeat until m edges exist: u = Intn(n), v = Intn(n); reject u == v or
//     an existing edge; otherwise add u–v and draw its weight.

package builder

import (
	"fmt"

	"github.com/katalvlaran/geco/core"
)

const (
	methodGNM      = "GNM"
	minGNMVertices = 1
)

// GNM returns a Constructor for the G(n,m) model.
// Complexity: expected O(m) draws for sparse graphs, O(m log m) near completeness.
func GNM(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minGNMVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodGNM, n, minGNMVertices, ErrTooFewVertices)
		}
		if m < 0 {
			return fmt.Errorf("%s: m=%d < 0: %w", methodGNM, m, ErrTooFewVertices)
		}
		maxEdges := n * (n - 1)
		if !g.Directed() {
			maxEdges /= 2
		}
		if m > maxEdges {
			return fmt.Errorf("%s: m=%d > %d pairs of %d vertices: %w", methodGNM, m, maxEdges, n, ErrTooManyEdges)
		}
		if cfg.sampler == nil {
			return fmt.Errorf("%s: %w", methodGNM, ErrNeedRandSource)
		}

		ids, err := addVertices(methodGNM, g, cfg, n)
		if err != nil {
			return err
		}

		return randomEdges(methodGNM, g, cfg, ids, m, true)
	}
}

// randomEdges picks m distinct pairs of ids by rejection and draws the weight
// of each accepted pair right after it. With keepZero false a zero-weight
// pair still counts toward m and is never picked again, but no edge is added.
func randomEdges(method string, g *core.Graph, cfg builderConfig, ids []string, m int, keepZero bool) error {
	n := len(ids)
	s := cfg.sampler
	dropped := make(map[[2]int]struct{})
	pair := func(u, v int) [2]int {
		if !g.Directed() && u > v {
			u, v = v, u
		}
		return [2]int{u, v}
	}
	for placed := 0; placed < m; {
		u, v := s.Intn(n), s.Intn(n)
		if u == v || g.HasEdge(ids[u], ids[v]) {
			continue
		}
		if _, gone := dropped[pair(u, v)]; gone {
			continue
		}
		placed++
		var w float64
		if g.Weighted() {
			w = cfg.weightFn(s)
			if w == 0 && !keepZero {
				dropped[pair(u, v)] = struct{}{}
				continue
			}
		}
		if _, err := g.AddEdge(ids[u], ids[v], w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s,%s,w=%g): %v: %w", method, ids[u], ids[v], w, err, ErrConstructFailed)
		}
	}

	return nil
}
