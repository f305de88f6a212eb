// SPDX-License-Identifier: MIT
// Package: geco/builder
//
// impl_barabasi_albert.go - BarabasiAlbert(n, m): preferential attachment.
//
// Model (Barabási & Albert, 1999):
//   - Vertices 0..m-1 start isolated; the first targets are exactly 0..m-1.
//   - Each new vertex s = m..n-1 links to the current m targets, then the
//     pool of repeated endpoints grows by the targets and m copies of s, and
//     the next targets are m distinct pool entries.
//
// Contract:
//   - 1 ≤ m < n (else ErrTooFewVertices); undirected graphs only
//     (else ErrConstructFailed); a sampler is required.
//   - Edge count is exactly (n-m)·m.
//
// Draw order:
//   - Per new vertex after the first: repeated Intn(len(pool)) draws until m
//     distinct targets are collected; targets keep draw order. Edge weights are
//     drawn as each edge is added.

package builder

import (
	"fmt"

	"github.com/katalvlaran/geco/core"
)

const methodBarabasiAlbert = "BarabasiAlbert"

// BarabasiAlbert returns a Constructor for a preferential-attachment graph.
// Complexity: O(n·m) edges plus expected O(n·m) rejection draws.
func BarabasiAlbert(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if m < 1 || m >= n {
			return fmt.Errorf("%s: need 1 ≤ m < n, got n=%d m=%d: %w", methodBarabasiAlbert, n, m, ErrTooFewVertices)
		}
		if g.Directed() {
			return fmt.Errorf("%s: directed graph: %w", methodBarabasiAlbert, ErrConstructFailed)
		}
		if cfg.sampler == nil {
			return fmt.Errorf("%s: %w", methodBarabasiAlbert, ErrNeedRandSource)
		}

		ids, err := addVertices(methodBarabasiAlbert, g, cfg, n)
		if err != nil {
			return err
		}

		s := cfg.sampler
		targets := make([]int, m)
		for i := range targets {
			targets[i] = i
		}
		pool := make([]int, 0, 2*(n-m)*m)
		for src := m; src < n; src++ {
			for _, t := range targets {
				if err = addEdge(methodBarabasiAlbert, g, cfg, cfg.weightFn, ids[src], ids[t]); err != nil {
					return err
				}
			}
			pool = append(pool, targets...)
			for k := 0; k < m; k++ {
				pool = append(pool, src)
			}
			if src+1 < n {
				targets = randomSubset(pool, m, s.Intn)
			}
		}

		return nil
	}
}

// randomSubset draws pool entries until k distinct values are collected.
func randomSubset(pool []int, k int, intn func(int) int) []int {
	seen := make(map[int]struct{}, k)
	out := make([]int, 0, k)
	for len(out) < k {
		x := pool[intn(len(pool))]
		if _, dup := seen[x]; dup {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}

	return out
}
