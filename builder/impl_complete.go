// SPDX-License-Identifier: MIT
// Package: geco/builder
//
// impl_complete.go — Complete(n): the complete simple graph K_n.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with i<j once, lexicographically; directed
//     graphs also receive j→i right after i→j.
//   • Weights (weighted graphs) are drawn per emitted edge in that order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/geco/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n.
// Complexity: O(n²) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(methodComplete, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(methodComplete, g, cfg, cfg.weightFn, ids[i], ids[j]); err != nil {
					return err
				}
				if g.Directed() {
					if err = addEdge(methodComplete, g, cfg, cfg.weightFn, ids[j], ids[i]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
