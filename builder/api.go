// SPDX-License-Identifier: MIT
// Package: geco/builder
//
// api.go - the BuildGraph orchestrator and the Constructor type.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/geco/core"
)

const methodBuildGraph = "BuildGraph"

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// A failing constructor aborts the build and no graph is returned.
//
// Complexity: O(len(bopts)) plus the cost of every constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
		}
	}

	return g, nil
}

// addVertices inserts idFn(0..n-1) and returns the IDs.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %v: %w", method, ids[i], err, ErrConstructFailed)
		}
	}

	return ids, nil
}

// addEdge draws the weight (weighted graphs only) from fn and inserts u–v.
func addEdge(method string, g *core.Graph, cfg builderConfig, fn WeightFn, u, v string) error {
	var w float64
	if g.Weighted() {
		w = fn(cfg.sampler)
	}
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s,%s,w=%g): %v: %w", method, u, v, w, err, ErrConstructFailed)
	}

	return nil
}
