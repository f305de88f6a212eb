// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() returns edges in creation order; IDs are "e1", "e2", …
//
// Concurrency:
//   - Mutations under muEdgeAdj write lock, queries under read lock.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// edgeIDPrefix keeps IDs human-readable: "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates the edge from→to with the given weight, adding missing
// endpoints first. Undirected edges are reachable from both endpoints.
//
// Errors: ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed,
// ErrMultiEdgeNotAllowed (also for the reverse pair of an undirected edge).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || (!g.weighted && weight != 0) {
		return "", fmt.Errorf("AddEdge(%s,%s,w=%g): %w", from, to, weight, ErrBadWeight)
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("AddEdge(%s,%s): %w", from, to, ErrLoopNotAllowed)
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, dup := g.adjacency[from][to]; dup {
		return "", fmt.Errorf("AddEdge(%s,%s): %w", from, to, ErrMultiEdgeNotAllowed)
	}

	idx := len(g.edges)
	eid := nextEdgeID(idx + 1)
	g.edges = append(g.edges, Edge{ID: eid, From: from, To: to, Weight: weight})
	g.adjacency[from][to] = idx
	if !g.directed && from != to {
		g.adjacency[to][from] = idx
	}

	return eid, nil
}

func nextEdgeID(n int) string {
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	return string(strconv.AppendInt(buf, int64(n), 10))
}

// HasEdge reports whether from→to exists (either direction when undirected).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of from→to.
//
// Errors: ErrEdgeNotFound.
func (g *Graph) Weight(from, to string) (float64, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	idx, ok := g.adjacency[from][to]
	if !ok {
		return 0, fmt.Errorf("Weight(%s,%s): %w", from, to, ErrEdgeNotFound)
	}

	return g.edges[idx].Weight, nil
}

// Edges returns a copy of all edges in creation order.
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return append([]Edge(nil), g.edges...)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// sortByPosition orders ids by their insertion index.
func sortByPosition(ids []string, position map[string]int) {
	sort.Slice(ids, func(i, j int) bool { return position[ids[i]] < position[ids[j]] })
}
