// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj.

package core

import "fmt"

// AddVertex inserts a vertex if missing. Adding an existing vertex is a no-op.
//
// Errors: ErrEmptyVertexID.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.position[id]; ok {
		return nil
	}
	g.position[id] = len(g.order)
	g.order = append(g.order, id)

	g.muEdgeAdj.Lock()
	g.adjacency[id] = make(map[string]int)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.position[id]

	return ok
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return append([]string(nil), g.order...)
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.order)
}

// Neighbors returns the IDs adjacent to id (successors in a directed graph),
// in vertex insertion order. A self-loop lists id itself once.
//
// Errors: ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.position[id]; !ok {
		return nil, fmt.Errorf("Neighbors(%s): %w", id, ErrVertexNotFound)
	}

	g.muEdgeAdj.RLock()
	out := make([]string, 0, len(g.adjacency[id]))
	for to := range g.adjacency[id] {
		out = append(out, to)
	}
	g.muEdgeAdj.RUnlock()
	sortByPosition(out, g.position)

	return out, nil
}

// Degree returns the number of edge endpoints at id (out-degree for directed
// graphs). A self-loop contributes 2 in undirected graphs and 1 otherwise.
//
// Errors: ErrVertexNotFound.
func (g *Graph) Degree(id string) (int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.position[id]; !ok {
		return 0, fmt.Errorf("Degree(%s): %w", id, ErrVertexNotFound)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	deg := len(g.adjacency[id])
	if _, loop := g.adjacency[id][id]; loop && !g.directed {
		deg++
	}

	return deg, nil
}
