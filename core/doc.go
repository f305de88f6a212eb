// Package core provides the small, thread-safe Graph that feeds the
// graph-based formulation builders (independent set, max-cut, coloring).
//
// The Graph G = (V,E) supports:
//
//   - Undirected (default) or directed edges (WithDirected)
//   - Weighted edges (WithWeighted); every edge carries exactly one float64
//     weight fixed at creation. Unweighted graphs reject non-zero weights.
//   - Self-loops (WithLoops)
//   - No parallel edges: a second AddEdge(u,v) → ErrMultiEdgeNotAllowed
//
// Vertices are arbitrary non-empty string IDs and keep insertion order.
// Edges keep insertion order as well, so two graphs built by the same
// sequence of calls enumerate identically.
//
// Dense view:
//
//	d := core.Densify(g)   // relabel to 0..n-1 in vertex insertion order
//	d.N(), d.M()           // counts
//	d.Edges()              // []DenseEdge; undirected edges have U ≤ V
//	d.Neighbors(u)         // sorted ascending; a loop lists u itself
//
// Builders work on Dense only, so variable names depend on the position of a
// vertex, never on its native label.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – non-zero or NaN weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge
package core
