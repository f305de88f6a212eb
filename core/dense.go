// File: dense.go
// Role: Dense integer relabeling of a Graph for formulation builders.
//
// Determinism:
//   - Vertex i of the Dense view is the i-th vertex inserted into the Graph.
//   - Edges keep Graph creation order; undirected edges are stored with U ≤ V.
//
// Concurrency:
//   - Densify takes read locks on the source; the result is immutable.

package core

import "sort"

// DenseEdge is an edge between dense vertex indices.
type DenseEdge struct {
	U, V   int
	Weight float64
}

// Dense is an immutable view of a Graph with vertices relabeled 0..n-1.
type Dense struct {
	directed  bool
	ids       []string
	index     map[string]int
	edges     []DenseEdge
	adj       [][]int
	weights   map[[2]int]float64
	selfLoops int
}

// Densify snapshots g into a Dense view. Self-loops survive as (u,u) edges.
// Complexity: O(V + E log E).
func Densify(g *Graph) *Dense {
	ids := g.Vertices()
	edges := g.Edges()

	d := &Dense{
		directed: g.Directed(),
		ids:      ids,
		index:    make(map[string]int, len(ids)),
		edges:    make([]DenseEdge, 0, len(edges)),
		adj:      make([][]int, len(ids)),
		weights:  make(map[[2]int]float64, len(edges)),
	}
	for i, id := range ids {
		d.index[id] = i
	}
	for _, e := range edges {
		u, v := d.index[e.From], d.index[e.To]
		if !d.directed && u > v {
			u, v = v, u
		}
		d.edges = append(d.edges, DenseEdge{U: u, V: v, Weight: e.Weight})
		d.weights[[2]int{u, v}] = e.Weight
		d.adj[u] = append(d.adj[u], v)
		switch {
		case u == v:
			d.selfLoops++
		case !d.directed:
			d.adj[v] = append(d.adj[v], u)
		}
	}
	for _, nb := range d.adj {
		sort.Ints(nb)
	}

	return d
}

// N returns the vertex count.
func (d *Dense) N() int { return len(d.ids) }

// M returns the edge count, self-loops included.
func (d *Dense) M() int { return len(d.edges) }

// Directed reports the orientation of the source graph.
func (d *Dense) Directed() bool { return d.directed }

// SelfLoops returns the number of (u,u) edges.
func (d *Dense) SelfLoops() int { return d.selfLoops }

// ID returns the original label of vertex i.
func (d *Dense) ID(i int) string { return d.ids[i] }

// Index returns the dense index of a native vertex ID.
func (d *Dense) Index(id string) (int, bool) {
	i, ok := d.index[id]
	return i, ok
}

// Edges returns a copy of the edge list.
func (d *Dense) Edges() []DenseEdge { return append([]DenseEdge(nil), d.edges...) }

// Neighbors returns the sorted neighbor indices of u.
func (d *Dense) Neighbors(u int) []int { return append([]int(nil), d.adj[u]...) }

// Degree returns len(Neighbors(u)), counting a self-loop once.
func (d *Dense) Degree(u int) int { return len(d.adj[u]) }

// HasEdge reports whether u–v (u→v when directed) exists.
func (d *Dense) HasEdge(u, v int) bool {
	_, ok := d.weight(u, v)
	return ok
}

// Weight returns the weight of u–v and whether the edge exists.
func (d *Dense) Weight(u, v int) (float64, bool) { return d.weight(u, v) }

func (d *Dense) weight(u, v int) (float64, bool) {
	if !d.directed && u > v {
		u, v = v, u
	}
	w, ok := d.weights[[2]int{u, v}]
	return w, ok
}
