// SPDX-License-Identifier: MIT
// Package: geco/coloring

package coloring

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/core"
	"github.com/katalvlaran/geco/model"
)

const (
	methodAssignment      = "Assignment"
	methodRepresentatives = "Representatives"
	methodSetCovering     = "SetCovering"
	methodPartialOrdering = "PartialOrdering"
	methodHybrid          = "HybridPartialOrdering"
)

func dense(method string, g *core.Graph) (*core.Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", method, geco.ErrInvalidParameter)
	}
	if g.Directed() {
		return nil, fmt.Errorf("%s: directed graph: %w", method, geco.ErrInvalidParameter)
	}
	d := core.Densify(g)
	if d.SelfLoops() > 0 {
		return nil, fmt.Errorf("%s: %d self-loops: %w", method, d.SelfLoops(), geco.ErrInvalidParameter)
	}
	return d, nil
}

func checkColors(method string, k int) error {
	if k < 1 {
		return fmt.Errorf("%s: color bound %d < 1: %w", method, k, geco.ErrInvalidParameter)
	}
	return nil
}

func varName(prefix string, idx ...int) string {
	b := []byte(prefix)
	for _, i := range idx {
		b = append(b, '_')
		b = strconv.AppendInt(b, int64(i), 10)
	}
	return string(b)
}

// builder accumulates a model and keeps the first error.
type builder struct {
	method string
	m      *model.Model
	err    error
}

func newBuilder(method, name string) *builder {
	return &builder{method: method, m: model.New(name)}
}

func (b *builder) binary(name string, obj float64) model.Var {
	if b.err != nil {
		return model.Var{}
	}
	v, err := b.m.AddBinary(name, obj)
	if err != nil {
		b.err = err
	}
	return v
}

func (b *builder) row(name string, e *model.LinExpr, rel model.Relation, rhs float64) {
	if b.err != nil {
		return
	}
	b.err = b.m.AddConstraint(name, e, rel, rhs)
}

func (b *builder) done() (*model.Model, error) {
	if b.err == nil {
		b.err = b.m.SetSense(model.Minimize)
	}
	if b.err != nil {
		return nil, fmt.Errorf("%s: %w", b.method, b.err)
	}
	return b.m, nil
}

// Assignment returns the assignment model with k colors:
//
//	x_v_c, w_c        binaries; objective Σ w_c
//	assign_v          Σ_c x_vc = 1
//	edge_e_c          x_uc + x_vc - w_c ≤ 0
//	link_v_c          x_vc - w_c ≤ 0
func Assignment(g *core.Graph, k int) (*model.Model, error) {
	b, _, _, err := assignment(methodAssignment, g, k, "Assignment Graph Coloring")
	if err != nil {
		return nil, err
	}
	return b.done()
}

// AssignmentAsymmetric adds to Assignment
//
//	used_c   w_c - Σ_v x_vc ≤ 0
//	order_c  w_c - w_{c-1} ≤ 0,  c ≥ 1
//
// so that open colors are used and opened in order.
func AssignmentAsymmetric(g *core.Graph, k int) (*model.Model, error) {
	b, x, w, err := assignment(methodAssignment, g, k, "Assignment Extended Graph Coloring")
	if err != nil {
		return nil, err
	}
	for c := 0; c < k; c++ {
		e := model.NewExpr().Add(w[c], 1)
		for v := range x {
			e.Add(x[v][c], -1)
		}
		b.row(varName("used", c), e, model.LE, 0)
	}
	for c := 1; c < k; c++ {
		b.row(varName("order", c), model.NewExpr().Add(w[c], 1).Add(w[c-1], -1), model.LE, 0)
	}
	return b.done()
}

func assignment(method string, g *core.Graph, k int, name string) (*builder, [][]model.Var, []model.Var, error) {
	d, err := dense(method, g)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := checkColors(method, k); err != nil {
		return nil, nil, nil, err
	}
	n := d.N()

	b := newBuilder(method, name)
	x := make([][]model.Var, n)
	for v := 0; v < n; v++ {
		x[v] = make([]model.Var, k)
		for c := 0; c < k; c++ {
			x[v][c] = b.binary(varName("x", v, c), 0)
		}
	}
	w := make([]model.Var, k)
	for c := range w {
		w[c] = b.binary(varName("w", c), 1)
	}

	for v := 0; v < n; v++ {
		b.row(varName("assign", v), model.Sum(x[v]...), model.EQ, 1)
	}
	for i, e := range d.Edges() {
		for c := 0; c < k; c++ {
			b.row(varName("edge", i, c), model.NewExpr().Add(x[e.U][c], 1).Add(x[e.V][c], 1).Add(w[c], -1), model.LE, 0)
		}
	}
	for v := 0; v < n; v++ {
		for c := 0; c < k; c++ {
			b.row(varName("link", v, c), model.NewExpr().Add(x[v][c], 1).Add(w[c], -1), model.LE, 0)
		}
	}
	return b, x, w, nil
}

// Representatives returns the representatives model of Campêlo, Campos and
// Corrêa (2008). For u = v or u, v non-adjacent, x_u_v says that u represents
// the color class of v; x_u_u opens a class with objective 1.
//
//	cover_v        Σ_{u ∈ N̄[v]} x_uv ≥ 1
//	edge_u_e       x_uv + x_uw - x_uu ≤ 0   for edges v–w inside N̄(u)
//	link_u_v       x_uv - x_uu ≤ 0          for v ∈ N̄(u)
//
// where N̄(u) are the vertices other than u not adjacent to it.
func Representatives(g *core.Graph) (*model.Model, error) {
	d, err := dense(methodRepresentatives, g)
	if err != nil {
		return nil, err
	}
	n := d.N()
	anti := func(u, v int) bool { return u != v && !d.HasEdge(u, v) }

	b := newBuilder(methodRepresentatives, "Representatives Graph Coloring")
	x := make([]map[int]model.Var, n)
	for u := 0; u < n; u++ {
		x[u] = make(map[int]model.Var)
		for v := 0; v < n; v++ {
			switch {
			case u == v:
				x[u][v] = b.binary(varName("x", u, v), 1)
			case anti(u, v):
				x[u][v] = b.binary(varName("x", u, v), 0)
			}
		}
	}

	for v := 0; v < n; v++ {
		e := model.NewExpr()
		for u := 0; u < n; u++ {
			if xv, ok := x[u][v]; ok {
				e.Add(xv, 1)
			}
		}
		b.row(varName("cover", v), e, model.GE, 1)
	}
	edges := d.Edges()
	for u := 0; u < n; u++ {
		for i, e := range edges {
			if anti(u, e.U) && anti(u, e.V) {
				b.row(varName("edge", u, i), model.NewExpr().Add(x[u][e.U], 1).Add(x[u][e.V], 1).Add(x[u][u], -1), model.LE, 0)
			}
		}
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if anti(u, v) {
				b.row(varName("link", u, v), model.NewExpr().Add(x[u][v], 1).Add(x[u][u], -1), model.LE, 0)
			}
		}
	}
	return b.done()
}

// SetCovering returns the set covering model: one binary s_i with objective
// 1 per subset and one row per vertex requiring it to be covered. Every
// subset must be an independent set of g.
//
// Errors: an empty, out-of-range or non-independent subset →
// geco.ErrInvalidParameter; a vertex no subset covers →
// geco.ErrInfeasibleConstruction.
func SetCovering(g *core.Graph, subsets [][]int) (*model.Model, error) {
	d, err := dense(methodSetCovering, g)
	if err != nil {
		return nil, err
	}
	n := d.N()
	covers := make([][]int, n)
	for i, s := range subsets {
		if len(s) == 0 {
			return nil, fmt.Errorf("%s: subset %d is empty: %w", methodSetCovering, i, geco.ErrInvalidParameter)
		}
		for a, u := range s {
			if u < 0 || u >= n {
				return nil, fmt.Errorf("%s: subset %d: vertex %d out of range: %w", methodSetCovering, i, u, geco.ErrInvalidParameter)
			}
			for _, v := range s[a+1:] {
				if u == v || d.HasEdge(u, v) {
					return nil, fmt.Errorf("%s: subset %d: %d and %d conflict: %w", methodSetCovering, i, u, v, geco.ErrInvalidParameter)
				}
			}
			covers[u] = append(covers[u], i)
		}
	}
	for v, c := range covers {
		if len(c) == 0 {
			return nil, fmt.Errorf("%s: vertex %d is in no subset: %w", methodSetCovering, v, geco.ErrInfeasibleConstruction)
		}
	}

	b := newBuilder(methodSetCovering, "Set Covering Graph Coloring")
	s := make([]model.Var, len(subsets))
	for i := range s {
		s[i] = b.binary(varName("s", i), 1)
	}
	for v, c := range covers {
		e := model.NewExpr()
		for _, i := range c {
			e.Add(s[i], 1)
		}
		b.row(varName("cover", v), e, model.GE, 1)
	}
	return b.done()
}
