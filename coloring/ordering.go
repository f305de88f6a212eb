// SPDX-License-Identifier: MIT
// Package: geco/coloring

package coloring

import (
	"github.com/katalvlaran/geco/core"
	"github.com/katalvlaran/geco/model"
)

// ordering holds the shared variables of the partial-ordering models.
// y[c][v] = 1 iff color(v) > c and z[v][c] = 1 iff color(v) < c.
type ordering struct {
	*builder
	d    *core.Dense
	k    int
	y, z [][]model.Var
}

// q is the vertex forced to take the largest color.
const q = 0

func newOrdering(method string, g *core.Graph, k int, name string, withX bool) (*ordering, [][]model.Var, error) {
	d, err := dense(method, g)
	if err != nil {
		return nil, nil, err
	}
	if err := checkColors(method, k); err != nil {
		return nil, nil, err
	}
	n := d.N()
	o := &ordering{builder: newBuilder(method, name), d: d, k: k}

	var x [][]model.Var
	if withX {
		x = make([][]model.Var, n)
		for v := 0; v < n; v++ {
			x[v] = make([]model.Var, k)
			for c := 0; c < k; c++ {
				x[v][c] = o.binary(varName("x", v, c), 0)
			}
		}
	}

	o.y = make([][]model.Var, k)
	for c := range o.y {
		o.y[c] = make([]model.Var, n)
	}
	o.z = make([][]model.Var, n)
	for v := 0; v < n; v++ {
		o.z[v] = make([]model.Var, k)
		for c := 0; c < k; c++ {
			var obj float64
			if v == q {
				obj = 1
			}
			o.y[c][v] = o.binary(varName("y", c, v), obj)
			o.z[v][c] = o.binary(varName("z", v, c), 0)
		}
	}

	last := k - 1
	for v := 0; v < n; v++ {
		o.row(varName("first", v), model.Sum(o.z[v][0]), model.EQ, 0)
		o.row(varName("last", v), model.Sum(o.y[last][v]), model.EQ, 0)
		for c := 0; c < last; c++ {
			o.row(varName("chain", c, v), model.NewExpr().Add(o.y[c][v], 1).Add(o.y[c+1][v], -1), model.GE, 0)
			o.row(varName("split", c, v), model.Sum(o.y[c][v], o.z[v][c+1]), model.EQ, 1)
			if v != q {
				o.row(varName("top", c, v), model.NewExpr().Add(o.y[c][q], 1).Add(o.y[c][v], -1), model.GE, 0)
			}
		}
	}
	return o, x, nil
}

// PartialOrdering returns the POP model with k colors. A vertex takes color
// c when neither y_c_v nor z_v_c is set; adjacent vertices may not share a
// color:
//
//	edge_e_c   y_cu + z_uc + y_cv + z_vc ≥ 1
//
// Vertex 0 is forced to the largest color used, and the objective Σ_c y_c_0
// equals the number of colors minus one.
func PartialOrdering(g *core.Graph, k int) (*model.Model, error) {
	o, _, err := newOrdering(methodPartialOrdering, g, k, "Partial Ordering Graph Coloring", false)
	if err != nil {
		return nil, err
	}
	for i, e := range o.d.Edges() {
		for c := 0; c < k; c++ {
			row := model.Sum(o.y[c][e.U], o.z[e.U][c], o.y[c][e.V], o.z[e.V][c])
			o.row(varName("edge", i, c), row, model.GE, 1)
		}
	}
	return o.done()
}

// HybridPartialOrdering returns the POP2 model: PartialOrdering with explicit
// assignment variables x_v_c linked by
//
//	assign_v_c  x_vc + y_cv + z_vc = 1
//	edge_e_c    x_uc + x_vc ≤ 1
func HybridPartialOrdering(g *core.Graph, k int) (*model.Model, error) {
	o, x, err := newOrdering(methodHybrid, g, k, "Hybrid Partial Ordering Graph Coloring", true)
	if err != nil {
		return nil, err
	}
	for v := range x {
		for c := 0; c < k; c++ {
			o.row(varName("assign", v, c), model.Sum(x[v][c], o.y[c][v], o.z[v][c]), model.EQ, 1)
		}
	}
	for i, e := range o.d.Edges() {
		for c := 0; c < k; c++ {
			o.row(varName("edge", i, c), model.Sum(x[e.U][c], x[e.V][c]), model.LE, 1)
		}
	}
	return o.done()
}
