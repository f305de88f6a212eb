// SPDX-License-Identifier: MIT
// Package: geco/maxcut

// Package maxcut builds maximum cut models over undirected core graphs.
//
// Vertices are relabeled to 0..n-1 (core.Densify). Edge variables are named
// e_u_v with u ≤ v. Unweighted graphs count every edge with weight 1.
package maxcut

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/builder"
	"github.com/katalvlaran/geco/core"
	"github.com/katalvlaran/geco/model"
	"github.com/katalvlaran/geco/sampler"
)

const (
	methodNaive    = "Naive"
	methodTriangle = "Triangle"
	methodTang     = "TangParams"

	tangWeightLo, tangWeightHi = 0, 10
)

// EdgeName returns the variable name of the undirected edge u–v.
func EdgeName(u, v int) string {
	if u > v {
		u, v = v, u
	}
	return "e_" + strconv.Itoa(u) + "_" + strconv.Itoa(v)
}

func dense(method string, g *core.Graph) (*core.Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", method, geco.ErrInvalidParameter)
	}
	if g.Directed() {
		return nil, fmt.Errorf("%s: directed graph: %w", method, geco.ErrInvalidParameter)
	}
	return core.Densify(g), nil
}

func weightOf(g *core.Graph, w float64) float64 {
	if !g.Weighted() {
		return 1
	}
	return w
}

// Naive returns the node/edge model named "Naive MaxCut":
//
//	x_i    binary side of vertex i, objective 0
//	(u,v)  binary, edge u–v is cut, objective w_uv
//	(u,v) + x_u + x_v ≤ 2, (u,v) - x_u - x_v ≤ 0
//
// If any weight is negative each edge also gets x_u - x_v - (u,v) ≤ 0 and
// x_v - x_u - (u,v) ≤ 0 so that a cut edge cannot be left unpaid. Maximize.
func Naive(g *core.Graph) (*model.Model, error) {
	return NaiveNamed(g, "Naive MaxCut")
}

// NaiveNamed is Naive with a caller-chosen problem name.
func NaiveNamed(g *core.Graph, name string) (*model.Model, error) {
	d, err := dense(methodNaive, g)
	if err != nil {
		return nil, err
	}
	wrap := func(err error) error { return fmt.Errorf("%s: %w", methodNaive, err) }

	m := model.New(name)
	x := make([]model.Var, d.N())
	for i := range x {
		if x[i], err = m.AddBinary("x_"+strconv.Itoa(i), 0); err != nil {
			return nil, wrap(err)
		}
	}
	edges := d.Edges()
	y := make([]model.Var, len(edges))
	negative := false
	for k, e := range edges {
		w := weightOf(g, e.Weight)
		negative = negative || w < 0
		if y[k], err = m.AddBinary(EdgeName(e.U, e.V), w); err != nil {
			return nil, wrap(err)
		}
	}

	for k, e := range edges {
		u, v, c := x[e.U], x[e.V], y[k]
		rows := []*model.LinExpr{
			model.NewExpr().Add(c, 1).Add(u, 1).Add(v, 1),
			model.NewExpr().Add(c, 1).Add(u, -1).Add(v, -1),
		}
		rhs := []float64{2, 0}
		if negative {
			rows = append(rows,
				model.NewExpr().Add(u, 1).Add(v, -1).Add(c, -1),
				model.NewExpr().Add(v, 1).Add(u, -1).Add(c, -1),
			)
			rhs = append(rhs, 0, 0)
		}
		for r, row := range rows {
			if err := m.AddConstraint("cut"+strconv.Itoa(r)+"_"+strconv.Itoa(k), row, model.LE, rhs[r]); err != nil {
				return nil, wrap(err)
			}
		}
	}
	if err := m.SetSense(model.Maximize); err != nil {
		return nil, wrap(err)
	}
	return m, nil
}

// Triangle returns the edge-only model named "Triangle MaxCut": one binary
// per vertex pair (objective w_uv, or 0 for non-edges) and, for every triple
// i < j < k, the triangle inequalities
//
//	x_ij ≤ x_ik + x_jk   x_ik ≤ x_ij + x_jk   x_jk ≤ x_ij + x_ik
//	x_ij + x_ik + x_jk ≤ 2
//
// n(n-1)/2 variables, 4·C(n,3) constraints. Maximize.
func Triangle(g *core.Graph) (*model.Model, error) {
	d, err := dense(methodTriangle, g)
	if err != nil {
		return nil, err
	}
	wrap := func(err error) error { return fmt.Errorf("%s: %w", methodTriangle, err) }
	n := d.N()

	m := model.New("Triangle MaxCut")
	pair := make([][]model.Var, n)
	for i := 0; i < n; i++ {
		pair[i] = make([]model.Var, n)
		for j := i + 1; j < n; j++ {
			w := 0.0
			if dw, ok := d.Weight(i, j); ok {
				w = weightOf(g, dw)
			}
			if pair[i][j], err = m.AddBinary(EdgeName(i, j), w); err != nil {
				return nil, wrap(err)
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				ij, ik, jk := pair[i][j], pair[i][k], pair[j][k]
				rows := [...]*model.LinExpr{
					model.NewExpr().Add(ij, 1).Add(ik, -1).Add(jk, -1),
					model.NewExpr().Add(ik, 1).Add(ij, -1).Add(jk, -1),
					model.NewExpr().Add(jk, 1).Add(ij, -1).Add(ik, -1),
					model.Sum(ij, ik, jk),
				}
				rhs := [...]float64{0, 0, 0, 2}
				for r, row := range rows {
					name := "tri" + strconv.Itoa(r) + "_" + strconv.Itoa(i) + "_" + strconv.Itoa(j) + "_" + strconv.Itoa(k)
					if err := m.AddConstraint(name, row, model.LE, rhs[r]); err != nil {
						return nil, wrap(err)
					}
				}
			}
		}
	}
	if err := m.SetSense(model.Maximize); err != nil {
		return nil, wrap(err)
	}
	return m, nil
}

// TangParams draws the weighted G(n,m) graph of Tang, Agrawal and Faenza
// (2020). Weights Int(0,10) are drawn from s right after each edge is
// accepted, so edge selection and weights share one sequence.
func TangParams(n, m int, s *sampler.Sampler) (*core.Graph, error) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{
			builder.WithSampler(s),
			builder.WithWeightFn(builder.UniformIntWeightFn(tangWeightLo, tangWeightHi)),
		},
		builder.GNM(n, m),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodTang, err)
	}
	return g, nil
}

// Tang builds the naive model of a Tang graph from a fresh sampler.
func Tang(n, m int, seed int64) (*model.Model, error) {
	g, err := TangParams(n, m, sampler.New(seed))
	if err != nil {
		return nil, err
	}
	return NaiveNamed(g, "Tang MaxCut")
}
