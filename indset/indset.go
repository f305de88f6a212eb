// SPDX-License-Identifier: MIT
// Package: geco/indset

package indset

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/core"
	"github.com/katalvlaran/geco/model"
)

const (
	methodBuild       = "Build"
	methodBuildClique = "BuildClique"
)

// Build returns the pairwise model named "Independent Set".
func Build(g *core.Graph) (*model.Model, error) {
	return BuildNamed(g, "Independent Set")
}

// BuildNamed is Build with a caller-chosen problem name.
func BuildNamed(g *core.Graph, name string) (*model.Model, error) {
	d, m, x, err := start(methodBuild, g, name)
	if err != nil {
		return nil, err
	}
	for k, e := range d.Edges() {
		row := model.Sum(x[e.U], x[e.V])
		if err := m.AddConstraint("edge_"+strconv.Itoa(k), row, model.LE, 1); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}
	if err := m.SetSense(model.Maximize); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	return m, nil
}

// BuildClique returns the clique-partition model named
// "Clique Independent Set": one row per clique of Cliques with at least two
// vertices, then x_u + x_v ≤ 1 for every edge joining two different cliques,
// then one row per self-loop. It has the same feasible set as Build.
func BuildClique(g *core.Graph) (*model.Model, error) {
	return BuildCliqueNamed(g, "Clique Independent Set")
}

// BuildCliqueNamed is BuildClique with a caller-chosen problem name.
func BuildCliqueNamed(g *core.Graph, name string) (*model.Model, error) {
	d, m, x, err := start(methodBuildClique, g, name)
	if err != nil {
		return nil, err
	}
	cliques := Cliques(d)
	member := make([]int, d.N())
	for k, clique := range cliques {
		for _, v := range clique {
			member[v] = k
		}
		if len(clique) < 2 {
			continue
		}
		row := model.NewExpr()
		for _, v := range clique {
			row.Add(x[v], 1)
		}
		if err := m.AddConstraint("clique_"+strconv.Itoa(k), row, model.LE, 1); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildClique, err)
		}
	}
	// edges between two cliques are not covered by any clique row
	for k, e := range d.Edges() {
		if e.U == e.V || member[e.U] == member[e.V] {
			continue
		}
		if err := m.AddConstraint("edge_"+strconv.Itoa(k), model.Sum(x[e.U], x[e.V]), model.LE, 1); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildClique, err)
		}
	}
	for u := 0; u < d.N(); u++ {
		if !d.HasEdge(u, u) {
			continue
		}
		if err := m.AddConstraint("loop_"+strconv.Itoa(u), model.Sum(x[u]), model.LE, 0); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildClique, err)
		}
	}
	if err := m.SetSense(model.Maximize); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildClique, err)
	}
	return m, nil
}

func start(method string, g *core.Graph, name string) (*core.Dense, *model.Model, []model.Var, error) {
	if g == nil {
		return nil, nil, nil, fmt.Errorf("%s: nil graph: %w", method, geco.ErrInvalidParameter)
	}
	if g.Directed() {
		return nil, nil, nil, fmt.Errorf("%s: directed graph: %w", method, geco.ErrInvalidParameter)
	}
	d := core.Densify(g)
	m := model.New(name)
	x := make([]model.Var, d.N())
	for i := range x {
		v, err := m.AddBinary("x_"+strconv.Itoa(i), 1)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("%s: %w", method, err)
		}
		x[i] = v
	}
	return d, m, x, nil
}

// Cliques partitions the vertices of d greedily: repeatedly take the
// remaining vertex of highest degree and grow a clique from its remaining
// neighbors in order of decreasing degree. Ties go to the lower index.
// Self-loops are ignored.
func Cliques(d *core.Dense) [][]int {
	n := d.N()
	degree := make([]int, n)
	for u := 0; u < n; u++ {
		degree[u] = d.Degree(u)
		if d.HasEdge(u, u) {
			degree[u]--
		}
	}
	byDegree := func(vs []int) {
		sort.SliceStable(vs, func(a, b int) bool { return degree[vs[a]] > degree[vs[b]] })
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	byDegree(order)

	taken := make([]bool, n)
	var out [][]int
	for _, center := range order {
		if taken[center] {
			continue
		}
		clique := []int{center}
		taken[center] = true
		var cand []int
		for _, v := range d.Neighbors(center) {
			if v != center && !taken[v] {
				cand = append(cand, v)
			}
		}
		byDegree(cand)
		for _, v := range cand {
			if adjacentToAll(d, v, clique) {
				clique = append(clique, v)
				taken[v] = true
			}
		}
		out = append(out, clique)
	}
	return out
}

func adjacentToAll(d *core.Dense, v int, clique []int) bool {
	for _, u := range clique {
		if !d.HasEdge(u, v) {
			return false
		}
	}
	return true
}
