// SPDX-License-Identifier: MIT
// Package: geco/scheduling

package scheduling

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/model"
	"github.com/katalvlaran/geco/sampler"
)

const methodHeinzFormulation = "HeinzFormulation"

// Horizon returns the time steps [min r, ⌊max d⌋) of a Heinz model.
func Horizon(p Params) (start, end int) {
	start = slices.Min(p.ReleaseTimes)
	end = int(math.Floor(slices.Max(p.Deadlines)))
	return start, end
}

// HeinzFormulation builds Model 4 of S. Heinz and J.C. Beck, "Reconsidering
// Mixed Integer Programming and MIP-based Hybrids for Scheduling" (CPAIOR
// 2012), over the time steps of Horizon:
//
//	x_j_k    binary, task j runs on facility k, objective c_jk
//	y_j_k_t  binary, task j starts on k at t, only for r_j ≤ t ≤ d_j - p_jk
//	assign_j      Σ_k x_jk = 1
//	start_j_k     Σ_t y_jkt - x_jk = 0
//	capacity_k_t  Σ_j Σ_{t-p_jk < t' ≤ t} r_jk·y_jkt' ≤ C_k
//	energy_k_a_b  Σ_{j: t1 ≤ r_j, d_j ≤ t2} p_jk·r_jk·x_jk ≤ C_k·(t2-t1)
//
// The energy rows run over distinct release times t1 and distinct deadlines
// t2 > t1. Rows without terms are omitted. Minimize.
//
// Errors: invalid p or missing resource requirements → geco.ErrInvalidParameter.
func HeinzFormulation(p Params) (*model.Model, error) {
	return heinzNamed(p, "Heinz Scheduling")
}

// Heinz builds a Heinz instance from a fresh sampler seeded with seed.
func Heinz(facilities, tasks int, seed int64) (*model.Model, error) {
	p, err := HeinzParams(facilities, tasks, sampler.New(seed))
	if err != nil {
		return nil, err
	}
	return heinzNamed(p, "Heinz Scheduling Instance")
}

func heinzNamed(p Params, name string) (*model.Model, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodHeinzFormulation, err)
	}
	if p.ResourceRequirements == nil {
		return nil, fmt.Errorf("%s: no resource requirements: %w", methodHeinzFormulation, geco.ErrInvalidParameter)
	}
	n, f := p.Tasks(), p.Facilities()
	start, end := Horizon(p)
	wrap := func(err error) error { return fmt.Errorf("%s: %w", methodHeinzFormulation, err) }

	m := model.New(name)
	x := make([][]model.Var, n)
	for j := 0; j < n; j++ {
		x[j] = make([]model.Var, f)
		for k := 0; k < f; k++ {
			v, err := m.AddBinary(indexName("x", j, k), float64(p.AssignmentCosts[j][k]))
			if err != nil {
				return nil, wrap(err)
			}
			x[j][k] = v
		}
	}
	// y[j][k] maps a start time to its variable.
	y := make([][]map[int]model.Var, n)
	for j := 0; j < n; j++ {
		y[j] = make([]map[int]model.Var, f)
		for k := 0; k < f; k++ {
			y[j][k] = make(map[int]model.Var)
			latest := p.Deadlines[j] - float64(p.ProcessingTimes[j][k])
			for t := max(start, p.ReleaseTimes[j]); t < end && float64(t) <= latest; t++ {
				v, err := m.AddBinary(indexName("y", j, k, t), 0)
				if err != nil {
					return nil, wrap(err)
				}
				y[j][k][t] = v
			}
		}
	}

	for j := 0; j < n; j++ {
		if err := m.AddConstraint(indexName("assign", j), model.Sum(x[j]...), model.EQ, 1); err != nil {
			return nil, wrap(err)
		}
	}
	for j := 0; j < n; j++ {
		for k := 0; k < f; k++ {
			e := model.NewExpr()
			for t := start; t < end; t++ {
				if v, ok := y[j][k][t]; ok {
					e.Add(v, 1)
				}
			}
			e.Add(x[j][k], -1)
			if err := m.AddConstraint(indexName("start", j, k), e, model.EQ, 0); err != nil {
				return nil, wrap(err)
			}
		}
	}
	for k := 0; k < f; k++ {
		for t := start; t < end; t++ {
			e := model.NewExpr()
			for j := 0; j < n; j++ {
				for tp := t - p.ProcessingTimes[j][k] + 1; tp <= t; tp++ {
					if v, ok := y[j][k][tp]; ok {
						e.Add(v, float64(p.ResourceRequirements[j][k]))
					}
				}
			}
			if e.Len() == 0 {
				continue
			}
			if err := m.AddConstraint(indexName("capacity", k, t), e, model.LE, float64(p.Capacities[k])); err != nil {
				return nil, wrap(err)
			}
		}
	}

	releases := distinct(p.ReleaseTimes)
	deadlines := distinct(p.Deadlines)
	for k := 0; k < f; k++ {
		for a, r := range releases {
			t1 := float64(r)
			for b, t2 := range deadlines {
				if t1 >= t2 {
					continue
				}
				e := model.NewExpr()
				for j := 0; j < n; j++ {
					if r <= p.ReleaseTimes[j] && p.Deadlines[j] <= t2 {
						e.Add(x[j][k], float64(p.ProcessingTimes[j][k]*p.ResourceRequirements[j][k]))
					}
				}
				if e.Len() == 0 {
					continue
				}
				rhs := float64(p.Capacities[k]) * (t2 - t1)
				if err := m.AddConstraint(indexName("energy", k, a, b), e, model.LE, rhs); err != nil {
					return nil, wrap(err)
				}
			}
		}
	}
	if err := m.SetSense(model.Minimize); err != nil {
		return nil, wrap(err)
	}

	return m, nil
}

// distinct returns the sorted distinct values of xs.
func distinct[T int | float64](xs []T) []T {
	out := slices.Clone(xs)
	slices.Sort(out)
	return slices.Compact(out)
}
