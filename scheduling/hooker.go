// SPDX-License-Identifier: MIT
// Package: geco/scheduling

package scheduling

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/model"
	"github.com/katalvlaran/geco/sampler"
)

const methodHookerFormulation = "HookerFormulation"

// HookerFormulation builds the late-tasks model of J. Hooker, "Planning and
// Scheduling to Minimize Tardiness" (CP 2005, §4) over time steps 0..N-1:
//
//	L_j      binary, task j is late, objective 1
//	x_j_i_t  binary, task j starts on facility i at t
//	late_j_t        Σ_i (t+p_ji)·x_jit - N·L_j ≤ d_j
//	assign_j        Σ_i Σ_t x_jit = 1
//	capacity_i_t    Σ_j Σ_{t-p_ji < t' ≤ t} c_ji·x_jit' ≤ C_i
//	window_i_j_t    x_jit = 0 when t < r_j or t > N - p_ji
//
// The assignment costs c_ji double as resource consumption. Minimize.
//
// Errors: invalid p or timeSteps < 1 → geco.ErrInvalidParameter.
func HookerFormulation(p Params, timeSteps int) (*model.Model, error) {
	return hookerNamed(p, timeSteps, "Hooker Scheduling")
}

// Hooker builds a Hooker instance from a fresh sampler seeded with seed.
func Hooker(facilities, tasks, timeSteps int, seed int64) (*model.Model, error) {
	p, err := HookerParams(facilities, tasks, sampler.New(seed))
	if err != nil {
		return nil, err
	}
	return hookerNamed(p, timeSteps, "Hooker Scheduling Instance")
}

func hookerNamed(p Params, timeSteps int, name string) (*model.Model, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodHookerFormulation, err)
	}
	if timeSteps < 1 {
		return nil, fmt.Errorf("%s: timeSteps=%d: %w", methodHookerFormulation, timeSteps, geco.ErrInvalidParameter)
	}
	n, f, T := p.Tasks(), p.Facilities(), timeSteps
	wrap := func(err error) error { return fmt.Errorf("%s: %w", methodHookerFormulation, err) }

	m := model.New(name)
	late := make([]model.Var, n)
	for j := range late {
		v, err := m.AddBinary("L_"+strconv.Itoa(j), 1)
		if err != nil {
			return nil, wrap(err)
		}
		late[j] = v
	}
	// x[j][i][t]
	x := make([][][]model.Var, n)
	for j := 0; j < n; j++ {
		x[j] = make([][]model.Var, f)
		for i := 0; i < f; i++ {
			x[j][i] = make([]model.Var, T)
			for t := 0; t < T; t++ {
				v, err := m.AddBinary(indexName("x", j, i, t), 0)
				if err != nil {
					return nil, wrap(err)
				}
				x[j][i][t] = v
			}
		}
	}

	for j := 0; j < n; j++ {
		for t := 0; t < T; t++ {
			e := model.NewExpr()
			for i := 0; i < f; i++ {
				e.Add(x[j][i][t], float64(t+p.ProcessingTimes[j][i]))
			}
			e.Add(late[j], -float64(T))
			if err := m.AddConstraint(indexName("late", j, t), e, model.LE, p.Deadlines[j]); err != nil {
				return nil, wrap(err)
			}
		}
	}
	for j := 0; j < n; j++ {
		e := model.NewExpr()
		for i := 0; i < f; i++ {
			for t := 0; t < T; t++ {
				e.Add(x[j][i][t], 1)
			}
		}
		if err := m.AddConstraint(indexName("assign", j), e, model.EQ, 1); err != nil {
			return nil, wrap(err)
		}
	}
	for i := 0; i < f; i++ {
		for t := 0; t < T; t++ {
			e := model.NewExpr()
			for j := 0; j < n; j++ {
				for tp := max(0, t-p.ProcessingTimes[j][i]+1); tp <= t; tp++ {
					e.Add(x[j][i][tp], float64(p.AssignmentCosts[j][i]))
				}
			}
			if err := m.AddConstraint(indexName("capacity", i, t), e, model.LE, float64(p.Capacities[i])); err != nil {
				return nil, wrap(err)
			}
		}
	}
	for i := 0; i < f; i++ {
		for j := 0; j < n; j++ {
			for t := 0; t < T; t++ {
				if t >= p.ReleaseTimes[j] && t <= T-p.ProcessingTimes[j][i] {
					continue
				}
				if err := m.AddConstraint(indexName("window", i, j, t), model.Sum(x[j][i][t]), model.EQ, 0); err != nil {
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

func indexName(prefix string, idx ...int) string {
	b := []byte(prefix)
	for _, i := range idx {
		b = append(b, '_')
		b = strconv.AppendInt(b, int64(i), 10)
	}
	return string(b)
}
