// SPDX-License-Identifier: MIT
// Package: geco/scheduling
//
// params.go — shared parameter generator.
//
// Draw order of GenerateParams with n tasks and f facilities:
//  1. processing times, task-major: for j < n, i < f: Int(lo, 20+5i) with
//     lo = 2 when n < 22 and lo = 5 otherwise,
//  2. one assignment cost Int(1,10) per facility, shared by all tasks,
//  3. n deadlines Uniform(β·n/4, β·n) with β = 20/9,
//  4. resource requirements, task-major: Int(1,9).
// Capacities are 10 and release times 0; neither consumes draws.

package scheduling

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/sampler"
)

const (
	methodGenerateParams = "GenerateParams"

	// Beta scales the due-date window.
	Beta = 20.0 / 9.0
	// DefaultCapacity is the resource capacity of every facility.
	DefaultCapacity = 10

	largeTaskCount = 22
)

// Params holds one scheduling instance. Matrices are indexed [task][facility].
type Params struct {
	ProcessingTimes      [][]int
	Capacities           []int
	AssignmentCosts      [][]int
	ReleaseTimes         []int
	Deadlines            []float64
	ResourceRequirements [][]int
}

// Tasks returns the number of tasks.
func (p Params) Tasks() int { return len(p.ProcessingTimes) }

// Facilities returns the number of facilities.
func (p Params) Facilities() int { return len(p.Capacities) }

// Validate checks the shapes and that processing times are positive and
// release times non-negative. ResourceRequirements may be nil.
func (p Params) Validate() error {
	n, f := p.Tasks(), p.Facilities()
	if n == 0 || f == 0 {
		return fmt.Errorf("%d tasks, %d facilities: %w", n, f, geco.ErrInvalidParameter)
	}
	if len(p.AssignmentCosts) != n || len(p.ReleaseTimes) != n || len(p.Deadlines) != n {
		return fmt.Errorf("task vectors disagree with %d tasks: %w", n, geco.ErrInvalidParameter)
	}
	if p.ResourceRequirements != nil && len(p.ResourceRequirements) != n {
		return fmt.Errorf("resource rows %d, want %d: %w", len(p.ResourceRequirements), n, geco.ErrInvalidParameter)
	}
	for j := 0; j < n; j++ {
		if len(p.ProcessingTimes[j]) != f || len(p.AssignmentCosts[j]) != f ||
			(p.ResourceRequirements != nil && len(p.ResourceRequirements[j]) != f) {
			return fmt.Errorf("task %d: row length, want %d: %w", j, f, geco.ErrInvalidParameter)
		}
		for i := 0; i < f; i++ {
			if p.ProcessingTimes[j][i] < 1 {
				return fmt.Errorf("task %d facility %d: processing time %d: %w",
					j, i, p.ProcessingTimes[j][i], geco.ErrInvalidParameter)
			}
		}
		if p.ReleaseTimes[j] < 0 || math.IsNaN(p.Deadlines[j]) || math.IsInf(p.Deadlines[j], 0) {
			return fmt.Errorf("task %d: release %d, deadline %g: %w",
				j, p.ReleaseTimes[j], p.Deadlines[j], geco.ErrInvalidParameter)
		}
	}
	return nil
}

// DueDateWindow returns the interval deadlines are drawn from for n tasks.
func DueDateWindow(tasks int) (lo, hi float64) {
	n := float64(tasks)
	return Beta * n / 4, Beta * n
}

// GenerateParams draws a full parameter set in the documented order.
//
// Errors: facilities or tasks < 1 → geco.ErrInvalidParameter.
func GenerateParams(facilities, tasks int, s *sampler.Sampler) (Params, error) {
	if facilities < 1 || tasks < 1 {
		return Params{}, fmt.Errorf("%s: facilities=%d tasks=%d: %w",
			methodGenerateParams, facilities, tasks, geco.ErrInvalidParameter)
	}

	lo := 2
	if tasks >= largeTaskCount {
		lo = 5
	}
	p := Params{
		ProcessingTimes:      grid(tasks, facilities),
		Capacities:           make([]int, facilities),
		AssignmentCosts:      grid(tasks, facilities),
		ReleaseTimes:         make([]int, tasks),
		Deadlines:            make([]float64, tasks),
		ResourceRequirements: grid(tasks, facilities),
	}
	for j := 0; j < tasks; j++ {
		for i := 0; i < facilities; i++ {
			p.ProcessingTimes[j][i] = s.Int(lo, 20+5*i)
		}
	}
	for i := 0; i < facilities; i++ {
		p.Capacities[i] = DefaultCapacity
		cost := s.Int(1, 10)
		for j := 0; j < tasks; j++ {
			p.AssignmentCosts[j][i] = cost
		}
	}
	dlo, dhi := DueDateWindow(tasks)
	for j := range p.Deadlines {
		p.Deadlines[j] = s.Uniform(dlo, dhi)
	}
	for j := 0; j < tasks; j++ {
		for i := 0; i < facilities; i++ {
			p.ResourceRequirements[j][i] = s.Int(1, 9)
		}
	}

	return p, nil
}

// HeinzParams is GenerateParams.
func HeinzParams(facilities, tasks int, s *sampler.Sampler) (Params, error) {
	return GenerateParams(facilities, tasks, s)
}

// HookerParams is GenerateParams without resource requirements. The
// requirements are still drawn so both variants consume the same sequence.
func HookerParams(facilities, tasks int, s *sampler.Sampler) (Params, error) {
	p, err := GenerateParams(facilities, tasks, s)
	if err != nil {
		return Params{}, err
	}
	p.ResourceRequirements = nil
	return p, nil
}

func grid(rows, cols int) [][]int {
	out := make([][]int, rows)
	for i := range out {
		out[i] = make([]int, cols)
	}
	return out
}
