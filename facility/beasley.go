// SPDX-License-Identifier: MIT
// Package: geco/facility

package facility

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/model"
	"github.com/katalvlaran/geco/sampler"
)

const (
	methodBeasleyParams = "BeasleyParams"

	beasleySide = 1000
)

// BeasleyParams draws the instance of J.E. Beasley, "An algorithm for solving
// large capacitated warehouse location problems", EJOR 33 (1988). Every
// facility has the same capacity; fixed costs are calibrated so that about
// nOpen facilities are worth opening.
//
// Draw order:
//
//	c customer x, c customer y, f facility x, f facility y: Int(0,1000)
//	c demands Int(1,100)
//	c·f transport factors Uniform(1,1.25), row-major
//	Sample(f, nOpen+1) facilities, then nOpen-1 of them (SampleFrom)
//	f fixed-cost factors Uniform(0.75,1.25)
//
// transport_ij = dist(i,j)·factor_ij·demand_i. With D(S) = Σ_i min_{j∈S}
// transport_ij over a facility subset S, fixed_j = factor_j·(D(less) -
// D(more))/2 where more has nOpen+1 and less nOpen-1 facilities.
//
// Errors: c or f < 1, negative capacity, nOpen < 2 or nOpen+1 > f →
// geco.ErrInvalidParameter.
func BeasleyParams(c, f int, capacity float64, nOpen int, s *sampler.Sampler) (Params, error) {
	if c < 1 || f < 1 {
		return Params{}, fmt.Errorf("%s: c=%d f=%d: %w", methodBeasleyParams, c, f, geco.ErrInvalidParameter)
	}
	if !finite(capacity) || capacity < 0 {
		return Params{}, fmt.Errorf("%s: capacity=%g: %w", methodBeasleyParams, capacity, geco.ErrInvalidParameter)
	}
	if nOpen < 2 || nOpen+1 > f {
		return Params{}, fmt.Errorf("%s: nOpen=%d with %d facilities: %w",
			methodBeasleyParams, nOpen, f, geco.ErrInvalidParameter)
	}

	coord := func(n int) []float64 { return ints(n, s, 0, beasleySide) }
	cx, cy := coord(c), coord(c)
	fx, fy := coord(f), coord(f)
	demands := ints(c, s, 1, 100)

	trans := distances(cx, cy, fx, fy)
	for i, row := range trans {
		for j := range row {
			row[j] *= s.Uniform(1, 1.25) * demands[i]
		}
	}

	more, err := s.Sample(f, nOpen+1)
	if err != nil {
		return Params{}, fmt.Errorf("%s: %w", methodBeasleyParams, err)
	}
	less, err := s.SampleFrom(more, nOpen-1)
	if err != nil {
		return Params{}, fmt.Errorf("%s: %w", methodBeasleyParams, err)
	}
	gap := (serviceCost(trans, less) - serviceCost(trans, more)) / 2

	p := Params{
		TransportCosts: trans,
		Demands:        demands,
		Capacities:     make([]float64, f),
		FixedCosts:     make([]float64, f),
	}
	for j := range p.FixedCosts {
		p.Capacities[j] = capacity
		p.FixedCosts[j] = s.Uniform(0.75, 1.25) * gap
	}

	return p, nil
}

// Beasley builds a Beasley instance from a fresh sampler seeded with seed.
func Beasley(c, f int, capacity float64, nOpen int, seed int64) (*model.Model, error) {
	p, err := BeasleyParams(c, f, capacity, nOpen, sampler.New(seed))
	if err != nil {
		return nil, err
	}
	return BuildNamed(p, "Beasley Facility Location")
}

// serviceCost is Σ_i min_{j∈open} trans[i][j]. open is non-empty.
func serviceCost(trans [][]float64, open []int) float64 {
	total := 0.0
	for _, row := range trans {
		best := math.Inf(1)
		for _, j := range open {
			best = math.Min(best, row[j])
		}
		total += best
	}
	return total
}
