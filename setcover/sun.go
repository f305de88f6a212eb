// SPDX-License-Identifier: MIT
// Package: geco/setcover
//
// sun.go — instances of H. Sun, W. Chen, H. Li and L. Song, "Improving
// Learning to Branch via Reinforcement Learning" (2021).
//
// Draw order for the element pass (SunParams, and the new elements of
// ExpandSun): per element e, Sample(m,2) for the two forced sets, then one
// Bernoulli(0.05) per set in index order.

package setcover

import (
	"fmt"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/model"
	"github.com/katalvlaran/geco/sampler"
)

const (
	methodSunParams = "SunParams"
	methodExpandSun = "ExpandSun"

	// SunMembership is the probability of an extra set membership.
	SunMembership = 0.05
	sunForced     = 2
)

// SunParams draws n costs Int(1,100) followed by the element pass over m
// initially empty sets.
//
// Errors: n < 1 or m < 2 → geco.ErrInvalidParameter.
func SunParams(n, m int, s *sampler.Sampler) (Params, error) {
	if n < 1 || m < sunForced {
		return Params{}, fmt.Errorf("%s: n=%d m=%d (need n ≥ 1, m ≥ 2): %w",
			methodSunParams, n, m, geco.ErrInvalidParameter)
	}

	p := Params{Costs: drawCosts(n, s), Sets: make([][]int, m)}
	for k := range p.Sets {
		p.Sets[k] = []int{}
	}
	if err := sunElements(p.Sets, 0, n, s); err != nil {
		return Params{}, fmt.Errorf("%s: %w", methodSunParams, err)
	}

	return p, nil
}

// Sun builds a Sun instance from a fresh sampler seeded with seed.
func Sun(n, m int, seed int64) (*model.Model, error) {
	p, err := SunParams(n, m, sampler.New(seed))
	if err != nil {
		return nil, err
	}
	return BuildNamed(p, "Sun Set Cover")
}

// ExpandSun keeps every backbone cost and membership and adds elements
// backbone.N() .. n-1: their costs first, then the element pass for the new
// elements only. The backbone is not modified.
//
// Errors: fewer than 2 backbone sets → geco.ErrInvalidParameter;
// n < backbone.N() → geco.ErrInfeasibleConstruction.
func ExpandSun(backbone Params, n int, s *sampler.Sampler) (Params, error) {
	if backbone.M() < sunForced {
		return Params{}, fmt.Errorf("%s: backbone has %d sets: %w",
			methodExpandSun, backbone.M(), geco.ErrInvalidParameter)
	}
	if n < backbone.N() {
		return Params{}, fmt.Errorf("%s: n=%d < backbone size %d: %w",
			methodExpandSun, n, backbone.N(), geco.ErrInfeasibleConstruction)
	}

	out := backbone.Clone()
	out.Costs = append(out.Costs, drawCosts(n-backbone.N(), s)...)
	if err := sunElements(out.Sets, backbone.N(), n, s); err != nil {
		return Params{}, fmt.Errorf("%s: %w", methodExpandSun, err)
	}

	return out, nil
}

// sunElements runs the element pass for elements from..to-1. Elements grow
// monotonically so a set only ever needs its last entry checked.
func sunElements(sets [][]int, from, to int, s *sampler.Sampler) error {
	add := func(k, e int) {
		if l := len(sets[k]); l == 0 || sets[k][l-1] != e {
			sets[k] = append(sets[k], e)
		}
	}
	for e := from; e < to; e++ {
		forced, err := s.Sample(len(sets), sunForced)
		if err != nil {
			return err
		}
		for _, k := range forced {
			add(k, e)
		}
		for k := range sets {
			if s.Bernoulli(SunMembership) {
				add(k, e)
			}
		}
	}
	return nil
}
