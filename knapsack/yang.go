// SPDX-License-Identifier: MIT
// Package: geco/knapsack

package knapsack

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/model"
	"github.com/katalvlaran/geco/sampler"
)

const (
	methodYangParams = "YangParams"

	yangValueFactor   = 10 // values drawn from [1, 10n]
	yangCapacityShare = 5  // C = ⌊Σw / 5⌋
)

// YangParams draws the instance of Yang, Boland, Dilkina and Savelsbergh,
// "Learning Generalized Strong Branching for Set Covering, Set Packing, and
// 0-1 Knapsack Problems" (2020).
//
// Draw order: n profits Int(1,10n), then n weights Int(1,10n).
// Capacity: ⌊Σ weights / 5⌋.
func YangParams(n int, s *sampler.Sampler) (Params, error) {
	if n < 1 {
		return Params{}, fmt.Errorf("%s: n=%d < 1: %w", methodYangParams, n, geco.ErrInvalidParameter)
	}

	hi := yangValueFactor * n
	p := Params{Weights: make([]float64, n), Profits: make([]float64, n)}
	for i := range p.Profits {
		p.Profits[i] = float64(s.Int(1, hi))
	}
	total := 0.0
	for i := range p.Weights {
		p.Weights[i] = float64(s.Int(1, hi))
		total += p.Weights[i]
	}
	p.Capacity = math.Floor(total / yangCapacityShare)

	return p, nil
}

// Yang builds a Yang instance from a fresh sampler seeded with seed.
func Yang(n int, seed int64) (*model.Model, error) {
	p, err := YangParams(n, sampler.New(seed))
	if err != nil {
		return nil, err
	}
	return BuildNamed(p, "Yang Knapsack")
}
