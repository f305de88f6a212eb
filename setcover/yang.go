// SPDX-License-Identifier: MIT
// Package: geco/setcover

package setcover

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/model"
	"github.com/katalvlaran/geco/sampler"
)

const (
	methodYangParams = "YangParams"

	yangElementsPerSet = 10
	costLo, costHi     = 1, 100
)

// YangRowSize returns the inclusive range [lo, hi] of set sizes for n
// elements: [⌊2n/25⌋+1, ⌊3n/25⌋-1].
func YangRowSize(n int) (lo, hi int) {
	return 2*n/25 + 1, 3*n/25 - 1
}

// YangParams draws the instance of Yang, Boland, Dilkina and Savelsbergh
// (2020) with m sets over n = 10m elements.
//
// Draw order: n costs Int(1,100); then per set one Int(lo,hi) for its size k
// followed by Sample(n,k).
//
// Errors: m < 1 or a set size range that is empty (m < 5) →
// geco.ErrInvalidParameter.
func YangParams(m int, s *sampler.Sampler) (Params, error) {
	if m < 1 {
		return Params{}, fmt.Errorf("%s: m=%d < 1: %w", methodYangParams, m, geco.ErrInvalidParameter)
	}
	n := yangElementsPerSet * m
	lo, hi := YangRowSize(n)
	if hi < lo {
		return Params{}, fmt.Errorf("%s: m=%d gives empty set size range [%d,%d]: %w",
			methodYangParams, m, lo, hi, geco.ErrInvalidParameter)
	}

	p := Params{Costs: drawCosts(n, s), Sets: make([][]int, m)}
	for k := range p.Sets {
		size := s.Int(lo, hi)
		set, err := s.Sample(n, size)
		if err != nil {
			return Params{}, fmt.Errorf("%s: %w", methodYangParams, err)
		}
		sort.Ints(set)
		p.Sets[k] = set
	}

	return p, nil
}

// Yang builds a Yang instance from a fresh sampler seeded with seed.
func Yang(m int, seed int64) (*model.Model, error) {
	p, err := YangParams(m, sampler.New(seed))
	if err != nil {
		return nil, err
	}
	return BuildNamed(p, "Yang Set Cover")
}

func drawCosts(n int, s *sampler.Sampler) []float64 {
	costs := make([]float64, n)
	for i := range costs {
		costs[i] = float64(s.Int(costLo, costHi))
	}
	return costs
}
