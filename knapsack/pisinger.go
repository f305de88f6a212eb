// SPDX-License-Identifier: MIT
// Package: geco/knapsack
//
// pisinger.go — instances of D. Pisinger, "Where are the hard knapsack
// problems?", Comput. Oper. Res. 32(9), 2005.
//
// Draw order of PisingerParams (and of the new items in ExpandPisinger):
//   profit-first distributions: n × ProfitOf, then n × WeightOf(profit_i)
//   otherwise:                  n × WeightOf, then n × ProfitOf(weight_i)
// Derived sides (e.g. StronglyCorrelated profits) consume no draws.

package knapsack

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/model"
	"github.com/katalvlaran/geco/sampler"
)

const (
	methodPisingerParams = "PisingerParams"
	methodSpanner        = "Spanner"
	methodExpandPisinger = "ExpandPisinger"
)

func checkDistribution(method string, d Distribution) error {
	if d == nil {
		return fmt.Errorf("%s: nil distribution: %w", method, geco.ErrInvalidParameter)
	}
	if err := d.validate(); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// drawItems draws n items from d in the documented order.
func drawItems(n int, d Distribution, s *sampler.Sampler) (weights, profits []float64) {
	weights = make([]float64, n)
	profits = make([]float64, n)
	if d.ProfitFirst() {
		for i := range profits {
			profits[i] = d.ProfitOf(s, 0)
		}
		for i := range weights {
			weights[i] = d.WeightOf(s, profits[i])
		}
		return weights, profits
	}
	for i := range weights {
		weights[i] = d.WeightOf(s, 0)
	}
	for i := range profits {
		profits[i] = d.ProfitOf(s, weights[i])
	}
	return weights, profits
}

// PisingerParams draws n items from d. The capacity is the caller's bound and
// is not derived from the draws.
//
// Errors: n < 1, capacity < 0, nil or invalid d → geco.ErrInvalidParameter.
func PisingerParams(n int, capacity float64, d Distribution, s *sampler.Sampler) (Params, error) {
	if n < 1 {
		return Params{}, fmt.Errorf("%s: n=%d < 1: %w", methodPisingerParams, n, geco.ErrInvalidParameter)
	}
	if capacity < 0 || math.IsNaN(capacity) {
		return Params{}, fmt.Errorf("%s: capacity=%g: %w", methodPisingerParams, capacity, geco.ErrInvalidParameter)
	}
	if err := checkDistribution(methodPisingerParams, d); err != nil {
		return Params{}, err
	}

	w, p := drawItems(n, d, s)
	return Params{Weights: w, Profits: p, Capacity: capacity}, nil
}

// Pisinger builds a Pisinger instance from a fresh sampler seeded with seed.
func Pisinger(n int, capacity float64, d Distribution, seed int64) (*model.Model, error) {
	p, err := PisingerParams(n, capacity, d, sampler.New(seed))
	if err != nil {
		return nil, err
	}
	return BuildNamed(p, "Pisinger Knapsack")
}

// Spanner draws a spanner instance: v pattern items from d, each normalised
// to (⌈p/m⌉, ⌈w/m⌉), then n items that are a random pattern scaled by a
// multiplier drawn from U(1,m).
//
// Draw order: v pattern items (as in PisingerParams), then per item one Intn(v)
// for the pattern and one Uniform(1,m) for the multiplier.
//
// Errors: v, m or n < 1, capacity < 0, invalid d → geco.ErrInvalidParameter.
func Spanner(v, m, n int, d Distribution, capacity float64, s *sampler.Sampler) (Params, error) {
	if v < 1 || m < 1 || n < 1 {
		return Params{}, fmt.Errorf("%s: v=%d m=%d n=%d must be ≥ 1: %w", methodSpanner, v, m, n, geco.ErrInvalidParameter)
	}
	if capacity < 0 || math.IsNaN(capacity) {
		return Params{}, fmt.Errorf("%s: capacity=%g: %w", methodSpanner, capacity, geco.ErrInvalidParameter)
	}
	if err := checkDistribution(methodSpanner, d); err != nil {
		return Params{}, err
	}

	pw, pp := drawItems(v, d, s)
	scale := float64(m)
	for i := range pw {
		pw[i] = math.Ceil(pw[i] / scale)
		pp[i] = math.Ceil(pp[i] / scale)
	}

	out := Params{Weights: make([]float64, n), Profits: make([]float64, n), Capacity: capacity}
	for i := 0; i < n; i++ {
		idx := s.Intn(v)
		mult := s.Uniform(1, scale)
		out.Weights[i] = mult * pw[idx]
		out.Profits[i] = mult * pp[idx]
	}
	return out, nil
}

// ExpandPisinger keeps every backbone item unchanged and appends
// n - backbone.N() new items drawn from d. The backbone capacity is kept.
//
// Errors: invalid backbone or d → geco.ErrInvalidParameter;
// n < backbone.N() → geco.ErrInfeasibleConstruction.
func ExpandPisinger(backbone Params, n int, d Distribution, s *sampler.Sampler) (Params, error) {
	if err := backbone.Validate(); err != nil {
		return Params{}, fmt.Errorf("%s: backbone: %w", methodExpandPisinger, err)
	}
	if n < backbone.N() {
		return Params{}, fmt.Errorf("%s: n=%d < backbone size %d: %w",
			methodExpandPisinger, n, backbone.N(), geco.ErrInfeasibleConstruction)
	}
	if err := checkDistribution(methodExpandPisinger, d); err != nil {
		return Params{}, err
	}

	w, p := drawItems(n-backbone.N(), d, s)
	return Params{
		Weights:  append(append(make([]float64, 0, n), backbone.Weights...), w...),
		Profits:  append(append(make([]float64, 0, n), backbone.Profits...), p...),
		Capacity: backbone.Capacity,
	}, nil
}
