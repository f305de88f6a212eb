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

const methodCornuejolsParams = "CornuejolsParams"

// Cornuéjols draw ranges, inclusive.
const (
	demandLo, demandHi     = 5, 35
	capacityLo, capacityHi = 10, 160
	fixedALo, fixedAHi     = 100, 110
	fixedBLo, fixedBHi     = 0, 90
	transportScale         = 10
)

// CornuejolsParams draws the instance of G. Cornuéjols, R. Sridharan and J.M.
// Thizy, "A comparison of heuristics and relaxations for the capacitated plant
// location problem", EJOR 50 (1991), as popularised by Gasse et al. (2019).
//
// Draw order, each block fully before the next:
//
//	c customer x, c customer y (Float64)
//	f facility x, f facility y (Float64)
//	c demands Int(5,35)
//	f capacities Int(10,160)
//	f fixed-cost slopes a Int(100,110), then f offsets b Int(0,90)
//
// Derived: fixed_j = ⌊a_j·√cap_j + b_j⌋ on the drawn capacities; then
// cap_j = ⌊cap_j·ratio·D/K⌋ with D total demand and K total drawn capacity;
// transport_ij = 10·dist(i,j)·demand_i.
//
// Errors: c or f < 1, ratio ≤ 0 or not finite → geco.ErrInvalidParameter.
func CornuejolsParams(c, f int, ratio float64, s *sampler.Sampler) (Params, error) {
	if c < 1 || f < 1 {
		return Params{}, fmt.Errorf("%s: c=%d f=%d: %w", methodCornuejolsParams, c, f, geco.ErrInvalidParameter)
	}
	if !finite(ratio) || ratio <= 0 {
		return Params{}, fmt.Errorf("%s: ratio=%g: %w", methodCornuejolsParams, ratio, geco.ErrInvalidParameter)
	}

	cx, cy := floats(c, s.Float64), floats(c, s.Float64)
	fx, fy := floats(f, s.Float64), floats(f, s.Float64)
	demands := ints(c, s, demandLo, demandHi)
	caps := ints(f, s, capacityLo, capacityHi)
	a := ints(f, s, fixedALo, fixedAHi)
	b := ints(f, s, fixedBLo, fixedBHi)

	p := Params{
		Demands:    demands,
		Capacities: make([]float64, f),
		FixedCosts: make([]float64, f),
	}
	totalDemand, totalCap := sum(demands), sum(caps)
	for j := range caps {
		p.FixedCosts[j] = math.Floor(a[j]*math.Sqrt(caps[j]) + b[j])
		p.Capacities[j] = math.Floor(caps[j] * ratio * totalDemand / totalCap)
	}
	p.TransportCosts = distances(cx, cy, fx, fy)
	for i, row := range p.TransportCosts {
		for j := range row {
			row[j] *= transportScale * demands[i]
		}
	}

	return p, nil
}

// Cornuejols builds a Cornuéjols instance from a fresh sampler seeded with seed.
func Cornuejols(c, f int, ratio float64, seed int64) (*model.Model, error) {
	p, err := CornuejolsParams(c, f, ratio, sampler.New(seed))
	if err != nil {
		return nil, err
	}
	return BuildNamed(p, "Cornuejols Facility Location")
}

func floats(n int, draw func() float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = draw()
	}
	return out
}

func ints(n int, s *sampler.Sampler, lo, hi int) []float64 {
	return floats(n, func() float64 { return float64(s.Int(lo, hi)) })
}

func sum(xs []float64) float64 {
	t := 0.0
	for _, x := range xs {
		t += x
	}
	return t
}

// distances returns the Euclidean distance matrix between customers (rows)
// and facilities (columns).
func distances(cx, cy, fx, fy []float64) [][]float64 {
	out := make([][]float64, len(cx))
	for i := range out {
		out[i] = make([]float64, len(fx))
		for j := range out[i] {
			out[i][j] = math.Hypot(cx[i]-fx[j], cy[i]-fy[j])
		}
	}
	return out
}
