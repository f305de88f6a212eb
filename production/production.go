// SPDX-License-Identifier: MIT
// Package: geco/production

package production

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/model"
	"github.com/katalvlaran/geco/sampler"
)

const (
	methodBuild      = "Build"
	methodTangParams = "TangParams"
)

// Tang instance constants.
const (
	TangMaxLot         = 100
	TangInitialStorage = 0
	TangFinalStorage   = 20
)

// Params is a lot-sizing instance. Every per-period slice has Horizon+1
// entries indexed by period.
type Params struct {
	Horizon        int
	MaxLot         float64
	InitialStorage float64
	FinalStorage   float64
	UnitCosts      []float64 // p
	SetupCosts     []float64 // q
	HoldingCosts   []float64 // h
	Demands        []float64 // d
}

// Validate checks the horizon, slice lengths and finiteness.
func (p Params) Validate() error {
	if p.Horizon < 1 {
		return fmt.Errorf("horizon %d < 1: %w", p.Horizon, geco.ErrInvalidParameter)
	}
	if !(p.MaxLot > 0) || math.IsInf(p.MaxLot, 0) {
		return fmt.Errorf("max lot %g: %w", p.MaxLot, geco.ErrInvalidParameter)
	}
	for _, f := range []struct {
		name string
		x    float64
	}{{"initial", p.InitialStorage}, {"final", p.FinalStorage}} {
		if !(f.x >= 0) || math.IsInf(f.x, 0) {
			return fmt.Errorf("%s storage %g: %w", f.name, f.x, geco.ErrInvalidParameter)
		}
	}
	for _, f := range []struct {
		name string
		xs   []float64
	}{
		{"unit costs", p.UnitCosts},
		{"setup costs", p.SetupCosts},
		{"holding costs", p.HoldingCosts},
		{"demands", p.Demands},
	} {
		if len(f.xs) != p.Horizon+1 {
			return fmt.Errorf("%d %s for horizon %d: %w", len(f.xs), f.name, p.Horizon, geco.ErrInvalidParameter)
		}
		for t, x := range f.xs {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("%s[%d]=%g: %w", f.name, t, x, geco.ErrInvalidParameter)
			}
		}
	}
	return nil
}

// Build returns the lot-sizing Model named "Production Planning".
// Columns per period t are x_t (t ≥ 1), y_t, s_t; rows are balance_t and
// setup_t for t = 1..T, then initial and final.
func Build(p Params) (*model.Model, error) {
	return BuildNamed(p, "Production Planning")
}

// BuildNamed is Build with a caller-chosen problem name.
func BuildNamed(p Params, name string) (*model.Model, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	T := p.Horizon
	m := model.New(name)
	x := make([]model.Var, T+1)
	y := make([]model.Var, T+1)
	s := make([]model.Var, T+1)
	for t := 0; t <= T; t++ {
		var err error
		ts := strconv.Itoa(t)
		if t > 0 {
			if x[t], err = m.AddInteger("x_"+ts, 0, model.Inf, p.UnitCosts[t]); err != nil {
				return nil, fmt.Errorf("%s: %w", methodBuild, err)
			}
		}
		if y[t], err = m.AddBinary("y_"+ts, p.SetupCosts[t]); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
		if s[t], err = m.AddInteger("s_"+ts, 0, model.Inf, p.HoldingCosts[t]); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}

	add := func(name string, e *model.LinExpr, rel model.Relation, rhs float64) error {
		if err := m.AddConstraint(name, e, rel, rhs); err != nil {
			return fmt.Errorf("%s: %w", methodBuild, err)
		}
		return nil
	}
	for t := 1; t <= T; t++ {
		ts := strconv.Itoa(t)
		balance := model.NewExpr().Add(s[t-1], 1).Add(x[t], 1).Add(s[t], -1)
		if err := add("balance_"+ts, balance, model.EQ, p.Demands[t]); err != nil {
			return nil, err
		}
		setup := model.NewExpr().Add(x[t], 1).Add(y[t], -p.MaxLot)
		if err := add("setup_"+ts, setup, model.LE, 0); err != nil {
			return nil, err
		}
	}
	if err := add("initial", model.Sum(s[0]), model.EQ, p.InitialStorage); err != nil {
		return nil, err
	}
	if err := add("final", model.Sum(s[T]), model.EQ, p.FinalStorage); err != nil {
		return nil, err
	}
	if err := m.SetSense(model.Minimize); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	return m, nil
}

// TangParams draws the lot-sizing instance of Tang, Agrawal and Faenza
// (2020) with horizon T, max lot TangMaxLot and storages TangInitialStorage
// and TangFinalStorage.
//
// Draw order: for each period t = 0..T, in turn p_t, h_t, q_t, d_t, each
// Int(1,10).
//
// Errors: T < 1 → geco.ErrInvalidParameter.
func TangParams(T int, s *sampler.Sampler) (Params, error) {
	if T < 1 {
		return Params{}, fmt.Errorf("%s: horizon %d < 1: %w", methodTangParams, T, geco.ErrInvalidParameter)
	}
	p := Params{
		Horizon:        T,
		MaxLot:         TangMaxLot,
		InitialStorage: TangInitialStorage,
		FinalStorage:   TangFinalStorage,
		UnitCosts:      make([]float64, T+1),
		SetupCosts:     make([]float64, T+1),
		HoldingCosts:   make([]float64, T+1),
		Demands:        make([]float64, T+1),
	}
	for t := 0; t <= T; t++ {
		p.UnitCosts[t] = float64(s.Int(1, 10))
		p.HoldingCosts[t] = float64(s.Int(1, 10))
		p.SetupCosts[t] = float64(s.Int(1, 10))
		p.Demands[t] = float64(s.Int(1, 10))
	}
	return p, nil
}

// Tang builds a Tang instance from a fresh sampler seeded with seed.
func Tang(T int, seed int64) (*model.Model, error) {
	p, err := TangParams(T, sampler.New(seed))
	if err != nil {
		return nil, err
	}
	return BuildNamed(p, "Tang Production Planning")
}
