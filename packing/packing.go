// SPDX-License-Identifier: MIT
// Package: geco/packing

// Package packing generates general packing instances
//
//	max Σ c_i v_i  s.t.  Σ_i a_ki v_i ≤ b_k,  v ≥ 0 integer (or binary)
//
// with the parameters of Tang, Agrawal and Faenza, "Reinforcement Learning
// for Integer Programming: Learning to Cut" (2020), appendix A.2.
package packing

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

// Params is a packing instance with len(Costs) variables and len(Limits)
// rows. Coefficients is row-major: Coefficients[k][i] belongs to row k.
type Params struct {
	Costs        []float64
	Coefficients [][]float64
	Limits       []float64
	// Binary restricts variables to {0,1}; otherwise they are
	// non-negative integers without upper bound.
	Binary bool
}

// Validate checks dimensions and finiteness.
func (p Params) Validate() error {
	n := len(p.Costs)
	if n == 0 {
		return fmt.Errorf("no variables: %w", geco.ErrInvalidParameter)
	}
	if len(p.Coefficients) != len(p.Limits) {
		return fmt.Errorf("%d coefficient rows for %d limits: %w",
			len(p.Coefficients), len(p.Limits), geco.ErrInvalidParameter)
	}
	for i, c := range p.Costs {
		if !finite(c) {
			return fmt.Errorf("cost[%d]=%g: %w", i, c, geco.ErrInvalidParameter)
		}
	}
	for k, row := range p.Coefficients {
		if len(row) != n {
			return fmt.Errorf("row %d has %d coefficients, want %d: %w", k, len(row), n, geco.ErrInvalidParameter)
		}
		for i, a := range row {
			if !finite(a) {
				return fmt.Errorf("coefficient[%d][%d]=%g: %w", k, i, a, geco.ErrInvalidParameter)
			}
		}
		if !finite(p.Limits[k]) {
			return fmt.Errorf("limit[%d]=%g: %w", k, p.Limits[k], geco.ErrInvalidParameter)
		}
	}
	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// Build returns the packing Model named "Packing". Rows whose coefficients
// are all zero are always satisfied and are left out.
func Build(p Params) (*model.Model, error) {
	return BuildNamed(p, "Packing")
}

// BuildNamed is Build with a caller-chosen problem name.
func BuildNamed(p Params, name string) (*model.Model, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	m := model.New(name)
	vars := make([]model.Var, len(p.Costs))
	for i, c := range p.Costs {
		var (
			v   model.Var
			err error
		)
		if p.Binary {
			v, err = m.AddBinary("v_"+strconv.Itoa(i), c)
		} else {
			v, err = m.AddInteger("v_"+strconv.Itoa(i), 0, model.Inf, c)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
		vars[i] = v
	}
	for k, row := range p.Coefficients {
		expr := model.NewExpr()
		for i, a := range row {
			if a != 0 {
				expr.Add(vars[i], a)
			}
		}
		if expr.Len() == 0 {
			continue
		}
		if err := m.AddConstraint("pack_"+strconv.Itoa(k), expr, model.LE, p.Limits[k]); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}
	if err := m.SetSense(model.Maximize); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	return m, nil
}

// TangParams draws a packing instance with n variables and m rows.
//
// Draw order: n costs Int(1,10); then m·n coefficients row by row, Int(5,30)
// when binary and Int(0,5) otherwise; then m limits, Int(10n,20n) when binary
// and Int(9n,10n) otherwise.
//
// Errors: n < 1 or m < 0 → geco.ErrInvalidParameter.
func TangParams(n, m int, binary bool, s *sampler.Sampler) (Params, error) {
	if n < 1 || m < 0 {
		return Params{}, fmt.Errorf("%s: n=%d, m=%d: %w", methodTangParams, n, m, geco.ErrInvalidParameter)
	}
	coefLo, coefHi, limLo, limHi := 0, 5, 9*n, 10*n
	if binary {
		coefLo, coefHi, limLo, limHi = 5, 30, 10*n, 20*n
	}

	p := Params{
		Costs:        make([]float64, n),
		Coefficients: make([][]float64, m),
		Limits:       make([]float64, m),
		Binary:       binary,
	}
	for i := range p.Costs {
		p.Costs[i] = float64(s.Int(1, 10))
	}
	for k := range p.Coefficients {
		row := make([]float64, n)
		for i := range row {
			row[i] = float64(s.Int(coefLo, coefHi))
		}
		p.Coefficients[k] = row
	}
	for k := range p.Limits {
		p.Limits[k] = float64(s.Int(limLo, limHi))
	}
	return p, nil
}

// Tang builds a Tang instance from a fresh sampler seeded with seed.
func Tang(n, m int, binary bool, seed int64) (*model.Model, error) {
	p, err := TangParams(n, m, binary, sampler.New(seed))
	if err != nil {
		return nil, err
	}
	return BuildNamed(p, "Tang Packing")
}
