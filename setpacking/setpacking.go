// SPDX-License-Identifier: MIT
// Package: geco/setpacking

// Package setpacking generates set packing instances.
//
// Formulation (Build): one binary v_i per element with objective value_i and
// one packing row Σ_{i∈R} v_i ≤ 1 per row R, maximize.
package setpacking

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/model"
	"github.com/katalvlaran/geco/sampler"
)

const (
	methodBuild      = "Build"
	methodYangParams = "YangParams"

	yangElementsPerRow = 5
)

// Params is a set packing instance.
type Params struct {
	Values []float64
	Rows   [][]int
}

// Validate checks that every row is non-empty and references known elements.
func (p Params) Validate() error {
	if len(p.Values) == 0 {
		return fmt.Errorf("no elements: %w", geco.ErrInvalidParameter)
	}
	for k, row := range p.Rows {
		if len(row) == 0 {
			return fmt.Errorf("row %d is empty: %w", k, geco.ErrInvalidParameter)
		}
		for _, e := range row {
			if e < 0 || e >= len(p.Values) {
				return fmt.Errorf("row %d: element %d out of range: %w", k, e, geco.ErrInvalidParameter)
			}
		}
	}
	return nil
}

// Build returns the set packing Model named "Set Packing".
func Build(p Params) (*model.Model, error) {
	return BuildNamed(p, "Set Packing")
}

// BuildNamed is Build with a caller-chosen problem name.
func BuildNamed(p Params, name string) (*model.Model, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	m := model.New(name)
	vars := make([]model.Var, len(p.Values))
	for i, v := range p.Values {
		x, err := m.AddBinary("v_"+strconv.Itoa(i), v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
		vars[i] = x
	}
	for k, row := range p.Rows {
		expr := model.NewExpr()
		for _, e := range row {
			expr.Add(vars[e], 1)
		}
		if err := m.AddConstraint("pack_"+strconv.Itoa(k), expr, model.LE, 1); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}
	if err := m.SetSense(model.Maximize); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	return m, nil
}

// YangParams draws the set packing instance of Yang, Boland, Dilkina and
// Savelsbergh (2020) with m rows over n = 5m elements.
//
// Draw order: n values Int(1,100); then m row sizes Int(⌊2n/25⌋+1, ⌊3n/25⌋-1);
// then per row one Sample(n, size).
//
// Errors: m < 1 or an empty row size range (m < 7, and m = 8) →
// geco.ErrInvalidParameter.
func YangParams(m int, s *sampler.Sampler) (Params, error) {
	if m < 1 {
		return Params{}, fmt.Errorf("%s: m=%d < 1: %w", methodYangParams, m, geco.ErrInvalidParameter)
	}
	n := yangElementsPerRow * m
	lo, hi := 2*n/25+1, 3*n/25-1
	if hi < lo {
		return Params{}, fmt.Errorf("%s: m=%d gives empty row size range [%d,%d]: %w",
			methodYangParams, m, lo, hi, geco.ErrInvalidParameter)
	}

	p := Params{Values: make([]float64, n), Rows: make([][]int, m)}
	for i := range p.Values {
		p.Values[i] = float64(s.Int(1, 100))
	}
	sizes := make([]int, m)
	for k := range sizes {
		sizes[k] = s.Int(lo, hi)
	}
	for k, size := range sizes {
		row, err := s.Sample(n, size)
		if err != nil {
			return Params{}, fmt.Errorf("%s: %w", methodYangParams, err)
		}
		sort.Ints(row)
		p.Rows[k] = row
	}

	return p, nil
}

// Yang builds a Yang instance from a fresh sampler seeded with seed.
func Yang(m int, seed int64) (*model.Model, error) {
	p, err := YangParams(m, sampler.New(seed))
	if err != nil {
		return nil, err
	}
	return BuildNamed(p, "Yang Set Packing")
}
