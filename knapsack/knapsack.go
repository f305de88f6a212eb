// SPDX-License-Identifier: MIT
// Package: geco/knapsack

package knapsack

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/model"
)

const methodBuild = "Build"

// Params is a knapsack instance: item weights and profits plus a capacity.
type Params struct {
	Weights  []float64
	Profits  []float64
	Capacity float64
}

// N returns the number of items.
func (p Params) N() int { return len(p.Weights) }

// Validate checks a non-empty item list, equal lengths and non-negative data.
func (p Params) Validate() error {
	if len(p.Weights) == 0 {
		return fmt.Errorf("no items: %w", geco.ErrInvalidParameter)
	}
	if len(p.Weights) != len(p.Profits) {
		return fmt.Errorf("%d weights vs %d profits: %w", len(p.Weights), len(p.Profits), geco.ErrInvalidParameter)
	}
	if p.Capacity < 0 {
		return fmt.Errorf("capacity %g < 0: %w", p.Capacity, geco.ErrInvalidParameter)
	}
	for i := range p.Weights {
		if p.Weights[i] < 0 || p.Profits[i] < 0 {
			return fmt.Errorf("item %d: weight %g, profit %g: %w", i, p.Weights[i], p.Profits[i], geco.ErrInvalidParameter)
		}
	}
	return nil
}

// Build returns the knapsack Model named "Knapsack".
func Build(p Params) (*model.Model, error) {
	return BuildNamed(p, "Knapsack")
}

// BuildNamed is Build with a caller-chosen problem name.
func BuildNamed(p Params, name string) (*model.Model, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	m := model.New(name)
	row := model.NewExpr()
	for i, profit := range p.Profits {
		x, err := m.AddBinary("x_"+strconv.Itoa(i), profit)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
		row.Add(x, p.Weights[i])
	}
	if err := m.AddConstraint("capacity", row, model.LE, p.Capacity); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	if err := m.SetSense(model.Maximize); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	return m, nil
}
