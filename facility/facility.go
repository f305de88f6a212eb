// SPDX-License-Identifier: MIT
// Package: geco/facility

package facility

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/model"
)

const methodBuild = "Build"

// Params is a capacitated facility location instance.
// TransportCosts[i][j] is the cost of serving all of customer i from j.
type Params struct {
	TransportCosts [][]float64
	Demands        []float64
	Capacities     []float64
	FixedCosts     []float64
}

// Customers returns c.
func (p Params) Customers() int { return len(p.Demands) }

// Facilities returns f.
func (p Params) Facilities() int { return len(p.Capacities) }

// Validate checks that the shapes agree and the data is finite and
// non-negative where the formulation requires it.
func (p Params) Validate() error {
	c, f := p.Customers(), p.Facilities()
	if c == 0 || f == 0 {
		return fmt.Errorf("%d customers, %d facilities: %w", c, f, geco.ErrInvalidParameter)
	}
	if len(p.FixedCosts) != f || len(p.TransportCosts) != c {
		return fmt.Errorf("shape mismatch: %d fixed costs, %d transport rows: %w",
			len(p.FixedCosts), len(p.TransportCosts), geco.ErrInvalidParameter)
	}
	for i, row := range p.TransportCosts {
		if len(row) != f {
			return fmt.Errorf("transport row %d has %d entries, want %d: %w", i, len(row), f, geco.ErrInvalidParameter)
		}
		for _, v := range row {
			if !finite(v) {
				return fmt.Errorf("transport row %d: %g: %w", i, v, geco.ErrInvalidParameter)
			}
		}
	}
	for i, d := range p.Demands {
		if !finite(d) || d < 0 {
			return fmt.Errorf("demand %d = %g: %w", i, d, geco.ErrInvalidParameter)
		}
	}
	for j := range p.Capacities {
		if !finite(p.Capacities[j]) || p.Capacities[j] < 0 || !finite(p.FixedCosts[j]) {
			return fmt.Errorf("facility %d: capacity %g, fixed cost %g: %w",
				j, p.Capacities[j], p.FixedCosts[j], geco.ErrInvalidParameter)
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Build returns the Model named "Capacitated Facility Location".
func Build(p Params) (*model.Model, error) {
	return BuildNamed(p, "Capacitated Facility Location")
}

// BuildNamed is Build with a caller-chosen problem name.
func BuildNamed(p Params, name string) (*model.Model, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	c, f := p.Customers(), p.Facilities()

	m := model.New(name)
	x := make([][]model.Var, c)
	for i := range x {
		x[i] = make([]model.Var, f)
		for j := range x[i] {
			v, err := m.AddBinary(pairName("x", i, j), p.TransportCosts[i][j])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodBuild, err)
			}
			x[i][j] = v
		}
	}
	y := make([]model.Var, f)
	for j := range y {
		v, err := m.AddBinary("y_"+strconv.Itoa(j), p.FixedCosts[j])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
		y[j] = v
	}

	add := func(name string, e *model.LinExpr, rel model.Relation, rhs float64) error {
		if err := m.AddConstraint(name, e, rel, rhs); err != nil {
			return fmt.Errorf("%s: %w", methodBuild, err)
		}
		return nil
	}

	totalDemand := 0.0
	for i := 0; i < c; i++ {
		totalDemand += p.Demands[i]
		if err := add("demand_"+strconv.Itoa(i), model.Sum(x[i]...), model.GE, 1); err != nil {
			return nil, err
		}
	}
	for j := 0; j < f; j++ {
		e := model.NewExpr()
		for i := 0; i < c; i++ {
			e.Add(x[i][j], p.Demands[i])
		}
		e.Add(y[j], -p.Capacities[j])
		if err := add("capacity_"+strconv.Itoa(j), e, model.LE, 0); err != nil {
			return nil, err
		}
	}
	total := model.NewExpr()
	for j := 0; j < f; j++ {
		total.Add(y[j], p.Capacities[j])
	}
	if err := add("total", total, model.GE, totalDemand); err != nil {
		return nil, err
	}
	for i := 0; i < c; i++ {
		for j := 0; j < f; j++ {
			e := model.NewExpr().Add(x[i][j], 1).Add(y[j], -1)
			if err := add(pairName("link", i, j), e, model.LE, 0); err != nil {
				return nil, err
			}
		}
	}
	if err := m.SetSense(model.Minimize); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	return m, nil
}

func pairName(prefix string, i, j int) string {
	return prefix + "_" + strconv.Itoa(i) + "_" + strconv.Itoa(j)
}
