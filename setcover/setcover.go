// SPDX-License-Identifier: MIT
// Package: geco/setcover

package setcover

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/model"
)

const methodBuild = "Build"

// Params is a set cover instance: a cost per element and the sets that must
// each be covered by at least one chosen element.
type Params struct {
	Costs []float64
	Sets  [][]int
}

// N returns the number of elements.
func (p Params) N() int { return len(p.Costs) }

// M returns the number of sets.
func (p Params) M() int { return len(p.Sets) }

// Validate checks that every set is non-empty and references known elements.
func (p Params) Validate() error {
	if len(p.Costs) == 0 {
		return fmt.Errorf("no elements: %w", geco.ErrInvalidParameter)
	}
	for k, set := range p.Sets {
		if len(set) == 0 {
			return fmt.Errorf("set %d is empty: %w", k, geco.ErrInvalidParameter)
		}
		for _, e := range set {
			if e < 0 || e >= len(p.Costs) {
				return fmt.Errorf("set %d: element %d out of range [0,%d): %w",
					k, e, len(p.Costs), geco.ErrInvalidParameter)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of p.
func (p Params) Clone() Params {
	out := Params{Costs: append([]float64(nil), p.Costs...), Sets: make([][]int, len(p.Sets))}
	for k, set := range p.Sets {
		out.Sets[k] = append(make([]int, 0, len(set)), set...)
	}
	return out
}

// Build returns the set cover Model named "Set Cover".
func Build(p Params) (*model.Model, error) {
	return BuildNamed(p, "Set Cover")
}

// BuildNamed is Build with a caller-chosen problem name.
func BuildNamed(p Params, name string) (*model.Model, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	m := model.New(name)
	vars := make([]model.Var, len(p.Costs))
	for i, c := range p.Costs {
		v, err := m.AddBinary("v_"+strconv.Itoa(i), c)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
		vars[i] = v
	}
	for k, set := range p.Sets {
		row := model.NewExpr()
		for _, e := range set {
			row.Add(vars[e], 1)
		}
		if err := m.AddConstraint("cover_"+strconv.Itoa(k), row, model.GE, 1); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}
	if err := m.SetSense(model.Minimize); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	return m, nil
}
