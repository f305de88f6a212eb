// SPDX-License-Identifier: MIT
// Package: geco/model
//
// solver.go — ports to external collaborators (solver capability, codec).
//
// The core only drives the construction subset of Solver (AddVariable,
// AddConstraint, SetObjectiveSense). Optimize and the value accessors are
// part of the port so adapters and integration tests share one interface.

package model

import "fmt"

// Handle identifies a variable inside a Solver.
type Handle int

// HandleTerm is a coefficient·handle pair passed to a Solver.
type HandleTerm struct {
	Handle Handle
	Coef   float64
}

// Status is the outcome reported by a Solver after Optimize.
type Status int

const (
	// StatusUnknown means Optimize was not run or gave no verdict.
	StatusUnknown Status = iota
	// StatusOptimal means an optimal solution was proven.
	StatusOptimal
	// StatusInfeasible means no feasible assignment exists.
	StatusInfeasible
	// StatusUnbounded means the objective is unbounded.
	StatusUnbounded
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// Solver is the external solving capability consumed by geco.
type Solver interface {
	AddVariable(v Variable) (Handle, error)
	AddConstraint(terms []HandleTerm, rel Relation, rhs float64) error
	SetObjectiveSense(s Sense) error
	Optimize() (Status, error)
	ObjectiveValue() float64
	VariableValue(h Handle) float64
}

// Codec serializes Models to a textual format and back. Adapters own it;
// Decode(Encode(m)) must be Equal to m.
type Codec interface {
	Encode(m *Model) ([]byte, error)
	Decode(data []byte) (*Model, error)
}

// Load replays m into s using only the construction subset: all variables in
// column order, then all constraints in row order, then the objective sense.
// It returns the handle of every column.
func Load(m *Model, s Solver) ([]Handle, error) {
	if m.sense == SenseUnset {
		return nil, fmt.Errorf("Load(%s): objective sense unset: %w", m.name, ErrBadRelation)
	}
	handles := make([]Handle, len(m.vars))
	for i, v := range m.vars {
		h, err := s.AddVariable(v)
		if err != nil {
			return nil, fmt.Errorf("Load(%s): AddVariable(%s): %w", m.name, v.Name, err)
		}
		handles[i] = h
	}
	for _, c := range m.cons {
		terms := make([]HandleTerm, len(c.Terms))
		for j, t := range c.Terms {
			terms[j] = HandleTerm{Handle: handles[t.Var], Coef: t.Coef}
		}
		if err := s.AddConstraint(terms, c.Rel, c.RHS); err != nil {
			return nil, fmt.Errorf("Load(%s): AddConstraint(%s): %w", m.name, c.Name, err)
		}
	}
	if err := s.SetObjectiveSense(m.sense); err != nil {
		return nil, fmt.Errorf("Load(%s): SetObjectiveSense: %w", m.name, err)
	}

	return handles, nil
}
