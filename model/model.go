// SPDX-License-Identifier: MIT
// Package: geco/model
//
// model.go — the Model container and its construction methods.
//
// Contract:
//   • Variables and constraints are append-only; indices are stable.
//   • Every Var handle passed to AddConstraint must belong to this Model.
//   • Accessors return copies; callers cannot alias internal storage.

package model

import (
	"fmt"
	"math"
)

// Model is an optimization problem: variables, linear constraints, objective.
// A Model is owned by one component at a time and is not safe for concurrent
// mutation.
type Model struct {
	name   string
	vars   []Variable
	cons   []Constraint
	sense  Sense
	byName map[string]int
}

// New returns an empty Model with the given problem name.
func New(name string) *Model {
	return &Model{name: name, byName: make(map[string]int)}
}

// Name returns the problem name.
func (m *Model) Name() string { return m.name }

// SetName renames the problem.
func (m *Model) SetName(name string) { m.name = name }

// AddVariable appends a variable described by v and returns its handle.
//
// Errors: empty or duplicate name → ErrDuplicateVariable; NaN bounds,
// Lower > Upper, or binary bounds outside [0,1] → ErrBadBounds.
// Complexity: O(1) amortized.
func (m *Model) AddVariable(v Variable) (Var, error) {
	if v.Name == "" {
		return Var{}, fmt.Errorf("AddVariable: empty name: %w", ErrDuplicateVariable)
	}
	if _, dup := m.byName[v.Name]; dup {
		return Var{}, fmt.Errorf("AddVariable(%s): %w", v.Name, ErrDuplicateVariable)
	}
	if math.IsNaN(v.Lower) || math.IsNaN(v.Upper) || math.IsNaN(v.Obj) || v.Lower > v.Upper {
		return Var{}, fmt.Errorf("AddVariable(%s): bounds [%g,%g]: %w", v.Name, v.Lower, v.Upper, ErrBadBounds)
	}
	if v.Type == Binary && (v.Lower < 0 || v.Upper > 1) {
		return Var{}, fmt.Errorf("AddVariable(%s): binary bounds [%g,%g]: %w", v.Name, v.Lower, v.Upper, ErrBadBounds)
	}

	idx := len(m.vars)
	m.vars = append(m.vars, v)
	m.byName[v.Name] = idx

	return Var{owner: m, index: idx}, nil
}

// AddBinary appends a {0,1} variable with objective coefficient obj.
func (m *Model) AddBinary(name string, obj float64) (Var, error) {
	return m.AddVariable(Variable{Name: name, Type: Binary, Lower: 0, Upper: 1, Obj: obj})
}

// AddInteger appends an integer variable bounded by [lb, ub] (ub may be Inf).
func (m *Model) AddInteger(name string, lb, ub, obj float64) (Var, error) {
	return m.AddVariable(Variable{Name: name, Type: Integer, Lower: lb, Upper: ub, Obj: obj})
}

// AddContinuous appends a continuous variable bounded by [lb, ub].
func (m *Model) AddContinuous(name string, lb, ub, obj float64) (Var, error) {
	return m.AddVariable(Variable{Name: name, Type: Continuous, Lower: lb, Upper: ub, Obj: obj})
}

// AddConstraint appends the row  expr  rel  rhs. The expression constant is
// moved to the right-hand side and repeated variables are merged in first
// occurrence order.
//
// Errors: a handle of another Model or an unknown column → ErrUnknownVariable;
// no terms → ErrEmptyConstraint; bad relation or non-finite rhs → ErrBadRelation.
func (m *Model) AddConstraint(name string, expr *LinExpr, rel Relation, rhs float64) error {
	if expr == nil || len(expr.terms) == 0 {
		return fmt.Errorf("AddConstraint(%s): %w", name, ErrEmptyConstraint)
	}
	terms := make([]Term, 0, len(expr.terms))
	for _, t := range expr.terms {
		if t.v.owner != m {
			return fmt.Errorf("AddConstraint(%s): column %d of another model: %w", name, t.v.index, ErrUnknownVariable)
		}
		terms = append(terms, Term{Var: t.v.index, Coef: t.coef})
	}

	return m.AddRow(name, terms, rel, rhs-expr.constant)
}

// AddRow appends a constraint given raw column terms. It is the entry point
// for codecs and transformations that work with indices instead of handles.
// Same errors as AddConstraint.
func (m *Model) AddRow(name string, terms []Term, rel Relation, rhs float64) error {
	if len(terms) == 0 {
		return fmt.Errorf("AddRow(%s): %w", name, ErrEmptyConstraint)
	}
	if rel != LE && rel != GE && rel != EQ {
		return fmt.Errorf("AddRow(%s): relation %d: %w", name, rel, ErrBadRelation)
	}
	if math.IsNaN(rhs) || math.IsInf(rhs, 0) {
		return fmt.Errorf("AddRow(%s): rhs %g: %w", name, rhs, ErrBadRelation)
	}

	merged := make([]Term, 0, len(terms))
	pos := make(map[int]int, len(terms))
	repeated := false
	for _, t := range terms {
		if t.Var < 0 || t.Var >= len(m.vars) {
			return fmt.Errorf("AddRow(%s): column %d of %d: %w", name, t.Var, len(m.vars), ErrUnknownVariable)
		}
		if p, ok := pos[t.Var]; ok {
			merged[p].Coef += t.Coef
			repeated = true
			continue
		}
		pos[t.Var] = len(merged)
		merged = append(merged, t)
	}
	if repeated {
		// drop terms that cancelled out while merging; explicit zeros stay
		kept := merged[:0]
		seen := make(map[int]int, len(terms))
		for _, t := range terms {
			seen[t.Var]++
		}
		for _, t := range merged {
			if t.Coef == 0 && seen[t.Var] > 1 {
				continue
			}
			kept = append(kept, t)
		}
		merged = kept
		if len(merged) == 0 {
			return fmt.Errorf("AddRow(%s): all terms cancel: %w", name, ErrEmptyConstraint)
		}
	}

	m.cons = append(m.cons, Constraint{Name: name, Terms: merged, Rel: rel, RHS: rhs})

	return nil
}

// SetSense fixes the objective direction. It may be called once.
func (m *Model) SetSense(s Sense) error {
	if s != Minimize && s != Maximize {
		return fmt.Errorf("SetSense(%d): %w", s, ErrBadRelation)
	}
	if m.sense != SenseUnset {
		return fmt.Errorf("SetSense(%s): %w", s, ErrSenseAlreadySet)
	}
	m.sense = s

	return nil
}

// Sense returns the objective direction (SenseUnset until SetSense).
func (m *Model) Sense() Sense { return m.sense }

// NumVariables returns the column count.
func (m *Model) NumVariables() int { return len(m.vars) }

// NumConstraints returns the row count.
func (m *Model) NumConstraints() int { return len(m.cons) }

// Variable returns a copy of column i. Panics if i is out of range.
func (m *Model) Variable(i int) Variable { return m.vars[i] }

// Constraint returns a copy of row i, including its own Terms slice.
// Panics if i is out of range.
func (m *Model) Constraint(i int) Constraint {
	c := m.cons[i]
	c.Terms = append([]Term(nil), c.Terms...)
	return c
}

// Var returns the handle of column i. Panics if i is out of range.
func (m *Model) Var(i int) Var {
	if i < 0 || i >= len(m.vars) {
		panic(fmt.Sprintf("model: Var(%d) out of range [0,%d)", i, len(m.vars)))
	}
	return Var{owner: m, index: i}
}

// VariableByName looks a column up by name.
func (m *Model) VariableByName(name string) (Var, bool) {
	i, ok := m.byName[name]
	if !ok {
		return Var{}, false
	}
	return Var{owner: m, index: i}, true
}

// Variables returns a copy of all columns in order.
func (m *Model) Variables() []Variable {
	return append([]Variable(nil), m.vars...)
}

// Constraints returns deep copies of all rows in order.
func (m *Model) Constraints() []Constraint {
	out := make([]Constraint, len(m.cons))
	for i := range m.cons {
		out[i] = m.Constraint(i)
	}
	return out
}

// Clone returns an independent deep copy.
func (m *Model) Clone() *Model {
	c := New(m.name)
	c.vars = m.Variables()
	c.cons = m.Constraints()
	c.sense = m.sense
	for k, v := range m.byName {
		c.byName[k] = v
	}
	return c
}

// Equal reports whether two models have the same name, sense, columns and
// rows in the same order.
func (m *Model) Equal(o *Model) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.name != o.name || m.sense != o.sense || len(m.vars) != len(o.vars) || len(m.cons) != len(o.cons) {
		return false
	}
	for i := range m.vars {
		if m.vars[i] != o.vars[i] {
			return false
		}
	}
	for i := range m.cons {
		a, b := m.cons[i], o.cons[i]
		if a.Name != b.Name || a.Rel != b.Rel || a.RHS != b.RHS || len(a.Terms) != len(b.Terms) {
			return false
		}
		for j := range a.Terms {
			if a.Terms[j] != b.Terms[j] {
				return false
			}
		}
	}
	return true
}

// ObjectiveValue evaluates Σ obj_i·x_i for a full assignment x.
func (m *Model) ObjectiveValue(x []float64) float64 {
	total := 0.0
	for i, v := range m.vars {
		total += v.Obj * x[i]
	}
	return total
}

// Feasible reports whether x satisfies every row and bound within tol.
// len(x) must equal NumVariables.
func (m *Model) Feasible(x []float64, tol float64) bool {
	if len(x) != len(m.vars) {
		return false
	}
	for i, v := range m.vars {
		if x[i] < v.Lower-tol || x[i] > v.Upper+tol {
			return false
		}
		if v.Type != Continuous && math.Abs(x[i]-math.Round(x[i])) > tol {
			return false
		}
	}
	for _, c := range m.cons {
		lhs := 0.0
		for _, t := range c.Terms {
			lhs += t.Coef * x[t.Var]
		}
		switch c.Rel {
		case LE:
			if lhs > c.RHS+tol {
				return false
			}
		case GE:
			if lhs < c.RHS-tol {
				return false
			}
		case EQ:
			if math.Abs(lhs-c.RHS) > tol {
				return false
			}
		}
	}
	return true
}
