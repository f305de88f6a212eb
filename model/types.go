// SPDX-License-Identifier: MIT
// Package: geco/model
//
// types.go — value types of a Model: domains, relations, senses, records.

package model

import "math"

// VarType is the domain of a decision variable.
type VarType int

const (
	// Binary variables take values in {0,1}.
	Binary VarType = iota
	// Integer variables take integral values within [Lower, Upper].
	Integer
	// Continuous variables take real values within [Lower, Upper].
	Continuous
)

// String renders the type for logs and error messages.
func (t VarType) String() string {
	switch t {
	case Binary:
		return "binary"
	case Integer:
		return "integer"
	case Continuous:
		return "continuous"
	default:
		return "unknown"
	}
}

// Relation compares a linear expression with its right-hand side.
type Relation int

const (
	// LE is "expression ≤ rhs".
	LE Relation = iota
	// GE is "expression ≥ rhs".
	GE
	// EQ is "expression = rhs".
	EQ
)

// String returns the LP-format operator.
func (r Relation) String() string {
	switch r {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "="
	default:
		return "?"
	}
}

// Sense is the objective direction.
type Sense int

const (
	// SenseUnset is the zero value; builders always replace it.
	SenseUnset Sense = iota
	// Minimize the objective.
	Minimize
	// Maximize the objective.
	Maximize
)

// String renders the sense as used by LP files ("minimize"/"maximize").
func (s Sense) String() string {
	switch s {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return "unset"
	}
}

// Inf is the unbounded upper limit.
var Inf = math.Inf(1)

// Var is a handle to a variable of one specific Model.
type Var struct {
	owner *Model
	index int
}

// Index returns the variable's column position.
func (v Var) Index() int { return v.index }

// Variable describes one decision variable.
type Variable struct {
	Name  string
	Type  VarType
	Lower float64
	Upper float64 // Inf when unbounded
	Obj   float64 // objective coefficient
}

// Term is one coefficient·column product of a constraint row.
type Term struct {
	Var  int // column index
	Coef float64
}

// Constraint is a normalized linear row: Σ Terms  Rel  RHS.
type Constraint struct {
	Name  string
	Terms []Term
	Rel   Relation
	RHS   float64
}
