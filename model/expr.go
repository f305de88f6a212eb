// SPDX-License-Identifier: MIT
// Package: geco/model
//
// expr.go — LinExpr, a mutable builder for linear expressions.

package model

// LinExpr accumulates coefficient·variable terms plus a constant.
// Terms keep insertion order; merging of repeated variables happens when the
// expression is added to a Model.
type LinExpr struct {
	terms    []exprTerm
	constant float64
}

type exprTerm struct {
	v    Var
	coef float64
}

// NewExpr returns an empty expression.
func NewExpr() *LinExpr { return &LinExpr{} }

// Sum returns the expression Σ vars with unit coefficients.
func Sum(vars ...Var) *LinExpr {
	e := &LinExpr{terms: make([]exprTerm, 0, len(vars))}
	for _, v := range vars {
		e.terms = append(e.terms, exprTerm{v: v, coef: 1})
	}

	return e
}

// Add appends coef·v and returns e for chaining.
func (e *LinExpr) Add(v Var, coef float64) *LinExpr {
	e.terms = append(e.terms, exprTerm{v: v, coef: coef})
	return e
}

// AddConstant adds c to the expression constant.
func (e *LinExpr) AddConstant(c float64) *LinExpr {
	e.constant += c
	return e
}

// AddExpr appends scale·o (terms and constant).
func (e *LinExpr) AddExpr(o *LinExpr, scale float64) *LinExpr {
	for _, t := range o.terms {
		e.terms = append(e.terms, exprTerm{v: t.v, coef: scale * t.coef})
	}
	e.constant += scale * o.constant

	return e
}

// Len reports the number of raw (unmerged) terms.
func (e *LinExpr) Len() int { return len(e.terms) }

// Constant returns the accumulated constant.
func (e *LinExpr) Constant() float64 { return e.constant }
