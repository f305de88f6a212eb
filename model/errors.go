package model

import "errors"

// Sentinel errors for model construction.
var (
	// ErrUnknownVariable indicates a term references a variable that was not
	// created earlier in the same Model.
	ErrUnknownVariable = errors.New("model: unknown variable")

	// ErrDuplicateVariable indicates two variables share a name.
	ErrDuplicateVariable = errors.New("model: duplicate variable name")

	// ErrBadBounds indicates lower > upper, NaN bounds, or bounds that do not
	// fit the variable type (binary outside [0,1]).
	ErrBadBounds = errors.New("model: invalid variable bounds")

	// ErrSenseAlreadySet indicates SetSense was called twice.
	ErrSenseAlreadySet = errors.New("model: objective sense already set")

	// ErrBadRelation indicates a relation outside {LE, GE, EQ} or a
	// non-finite right-hand side.
	ErrBadRelation = errors.New("model: invalid relation")
)

// ErrEmptyConstraint indicates a constraint without any term.
var ErrEmptyConstraint = errors.New("model: constraint has no terms")
