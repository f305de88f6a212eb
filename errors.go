// SPDX-License-Identifier: MIT
// Package: geco
//
// errors.go — cross-package error taxonomy.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Detection sites attach context with %w: "YangParams: m=0 < 1: <sentinel>".
//   • Generators and builders never recover or retry; a failed call returns no model.

package geco

import "errors"

// ErrInvalidParameter indicates a size, probability, range or ratio outside
// the domain a generator or builder accepts (n ≤ 0, p ∉ [0,1], k > population).
var ErrInvalidParameter = errors.New("geco: invalid parameter")

// ErrInfeasibleConstruction indicates parameters that are valid one by one but
// cannot be satisfied together (e.g. more distinct edges than vertex pairs,
// a backbone expansion target smaller than the backbone).
var ErrInfeasibleConstruction = errors.New("geco: infeasible construction request")

// ErrUnsupportedVariant indicates a request for a named instance family,
// distribution or variant that is not implemented.
var ErrUnsupportedVariant = errors.New("geco: unsupported variant")
