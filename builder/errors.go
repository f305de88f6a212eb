// SPDX-License-Identifier: MIT
// Package: geco/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics; each sentinel also
//     matches the geco taxonomy error it wraps.
//   • Implementations attach context with %w at the detection site.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"fmt"

	"github.com/katalvlaran/geco"
)

// ErrTooFewVertices indicates a size parameter (n, m, rows, cols, k) below the
// constructor's minimum.
var ErrTooFewVertices = fmt.Errorf("builder: parameter too small: %w", geco.ErrInvalidParameter)

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = fmt.Errorf("builder: probability out of range: %w", geco.ErrInvalidParameter)

// ErrNeedRandSource indicates a stochastic constructor ran without a sampler
// (WithSeed or WithSampler must be set).
var ErrNeedRandSource = fmt.Errorf("builder: sampler is required: %w", geco.ErrInvalidParameter)

// ErrTooManyEdges indicates more edges were requested than the vertex set can
// hold without parallel edges or loops.
var ErrTooManyEdges = fmt.Errorf("builder: too many edges requested: %w", geco.ErrInfeasibleConstruction)

// ErrConstructFailed indicates a nil constructor or a core rejection while
// building.
var ErrConstructFailed = fmt.Errorf("builder: construction failed: %w", geco.ErrInfeasibleConstruction)
