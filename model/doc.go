// Package model defines the solver-agnostic optimization Model every
// formulation builder produces: named decision variables with domains,
// linear constraints compared to a right-hand side, and an objective sense.
//
// Construction rules enforced by the API, not by post-hoc validation:
//
//   - Variables are appended in creation order and addressed by Var handles.
//   - A constraint may only reference variables created earlier in the same
//     Model; a handle from another Model or a future index is rejected with
//     ErrUnknownVariable.
//   - Expression constants are moved to the right-hand side; repeated
//     variables in one expression are merged.
//   - The objective sense is set exactly once.
//
// The package also declares the two ports adapters implement:
//
//	Solver — the construction subset consumed through Load, plus Optimize/values
//	Codec  — Encode/Decode to a textual model format (see package lpformat)
package model
