// Package generator composes parameter generators into sequences of
// instances.
//
//	Stream             lazy, unbounded sequence over one evolving Sampler
//	GenerateN          the first n values of a fresh Stream
//	Backbone           related instances that share a fixed core
//	ExpandParameters   a function mapped over a Cartesian parameter grid
//
// None of these types is safe for concurrent use; see package batch for
// parallel generation with one seed per instance.
package generator
