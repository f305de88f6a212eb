// Package geco generates benchmark instances of combinatorial optimization
// problems from seeded, reproducible parameter distributions.
//
// 🚀 What is geco?
//
//	A pure-Go toolkit that turns (sizes, seed) into a declarative model:
//		• Seeded sampling: sampler.Sampler, one instance per generation call
//		• Parameter generators: Cornuejols, Beasley, Pisinger, Yang, Sun, Gasse,
//		  Hooker, Heinz, Tang, Leyton-Brown ...
//		• Formulation builders: knapsack, set cover/packing, facility location,
//		  scheduling, max-cut, graph coloring, independent set, packing,
//		  production planning, combinatorial auction
//		• Composition: streams, backbone expansion, parameter grids, permutation
//
// Under the hood the module is organized as flat subpackages:
//
//	sampler/    — seeded draws (uniform, integer ranges, samples, choices)
//	model/      — variables, linear constraints, objective sense, Solver/Codec ports
//	lpformat/   — LP text codec used for faithful round trips
//	core/       — graph abstraction + dense relabeling
//	builder/    — seeded graph constructors (Erdős–Rényi, G(n,m), Barabási–Albert, Chimera)
//	knapsack/ setcover/ setpacking/ facility/ scheduling/
//	indset/ maxcut/ coloring/ packing/ production/ auction/
//	generator/  — Stream, Backbone, ExpandParameters
//	permute/    — row/column permutation of a Model
//	batch/      — parallel generation over independent seeds
//	catalog/    — named variants for tooling
//	cmd/geco/   — CLI: list, generate, sweep
//
// Data flow:
//
//	sizes + seed ─► Params ─► Build ─► *model.Model ─► (permute) ─► Codec / Solver
//
// Errors: every package wraps one of the sentinels declared here so callers
// can branch with errors.Is regardless of the family that failed.
package geco
