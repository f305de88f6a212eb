// Package builder provides seeded, deterministic graph constructors for the
// graph-based problem families (independent set, max-cut, coloring).
//
// The package offers:
//
//   - One orchestrator, BuildGraph(gopts, bopts, cons...), which creates a
//     core.Graph, resolves options into an immutable builderConfig and runs
//     every Constructor in order.
//   - Random topologies: ErdosRenyi (G(n,p)), GNM (G(n,m)), BarabasiAlbert.
//   - Fixed topologies: Complete, Cycle, Lavrov, Chimera, SelbyC.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, SymbolNumberIDFn.
//   - Edge-weight distributions (WeightFn): ConstantWeightFn,
//     UniformIntWeightFn, ScaledIntWeightFn, UniformWeightFn.
//
// Randomness always comes from the *sampler.Sampler in the config (WithSeed or
// WithSampler); there is no package-level source. Each constructor documents
// its draw order. Edge weights are drawn from the same sampler immediately
// after the edge is accepted, and only when the graph is weighted.
//
// Errors are sentinels of this package; every one of them also matches a
// root taxonomy error (geco.ErrInvalidParameter or geco.ErrInfeasibleConstruction)
// under errors.Is.
package builder
