// Package sampler provides the seeded pseudo-random source every generator in
// geco draws from.
//
// A Sampler wraps a *rand.Rand built from rand.NewSource(seed). Two samplers
// created from the same seed produce the same ordered sequence of draws; no
// package-level sampler exists, so unrelated generation calls never share
// state.
//
// Primitive draws and their cost in underlying source draws:
//
//	Float64()             1 draw, uniform in [0,1)
//	Uniform(a,b)          1 draw, a + (b-a)*Float64()
//	Int(a,b)              1 draw, uniform integer in [a,b] (inclusive)
//	Intn(n)               1 draw, uniform integer in [0,n)
//	Bernoulli(p)          1 draw, Float64() < p
//	Normal(mu,sigma)      ≥ 1 draw, ziggurat NormFloat64 (rarely more than one)
//	Sample(n,k)           k draws, partial Fisher–Yates over 0..n-1
//	SampleFrom(pop,k)     k draws, same algorithm over a copy of pop
//	Choice(pop)           1 draw
//	WeightedChoice(w)     1 draw, cumulative search
//	Perm(n), Shuffle(n,·) rand.Rand semantics
//	Split()               1 draw (Int63) seeding an independent child
//
// Generators document their draw order in terms of these primitives; the
// golden tests in each family pin that order.
//
// Concurrency: a Sampler is NOT safe for concurrent use. Draw order is part of
// its contract, so two call sites must never consume one Sampler at once.
package sampler
