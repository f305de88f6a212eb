// SPDX-License-Identifier: MIT
// Package: geco/maxcut

package maxcut

import (
	"fmt"

	"github.com/katalvlaran/geco/builder"
	"github.com/katalvlaran/geco/core"
	"github.com/katalvlaran/geco/sampler"
)

// Graph families of the BiqMac library (https://biqmac.aau.at/biqmaclib.html),
// generated in the manner of the rudy generator.
const (
	methodG05    = "G05Params"
	methodPM1S   = "PM1SParams"
	methodPM1D   = "PM1DParams"
	methodWD     = "WDParams"
	methodPWD    = "PWDParams"
	methodT2G    = "T2GParams"
	methodT2GOne = "T2GOneParams"

	g05Probability = 0.5
	pm1sDensity    = 0.1
	pm1dDensity    = 0.99
	t2gScale       = 1e5
)

func biqmac(method string, s *sampler.Sampler, fn builder.WeightFn, con builder.Constructor) (*core.Graph, error) {
	gopts := []core.GraphOption{core.WithWeighted()}
	bopts := []builder.BuilderOption{builder.WithSampler(s)}
	if fn == nil {
		gopts = nil
	} else {
		bopts = append(bopts, builder.WithWeightFn(fn))
	}
	g, err := builder.BuildGraph(gopts, bopts, con)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return g, nil
}

// G05Params draws the unweighted G(n, 0.5) graph of the g05 family.
func G05Params(n int, s *sampler.Sampler) (*core.Graph, error) {
	return biqmac(methodG05, s, nil, builder.ErdosRenyi(n, g05Probability))
}

// PM1SParams draws a density-0.1 graph with ±1 weights.
func PM1SParams(n int, keepZero bool, s *sampler.Sampler) (*core.Graph, error) {
	return biqmac(methodPM1S, s, builder.SignWeightFn(), builder.Density(n, pm1sDensity, keepZero))
}

// PM1DParams draws a density-0.99 graph with ±1 weights.
func PM1DParams(n int, keepZero bool, s *sampler.Sampler) (*core.Graph, error) {
	return biqmac(methodPM1D, s, builder.SignWeightFn(), builder.Density(n, pm1dDensity, keepZero))
}

// WDParams draws a density-d graph with weights Int(-10,10).
func WDParams(n int, d float64, keepZero bool, s *sampler.Sampler) (*core.Graph, error) {
	return biqmac(methodWD, s, builder.UniformIntWeightFn(-10, 10), builder.Density(n, d, keepZero))
}

// PWDParams draws a density-d graph with weights Int(0,10).
func PWDParams(n int, d float64, keepZero bool, s *sampler.Sampler) (*core.Graph, error) {
	return biqmac(methodPWD, s, builder.UniformIntWeightFn(0, 10), builder.Density(n, d, keepZero))
}

// T2GParams draws the n×n torus with weights 10⁵·N(0,1) truncated toward
// zero.
func T2GParams(n int, keepZero bool, s *sampler.Sampler) (*core.Graph, error) {
	return biqmac(methodT2G, s, builder.NormalIntWeightFn(0, 1, t2gScale), builder.Torus(n, keepZero))
}

// T2GOneParams draws the n×n torus whose 2n² edges carry exactly n² weights
// +1 and n² weights -1.
func T2GOneParams(n int, s *sampler.Sampler) (*core.Graph, error) {
	return biqmac(methodT2GOne, s, builder.BalancedSignWeightFn(n*n), builder.Torus(n, true))
}
