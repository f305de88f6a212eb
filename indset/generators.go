// SPDX-License-Identifier: MIT
// Package: geco/indset

package indset

import (
	"github.com/katalvlaran/geco/builder"
	"github.com/katalvlaran/geco/core"
	"github.com/katalvlaran/geco/model"
	"github.com/katalvlaran/geco/sampler"
)

// BarabasiAlbertParams draws an undirected Barabási–Albert graph with n
// vertices, each new vertex attaching to m existing ones.
func BarabasiAlbertParams(n, m int, s *sampler.Sampler) (*core.Graph, error) {
	return builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSampler(s)}, builder.BarabasiAlbert(n, m))
}

// BarabasiAlbert builds the pairwise model of a Barabási–Albert graph.
func BarabasiAlbert(n, m int, seed int64) (*model.Model, error) {
	g, err := BarabasiAlbertParams(n, m, sampler.New(seed))
	if err != nil {
		return nil, err
	}
	return BuildNamed(g, "Barabasi-Albert Independent Set")
}

// GasseParams draws an Erdős–Rényi G(n,p) graph, the independent set
// distribution of Gasse et al. (2019).
func GasseParams(n int, p float64, s *sampler.Sampler) (*core.Graph, error) {
	return builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSampler(s)}, builder.ErdosRenyi(n, p))
}

// Gasse builds the clique-partition model of a G(n,p) graph.
func Gasse(n int, p float64, seed int64) (*model.Model, error) {
	g, err := GasseParams(n, p, sampler.New(seed))
	if err != nil {
		return nil, err
	}
	return BuildCliqueNamed(g, "Gasse Independent Set")
}
