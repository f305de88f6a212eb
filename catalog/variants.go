// SPDX-License-Identifier: MIT
// Package: geco/catalog

package catalog

import (
	"github.com/katalvlaran/geco/auction"
	"github.com/katalvlaran/geco/builder"
	"github.com/katalvlaran/geco/coloring"
	"github.com/katalvlaran/geco/core"
	"github.com/katalvlaran/geco/facility"
	"github.com/katalvlaran/geco/indset"
	"github.com/katalvlaran/geco/knapsack"
	"github.com/katalvlaran/geco/maxcut"
	"github.com/katalvlaran/geco/model"
	"github.com/katalvlaran/geco/packing"
	"github.com/katalvlaran/geco/production"
	"github.com/katalvlaran/geco/sampler"
	"github.com/katalvlaran/geco/scheduling"
	"github.com/katalvlaran/geco/setcover"
	"github.com/katalvlaran/geco/setpacking"
)

// reader keeps the first conversion error so Build funcs stay linear.
type reader struct {
	args Args
	err  error
}

func (r *reader) integer(name string) int {
	v, err := r.args.Int(name)
	r.keep(err)
	return v
}

func (r *reader) number(name string) float64 {
	v, err := r.args.Float64(name)
	r.keep(err)
	return v
}

func (r *reader) flag(name string) bool {
	v, err := r.args.Bool(name)
	r.keep(err)
	return v
}

func (r *reader) text(name string) string {
	v, err := r.args.String(name)
	r.keep(err)
	return v
}

func (r *reader) keep(err error) {
	if r.err == nil {
		r.err = err
	}
}

// erdosRenyi draws G(n,p) on the instance seed for the graph families that
// take a graph instead of drawing one.
func erdosRenyi(n int, p float64, seed int64) (*core.Graph, error) {
	return builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.ErdosRenyi(n, p))
}

func coloringVariant(name, summary string, build func(*core.Graph, int) (*model.Model, error)) Variant {
	return Variant{
		Name:    name,
		Summary: summary,
		Params: []Param{
			{Name: "n", Kind: Int, Default: 20, Doc: "vertices"},
			{Name: "p", Kind: Float, Default: 0.3, Doc: "edge probability"},
			{Name: "k", Kind: Int, Default: 8, Doc: "color bound"},
		},
		Build: func(a Args, seed int64) (*model.Model, error) {
			r := reader{args: a}
			n, p, k := r.integer("n"), r.number("p"), r.integer("k")
			if r.err != nil {
				return nil, r.err
			}
			g, err := erdosRenyi(n, p, seed)
			if err != nil {
				return nil, err
			}
			return build(g, k)
		},
	}
}

// biqmacVariant wires one BiqMac graph family into the naive max-cut model.
// Every family takes n; draw reads the rest of its arguments through r.
func biqmacVariant(name, summary, title string, params []Param, draw func(r *reader, n int, s *sampler.Sampler) (*core.Graph, error)) Variant {
	return Variant{
		Name:    name,
		Summary: summary,
		Params:  params,
		Build: func(a Args, seed int64) (*model.Model, error) {
			r := reader{args: a}
			n := r.integer("n")
			if r.err != nil {
				return nil, r.err
			}
			g, err := draw(&r, n, sampler.New(seed))
			if r.err != nil {
				return nil, r.err
			}
			if err != nil {
				return nil, err
			}
			return maxcut.NaiveNamed(g, title)
		},
	}
}

var (
	verticesParam = Param{Name: "n", Kind: Int, Default: 20, Doc: "vertices"}
	sideParam     = Param{Name: "n", Kind: Int, Default: 5, Doc: "torus side"}
	keepZeroParam = Param{Name: "keep_zero", Kind: Bool, Default: true, Doc: "keep zero-weight edges"}
	densityParam  = Param{Name: "d", Kind: Float, Default: 0.5, Doc: "edge density"}
)

var variants = []Variant{
	{
		Name:    "knapsack/yang",
		Summary: "Yang et al. (2020) 0/1 knapsack",
		Params:  []Param{{Name: "n", Kind: Int, Default: 100, Doc: "items"}},
		Build: func(a Args, seed int64) (*model.Model, error) {
			n, err := a.Int("n")
			if err != nil {
				return nil, err
			}
			return knapsack.Yang(n, seed)
		},
	},
	{
		Name:    "knapsack/pisinger",
		Summary: "Pisinger (2005) knapsack with a named item distribution",
		Params: []Param{
			{Name: "n", Kind: Int, Default: 100, Doc: "items"},
			{Name: "capacity", Kind: Float, Default: 10000.0, Doc: "knapsack capacity"},
			{Name: "distribution", Kind: String, Default: "uncorrelated", Doc: "item distribution"},
			{Name: "r", Kind: Float, Default: 1000.0, Doc: "data range"},
		},
		Build: func(a Args, seed int64) (*model.Model, error) {
			r := reader{args: a}
			n, capacity, dist, rng := r.integer("n"), r.number("capacity"), r.text("distribution"), r.number("r")
			if r.err != nil {
				return nil, r.err
			}
			d, err := knapsack.DistributionByName(dist, rng)
			if err != nil {
				return nil, err
			}
			return knapsack.Pisinger(n, capacity, d, seed)
		},
	},
	{
		Name:    "setcover/yang",
		Summary: "Yang et al. (2020) set cover, 10m elements",
		Params:  []Param{{Name: "m", Kind: Int, Default: 50, Doc: "sets"}},
		Build: func(a Args, seed int64) (*model.Model, error) {
			m, err := a.Int("m")
			if err != nil {
				return nil, err
			}
			return setcover.Yang(m, seed)
		},
	},
	{
		Name:    "setcover/sun",
		Summary: "Sun et al. (2020) set cover",
		Params: []Param{
			{Name: "n", Kind: Int, Default: 1000, Doc: "elements"},
			{Name: "m", Kind: Int, Default: 200, Doc: "sets"},
		},
		Build: func(a Args, seed int64) (*model.Model, error) {
			r := reader{args: a}
			n, m := r.integer("n"), r.integer("m")
			if r.err != nil {
				return nil, r.err
			}
			return setcover.Sun(n, m, seed)
		},
	},
	{
		Name:    "setcover/gasse",
		Summary: "Balas and Ho (1980) set cover as used by Gasse et al. (2019)",
		Params: []Param{
			{Name: "rows", Kind: Int, Default: 500, Doc: "elements"},
			{Name: "cols", Kind: Int, Default: 1000, Doc: "sets"},
			{Name: "density", Kind: Float, Default: 0.05, Doc: "nonzero fraction"},
			{Name: "max_coef", Kind: Int, Default: setcover.DefaultMaxCoef, Doc: "largest cost"},
		},
		Build: func(a Args, seed int64) (*model.Model, error) {
			r := reader{args: a}
			rows, cols, density, maxCoef := r.integer("rows"), r.integer("cols"), r.number("density"), r.integer("max_coef")
			if r.err != nil {
				return nil, r.err
			}
			return setcover.Gasse(rows, cols, density, maxCoef, seed)
		},
	},
	{
		Name:    "setpacking/yang",
		Summary: "Yang et al. (2020) set packing, 5m elements",
		Params:  []Param{{Name: "m", Kind: Int, Default: 50, Doc: "rows"}},
		Build: func(a Args, seed int64) (*model.Model, error) {
			m, err := a.Int("m")
			if err != nil {
				return nil, err
			}
			return setpacking.Yang(m, seed)
		},
	},
	{
		Name:    "facility/cornuejols",
		Summary: "Cornuejols et al. (1991) capacitated facility location",
		Params: []Param{
			{Name: "customers", Kind: Int, Default: 100, Doc: "customers"},
			{Name: "facilities", Kind: Int, Default: 100, Doc: "facilities"},
			{Name: "ratio", Kind: Float, Default: 5.0, Doc: "capacity to demand ratio"},
		},
		Build: func(a Args, seed int64) (*model.Model, error) {
			r := reader{args: a}
			c, f, ratio := r.integer("customers"), r.integer("facilities"), r.number("ratio")
			if r.err != nil {
				return nil, r.err
			}
			return facility.Cornuejols(c, f, ratio, seed)
		},
	},
	{
		Name:    "facility/beasley",
		Summary: "Beasley (1988) facility location with equal capacities",
		Params: []Param{
			{Name: "customers", Kind: Int, Default: 50, Doc: "customers"},
			{Name: "facilities", Kind: Int, Default: 25, Doc: "facilities"},
			{Name: "capacity", Kind: Float, Default: 5000.0, Doc: "capacity per facility"},
			{Name: "open", Kind: Int, Default: 5, Doc: "target open facilities"},
		},
		Build: func(a Args, seed int64) (*model.Model, error) {
			r := reader{args: a}
			c, f, capacity, open := r.integer("customers"), r.integer("facilities"), r.number("capacity"), r.integer("open")
			if r.err != nil {
				return nil, r.err
			}
			return facility.Beasley(c, f, capacity, open, seed)
		},
	},
	{
		Name:    "scheduling/hooker",
		Summary: "Hooker (2005) late tasks scheduling",
		Params: []Param{
			{Name: "facilities", Kind: Int, Default: scheduling.HookerSweepFacilities, Doc: "facilities"},
			{Name: "tasks", Kind: Int, Default: 10, Doc: "tasks"},
			{Name: "time_steps", Kind: Int, Default: 10, Doc: "horizon"},
		},
		Build: func(a Args, seed int64) (*model.Model, error) {
			r := reader{args: a}
			f, n, T := r.integer("facilities"), r.integer("tasks"), r.integer("time_steps")
			if r.err != nil {
				return nil, r.err
			}
			return scheduling.Hooker(f, n, T, seed)
		},
	},
	{
		Name:    "scheduling/heinz",
		Summary: "Heinz and Beck (2012) time-indexed scheduling",
		Params: []Param{
			{Name: "facilities", Kind: Int, Default: 3, Doc: "facilities"},
			{Name: "tasks", Kind: Int, Default: 10, Doc: "tasks"},
		},
		Build: func(a Args, seed int64) (*model.Model, error) {
			r := reader{args: a}
			f, n := r.integer("facilities"), r.integer("tasks")
			if r.err != nil {
				return nil, r.err
			}
			return scheduling.Heinz(f, n, seed)
		},
	},
	{
		Name:    "indset/barabasi-albert",
		Summary: "independent set on a Barabasi-Albert graph",
		Params: []Param{
			{Name: "n", Kind: Int, Default: 100, Doc: "vertices"},
			{Name: "m", Kind: Int, Default: 4, Doc: "edges per new vertex"},
		},
		Build: func(a Args, seed int64) (*model.Model, error) {
			r := reader{args: a}
			n, m := r.integer("n"), r.integer("m")
			if r.err != nil {
				return nil, r.err
			}
			return indset.BarabasiAlbert(n, m, seed)
		},
	},
	{
		Name:    "indset/gasse",
		Summary: "Gasse et al. (2019) clique independent set on G(n,p)",
		Params: []Param{
			{Name: "n", Kind: Int, Default: 100, Doc: "vertices"},
			{Name: "p", Kind: Float, Default: 0.05, Doc: "edge probability"},
		},
		Build: func(a Args, seed int64) (*model.Model, error) {
			r := reader{args: a}
			n, p := r.integer("n"), r.number("p")
			if r.err != nil {
				return nil, r.err
			}
			return indset.Gasse(n, p, seed)
		},
	},
	{
		Name:    "maxcut/tang",
		Summary: "Tang et al. (2020) max-cut on a weighted G(n,m)",
		Params: []Param{
			{Name: "n", Kind: Int, Default: 20, Doc: "vertices"},
			{Name: "m", Kind: Int, Default: 40, Doc: "edges"},
		},
		Build: func(a Args, seed int64) (*model.Model, error) {
			r := reader{args: a}
			n, m := r.integer("n"), r.integer("m")
			if r.err != nil {
				return nil, r.err
			}
			return maxcut.Tang(n, m, seed)
		},
	},
	{
		Name:    "maxcut/selby",
		Summary: "max-cut on a Selby chimera lattice with signed weights",
		Params:  []Param{{Name: "m", Kind: Int, Default: 2, Doc: "lattice side"}},
		Build: func(a Args, seed int64) (*model.Model, error) {
			m, err := a.Int("m")
			if err != nil {
				return nil, err
			}
			g, err := builder.BuildGraph([]core.GraphOption{core.WithWeighted()},
				[]builder.BuilderOption{builder.WithSeed(seed)}, builder.SelbyC(m))
			if err != nil {
				return nil, err
			}
			return maxcut.NaiveNamed(g, "Selby MaxCut")
		},
	},
	{
		Name:    "maxcut/lavrov",
		Summary: "max-cut on the Lavrov graph of order k (seed unused)",
		Params:  []Param{{Name: "k", Kind: Int, Default: 6, Doc: "ring length"}},
		Build: func(a Args, _ int64) (*model.Model, error) {
			k, err := a.Int("k")
			if err != nil {
				return nil, err
			}
			g, err := builder.BuildGraph(nil, nil, builder.Lavrov(k))
			if err != nil {
				return nil, err
			}
			return maxcut.NaiveNamed(g, "Lavrov MaxCut")
		},
	},
	biqmacVariant("maxcut/g05", "BiqMac g05 max-cut on an unweighted G(n,0.5)", "G05 MaxCut", []Param{verticesParam},
		func(_ *reader, n int, s *sampler.Sampler) (*core.Graph, error) { return maxcut.G05Params(n, s) }),
	biqmacVariant("maxcut/pm1s", "BiqMac pm1s max-cut, density 0.1 with weights ±1", "PM1S MaxCut", []Param{verticesParam, keepZeroParam},
		func(r *reader, n int, s *sampler.Sampler) (*core.Graph, error) {
			return maxcut.PM1SParams(n, r.flag("keep_zero"), s)
		}),
	biqmacVariant("maxcut/pm1d", "BiqMac pm1d max-cut, density 0.99 with weights ±1", "PM1D MaxCut", []Param{verticesParam, keepZeroParam},
		func(r *reader, n int, s *sampler.Sampler) (*core.Graph, error) {
			return maxcut.PM1DParams(n, r.flag("keep_zero"), s)
		}),
	biqmacVariant("maxcut/w", "BiqMac w max-cut, density d with weights Int(-10,10)", "WD MaxCut", []Param{verticesParam, densityParam, keepZeroParam},
		func(r *reader, n int, s *sampler.Sampler) (*core.Graph, error) {
			return maxcut.WDParams(n, r.number("d"), r.flag("keep_zero"), s)
		}),
	biqmacVariant("maxcut/pw", "BiqMac pw max-cut, density d with weights Int(0,10)", "PWD MaxCut", []Param{verticesParam, densityParam, keepZeroParam},
		func(r *reader, n int, s *sampler.Sampler) (*core.Graph, error) {
			return maxcut.PWDParams(n, r.number("d"), r.flag("keep_zero"), s)
		}),
	biqmacVariant("maxcut/t2g", "BiqMac t2g max-cut on an n×n torus with Gaussian weights", "T2G MaxCut", []Param{sideParam, keepZeroParam},
		func(r *reader, n int, s *sampler.Sampler) (*core.Graph, error) {
			return maxcut.T2GParams(n, r.flag("keep_zero"), s)
		}),
	biqmacVariant("maxcut/t2g-one", "n×n torus max-cut with balanced ±1 weights", "T2G One MaxCut", []Param{sideParam},
		func(_ *reader, n int, s *sampler.Sampler) (*core.Graph, error) { return maxcut.T2GOneParams(n, s) }),
	coloringVariant("coloring/assignment", "assignment coloring of G(n,p)", coloring.Assignment),
	coloringVariant("coloring/assignment-asymmetric", "assignment coloring with symmetry breaking", coloring.AssignmentAsymmetric),
	coloringVariant("coloring/partial-ordering", "partial-ordering coloring of G(n,p)", coloring.PartialOrdering),
	coloringVariant("coloring/hybrid-partial-ordering", "hybrid partial-ordering coloring of G(n,p)", coloring.HybridPartialOrdering),
	{
		Name:    "packing/tang",
		Summary: "Tang et al. (2020) packing",
		Params: []Param{
			{Name: "n", Kind: Int, Default: 60, Doc: "variables"},
			{Name: "m", Kind: Int, Default: 60, Doc: "rows"},
			{Name: "binary", Kind: Bool, Default: false, Doc: "binary variables"},
		},
		Build: func(a Args, seed int64) (*model.Model, error) {
			r := reader{args: a}
			n, m, binary := r.integer("n"), r.integer("m"), r.flag("binary")
			if r.err != nil {
				return nil, r.err
			}
			return packing.Tang(n, m, binary, seed)
		},
	},
	{
		Name:    "production/tang",
		Summary: "Tang et al. (2020) uncapacitated lot sizing",
		Params:  []Param{{Name: "horizon", Kind: Int, Default: 10, Doc: "periods"}},
		Build: func(a Args, seed int64) (*model.Model, error) {
			T, err := a.Int("horizon")
			if err != nil {
				return nil, err
			}
			return production.Tang(T, seed)
		},
	},
	{
		Name:    "auction/gasse",
		Summary: "Leyton-Brown et al. (2000) arbitrary combinatorial auction",
		Params: []Param{
			{Name: "items", Kind: Int, Default: 100, Doc: "items"},
			{Name: "bids", Kind: Int, Default: 500, Doc: "bids"},
			{Name: "integers", Kind: Bool, Default: false, Doc: "integral prices"},
		},
		Build: func(a Args, seed int64) (*model.Model, error) {
			r := reader{args: a}
			cfg := auction.DefaultConfig()
			cfg.Items, cfg.Bids, cfg.Integers = r.integer("items"), r.integer("bids"), r.flag("integers")
			if r.err != nil {
				return nil, r.err
			}
			return auction.Gasse(cfg, seed)
		},
	},
}
