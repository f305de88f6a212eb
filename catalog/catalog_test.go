package catalog_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/catalog"
	"github.com/katalvlaran/geco/maxcut"
	"github.com/katalvlaran/geco/packing"
	"github.com/katalvlaran/geco/sampler"
	"github.com/katalvlaran/geco/setcover"
)

func TestNames(t *testing.T) {
	names := catalog.Names()
	assert.True(t, slices.IsSorted(names))
	assert.Len(t, names, 29)
	for _, want := range []string{"knapsack/yang", "setcover/gasse", "scheduling/heinz", "auction/gasse", "coloring/partial-ordering"} {
		assert.Contains(t, names, want)
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := catalog.Lookup("tsp/euclidean")
	assert.ErrorIs(t, err, geco.ErrUnsupportedVariant)
}

func TestEveryVariantBuildsWithDefaults(t *testing.T) {
	for _, name := range catalog.Names() {
		t.Run(name, func(t *testing.T) {
			v, err := catalog.Lookup(name)
			require.NoError(t, err)
			assert.Equal(t, name, v.Name)
			assert.NotEmpty(t, v.Summary)

			args, err := v.Resolve(nil)
			require.NoError(t, err)
			a, err := v.Build(args, 1)
			require.NoError(t, err)
			b, err := v.Build(args, 1)
			require.NoError(t, err)
			assert.Positive(t, a.NumVariables())
			assert.True(t, a.Equal(b))
		})
	}
}

func TestGenerate_MatchesDirectCall(t *testing.T) {
	got, err := catalog.Generate("setcover/yang", catalog.Args{"m": 10}, 3)
	require.NoError(t, err)
	want, err := setcover.Yang(10, 3)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	// flag-style strings convert
	got, err = catalog.Generate("packing/tang", catalog.Args{"n": "8", "m": "4", "binary": "true"}, 2)
	require.NoError(t, err)
	want, err = packing.Tang(8, 4, true, 2)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	got, err = catalog.Generate("maxcut/pw", catalog.Args{"n": 8, "d": 0.4, "keep_zero": false}, 5)
	require.NoError(t, err)
	g, err := maxcut.PWDParams(8, 0.4, false, sampler.New(5))
	require.NoError(t, err)
	want, err = maxcut.NaiveNamed(g, "PWD MaxCut")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}

func TestResolve(t *testing.T) {
	v, err := catalog.Lookup("facility/cornuejols")
	require.NoError(t, err)

	args, err := v.Resolve(catalog.Args{"customers": 10.0})
	require.NoError(t, err)
	c, err := args.Int("customers")
	require.NoError(t, err)
	assert.Equal(t, 10, c)
	ratio, err := args.Float64("ratio")
	require.NoError(t, err)
	assert.Equal(t, 5.0, ratio)

	for name, in := range map[string]catalog.Args{
		"unknown":      {"depots": 3},
		"mistyped":     {"customers": "many"},
		"fractional":   {"customers": 2.5},
		"bool for int": {"facilities": true},
		"string ratio": {"ratio": "high"},
		"nil value":    {"ratio": nil},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := v.Resolve(in)
			assert.ErrorIs(t, err, geco.ErrInvalidParameter)
		})
	}
}

func TestArgs(t *testing.T) {
	a := catalog.Args{"n": int64(4), "p": 1, "on": "false", "name": "circle", "flag": true}
	n, err := a.Int("n")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	p, err := a.Float64("p")
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)
	on, err := a.Bool("on")
	require.NoError(t, err)
	assert.False(t, on)
	s, err := a.String("name")
	require.NoError(t, err)
	assert.Equal(t, "circle", s)

	_, err = a.Int("missing")
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
	_, err = a.String("flag")
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
	_, err = a.Bool("name")
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
}

func TestBuild_GeneratorErrors(t *testing.T) {
	_, err := catalog.Generate("knapsack/pisinger", catalog.Args{"distribution": "zipf"}, 1)
	assert.ErrorIs(t, err, geco.ErrUnsupportedVariant)
	_, err = catalog.Generate("setcover/yang", catalog.Args{"m": 0}, 1)
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
}
