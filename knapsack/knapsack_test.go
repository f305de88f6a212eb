package knapsack_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/knapsack"
	"github.com/katalvlaran/geco/model"
	"github.com/katalvlaran/geco/model/modeltest"
	"github.com/katalvlaran/geco/sampler"
)

func TestBuild_Structure(t *testing.T) {
	p := knapsack.Params{Weights: []float64{2, 3, 4, 5}, Profits: []float64{3, 4, 5, 6}, Capacity: 5}
	m, err := knapsack.Build(p)
	require.NoError(t, err)

	assert.Equal(t, 4, m.NumVariables())
	assert.Equal(t, 1, m.NumConstraints())
	assert.Equal(t, model.Maximize, m.Sense())
	for i := 0; i < m.NumVariables(); i++ {
		assert.Equal(t, model.Binary, m.Variable(i).Type)
		assert.Equal(t, p.Profits[i], m.Variable(i).Obj)
	}
	c := m.Constraint(0)
	assert.Equal(t, model.LE, c.Rel)
	assert.Equal(t, 5.0, c.RHS)
	assert.Len(t, c.Terms, 4)
}

func TestBuild_AllItemsFit(t *testing.T) {
	m, err := knapsack.Build(knapsack.Params{Weights: []float64{1, 1, 1}, Profits: []float64{1, 1, 1}, Capacity: 5})
	require.NoError(t, err)

	res, err := modeltest.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, model.StatusOptimal, res.Status)
	assert.Equal(t, 3.0, res.Objective)
}

func TestBuild_Validation(t *testing.T) {
	cases := map[string]knapsack.Params{
		"empty":           {},
		"length mismatch": {Weights: []float64{1}, Profits: []float64{1, 2}},
		"negative cap":    {Weights: []float64{1}, Profits: []float64{1}, Capacity: -1},
		"negative weight": {Weights: []float64{-1}, Profits: []float64{1}, Capacity: 1},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := knapsack.Build(p)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, geco.ErrInvalidParameter)
		})
	}
}

func TestYangParams_DrawOrder(t *testing.T) {
	const n, seed = 12, 99
	got, err := knapsack.YangParams(n, sampler.New(seed))
	require.NoError(t, err)

	s := sampler.New(seed)
	want := knapsack.Params{Weights: make([]float64, n), Profits: make([]float64, n)}
	for i := range want.Profits {
		want.Profits[i] = float64(s.Int(1, 10*n))
	}
	sum := 0.0
	for i := range want.Weights {
		want.Weights[i] = float64(s.Int(1, 10*n))
		sum += want.Weights[i]
	}
	want.Capacity = math.Floor(sum / 5)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("YangParams mismatch (-want +got):\n%s", diff)
	}
}

func TestYangParams_Golden(t *testing.T) {
	got, err := knapsack.YangParams(5, sampler.New(1))
	require.NoError(t, err)
	want := knapsack.Params{
		Profits:  []float64{32, 38, 48, 10, 32},
		Weights:  []float64{19, 26, 41, 7, 1},
		Capacity: 18,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("YangParams(5, seed 1) changed (-want +got):\n%s", diff)
	}
}

func TestPisingerParams_Golden(t *testing.T) {
	got, err := knapsack.PisingerParams(3, 500, knapsack.WeaklyCorrelated{R: 1000}, sampler.New(4))
	require.NoError(t, err)
	want := knapsack.Params{
		Weights:  []float64{244.12836713235768, 103.0095652670048, 345.35688178026805},
		Profits:  []float64{333.67767314633164, 69.63982230511041, 338.77144149924203},
		Capacity: 500,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("PisingerParams(3, seed 4) changed (-want +got):\n%s", diff)
	}
}

func TestYang_Counts(t *testing.T) {
	m, err := knapsack.Yang(30, 1)
	require.NoError(t, err)
	assert.Equal(t, 30, m.NumVariables())
	assert.Equal(t, 1, m.NumConstraints())
	assert.Equal(t, "Yang Knapsack", m.Name())

	_, err = knapsack.YangParams(0, sampler.New(1))
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
}

func TestPisingerParams_DrawOrder(t *testing.T) {
	const n, seed, r = 6, 4, 1000.0

	t.Run("weights first", func(t *testing.T) {
		got, err := knapsack.PisingerParams(n, 500, knapsack.WeaklyCorrelated{R: r}, sampler.New(seed))
		require.NoError(t, err)

		s := sampler.New(seed)
		want := knapsack.Params{Weights: make([]float64, n), Profits: make([]float64, n), Capacity: 500}
		for i := range want.Weights {
			want.Weights[i] = s.Uniform(1, r)
		}
		for i, w := range want.Weights {
			want.Profits[i] = math.Max(1, s.Uniform(w-r/10, w+r/10))
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("profits first", func(t *testing.T) {
		got, err := knapsack.PisingerParams(n, 500, knapsack.InverseStronglyCorrelated{R: r}, sampler.New(seed))
		require.NoError(t, err)

		s := sampler.New(seed)
		want := knapsack.Params{Weights: make([]float64, n), Profits: make([]float64, n), Capacity: 500}
		for i := range want.Profits {
			want.Profits[i] = s.Uniform(1, r)
			want.Weights[i] = want.Profits[i] + r/10
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestDistributions_Relations(t *testing.T) {
	const r = 1000.0
	s := sampler.New(8)
	check := func(name string, d knapsack.Distribution, ok func(w, p float64) bool) {
		t.Run(name, func(t *testing.T) {
			p, err := knapsack.PisingerParams(200, 1, d, s)
			require.NoError(t, err)
			for i := range p.Weights {
				assert.True(t, ok(p.Weights[i], p.Profits[i]), "w=%g p=%g", p.Weights[i], p.Profits[i])
			}
		})
	}
	check("uncorrelated", knapsack.Uncorrelated{R: r}, func(w, p float64) bool { return w >= 1 && w <= r && p >= 1 && p <= r })
	check("strongly", knapsack.StronglyCorrelated{R: r}, func(w, p float64) bool { return p == w+r/10 })
	check("almost strongly", knapsack.AlmostStronglyCorrelated{R: r}, func(w, p float64) bool {
		return p >= w+r/10-r/500 && p <= w+r/10+r/500
	})
	check("subset sum", knapsack.SubsetSum{R: r}, func(w, p float64) bool { return w == p })
	check("similar weights", knapsack.UncorrelatedSimilarWeights{}, func(w, p float64) bool { return w >= 100000 && w <= 100100 })
	check("profit ceiling", knapsack.ProfitCeiling{D: 3, R: r}, func(w, p float64) bool { return math.Mod(p, 3) == 0 && p >= w })
	check("circle", knapsack.Circle{D: 2.0 / 3, R: r}, func(w, p float64) bool { return p > 0 && p <= 2.0/3*2*r })
	check("multiple strongly", knapsack.MultipleStronglyCorrelated{K1: 300, K2: 200, D: 6, R: r}, func(w, p float64) bool {
		if math.Mod(w, 6) == 0 {
			return p == w+300
		}
		return p == w+200 && w == math.Trunc(w)
	})
}

func TestDistributionByName(t *testing.T) {
	for _, name := range knapsack.DistributionNames {
		d, err := knapsack.DistributionByName(name, knapsack.DefaultRange)
		require.NoError(t, err, name)
		assert.NotNil(t, d)
	}
	_, err := knapsack.DistributionByName("spiky", 1000)
	assert.ErrorIs(t, err, geco.ErrUnsupportedVariant)
	_, err = knapsack.DistributionByName("uncorrelated", 0.5)
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
}

func TestPisingerParams_Errors(t *testing.T) {
	s := sampler.New(1)
	_, err := knapsack.PisingerParams(0, 1, knapsack.Uncorrelated{R: 10}, s)
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
	_, err = knapsack.PisingerParams(3, -1, knapsack.Uncorrelated{R: 10}, s)
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
	_, err = knapsack.PisingerParams(3, 1, nil, s)
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
	_, err = knapsack.PisingerParams(3, 1, knapsack.Circle{D: 0, R: 10}, s)
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
}

func TestPisinger_DeterminismAndSensitivity(t *testing.T) {
	d := knapsack.StronglyCorrelated{R: 100}
	a, err := knapsack.Pisinger(20, 300, d, 1)
	require.NoError(t, err)
	b, err := knapsack.Pisinger(20, 300, d, 1)
	require.NoError(t, err)
	c, err := knapsack.Pisinger(20, 300, d, 2)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestSpanner_DrawOrder(t *testing.T) {
	const v, mult, n, seed = 2, 10, 7, 3
	d := knapsack.Uncorrelated{R: 1000}
	got, err := knapsack.Spanner(v, mult, n, d, 100, sampler.New(seed))
	require.NoError(t, err)

	s := sampler.New(seed)
	pp := []float64{s.Uniform(1, 1000), s.Uniform(1, 1000)}
	pw := []float64{s.Uniform(1, 1000), s.Uniform(1, 1000)}
	for i := range pp {
		pp[i], pw[i] = math.Ceil(pp[i]/mult), math.Ceil(pw[i]/mult)
	}
	want := knapsack.Params{Weights: make([]float64, n), Profits: make([]float64, n), Capacity: 100}
	for i := 0; i < n; i++ {
		idx := s.Intn(v)
		k := s.Uniform(1, mult)
		want.Weights[i], want.Profits[i] = k*pw[idx], k*pp[idx]
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Spanner mismatch (-want +got):\n%s", diff)
	}

	_, err = knapsack.Spanner(0, mult, n, d, 100, s)
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
}

func TestExpandPisinger_PreservesBackbone(t *testing.T) {
	d := knapsack.WeaklyCorrelated{R: 100}
	backbone, err := knapsack.PisingerParams(5, 50, d, sampler.New(10))
	require.NoError(t, err)

	for _, seed := range []int64{1, 2, 3} {
		out, err := knapsack.ExpandPisinger(backbone, 15, d, sampler.New(seed))
		require.NoError(t, err)
		require.Equal(t, 15, out.N())
		assert.Equal(t, backbone.Weights, out.Weights[:5])
		assert.Equal(t, backbone.Profits, out.Profits[:5])
		assert.Equal(t, backbone.Capacity, out.Capacity)
	}

	_, err = knapsack.ExpandPisinger(backbone, 4, d, sampler.New(1))
	assert.ErrorIs(t, err, geco.ErrInfeasibleConstruction)
}
