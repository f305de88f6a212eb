package permute_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/core"
	"github.com/katalvlaran/geco/facility"
	"github.com/katalvlaran/geco/knapsack"
	"github.com/katalvlaran/geco/maxcut"
	"github.com/katalvlaran/geco/model"
	"github.com/katalvlaran/geco/model/modeltest"
	"github.com/katalvlaran/geco/permute"
	"github.com/katalvlaran/geco/sampler"
)

func sources(t *testing.T) map[string]*model.Model {
	t.Helper()
	ks, err := knapsack.Build(knapsack.Params{
		Weights:  []float64{3, 4, 2, 6, 5, 1},
		Profits:  []float64{4, 5, 3, 8, 6, 1},
		Capacity: 10,
	})
	require.NoError(t, err)

	fl, err := facility.Build(facility.Params{
		TransportCosts: [][]float64{{1, 4}, {3, 1}},
		Demands:        []float64{2, 3},
		Capacities:     []float64{5, 4},
		FixedCosts:     []float64{2, 3},
	})
	require.NoError(t, err)

	g := core.NewGraph()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"c", "d"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	mc, err := maxcut.Naive(g)
	require.NoError(t, err)

	return map[string]*model.Model{"knapsack": ks, "facility": fl, "maxcut": mc}
}

func TestPermute_Equivalence(t *testing.T) {
	for name, src := range sources(t) {
		t.Run(name, func(t *testing.T) {
			want, err := modeltest.Solve(src)
			require.NoError(t, err)

			for _, seed := range []int64{1, 7, -3} {
				p, err := permute.Permute(src, seed)
				require.NoError(t, err)
				assert.Equal(t, seed, p.Seed)
				assert.Equal(t, src.Name(), p.Model.Name())
				assert.Equal(t, src.Sense(), p.Model.Sense())
				assert.Equal(t, src.NumVariables(), p.Model.NumVariables())
				assert.Equal(t, src.NumConstraints(), p.Model.NumConstraints())

				got, err := modeltest.Solve(p.Model)
				require.NoError(t, err)
				assert.Equal(t, want.Status, got.Status)
				assert.InDelta(t, want.Objective, got.Objective, 1e-9, "seed %d", seed)
				x := p.Restore(got.X)
				assert.True(t, src.Feasible(x, 1e-9))
				assert.InDelta(t, got.Objective, src.ObjectiveValue(x), 1e-9)
			}
		})
	}
}

func TestPermute_Deterministic(t *testing.T) {
	src := sources(t)["facility"]
	a, err := permute.Permute(src, 42)
	require.NoError(t, err)
	b, err := permute.Permute(src, 42)
	require.NoError(t, err)
	assert.True(t, a.Model.Equal(b.Model))
	assert.Equal(t, a.Columns, b.Columns)

	s := sampler.New(42)
	assert.Equal(t, s.Perm(src.NumVariables()), a.Columns)
	assert.Equal(t, s.Perm(src.NumConstraints()), a.Rows)

	differs := false
	for seed := int64(43); seed < 53 && !differs; seed++ {
		c, err := permute.Permute(src, seed)
		require.NoError(t, err)
		differs = !a.Model.Equal(c.Model)
	}
	assert.True(t, differs)
}

func TestPermute_Toggles(t *testing.T) {
	src := sources(t)["facility"]
	full, err := permute.Permute(src, 5)
	require.NoError(t, err)

	rowsOnly, err := permute.Permute(src, 5, permute.WithColumns(false))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, rowsOnly.Columns)
	assert.Equal(t, full.Rows, rowsOnly.Rows)
	for i := 0; i < src.NumVariables(); i++ {
		assert.Equal(t, src.Variable(i), rowsOnly.Model.Variable(i))
	}

	neither, err := permute.Permute(src, 5, permute.WithColumns(false), permute.WithRows(false))
	require.NoError(t, err)
	assert.True(t, src.Equal(neither.Model))
	assert.NotSame(t, src, neither.Model)
}

func TestPermute_Variables(t *testing.T) {
	src := sources(t)["knapsack"]
	p, err := permute.Permute(src, 9)
	require.NoError(t, err)
	for i, c := range p.Columns {
		assert.Equal(t, src.Variable(c), p.Model.Variable(i))
	}
	for i, r := range p.Rows {
		assert.Equal(t, src.Constraint(r).Name, p.Model.Constraint(i).Name)
	}
}

type failingCodec struct{}

var errCodec = errors.New("codec down")

func (failingCodec) Encode(*model.Model) ([]byte, error) { return nil, errCodec }
func (failingCodec) Decode([]byte) (*model.Model, error) { return nil, errCodec }

func TestPermute_Errors(t *testing.T) {
	src := sources(t)["knapsack"]
	_, err := permute.Permute(src, 0)
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
	_, err = permute.Permute(nil, 1)
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
	_, err = permute.Permute(src, 1, permute.WithCodec(nil))
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
	_, err = permute.Permute(src, 1, permute.WithCodec(failingCodec{}))
	assert.ErrorIs(t, err, errCodec)
}
