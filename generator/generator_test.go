package generator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/generator"
	"github.com/katalvlaran/geco/knapsack"
	"github.com/katalvlaran/geco/sampler"
)

func draw(s *sampler.Sampler) (int, error) { return s.Int(1, 1000), nil }

func TestGenerateN_EvolvingSampler(t *testing.T) {
	got, err := generator.GenerateN(5, 11, draw)
	require.NoError(t, err)

	s := sampler.New(11)
	want := make([]int, 5)
	for i := range want {
		want[i] = s.Int(1, 1000)
	}
	assert.Equal(t, want, got)

	again, err := generator.GenerateN(5, 11, draw)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestStream_TakeAndErrors(t *testing.T) {
	st := generator.SeededStream(3, draw)
	first, err := st.Take(2)
	require.NoError(t, err)
	assert.Len(t, first, 2)
	assert.Equal(t, 2, st.Generated())

	_, err = st.Take(-1)
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)

	boom := errors.New("boom")
	calls := 0
	failing := generator.SeededStream(1, func(s *sampler.Sampler) (int, error) {
		calls++
		if calls == 3 {
			return 0, boom
		}
		return s.Intn(10), nil
	})
	out, err := failing.Take(5)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, failing.Generated())

	_, err = generator.GenerateN[int](1, 1, nil)
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
}

func TestStream_All(t *testing.T) {
	st := generator.SeededStream(5, draw)
	var got []int
	for v, err := range st.All() {
		require.NoError(t, err)
		got = append(got, v)
		if len(got) == 4 {
			break
		}
	}
	want, err := generator.GenerateN(4, 5, draw)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	boom := errors.New("boom")
	n := 0
	for _, err := range generator.SeededStream(1, func(*sampler.Sampler) (int, error) { return 0, boom }).All() {
		n++
		assert.ErrorIs(t, err, boom)
	}
	assert.Equal(t, 1, n)
}

func TestNewStream_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { generator.NewStream[int](nil, draw) })
	assert.Panics(t, func() { generator.NewStream[int](sampler.New(1), nil) })
}

func knapsackBackbone(t *testing.T) *generator.Backbone[knapsack.Params] {
	t.Helper()
	d := knapsack.WeaklyCorrelated{R: 100}
	core, err := knapsack.PisingerParams(5, 100, d, sampler.New(42))
	require.NoError(t, err)
	return generator.NewBackbone(core, core.N(), func(p knapsack.Params, n int, s *sampler.Sampler) (knapsack.Params, error) {
		return knapsack.ExpandPisinger(p, n, d, s)
	})
}

func TestBackbone_ExpandScenario(t *testing.T) {
	b := knapsackBackbone(t)

	one, err := b.Expand(15, 1)
	require.NoError(t, err)
	oneAgain, err := b.Expand(15, 1)
	require.NoError(t, err)
	if diff := cmp.Diff(one, oneAgain); diff != "" {
		t.Fatalf("seed 1 not reproducible (-first +second):\n%s", diff)
	}

	two, err := b.Expand(15, 2)
	require.NoError(t, err)
	require.Equal(t, 15, two.N())
	assert.Equal(t, b.Core().Weights, two.Weights[:5])
	assert.Equal(t, b.Core().Profits, two.Profits[:5])
	assert.NotEqual(t, one.Weights[5:], two.Weights[5:])
}

func TestBackbone_ExpandIsIndependentOfHistory(t *testing.T) {
	b := knapsackBackbone(t)
	first, err := b.Expand(12, 7)
	require.NoError(t, err)
	for _, seed := range []int64{1, 2, 3} {
		_, err := b.Expand(20, seed)
		require.NoError(t, err)
	}
	later, err := b.Expand(12, 7)
	require.NoError(t, err)
	assert.Equal(t, first, later)
}

func TestBackbone_Errors(t *testing.T) {
	b := knapsackBackbone(t)
	_, err := b.Expand(4, 1)
	assert.ErrorIs(t, err, geco.ErrInfeasibleConstruction)

	assert.Panics(t, func() { generator.NewBackbone[int](0, 0, nil) })
}

func TestBackbone_Stream(t *testing.T) {
	b := knapsackBackbone(t)
	got, err := b.Stream(10, 9).Take(3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, p := range got {
		assert.Equal(t, b.Core().Weights, p.Weights[:5])
	}
	assert.NotEqual(t, got[0].Weights[5:], got[1].Weights[5:])

	again, err := b.Stream(10, 9).Take(3)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestExpandParameters_Order(t *testing.T) {
	seq, err := generator.ExpandParameters(func(p generator.Point) string {
		return fmt.Sprintf("%d%s", p.Int("a"), p.Text("b"))
	},
		generator.IntAxis("a", 1, 2),
		generator.StringAxis("b", "x", "y", "z"),
	)
	require.NoError(t, err)

	var got []string
	for v := range seq {
		got = append(got, v)
	}
	assert.Equal(t, []string{"1x", "1y", "1z", "2x", "2y", "2z"}, got)

	var again []string
	for v := range seq {
		again = append(again, v)
	}
	assert.Equal(t, got, again)
}

func TestExpandParameters_Laziness(t *testing.T) {
	calls := 0
	seq, err := generator.ExpandParameters(func(p generator.Point) int {
		calls++
		return p.Int("n")
	}, generator.IntAxis("n", 1, 2, 3, 4))
	require.NoError(t, err)
	assert.Zero(t, calls)

	for v := range seq {
		if v == 2 {
			break
		}
	}
	assert.Equal(t, 2, calls)
}

func TestPoints_EdgeCases(t *testing.T) {
	count := func(axes ...generator.Axis) int {
		pts, err := generator.Points(axes...)
		require.NoError(t, err)
		n := 0
		for range pts {
			n++
		}
		return n
	}
	assert.Equal(t, 1, count())
	assert.Equal(t, 0, count(generator.IntAxis("a", 1, 2), generator.IntAxis("b")))
	assert.Equal(t, 12, count(generator.IntAxis("a", 1, 2), generator.FloatAxis("b", .1, .2, .3), generator.Int64Axis("c", 1, 2)))

	_, err := generator.Points(generator.IntAxis("a", 1), generator.IntAxis("a", 2))
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
	_, err = generator.Points(generator.IntAxis("", 1))
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
	_, err = generator.ExpandParameters[int](nil)
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
	assert.Panics(t, func() {
		generator.MustExpandParameters(func(generator.Point) int { return 0 }, generator.IntAxis("", 1))
	})
}

func TestPoint_Accessors(t *testing.T) {
	pts, err := generator.Points(generator.IntAxis("n", 3), generator.FloatAxis("p", 0.5), generator.Int64Axis("seed", 9))
	require.NoError(t, err)
	for pt := range pts {
		assert.Equal(t, []string{"n", "p", "seed"}, pt.Names())
		assert.Equal(t, 3, pt.Int("n"))
		assert.Equal(t, 0.5, pt.Float64("p"))
		assert.Equal(t, int64(9), pt.Int64("seed"))
		assert.Equal(t, map[string]any{"n": 3, "p": 0.5, "seed": int64(9)}, pt.Map())
		_, ok := pt.Get("missing")
		assert.False(t, ok)
		assert.Panics(t, func() { pt.Int("missing") })
		assert.Panics(t, func() { pt.Int("p") })
	}
}
