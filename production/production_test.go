package production_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/model"
	"github.com/katalvlaran/geco/production"
	"github.com/katalvlaran/geco/sampler"
)

func twoPeriods() production.Params {
	return production.Params{
		Horizon:      2,
		MaxLot:       100,
		UnitCosts:    []float64{9, 2, 3},
		SetupCosts:   []float64{9, 7, 8},
		HoldingCosts: []float64{9, 1, 1},
		Demands:      []float64{9, 5, 5},
	}
}

func TestBuild_Structure(t *testing.T) {
	m, err := production.Build(twoPeriods())
	require.NoError(t, err)
	assert.Equal(t, "Production Planning", m.Name())
	assert.Equal(t, model.Minimize, m.Sense())

	names := make([]string, m.NumVariables())
	for i := range names {
		names[i] = m.Variable(i).Name
	}
	assert.Equal(t, []string{"y_0", "s_0", "x_1", "y_1", "s_1", "x_2", "y_2", "s_2"}, names)
	assert.Equal(t, 2*2+2, m.NumConstraints())
	assert.Equal(t, "initial", m.Constraint(4).Name)
	assert.Equal(t, 0.0, m.Constraint(4).RHS)

	setup := m.Constraint(1)
	assert.Equal(t, "setup_1", setup.Name)
	assert.Equal(t, []model.Term{{Var: 2, Coef: 1}, {Var: 3, Coef: -100}}, setup.Terms)
}

func TestBuild_Plans(t *testing.T) {
	m, err := production.Build(twoPeriods())
	require.NoError(t, err)

	// produce both demands in period 1 and hold five units
	batch := []float64{0, 0, 10, 1, 5, 0, 0, 0}
	require.True(t, m.Feasible(batch, 1e-9))
	assert.Equal(t, 7+2*10+1*5.0, m.ObjectiveValue(batch))

	// production without setup
	noSetup := []float64{0, 0, 10, 0, 5, 0, 0, 0}
	assert.False(t, m.Feasible(noSetup, 1e-9))

	lotForLot := []float64{0, 0, 5, 1, 0, 5, 1, 0}
	require.True(t, m.Feasible(lotForLot, 1e-9))
	assert.Equal(t, 7+10+8+15.0, m.ObjectiveValue(lotForLot))
}

func TestBuild_Validation(t *testing.T) {
	for name, mutate := range map[string]func(*production.Params){
		"horizon":      func(p *production.Params) { p.Horizon = 0 },
		"max lot":      func(p *production.Params) { p.MaxLot = 0 },
		"storage":      func(p *production.Params) { p.FinalStorage = -1 },
		"short demand": func(p *production.Params) { p.Demands = p.Demands[:2] },
	} {
		t.Run(name, func(t *testing.T) {
			p := twoPeriods()
			mutate(&p)
			_, err := production.Build(p)
			assert.ErrorIs(t, err, geco.ErrInvalidParameter)
		})
	}
}

func TestTangParams_DrawOrder(t *testing.T) {
	const T, seed = 4, 8
	got, err := production.TangParams(T, sampler.New(seed))
	require.NoError(t, err)

	s := sampler.New(seed)
	want := production.Params{
		Horizon:        T,
		MaxLot:         production.TangMaxLot,
		InitialStorage: production.TangInitialStorage,
		FinalStorage:   production.TangFinalStorage,
	}
	for i := 0; i <= T; i++ {
		want.UnitCosts = append(want.UnitCosts, float64(s.Int(1, 10)))
		want.HoldingCosts = append(want.HoldingCosts, float64(s.Int(1, 10)))
		want.SetupCosts = append(want.SetupCosts, float64(s.Int(1, 10)))
		want.Demands = append(want.Demands, float64(s.Int(1, 10)))
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestTang(t *testing.T) {
	const T = 10
	m, err := production.Tang(T, 5)
	require.NoError(t, err)
	assert.Equal(t, "Tang Production Planning", m.Name())
	assert.Equal(t, 3*(T+1)-1, m.NumVariables())
	assert.Equal(t, 2*T+2, m.NumConstraints())
	last := m.Constraint(m.NumConstraints() - 1)
	assert.Equal(t, "final", last.Name)
	assert.Equal(t, float64(production.TangFinalStorage), last.RHS)

	again, err := production.Tang(T, 5)
	require.NoError(t, err)
	assert.True(t, m.Equal(again))

	_, err = production.Tang(0, 5)
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
}
