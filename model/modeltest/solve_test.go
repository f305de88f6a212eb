package modeltest_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geco/model"
	"github.com/katalvlaran/geco/model/modeltest"
)

func TestSolve_SmallKnapsack(t *testing.T) {
	m := model.New("ks")
	a, _ := m.AddBinary("a", 3)
	b, _ := m.AddBinary("b", 4)
	c, _ := m.AddBinary("c", 5)
	require.NoError(t, m.AddConstraint("cap", model.NewExpr().Add(a, 2).Add(b, 3).Add(c, 4), model.LE, 5))
	require.NoError(t, m.SetSense(model.Maximize))

	res, err := modeltest.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, model.StatusOptimal, res.Status)
	assert.Equal(t, 7.0, res.Objective)
	assert.Equal(t, []float64{1, 1, 0}, res.X)
}

func TestSolve_Infeasible(t *testing.T) {
	m := model.New("inf")
	a, _ := m.AddBinary("a", 1)
	require.NoError(t, m.AddConstraint("r", model.Sum(a), model.GE, 2))
	require.NoError(t, m.SetSense(model.Minimize))

	res, err := modeltest.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInfeasible, res.Status)
}

func TestSolve_RejectsContinuous(t *testing.T) {
	m := model.New("cont")
	_, _ = m.AddContinuous("y", 0, 1, 1)
	require.NoError(t, m.SetSense(model.Minimize))

	_, err := modeltest.Solve(m)
	assert.True(t, errors.Is(err, modeltest.ErrTooLarge))
}
