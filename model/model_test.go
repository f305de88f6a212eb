package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geco/model"
)

func TestAddVariable_Validation(t *testing.T) {
	cases := []struct {
		name string
		v    model.Variable
		want error
	}{
		{"empty name", model.Variable{Type: model.Binary, Upper: 1}, model.ErrDuplicateVariable},
		{"inverted bounds", model.Variable{Name: "x", Type: model.Integer, Lower: 3, Upper: 1}, model.ErrBadBounds},
		{"binary upper 2", model.Variable{Name: "x", Type: model.Binary, Upper: 2}, model.ErrBadBounds},
		{"ok unbounded", model.Variable{Name: "x", Type: model.Integer, Upper: model.Inf}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := model.New("t")
			_, err := m.AddVariable(tc.v)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestAddVariable_Duplicate(t *testing.T) {
	m := model.New("t")
	_, err := m.AddBinary("x", 1)
	require.NoError(t, err)
	_, err = m.AddBinary("x", 2)
	assert.ErrorIs(t, err, model.ErrDuplicateVariable)
	assert.Equal(t, 1, m.NumVariables())
}

func TestAddConstraint_NormalizesExpression(t *testing.T) {
	m := model.New("t")
	x, _ := m.AddBinary("x", 0)
	y, _ := m.AddBinary("y", 0)
	z, _ := m.AddBinary("z", 0)

	e := model.NewExpr().Add(x, 2).Add(y, 1).Add(x, 3).AddConstant(4).Add(z, 1).Add(z, -1)
	require.NoError(t, m.AddConstraint("c", e, model.LE, 10))

	c := m.Constraint(0)
	assert.Equal(t, []model.Term{{Var: 0, Coef: 5}, {Var: 1, Coef: 1}}, c.Terms)
	assert.Equal(t, 6.0, c.RHS)
	assert.Equal(t, model.LE, c.Rel)
}

func TestAddConstraint_ExplicitZeroKept(t *testing.T) {
	m := model.New("t")
	x, _ := m.AddBinary("x", 0)
	y, _ := m.AddBinary("y", 0)
	require.NoError(t, m.AddConstraint("c", model.NewExpr().Add(x, 0).Add(y, 1), model.GE, 0))
	assert.Len(t, m.Constraint(0).Terms, 2)
}

func TestAddConstraint_Errors(t *testing.T) {
	m := model.New("a")
	other := model.New("b")
	x, _ := m.AddBinary("x", 0)
	foreign, _ := other.AddBinary("x", 0)

	assert.ErrorIs(t, m.AddConstraint("foreign", model.Sum(foreign), model.LE, 1), model.ErrUnknownVariable)
	assert.ErrorIs(t, m.AddConstraint("empty", model.NewExpr(), model.LE, 1), model.ErrEmptyConstraint)
	assert.ErrorIs(t, m.AddConstraint("cancel", model.NewExpr().Add(x, 1).Add(x, -1), model.LE, 1), model.ErrEmptyConstraint)
	assert.ErrorIs(t, m.AddConstraint("rel", model.Sum(x), model.Relation(9), 1), model.ErrBadRelation)
	assert.ErrorIs(t, m.AddConstraint("inf", model.Sum(x), model.LE, model.Inf), model.ErrBadRelation)
	assert.ErrorIs(t, m.AddRow("fwd", []model.Term{{Var: 1, Coef: 1}}, model.LE, 1), model.ErrUnknownVariable)
	assert.Equal(t, 0, m.NumConstraints())
}

func TestSetSense_Once(t *testing.T) {
	m := model.New("t")
	assert.Equal(t, model.SenseUnset, m.Sense())
	require.NoError(t, m.SetSense(model.Maximize))
	assert.ErrorIs(t, m.SetSense(model.Minimize), model.ErrSenseAlreadySet)
	assert.Equal(t, model.Maximize, m.Sense())
}

func TestAccessorsReturnCopies(t *testing.T) {
	m := model.New("t")
	x, _ := m.AddBinary("x", 1)
	require.NoError(t, m.AddConstraint("c", model.Sum(x), model.LE, 1))

	c := m.Constraint(0)
	c.Terms[0].Coef = 42
	all := m.Constraints()
	all[0].Terms[0].Coef = 43
	vars := m.Variables()
	vars[0].Obj = 99

	assert.Equal(t, 1.0, m.Constraint(0).Terms[0].Coef)
	assert.Equal(t, 1.0, m.Variable(0).Obj)
}

func TestCloneAndEqual(t *testing.T) {
	m := model.New("t")
	x, _ := m.AddBinary("x", 1)
	y, _ := m.AddInteger("y", 0, 5, 2)
	require.NoError(t, m.AddConstraint("c", model.Sum(x, y), model.LE, 4))
	require.NoError(t, m.SetSense(model.Minimize))

	c := m.Clone()
	assert.True(t, m.Equal(c))

	v, ok := c.VariableByName("y")
	require.True(t, ok)
	assert.Equal(t, 1, v.Index())

	require.NoError(t, c.AddConstraint("d", model.Sum(c.Var(0)), model.GE, 0))
	assert.False(t, m.Equal(c))
	assert.Equal(t, 1, m.NumConstraints())

	// handles of the original are foreign to the clone
	assert.ErrorIs(t, c.AddConstraint("e", model.Sum(x), model.GE, 0), model.ErrUnknownVariable)
}

func TestFeasibleAndObjective(t *testing.T) {
	m := model.New("t")
	x, _ := m.AddBinary("x", 3)
	y, _ := m.AddInteger("y", 0, 3, 1)
	require.NoError(t, m.AddConstraint("c", model.NewExpr().Add(x, 1).Add(y, 1), model.EQ, 2))

	assert.True(t, m.Feasible([]float64{1, 1}, 1e-9))
	assert.False(t, m.Feasible([]float64{1, 0}, 1e-9))
	assert.False(t, m.Feasible([]float64{0, 2.5}, 1e-9))
	assert.Equal(t, 4.0, m.ObjectiveValue([]float64{1, 1}))
}

type recordingSolver struct {
	vars  []model.Variable
	rows  [][]model.HandleTerm
	sense model.Sense
}

func (r *recordingSolver) AddVariable(v model.Variable) (model.Handle, error) {
	r.vars = append(r.vars, v)
	return model.Handle(100 + len(r.vars) - 1), nil
}

func (r *recordingSolver) AddConstraint(terms []model.HandleTerm, _ model.Relation, _ float64) error {
	r.rows = append(r.rows, terms)
	return nil
}

func (r *recordingSolver) SetObjectiveSense(s model.Sense) error { r.sense = s; return nil }
func (r *recordingSolver) Optimize() (model.Status, error)      { return model.StatusUnknown, nil }
func (r *recordingSolver) ObjectiveValue() float64               { return 0 }
func (r *recordingSolver) VariableValue(model.Handle) float64    { return 0 }

func TestLoad_ReplaysConstructionSubset(t *testing.T) {
	m := model.New("t")
	x, _ := m.AddBinary("x", 1)
	y, _ := m.AddBinary("y", 1)
	require.NoError(t, m.AddConstraint("c", model.NewExpr().Add(y, 2).Add(x, 1), model.LE, 2))

	s := &recordingSolver{}
	_, err := model.Load(m, s)
	assert.ErrorIs(t, err, model.ErrBadRelation, "sense must be set before loading")

	require.NoError(t, m.SetSense(model.Maximize))
	handles, err := model.Load(m, s)
	require.NoError(t, err)
	assert.Equal(t, []model.Handle{100, 101}, handles)
	assert.Equal(t, []model.HandleTerm{{Handle: 101, Coef: 2}, {Handle: 100, Coef: 1}}, s.rows[0])
	assert.Equal(t, model.Maximize, s.sense)
}
