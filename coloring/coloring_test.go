package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/coloring"
	"github.com/katalvlaran/geco/core"
	"github.com/katalvlaran/geco/model"
	"github.com/katalvlaran/geco/model/modeltest"
)

func graph(t *testing.T, edges [][2]string, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	return g
}

func triangle(t *testing.T) *core.Graph {
	return graph(t, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})
}

// path a-b-c
func path(t *testing.T) *core.Graph {
	return graph(t, [][2]string{{"a", "b"}, {"b", "c"}})
}

func optimum(t *testing.T, m *model.Model) float64 {
	t.Helper()
	res, err := modeltest.Solve(m)
	require.NoError(t, err)
	require.Equal(t, model.StatusOptimal, res.Status)
	return res.Objective
}

func TestAssignment(t *testing.T) {
	m, err := coloring.Assignment(triangle(t), 3)
	require.NoError(t, err)
	assert.Equal(t, "Assignment Graph Coloring", m.Name())
	assert.Equal(t, model.Minimize, m.Sense())
	assert.Equal(t, 12, m.NumVariables())
	assert.Equal(t, 3+3*3+3*3, m.NumConstraints())
	assert.Equal(t, "x_0_0", m.Variable(0).Name)
	assert.Equal(t, "w_0", m.Variable(9).Name)
	assert.Equal(t, 3.0, optimum(t, m))

	m, err = coloring.Assignment(path(t), 3)
	require.NoError(t, err)
	assert.Equal(t, 2.0, optimum(t, m))
}

func TestAssignment_IsolatedVertexOpensColor(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("solo"))
	m, err := coloring.Assignment(g, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, optimum(t, m))
}

func TestAssignmentAsymmetric(t *testing.T) {
	m, err := coloring.AssignmentAsymmetric(triangle(t), 3)
	require.NoError(t, err)
	assert.Equal(t, 21+3+2, m.NumConstraints())
	assert.Equal(t, 3.0, optimum(t, m))

	m, err = coloring.AssignmentAsymmetric(path(t), 3)
	require.NoError(t, err)
	res, err := modeltest.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Objective)
	// colors open in order: w_0, w_1 set, w_2 not
	assert.Equal(t, []float64{1, 1, 0}, res.X[9:])

	m, err = coloring.AssignmentAsymmetric(triangle(t), 2)
	require.NoError(t, err)
	res, err = modeltest.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInfeasible, res.Status)
}

func TestRepresentatives(t *testing.T) {
	m, err := coloring.Representatives(triangle(t))
	require.NoError(t, err)
	assert.Equal(t, "Representatives Graph Coloring", m.Name())
	assert.Equal(t, 3, m.NumVariables())
	assert.Equal(t, 3, m.NumConstraints())
	assert.Equal(t, 3.0, optimum(t, m))

	m, err = coloring.Representatives(path(t))
	require.NoError(t, err)
	names := make([]string, m.NumVariables())
	for i := range names {
		names[i] = m.Variable(i).Name
	}
	assert.Equal(t, []string{"x_0_0", "x_0_2", "x_1_1", "x_2_0", "x_2_2"}, names)
	assert.Equal(t, 3+2, m.NumConstraints())
	assert.Equal(t, 2.0, optimum(t, m))
}

func TestRepresentatives_AntiEdge(t *testing.T) {
	// a is adjacent to nothing; b-c inside its anti-neighborhood
	g := graph(t, [][2]string{{"b", "c"}})
	require.NoError(t, g.AddVertex("a"))
	m, err := coloring.Representatives(g)
	require.NoError(t, err)
	assert.Equal(t, 2.0, optimum(t, m))
}

func TestSetCovering(t *testing.T) {
	g := path(t)
	m, err := coloring.SetCovering(g, [][]int{{0, 2}, {1}, {0}, {2}})
	require.NoError(t, err)
	assert.Equal(t, "Set Covering Graph Coloring", m.Name())
	assert.Equal(t, 4, m.NumVariables())
	assert.Equal(t, 3, m.NumConstraints())
	assert.Equal(t, 2.0, optimum(t, m))

	_, err = coloring.SetCovering(g, [][]int{{0, 1}, {2}})
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
	_, err = coloring.SetCovering(g, [][]int{{0}, {}})
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
	_, err = coloring.SetCovering(g, [][]int{{3}})
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
	_, err = coloring.SetCovering(g, [][]int{{0, 2}})
	assert.ErrorIs(t, err, geco.ErrInfeasibleConstruction)
}

func TestPartialOrdering(t *testing.T) {
	m, err := coloring.PartialOrdering(path(t), 2)
	require.NoError(t, err)
	assert.Equal(t, "Partial Ordering Graph Coloring", m.Name())
	assert.Equal(t, 12, m.NumVariables())
	assert.Equal(t, 14+4, m.NumConstraints())
	// colors minus one
	assert.Equal(t, 1.0, optimum(t, m))

	m, err = coloring.PartialOrdering(triangle(t), 3)
	require.NoError(t, err)
	assert.Equal(t, 2.0, optimum(t, m))

	m, err = coloring.PartialOrdering(triangle(t), 2)
	require.NoError(t, err)
	res, err := modeltest.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInfeasible, res.Status)
}

func TestHybridPartialOrdering(t *testing.T) {
	m, err := coloring.HybridPartialOrdering(path(t), 2)
	require.NoError(t, err)
	assert.Equal(t, 18, m.NumVariables())
	assert.Equal(t, "x_0_0", m.Variable(0).Name)
	assert.Equal(t, 1.0, optimum(t, m))

	m, err = coloring.HybridPartialOrdering(graph(t, [][2]string{{"a", "b"}}), 1)
	require.NoError(t, err)
	res, err := modeltest.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInfeasible, res.Status)
}

func TestErrors(t *testing.T) {
	builders := map[string]func(*core.Graph) (*model.Model, error){
		"assignment":      func(g *core.Graph) (*model.Model, error) { return coloring.Assignment(g, 2) },
		"asymmetric":      func(g *core.Graph) (*model.Model, error) { return coloring.AssignmentAsymmetric(g, 2) },
		"representatives": coloring.Representatives,
		"ordering":        func(g *core.Graph) (*model.Model, error) { return coloring.PartialOrdering(g, 2) },
		"hybrid":          func(g *core.Graph) (*model.Model, error) { return coloring.HybridPartialOrdering(g, 2) },
	}
	directed := graph(t, [][2]string{{"a", "b"}}, core.WithDirected(true))
	looped := graph(t, [][2]string{{"a", "a"}}, core.WithLoops())
	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			for _, g := range []*core.Graph{nil, directed, looped} {
				_, err := build(g)
				assert.ErrorIs(t, err, geco.ErrInvalidParameter)
			}
		})
	}

	for _, k := range []int{0, -1} {
		_, err := coloring.Assignment(path(t), k)
		assert.ErrorIs(t, err, geco.ErrInvalidParameter)
		_, err = coloring.PartialOrdering(path(t), k)
		assert.ErrorIs(t, err, geco.ErrInvalidParameter)
	}
}
