package scheduling_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/model"
	"github.com/katalvlaran/geco/model/modeltest"
	"github.com/katalvlaran/geco/sampler"
	"github.com/katalvlaran/geco/scheduling"
)

func replay(facilities, tasks int, seed int64) scheduling.Params {
	s := sampler.New(seed)
	lo := 2
	if tasks >= 22 {
		lo = 5
	}
	grid := func() [][]int {
		g := make([][]int, tasks)
		for j := range g {
			g[j] = make([]int, facilities)
		}
		return g
	}
	p := scheduling.Params{
		ProcessingTimes:      grid(),
		Capacities:           make([]int, facilities),
		AssignmentCosts:      grid(),
		ReleaseTimes:         make([]int, tasks),
		Deadlines:            make([]float64, tasks),
		ResourceRequirements: grid(),
	}
	for j := 0; j < tasks; j++ {
		for i := 0; i < facilities; i++ {
			p.ProcessingTimes[j][i] = s.Int(lo, 20+5*i)
		}
	}
	for i := 0; i < facilities; i++ {
		p.Capacities[i] = 10
		c := s.Int(1, 10)
		for j := 0; j < tasks; j++ {
			p.AssignmentCosts[j][i] = c
		}
	}
	beta := 20.0 / 9.0
	for j := range p.Deadlines {
		p.Deadlines[j] = s.Uniform(beta*float64(tasks)/4, beta*float64(tasks))
	}
	for j := 0; j < tasks; j++ {
		for i := 0; i < facilities; i++ {
			p.ResourceRequirements[j][i] = s.Int(1, 9)
		}
	}
	return p
}

func TestGenerateParams_DrawOrder(t *testing.T) {
	for _, tasks := range []int{6, 22} {
		got, err := scheduling.GenerateParams(3, tasks, sampler.New(31))
		require.NoError(t, err)
		if diff := cmp.Diff(replay(3, tasks, 31), got); diff != "" {
			t.Fatalf("tasks=%d mismatch (-want +got):\n%s", tasks, diff)
		}
	}
}

func TestGenerateParams_Golden(t *testing.T) {
	got, err := scheduling.GenerateParams(2, 3, sampler.New(31))
	require.NoError(t, err)

	assert.Equal(t, [][]int{{17, 17}, {16, 6}, {14, 6}}, got.ProcessingTimes)
	assert.Equal(t, []int{10, 10}, got.Capacities)
	assert.Equal(t, [][]int{{3, 5}, {3, 5}, {3, 5}}, got.AssignmentCosts)
	assert.Equal(t, []int{0, 0, 0}, got.ReleaseTimes)
	assert.InDeltaSlice(t, []float64{5.014085403820502, 3.239968739354561, 6.075101119103196}, got.Deadlines, 1e-12)
	assert.Equal(t, [][]int{{9, 9}, {4, 9}, {1, 4}}, got.ResourceRequirements)
}

func TestGenerateParams_Ranges(t *testing.T) {
	p, err := scheduling.GenerateParams(4, 30, sampler.New(2))
	require.NoError(t, err)
	lo, hi := scheduling.DueDateWindow(30)
	assert.InDelta(t, 20.0/9*30/4, lo, 1e-12)
	assert.InDelta(t, 20.0/9*30, hi, 1e-12)

	for j := 0; j < p.Tasks(); j++ {
		for i := 0; i < p.Facilities(); i++ {
			assert.True(t, p.ProcessingTimes[j][i] >= 5 && p.ProcessingTimes[j][i] <= 20+5*i)
			assert.Equal(t, p.AssignmentCosts[0][i], p.AssignmentCosts[j][i])
			assert.True(t, p.ResourceRequirements[j][i] >= 1 && p.ResourceRequirements[j][i] <= 9)
		}
		assert.True(t, p.Deadlines[j] >= lo && p.Deadlines[j] <= hi)
		assert.Zero(t, p.ReleaseTimes[j])
	}

	_, err = scheduling.GenerateParams(0, 3, sampler.New(1))
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
}

func TestHookerParams_SameSequence(t *testing.T) {
	h, err := scheduling.HookerParams(2, 5, sampler.New(4))
	require.NoError(t, err)
	full, err := scheduling.HeinzParams(2, 5, sampler.New(4))
	require.NoError(t, err)

	assert.Nil(t, h.ResourceRequirements)
	full.ResourceRequirements = nil
	assert.Equal(t, full, h)
}

func TestHookerFormulation_Counts(t *testing.T) {
	const f, n, T = 3, 10, 10
	p, err := scheduling.HookerParams(f, n, sampler.New(0))
	require.NoError(t, err)
	m, err := scheduling.HookerFormulation(p, T)
	require.NoError(t, err)

	fixed := 0
	for i := 0; i < f; i++ {
		for j := 0; j < n; j++ {
			for step := 0; step < T; step++ {
				if step < p.ReleaseTimes[j] || step > T-p.ProcessingTimes[j][i] {
					fixed++
				}
			}
		}
	}
	assert.Equal(t, n+n*f*T, m.NumVariables())
	assert.Equal(t, n*T+n+f*T+fixed, m.NumConstraints())
	assert.Equal(t, model.Minimize, m.Sense())

	late := m.Constraint(0)
	assert.Equal(t, "late_0_0", late.Name)
	assert.Equal(t, p.Deadlines[0], late.RHS)
	assert.Len(t, late.Terms, f+1)
}

func TestHookerFormulation_LateTask(t *testing.T) {
	// One task of length 3 on one facility, due at 1: it is late however it
	// is scheduled.
	p := scheduling.Params{
		ProcessingTimes: [][]int{{3}},
		Capacities:      []int{10},
		AssignmentCosts: [][]int{{1}},
		ReleaseTimes:    []int{0},
		Deadlines:       []float64{1},
	}
	m, err := scheduling.HookerFormulation(p, 4)
	require.NoError(t, err)
	res, err := modeltest.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, model.StatusOptimal, res.Status)
	assert.Equal(t, 1.0, res.Objective)

	p.Deadlines[0] = 3
	m, err = scheduling.HookerFormulation(p, 4)
	require.NoError(t, err)
	res, err = modeltest.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Objective)
}

func TestHeinzFormulation_Structure(t *testing.T) {
	p, err := scheduling.HeinzParams(2, 6, sampler.New(5))
	require.NoError(t, err)
	m, err := scheduling.HeinzFormulation(p)
	require.NoError(t, err)
	assert.Equal(t, model.Minimize, m.Sense())

	start, end := scheduling.Horizon(p)
	assert.Zero(t, start)

	starts := 0
	for j := 0; j < p.Tasks(); j++ {
		for k := 0; k < p.Facilities(); k++ {
			for step := start; step < end; step++ {
				if float64(step) <= p.Deadlines[j]-float64(p.ProcessingTimes[j][k]) {
					starts++
				}
			}
		}
	}
	assert.Equal(t, p.Tasks()*p.Facilities()+starts, m.NumVariables())

	var assign, link int
	for _, c := range m.Constraints() {
		switch {
		case strings.HasPrefix(c.Name, "assign_"):
			assign++
			assert.Equal(t, model.EQ, c.Rel)
		case strings.HasPrefix(c.Name, "start_"):
			link++
		}
	}
	assert.Equal(t, p.Tasks(), assign)
	assert.Equal(t, p.Tasks()*p.Facilities(), link)
}

func TestHeinzFormulation_SmallOptimum(t *testing.T) {
	// Two tasks, two facilities; facility 1 is cheaper but fits one task
	// at a time and both must finish by 2.
	p := scheduling.Params{
		ProcessingTimes:      [][]int{{2, 2}, {2, 2}},
		Capacities:           []int{1, 1},
		AssignmentCosts:      [][]int{{5, 1}, {5, 1}},
		ReleaseTimes:         []int{0, 0},
		Deadlines:            []float64{2, 2},
		ResourceRequirements: [][]int{{1, 1}, {1, 1}},
	}
	m, err := scheduling.HeinzFormulation(p)
	require.NoError(t, err)
	res, err := modeltest.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, model.StatusOptimal, res.Status)
	assert.Equal(t, 6.0, res.Objective)

	p.ResourceRequirements = nil
	_, err = scheduling.HeinzFormulation(p)
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
}

func TestHookerSweep(t *testing.T) {
	var got []scheduling.HookerInstance
	for inst := range scheduling.HookerSweep([]int64{0, 1}) {
		require.NoError(t, inst.Err)
		got = append(got, inst)
		if len(got) == 5 {
			break
		}
	}
	require.Len(t, got, 5)
	assert.Equal(t, []int{10, 10, 10, 10, 12}, []int{got[0].Tasks, got[1].Tasks, got[2].Tasks, got[3].Tasks, got[4].Tasks})
	assert.Equal(t, []int{10, 10, 100, 100, 10}, []int{got[0].TimeSteps, got[1].TimeSteps, got[2].TimeSteps, got[3].TimeSteps, got[4].TimeSteps})
	assert.Equal(t, []int64{0, 1, 0, 1, 0}, []int64{got[0].Seed, got[1].Seed, got[2].Seed, got[3].Seed, got[4].Seed})
	assert.Equal(t, scheduling.HookerSweepFacilities, got[0].Facilities)
	assert.Equal(t, 10+10*3*10, got[0].Model.NumVariables())

	want, err := scheduling.Hooker(3, 10, 100, 1)
	require.NoError(t, err)
	assert.True(t, want.Equal(got[3].Model))
}

func TestParams_Validation(t *testing.T) {
	_, err := scheduling.HookerFormulation(scheduling.Params{}, 5)
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)

	p, err := scheduling.HookerParams(1, 2, sampler.New(1))
	require.NoError(t, err)
	_, err = scheduling.HookerFormulation(p, 0)
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)

	p.ProcessingTimes[0][0] = 0
	_, err = scheduling.HookerFormulation(p, 5)
	assert.ErrorIs(t, err, geco.ErrInvalidParameter)
}
