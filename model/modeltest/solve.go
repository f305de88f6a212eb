// Package modeltest provides an exhaustive reference solver for tiny models.
// It exists so that tests can compare optimal values of generated and
// transformed models without an external solver.
package modeltest

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/geco/model"
)

// MaxAssignments bounds the search space Solve is willing to enumerate.
const MaxAssignments = 1 << 24

// ErrTooLarge is returned when the model has continuous or unbounded
// variables, or more than MaxAssignments assignments.
var ErrTooLarge = errors.New("modeltest: model too large for exhaustive search")

const feasTol = 1e-9

// Result is the outcome of Solve.
type Result struct {
	Status    model.Status
	Objective float64
	X         []float64
}

// Solve enumerates every assignment of m's integer variables and returns the
// best feasible one under m's sense. Ties keep the first assignment found in
// lexicographic order of columns.
func Solve(m *model.Model) (Result, error) {
	n := m.NumVariables()
	lower := make([]int, n)
	upper := make([]int, n)
	space := 1.0
	for i := 0; i < n; i++ {
		v := m.Variable(i)
		if v.Type == model.Continuous || math.IsInf(v.Lower, 0) || math.IsInf(v.Upper, 0) {
			return Result{}, fmt.Errorf("Solve: %s is %s in [%g,%g]: %w", v.Name, v.Type, v.Lower, v.Upper, ErrTooLarge)
		}
		lower[i] = int(math.Ceil(v.Lower))
		upper[i] = int(math.Floor(v.Upper))
		if upper[i] < lower[i] {
			return Result{Status: model.StatusInfeasible}, nil
		}
		space *= float64(upper[i] - lower[i] + 1)
	}
	if space > MaxAssignments {
		return Result{}, fmt.Errorf("Solve: %g assignments: %w", space, ErrTooLarge)
	}

	maximize := m.Sense() == model.Maximize
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(lower[i])
	}

	best := Result{Status: model.StatusInfeasible}
	for {
		if m.Feasible(x, feasTol) {
			obj := m.ObjectiveValue(x)
			if best.Status != model.StatusOptimal ||
				(maximize && obj > best.Objective+feasTol) ||
				(!maximize && obj < best.Objective-feasTol) {
				best = Result{Status: model.StatusOptimal, Objective: obj, X: append([]float64(nil), x...)}
			}
		}
		// odometer step, last column fastest
		i := n - 1
		for ; i >= 0; i-- {
			if int(x[i]) < upper[i] {
				x[i]++
				break
			}
			x[i] = float64(lower[i])
		}
		if i < 0 {
			break
		}
	}

	return best, nil
}
