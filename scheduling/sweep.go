// SPDX-License-Identifier: MIT
// Package: geco/scheduling

package scheduling

import (
	"iter"

	"github.com/katalvlaran/geco/generator"
	"github.com/katalvlaran/geco/model"
)

// HookerSweepFacilities is the facility count of every HookerSweep instance.
const HookerSweepFacilities = 3

var (
	hookerSweepTasks     = []int{10, 12, 14, 16, 18, 20, 22}
	hookerSweepTimeSteps = []int{10, 100}
)

// HookerInstance is one point of HookerSweep.
type HookerInstance struct {
	Facilities int
	Tasks      int
	TimeSteps  int
	Seed       int64
	Model      *model.Model
	Err        error
}

// HookerSweep lazily builds Hooker's grid: tasks 10, 12, …, 22 × time steps
// {10, 100} × seeds, seeds varying fastest. Each model is built on demand when the sequence is ranged.
func HookerSweep(seeds []int64) iter.Seq[HookerInstance] {
	build := func(pt generator.Point) HookerInstance {
		inst := HookerInstance{
			Facilities: HookerSweepFacilities,
			Tasks:      pt.Int("tasks"),
			TimeSteps:  pt.Int("time_steps"),
			Seed:       pt.Int64("seed"),
		}
		inst.Model, inst.Err = Hooker(inst.Facilities, inst.Tasks, inst.TimeSteps, inst.Seed)
		return inst
	}
	return generator.MustExpandParameters(build,
		generator.IntAxis("tasks", hookerSweepTasks...),
		generator.IntAxis("time_steps", hookerSweepTimeSteps...),
		generator.Int64Axis("seed", seeds...),
	)
}
