package core_test

import (
	"fmt"

	"github.com/katalvlaran/geco/core"
)

// ExampleDensify relabels native vertex IDs to insertion positions.
func ExampleDensify() {
	g := core.NewGraph()
	_, _ = g.AddEdge("paris", "berlin", 0)
	_, _ = g.AddEdge("berlin", "rome", 0)

	d := core.Densify(g)
	for _, e := range d.Edges() {
		fmt.Printf("%d-%d (%s-%s)\n", e.U, e.V, d.ID(e.U), d.ID(e.V))
	}
	// Output:
	// 0-1 (paris-berlin)
	// 1-2 (berlin-rome)
}
