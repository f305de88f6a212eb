package generator_test

import (
	"fmt"

	"github.com/katalvlaran/geco/generator"
)

func ExampleExpandParameters() {
	seq, err := generator.ExpandParameters(func(p generator.Point) string {
		return fmt.Sprintf("n=%d p=%.1f", p.Int("n"), p.Float64("p"))
	}, generator.IntAxis("n", 10, 20), generator.FloatAxis("p", 0.1, 0.5))
	if err != nil {
		fmt.Println(err)
		return
	}
	for s := range seq {
		fmt.Println(s)
	}
	// Output:
	// n=10 p=0.1
	// n=10 p=0.5
	// n=20 p=0.1
	// n=20 p=0.5
}
