package sampler_test

import (
	"fmt"

	"github.com/katalvlaran/geco/sampler"
)

// ExampleNew shows that two samplers built from one seed agree draw by draw.
func ExampleNew() {
	a, b := sampler.New(2024), sampler.New(2024)
	same := true
	for i := 0; i < 100; i++ {
		if a.Int(1, 100) != b.Int(1, 100) {
			same = false
		}
	}
	fmt.Println(same)
	// Output:
	// true
}
