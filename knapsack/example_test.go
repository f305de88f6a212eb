package knapsack_test

import (
	"fmt"

	"github.com/katalvlaran/geco/knapsack"
	"github.com/katalvlaran/geco/sampler"
)

func ExamplePisingerParams() {
	p, err := knapsack.PisingerParams(4, 100, knapsack.StronglyCorrelated{R: 1000}, sampler.New(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	m, _ := knapsack.Build(p)
	fmt.Println(m.NumVariables(), m.NumConstraints(), m.Sense())
	fmt.Printf("%.3f\n", p.Profits[0]-p.Weights[0])
	// Output:
	// 4 1 maximize
	// 100.000
}
