package setcover_test

import (
	"fmt"

	"github.com/katalvlaran/geco/setcover"
)

func ExampleYang() {
	m, err := setcover.Yang(5, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m.Name(), m.NumVariables(), m.NumConstraints(), m.Sense())
	// Output:
	// Yang Set Cover 50 5 minimize
}
