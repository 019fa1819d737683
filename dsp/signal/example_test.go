package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-smooth/dsp/signal"
)

func ExampleGenerator_ConstantVelocity() {
	g, err := signal.NewGenerator(signal.WithDT(0.5))
	if err != nil {
		panic(err)
	}

	path, err := g.ConstantVelocity([]float64{0, 1}, []float64{2, -1}, 4)
	if err != nil {
		panic(err)
	}
	for _, p := range path {
		fmt.Printf("%.1f %.1f\n", p[0], p[1])
	}

	// Output:
	// 0.0 1.0
	// 1.0 0.5
	// 2.0 0.0
	// 3.0 -0.5
}
