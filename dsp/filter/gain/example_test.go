package gain_test

import (
	"fmt"

	"github.com/cwbudde/algo-smooth/dsp/filter/gain"
)

func ExampleFilter_ProcessDT() {
	f, err := gain.New(2, 0.5, 0.1)
	if err != nil {
		panic(err)
	}

	f.ProcessDT(0.1, []float64{0, 10})
	for i := range 3 {
		f.ProcessDT(0.1, []float64{1, 0})
		fmt.Printf("step %d: %.4f %.4f\n", i, f.Values()[0], f.Values()[1])
	}

	// Output:
	// step 0: 0.5000 5.0000
	// step 1: 0.7500 2.5000
	// step 2: 0.8750 1.2500
}

func ExampleFilter_GainForDT() {
	f, err := gain.New(1, 0.5, 0.1)
	if err != nil {
		panic(err)
	}

	for _, dt := range []float64{0.05, 0.1, 0.2} {
		fmt.Printf("dt=%.2f gain=%.4f\n", dt, f.GainForDT(dt))
	}

	// Output:
	// dt=0.05 gain=0.3333
	// dt=0.10 gain=0.5000
	// dt=0.20 gain=0.6667
}
