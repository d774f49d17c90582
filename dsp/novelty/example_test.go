package novelty_test

import (
	"fmt"

	"github.com/cwbudde/algo-novelty/dsp/novelty"
)

func ExampleEnergy() {
	// Silence, then a constant tone of amplitude 1.
	x := make([]float64, 2048)
	for i := 1024; i < len(x); i++ {
		x[i] = 1
	}

	curve, rate, err := novelty.Energy(x, 16000,
		novelty.WithWindowLength(1024),
		novelty.WithHopLength(256),
	)
	if err != nil {
		panic(err)
	}

	fmt.Printf("frames=%d rate=%.1f\n", len(curve), rate)
	// Output:
	// frames=8 rate=62.5
}
