package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-novelty/dsp/conv"
)

func ExampleConvolveMode() {
	signal := []float64{1, 2, 3, 4}
	kernel := []float64{0.5, 1, 0.5}

	result, err := conv.ConvolveMode(signal, kernel, conv.ModeSame)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.1f %.1f %.1f %.1f\n", result[0], result[1], result[2], result[3])
	// Output:
	// 2.0 4.0 6.0 5.5
}
