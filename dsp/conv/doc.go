// Package conv provides linear convolution routines.
//
// Two strategies are offered:
//
//   - Direct convolution: simple O(N*M) time-domain convolution, best for
//     short kernels
//   - Overlap-add (OLA): FFT-based block convolution for longer kernels
//
// For one-shot convolution, use the simple functions:
//
//	result, err := conv.Convolve(signal, kernel)
//	result, err := conv.ConvolveMode(signal, kernel, conv.ModeSame)
//
// Convolve selects the algorithm automatically based on kernel length.
// ConvolveMode additionally trims the full result: ModeSame yields an
// output aligned with and as long as the first input, with zero-padding
// at the boundaries, which is the form short-time analysis needs.
//
// For repeated convolution with the same kernel, create a reusable
// convolver:
//
//	c, err := conv.NewOverlapAdd(kernel, blockSize)
//	result, err := c.Process(signal)
package conv
