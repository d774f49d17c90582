// Package novelty computes energy-based novelty functions for onset
// analysis.
//
// A novelty function is a time series that peaks at moments of sudden
// energy increase, the raw material for onset and beat detection. This
// package implements the short-time-energy variant: windowed local
// energy, optional logarithmic compression, half-wave rectified first
// difference, and peak normalization. It deliberately stops at the
// curve; peak-picking and tempo estimation are out of scope.
package novelty
