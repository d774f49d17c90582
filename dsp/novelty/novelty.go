package novelty

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-novelty/dsp/conv"
	"github.com/cwbudde/algo-novelty/dsp/window"
)

// Errors returned for invalid parameters.
var (
	ErrEmptySignal         = errors.New("novelty: signal must not be empty")
	ErrInvalidSampleRate   = errors.New("novelty: sample rate must be >= 1")
	ErrInvalidWindowLength = errors.New("novelty: window length must be >= 1")
	ErrInvalidHopLength    = errors.New("novelty: hop length must be >= 1")
)

// Energy computes an energy-based novelty curve from a mono signal.
//
// The curve peaks at moments of sudden energy increase and has length
// ceil(len(signal) / hop). The second return value is the feature sample
// rate sampleRate/hop, giving the time scale of the curve: index i
// corresponds to signal time i*hop/sampleRate seconds.
//
// The pipeline squares the signal and a Hann window, convolves them in
// centered same-length mode to obtain windowed local energy, subsamples
// every hop-th value, optionally applies logarithmic compression
// ln(1 + gamma*v), takes the half-wave rectified first difference with a
// trailing zero, and optionally scales the curve so its maximum is 1.
//
// The call is pure and re-entrant; the input slice is only read.
func Energy(signal []float64, sampleRate int, opts ...Option) ([]float64, float64, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(signal) == 0 {
		return nil, 0, ErrEmptySignal
	}
	if sampleRate < 1 {
		return nil, 0, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if cfg.windowLength < 1 {
		return nil, 0, fmt.Errorf("%w: %d", ErrInvalidWindowLength, cfg.windowLength)
	}
	if cfg.hopLength < 1 {
		return nil, 0, fmt.Errorf("%w: %d", ErrInvalidHopLength, cfg.hopLength)
	}

	featureRate := float64(sampleRate) / float64(cfg.hopLength)

	// Windowed local energy: convolving the squared signal with the
	// squared window equals the sliding sum of w^2*x^2 around each sample.
	coeffs := window.Generate(cfg.windowType, cfg.windowLength)

	coeffsSq := make([]float64, len(coeffs))
	vecmath.MulBlock(coeffsSq, coeffs, coeffs)

	signalSq := make([]float64, len(signal))
	vecmath.MulBlock(signalSq, signal, signal)

	energy, err := conv.ConvolveMode(signalSq, coeffsSq, conv.ModeSame)
	if err != nil {
		return nil, 0, fmt.Errorf("novelty: local energy convolution: %w", err)
	}

	// Subsample to frame rate.
	frames := make([]float64, 0, (len(energy)+cfg.hopLength-1)/cfg.hopLength)
	for i := 0; i < len(energy); i += cfg.hopLength {
		frames = append(frames, energy[i])
	}

	// Gamma exactly zero bypasses compression; it is a sentinel, not a
	// degenerate parameter.
	if cfg.gamma != 0 {
		for i, v := range frames {
			frames[i] = math.Log1p(cfg.gamma * v)
		}
	}

	// Half-wave rectified first difference; the final frame has no
	// lookahead and stays zero by convention.
	curve := make([]float64, len(frames))
	for i := 0; i+1 < len(frames); i++ {
		if d := frames[i+1] - frames[i]; d > 0 {
			curve[i] = d
		}
	}

	if cfg.normalize {
		max := 0.0
		for _, v := range curve {
			if v > max {
				max = v
			}
		}

		// A flat or silent input yields an all-zero curve; leave it as is.
		if max > 0 {
			for i := range curve {
				curve[i] /= max
			}
		}
	}

	return curve, featureRate, nil
}
