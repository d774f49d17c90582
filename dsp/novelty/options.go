package novelty

import "github.com/cwbudde/algo-novelty/dsp/window"

const (
	// DefaultWindowLength is the analysis window length in samples.
	DefaultWindowLength = 1024
	// DefaultHopLength is the frame advance in samples.
	DefaultHopLength = 256
	// DefaultGamma is the logarithmic compression factor.
	DefaultGamma = 10.0
)

// Option configures the novelty computation.
type Option func(*config)

type config struct {
	windowType   window.Type
	windowLength int
	hopLength    int
	gamma        float64
	normalize    bool
}

func defaultConfig() config {
	return config{
		windowType:   window.TypeHann,
		windowLength: DefaultWindowLength,
		hopLength:    DefaultHopLength,
		gamma:        DefaultGamma,
		normalize:    true,
	}
}

// WithWindowLength sets the analysis window length in samples.
// Values < 1 are rejected by Energy.
func WithWindowLength(n int) Option {
	return func(c *config) {
		c.windowLength = n
	}
}

// WithHopLength sets the frame advance in samples.
// Values < 1 are rejected by Energy.
func WithHopLength(n int) Option {
	return func(c *config) {
		c.hopLength = n
	}
}

// WithGamma sets the logarithmic compression factor. Zero disables
// compression entirely. Negative values are applied as written and can
// drive 1+gamma*v below zero, producing NaN frames; choosing a sensible
// gamma is the caller's responsibility.
func WithGamma(gamma float64) Option {
	return func(c *config) {
		c.gamma = gamma
	}
}

// WithNormalize controls scaling of the curve to a maximum of 1.
// Enabled by default.
func WithNormalize(enabled bool) Option {
	return func(c *config) {
		c.normalize = enabled
	}
}

// WithWindowType selects the analysis window shape. Defaults to Hann.
func WithWindowType(t window.Type) Option {
	return func(c *config) {
		c.windowType = t
	}
}
