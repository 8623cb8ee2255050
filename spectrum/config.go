// SPDX-License-Identifier: EPL-2.0

package spectrum

const (
	// DefaultFFTSize is the window length in samples.
	DefaultFFTSize = 2048
	// DefaultHopSize is the stride between windows (50% overlap).
	DefaultHopSize = DefaultFFTSize / 2
)

// Config holds the segmentation parameters.
type Config struct {
	// FFTSize is the window length in samples and the transform length.
	FFTSize int
	// HopSize is the distance in samples between consecutive window starts.
	HopSize int
}

// DefaultConfig returns {FFTSize: 2048, HopSize: 1024}.
func DefaultConfig() Config {
	return Config{
		FFTSize: DefaultFFTSize,
		HopSize: DefaultHopSize,
	}
}

// Validate checks that both sizes can produce a spectrum.
func (c Config) Validate() error {
	if c.FFTSize < 2 {
		return errorf(KindInvalidConfig, "config", "fft size %d, must be at least 2", c.FFTSize)
	}

	if c.HopSize < 1 {
		return errorf(KindInvalidConfig, "config", "hop size %d, must be positive", c.HopSize)
	}

	return nil
}
