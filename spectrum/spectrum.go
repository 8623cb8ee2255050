// SPDX-License-Identifier: EPL-2.0

package spectrum

import "math"

const (
	// Epsilon is added to every averaged magnitude before taking the log.
	Epsilon = 1e-10
	// FloorDB is the lowest dB value a point can carry.
	FloorDB = -100.0
	// rangeCeil and rangeFloor are the starting bounds of Range.
	rangeCeil  = 100.0
	rangeFloor = -100.0
)

// Point is one bin of the dB spectrum.
type Point struct {
	Frequency float64 // Hz
	DB        float64
}

// Spectrum is the time-averaged magnitude spectrum of one recording,
// restricted to the non-negative frequency half.
type Spectrum struct {
	// Points has FFTSize/2 entries ordered by increasing frequency.
	Points     []Point
	SampleRate int
	FFTSize    int
	// Windows is the number of windows that were averaged.
	Windows int
}

// Range returns the y-axis bounds for the spectrum:
// min(100, lowest dB) and max(-100, highest dB).
func (s Spectrum) Range() (float64, float64) {
	lo, hi := rangeCeil, rangeFloor
	for _, p := range s.Points {
		lo = math.Min(lo, p.DB)
		hi = math.Max(hi, p.DB)
	}

	return lo, hi
}

// Nyquist is half the sample rate, the upper end of the frequency axis.
func (s Spectrum) Nyquist() float64 {
	return float64(s.SampleRate) / 2
}

// BinWidth is the frequency distance between adjacent points.
func (s Spectrum) BinWidth() float64 {
	if s.FFTSize == 0 {
		return 0
	}

	return float64(s.SampleRate) / float64(s.FFTSize)
}

// Peak returns the point with the highest dB value. ok is false for an
// empty spectrum. Ties resolve to the lowest frequency.
func (s Spectrum) Peak() (Point, bool) {
	if len(s.Points) == 0 {
		return Point{}, false
	}

	best := s.Points[0]
	for _, p := range s.Points[1:] {
		if p.DB > best.DB {
			best = p
		}
	}

	return best, true
}

// ToDB converts an averaged magnitude to decibels with the -100 dB floor.
func ToDB(magnitude float64) float64 {
	db := 20 * math.Log10(magnitude+Epsilon)
	if db < FloorDB {
		db = FloorDB
	}

	return db
}

// buildSpectrum keeps the lower half of avg and converts it to points.
func buildSpectrum(avg []float64, sampleRate, windows int) Spectrum {
	fftSize := len(avg)
	half := fftSize / 2

	points := make([]Point, half)
	for j := range half {
		points[j] = Point{
			Frequency: float64(j) * float64(sampleRate) / float64(fftSize),
			DB:        ToDB(avg[j]),
		}
	}

	return Spectrum{
		Points:     points,
		SampleRate: sampleRate,
		FFTSize:    fftSize,
		Windows:    windows,
	}
}
