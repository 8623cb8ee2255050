// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"github.com/ik5/audspec/fft"
	"golang.org/x/sync/errgroup"
)

type options struct {
	workers int
}

// Option configures an Averager.
type Option func(*options)

// WithWorkers splits the windows into n contiguous chunks transformed in
// parallel. Values below 1 mean 1. Results are reduced in chunk order.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = max(n, 1)
	}
}

// Averager computes time-averaged dB spectra for one Config.
//
// The transform executors are planned once in NewAverager and reused for
// every Compute call. An Averager is not safe for concurrent use.
type Averager struct {
	cfg     Config
	workers []*worker
}

// worker owns one executor plus all scratch memory for its chunk of windows.
type worker struct {
	fftSize int
	t       fft.Transform
	in, out []complex128
	re, im  []float64
	mag     []float64
	sum     []float64
}

// NewAverager validates cfg and plans the transform executors with planner.
// A nil planner selects fft.Algo.
func NewAverager(cfg Config, planner fft.Planner, opts ...Option) (*Averager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if planner == nil {
		planner = fft.Algo
	}

	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	a := &Averager{
		cfg:     cfg,
		workers: make([]*worker, o.workers),
	}

	for i := range a.workers {
		t, err := planner.Plan(cfg.FFTSize)
		if err != nil {
			return nil, Wrap(KindInvalidConfig, "plan", err)
		}

		if t.Len() != cfg.FFTSize {
			return nil, errorf(KindInvalidConfig, "plan", "planner returned length %d for fft size %d", t.Len(), cfg.FFTSize)
		}

		a.workers[i] = newWorker(cfg.FFTSize, t)
	}

	return a, nil
}

func newWorker(fftSize int, t fft.Transform) *worker {
	return &worker{
		fftSize: fftSize,
		t:       t,
		in:      make([]complex128, fftSize),
		out:     make([]complex128, fftSize),
		re:      make([]float64, fftSize),
		im:      make([]float64, fftSize),
		mag:     make([]float64, fftSize),
		sum:     make([]float64, fftSize),
	}
}

// Config returns the configuration the Averager was built with.
func (a *Averager) Config() Config { return a.cfg }

// Workers returns the number of parallel chunks.
func (a *Averager) Workers() int { return len(a.workers) }

// Compute segments samples into windows, transforms each one, averages the
// normalized magnitudes bin by bin and converts the lower half to dB.
//
// It returns a KindNoData error when samples is shorter than one window and
// a KindInvalidConfig error when sampleRate is not positive.
func (a *Averager) Compute(samples []float32, sampleRate int) (Spectrum, error) {
	if sampleRate <= 0 {
		return Spectrum{}, errorf(KindInvalidConfig, "compute", "sample rate %d, must be positive", sampleRate)
	}

	count := WindowCount(len(samples), a.cfg.FFTSize, a.cfg.HopSize)
	if count == 0 {
		return Spectrum{}, errorf(KindNoData, "compute",
			"no FFT windows processed: %d samples, need at least %d", len(samples), a.cfg.FFTSize)
	}

	avg, err := a.average(samples, count)
	if err != nil {
		return Spectrum{}, err
	}

	return buildSpectrum(avg, sampleRate, count), nil
}

func (a *Averager) average(samples []float32, count int) ([]float64, error) {
	n := min(len(a.workers), count)
	hop := a.cfg.HopSize

	if n == 1 {
		w := a.workers[0]
		if err := w.accumulate(samples, 0, count, hop); err != nil {
			return nil, err
		}

		return divide(w.sum, count), nil
	}

	var g errgroup.Group
	for i, w := range a.workers[:n] {
		first := i * count / n
		last := (i + 1) * count / n
		g.Go(func() error {
			return w.accumulate(samples, first, last-first, hop)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := make([]float64, a.cfg.FFTSize)
	for _, w := range a.workers[:n] {
		for k, v := range w.sum {
			total[k] += v
		}
	}

	return divide(total, count), nil
}

// accumulate resets w.sum and adds the normalized magnitude row of count
// windows starting at window index first.
func (w *worker) accumulate(samples []float32, first, count, hop int) error {
	clear(w.sum)
	scale := float64(w.fftSize)

	for start := range windowOffsets(first, count, hop) {
		for i, x := range samples[start : start+w.fftSize] {
			w.in[i] = complex(float64(x), 0)
		}

		if err := w.t.Forward(w.out, w.in); err != nil {
			return fmt.Errorf("transform window at %d: %w", start, err)
		}

		for k, c := range w.out {
			w.re[k] = real(c)
			w.im[k] = imag(c)
		}
		vecmath.Magnitude(w.mag, w.re, w.im)

		for k, m := range w.mag {
			w.sum[k] += m / scale
		}
	}

	return nil
}

func divide(sum []float64, count int) []float64 {
	avg := make([]float64, len(sum))
	for k, v := range sum {
		avg[k] = v / float64(count)
	}

	return avg
}
