// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audspec"
	"github.com/ik5/audspec/fft"
	"github.com/ik5/audspec/formats"
	"github.com/ik5/audspec/render"
	"github.com/ik5/audspec/spectrum"
)

// run decodes input, computes its averaged spectrum and saves the plot.
// cfg must have passed Validate.
func run(cfg *Config, input string, log *logrus.Logger, stdout io.Writer) error {
	planner, err := fft.Lookup(cfg.Backend)
	if err != nil {
		return err
	}

	mode, err := audspec.ParseChannelMode(cfg.Channels)
	if err != nil {
		return err
	}

	entry := log.WithFields(logrus.Fields{
		"input":   input,
		"backend": cfg.Backend,
	})

	avg, err := spectrum.NewAverager(spectrum.DefaultConfig(), planner, spectrum.WithWorkers(cfg.Workers))
	if err != nil {
		return err
	}

	entry.WithFields(logrus.Fields{
		"fft_size": avg.Config().FFTSize,
		"hop_size": avg.Config().HopSize,
		"workers":  avg.Workers(),
		"channels": mode,
	}).Debug("analyzing")

	start := time.Now()

	spec, err := audspec.AnalyzeFile(input, formats.NewRegistry(), avg, audspec.WithChannelMode(mode))
	if err != nil {
		return err
	}

	minDB, maxDB := spec.Range()
	entry.WithFields(logrus.Fields{
		"sample_rate": spec.SampleRate,
		"windows":     spec.Windows,
		"min_db":      minDB,
		"max_db":      maxDB,
		"elapsed":     time.Since(start),
	}).Info("spectrum computed")

	opts := render.DefaultOptions()
	opts.Width = cfg.Width
	opts.Height = cfg.Height

	if err := render.SaveFile(cfg.Output, spec, opts); err != nil {
		return err
	}

	entry.WithField("output", cfg.Output).Debug("plot saved")

	fmt.Fprintf(stdout, "Saved FFT Magnitude Spectrum with dynamic range as '%s'\n", cfg.Output)

	return nil
}
