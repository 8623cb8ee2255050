// SPDX-License-Identifier: EPL-2.0

package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ik5/audspec/spectrum"
)

// Defaults used by DefaultOptions.
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
	DefaultTitle  = "FFT Magnitude Spectrum (dB)"
	DefaultFormat = "png"

	XLabel = "Frequency (Hz)"
	YLabel = "Magnitude (dB)"
)

// rasterDPI maps pixel sizes to vg lengths; it matches the vgimg default.
const rasterDPI = 96

var errEmptySpectrum = errors.New("spectrum has no points")

var supportedFormats = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "tif": true, "tiff": true,
	"svg": true, "pdf": true, "eps": true,
}

// Options controls the look of the plot. Sizes are in pixels for raster
// formats; vector formats use the same physical size at 96 DPI.
type Options struct {
	Width  int
	Height int
	Title  string
	Color  color.Color
}

func DefaultOptions() Options {
	return Options{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Title:  DefaultTitle,
		Color:  color.RGBA{B: 255, A: 255},
	}
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("image size %dx%d, both sides must be positive", o.Width, o.Height)
	}
	return nil
}

// FormatOf returns the lower-cased extension of path without the dot, or
// DefaultFormat when path has none.
func FormatOf(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return DefaultFormat
	}
	return ext
}

// Supported reports whether format can be written.
func Supported(format string) bool {
	return supportedFormats[strings.ToLower(format)]
}

// Plot builds the line plot for s: frequency from 0 to Nyquist on x,
// s.Range() on y.
func Plot(s spectrum.Spectrum, opts Options) (*plot.Plot, error) {
	if len(s.Points) == 0 {
		return nil, errEmptySpectrum
	}

	xys := make(plotter.XYs, len(s.Points))
	for i, pt := range s.Points {
		xys[i].X = pt.Frequency
		xys[i].Y = pt.DB
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("building line series: %w", err)
	}
	line.LineStyle.Width = vg.Points(1)
	if opts.Color != nil {
		line.LineStyle.Color = opts.Color
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.Add(plotter.NewGrid(), line)

	// Add widens the axes to the data; pin them afterwards.
	minDB, maxDB := s.Range()
	p.X.Min, p.X.Max = 0, s.Nyquist()
	if minDB == maxDB {
		// flat spectra still need a non-empty axis
		minDB, maxDB = minDB-1, maxDB+1
	}
	p.Y.Min, p.Y.Max = minDB, maxDB

	return p, nil
}

// Write renders s in the given format (png, jpg, tif, svg, pdf or eps) to w.
func Write(w io.Writer, s spectrum.Spectrum, format string, opts Options) error {
	if err := opts.validate(); err != nil {
		return spectrum.Wrap(spectrum.KindInvalidConfig, "render", err)
	}

	format = strings.ToLower(format)
	if !Supported(format) {
		return spectrum.Wrap(spectrum.KindRender, "render", fmt.Errorf("unsupported image format %q", format))
	}

	p, err := Plot(s, opts)
	if err != nil {
		return spectrum.Wrap(spectrum.KindRender, "render", err)
	}

	width := vg.Length(opts.Width) * vg.Inch / rasterDPI
	height := vg.Length(opts.Height) * vg.Inch / rasterDPI

	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return spectrum.Wrap(spectrum.KindRender, "render", err)
	}

	if _, err := wt.WriteTo(w); err != nil {
		return spectrum.Wrap(spectrum.KindRender, "render", fmt.Errorf("writing image: %w", err))
	}

	return nil
}

// PNG renders s as a PNG image to w.
func PNG(w io.Writer, s spectrum.Spectrum, opts Options) error {
	return Write(w, s, "png", opts)
}

// SaveFile writes the plot to path, choosing the format from its extension.
// A failed render does not leave a partial file behind.
func SaveFile(path string, s spectrum.Spectrum, opts Options) (err error) {
	format := FormatOf(path)
	if !Supported(format) {
		return spectrum.Wrap(spectrum.KindRender, "render", fmt.Errorf("unsupported image format %q for %s", format, path))
	}

	f, err := os.Create(path)
	if err != nil {
		return spectrum.Wrap(spectrum.KindRender, "render", err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = spectrum.Wrap(spectrum.KindRender, "render", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return Write(f, s, format, opts)
}
