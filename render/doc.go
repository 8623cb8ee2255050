// SPDX-License-Identifier: EPL-2.0

// Package render draws a dB spectrum as a line plot using gonum.org/v1/plot.
//
// The plot is titled "FFT Magnitude Spectrum (dB)" by default, spans 0 Hz to
// the Nyquist frequency on the x axis and the spectrum's Range on the y axis:
//
//	err := render.SaveFile("fft_spectrum_db.png", spec, render.DefaultOptions())
//
// Errors carry spectrum.KindRender, or spectrum.KindInvalidConfig for a bad
// image size, so callers can classify them with spectrum.KindOf.
package render
