// SPDX-License-Identifier: EPL-2.0

// Package spectrum computes the time-averaged magnitude spectrum of a sample
// stream, in decibels.
//
// # Pipeline
//
// Compute runs these stages in order:
//  1. Segmentation: windows of FFTSize samples, HopSize apart. Only full
//     windows are used, so n samples yield floor((n-FFTSize)/HopSize)+1
//     windows, or none when n < FFTSize.
//  2. Transform: each window is taken as-is (no window function) and passed
//     through a forward FFT of length FFTSize.
//  3. Normalization: every bin magnitude is divided by FFTSize.
//  4. Averaging: the magnitude rows are averaged bin by bin.
//  5. Conversion: the lower FFTSize/2 bins become (frequency, dB) points with
//     dB = 20*log10(avg + 1e-10), clipped below at -100.
//
// # Usage
//
//	avg, err := spectrum.NewAverager(spectrum.DefaultConfig(), fft.Algo)
//	if err != nil {
//	    return err
//	}
//	spec, err := avg.Compute(samples, 44100)
//	if errors.Is(err, spectrum.ErrNoData) {
//	    // input shorter than one window
//	}
//	lo, hi := spec.Range()
//
// # Errors
//
// Every failure is an *Error with a Kind. The sentinels ErrInvalidConfig,
// ErrDecode, ErrNoData and ErrRender match any *Error of the same Kind via
// errors.Is. Decode and render errors are produced by the surrounding
// pipeline and wrapped with Wrap.
package spectrum
