// SPDX-License-Identifier: EPL-2.0

// Package fft provides forward discrete Fourier transform executors behind a
// single Transform interface.
//
// Executors are built by a Planner for one fixed length and reused for every
// window of that length:
//
//	planner, _ := fft.Lookup("algo")
//	t, _ := planner.Plan(2048)
//	err := t.Forward(out, in)
//
// # Backends
//
//   - algo: github.com/MeKo-Christian/algo-fft (default)
//   - gonum: gonum.org/v1/gonum/dsp/fourier
//   - godsp: github.com/mjibson/go-dsp/fft
//   - naive: direct O(n²) DFT, used as a reference in tests
//
// All backends compute the unnormalized transform
// X[k] = Σ x[j]·exp(-2πi·jk/n).
package fft
