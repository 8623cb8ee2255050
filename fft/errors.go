// SPDX-License-Identifier: EPL-2.0

package fft

import "errors"

var (
	// ErrUnknownBackend is returned by Lookup for an unregistered backend name.
	ErrUnknownBackend = errors.New("unknown FFT backend")

	// ErrInvalidSize is returned when a plan is requested for a length below 1.
	ErrInvalidSize = errors.New("FFT size must be positive")

	// ErrLengthMismatch is returned when Forward gets slices that do not match the plan length.
	ErrLengthMismatch = errors.New("FFT buffer length does not match plan length")
)
