// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrUnknownFormat is returned by Registry.Lookup when no decoder matches.
	ErrUnknownFormat = errors.New("unsupported audio format")

	// ErrInvalidChannels is returned when a source reports fewer than one channel.
	ErrInvalidChannels = errors.New("channel count must be positive")
)
