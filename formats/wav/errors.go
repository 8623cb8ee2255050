// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"

	"github.com/ik5/audspec/internal/pcm"
)

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavFormat = errors.New("unsupported WAV format tag")
	ErrInvalidSampleRate    = errors.New("invalid sample rate")
	ErrPartialFrame         = errors.New("sample count is not a whole number of frames")

	// ErrUnsupportedBitDepth is shared with the other PCM decoders.
	ErrUnsupportedBitDepth = pcm.ErrUnsupportedBitDepth
)
