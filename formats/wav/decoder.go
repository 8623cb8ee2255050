// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/audspec/audio"
	"github.com/ik5/audspec/internal/pcm"
)

// WAVE format tags accepted by the decoder.
const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.Seekable(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	// The probe parses headers; a fresh decoder does the streaming so the
	// chunk cursor starts clean.
	probe := wav.NewDecoder(rs)
	if !probe.IsValidFile() {
		return nil, ErrNotWavFile
	}

	switch probe.WavAudioFormat {
	case formatPCM, formatExtensible:
	default:
		return nil, fmt.Errorf("%w: tag %#x", ErrUnsupportedWavFormat, probe.WavAudioFormat)
	}

	bitDepth := int(probe.BitDepth)
	if !pcm.SupportedBitDepth(bitDepth) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding wav data: %w", err)
	}

	src, err := pcm.NewSource(
		wav.NewDecoder(rs),
		int(probe.SampleRate),
		int(probe.NumChans),
		bitDepth,
		pcm.Unsigned8(),
	)
	if err != nil {
		return nil, err
	}

	return src, nil
}
