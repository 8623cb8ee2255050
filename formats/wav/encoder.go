// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audspec/audio"
	"github.com/ik5/audspec/internal/pcm"
	"github.com/ik5/audspec/utils"
)

// Encode writes interleaved float32 samples as integer PCM at bitDepth.
// Samples outside [-1, 1] are clamped. ws must support seeking because the
// RIFF sizes are patched once all data is written.
func Encode(ws io.WriteSeeker, sampleRate, bitDepth, channels int, samples []float32) error {
	if !pcm.SupportedBitDepth(bitDepth) {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	if channels < 1 {
		return fmt.Errorf("%w: %d", audio.ErrInvalidChannels, channels)
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples for %d channels", ErrPartialFrame, len(samples), channels)
	}

	data := make([]int, len(samples))
	for i, x := range samples {
		v := utils.Float32ToPCM(x, bitDepth)
		if bitDepth == 8 {
			v += 128
		}
		data[i] = v
	}

	enc := wav.NewEncoder(ws, sampleRate, bitDepth, channels, formatPCM)

	buf := &goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav header: %w", err)
	}

	return nil
}
