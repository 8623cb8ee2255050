// SPDX-License-Identifier: EPL-2.0

package audspec

import (
	"fmt"
	"os"
	"strings"

	"github.com/ik5/audspec/audio"
	"github.com/ik5/audspec/formats"
	"github.com/ik5/audspec/spectrum"
)

// ChannelMode selects how a multi-channel source becomes one sample stream.
type ChannelMode uint8

const (
	// Mix averages the channels of each frame.
	Mix ChannelMode = iota
	// Interleave keeps every sample of every channel in stream order.
	Interleave
)

func (m ChannelMode) String() string {
	switch m {
	case Mix:
		return "mix"
	case Interleave:
		return "interleaved"
	default:
		return fmt.Sprintf("ChannelMode(%d)", uint8(m))
	}
}

// ParseChannelMode accepts "mix" or "interleaved" (case-insensitive).
func ParseChannelMode(s string) (ChannelMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mix":
		return Mix, nil
	case "interleaved", "interleave":
		return Interleave, nil
	default:
		return Mix, spectrum.Wrap(spectrum.KindInvalidConfig, "channels",
			fmt.Errorf("unknown channel mode %q (want mix or interleaved)", s))
	}
}

type options struct {
	mode    ChannelMode
	bufSize int
}

// Option configures Analyze and AnalyzeFile.
type Option func(*options)

// WithChannelMode sets the flattening mode; the default is Mix.
func WithChannelMode(m ChannelMode) Option {
	return func(o *options) { o.mode = m }
}

// WithBufferSize sets the read chunk used while draining the decoder.
func WithBufferSize(n int) Option {
	return func(o *options) { o.bufSize = n }
}

// Flatten returns a single-channel view of src.
func Flatten(src audio.Source, mode ChannelMode) audio.Source {
	if src.Channels() == 1 {
		return src
	}
	if mode == Interleave {
		return audio.NewInterleaved(src)
	}
	return audio.NewMonoMixer(src)
}

// Analyze flattens src, reads it to the end and computes its averaged dB
// spectrum. Read failures carry spectrum.KindDecode.
func Analyze(src audio.Source, avg *spectrum.Averager, opts ...Option) (spectrum.Spectrum, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	samples, err := audio.ReadAll(Flatten(src, o.mode), o.bufSize)
	if err != nil {
		return spectrum.Spectrum{}, spectrum.Wrap(spectrum.KindDecode, "read", err)
	}

	return avg.Compute(samples, src.SampleRate())
}

// AnalyzeFile decodes the file at path with the decoder registered for its
// extension and runs Analyze. A nil reg uses formats.NewRegistry.
// Open, lookup and decode failures carry spectrum.KindDecode.
func AnalyzeFile(path string, reg *audio.Registry, avg *spectrum.Averager, opts ...Option) (spectrum.Spectrum, error) {
	if reg == nil {
		reg = formats.NewRegistry()
	}

	dec, err := reg.Lookup(path)
	if err != nil {
		return spectrum.Spectrum{}, spectrum.Wrap(spectrum.KindDecode, "open", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return spectrum.Spectrum{}, spectrum.Wrap(spectrum.KindDecode, "open", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return spectrum.Spectrum{}, spectrum.Wrap(spectrum.KindDecode, "decode", fmt.Errorf("%s: %w", path, err))
	}
	defer src.Close()

	return Analyze(src, avg, opts...)
}
