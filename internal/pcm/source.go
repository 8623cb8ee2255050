// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer PCM decoders to audio.Source.
package pcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audspec/utils"
)

// ErrUnsupportedBitDepth is returned for depths other than 8, 16, 24 or 32.
var ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")

// Reader is the part of the go-audio wav and aiff decoders that Source uses.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source streams normalized float32 samples out of a Reader.
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	bitDepth   int
	bias       int
	signed8    bool
	intBuf     *goaudio.IntBuffer
}

// Option tweaks how raw integers are interpreted.
type Option func(*Source)

// Unsigned8 marks 8-bit data as unsigned (WAV stores 8-bit PCM offset by 128).
func Unsigned8() Option {
	return func(s *Source) {
		if s.bitDepth == 8 {
			s.bias = -128
		}
	}
}

// Signed8 sign-extends 8-bit data. go-audio's AIFF decoder hands back the
// raw two's complement byte as 0..255.
func Signed8() Option {
	return func(s *Source) {
		s.signed8 = s.bitDepth == 8
	}
}

// NewSource wraps dec. sampleRate and channels come from the caller since
// some decoders only report a complete Format after the first read.
func NewSource(dec Reader, sampleRate, channels, bitDepth int, opts ...Option) (*Source, error) {
	if !SupportedBitDepth(bitDepth) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	s := &Source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// SupportedBitDepth reports whether bits is one of the integer depths
// Source can scale.
func SupportedBitDepth(bits int) bool {
	switch bits {
	case 8, 16, 24, 32:
		return true
	default:
		return false
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) Close() error    { return nil }
func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.dec.Format(),
			SourceBitDepth: s.bitDepth,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		if s.signed8 {
			v = int(int8(v))
		}
		dst[i] = utils.PCMToFloat32(v+s.bias, s.bitDepth)
	}

	// short read without error means the data chunk is exhausted
	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}

// Seekable returns r when it can already seek, otherwise it buffers the
// whole stream in memory. go-audio decoders need to seek over chunks.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return bytes.NewReader(data), nil
}
