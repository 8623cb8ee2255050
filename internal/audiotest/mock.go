// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests.
// The sources implement audio.Source without importing it to avoid cycles.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrMockRead is returned by sources built with NewFailingSource.
var ErrMockRead = errors.New("mock read failure")

// MockSource generates frames from a waveform function.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // total frames to generate
	generated  int // frames generated so far
	waveform   func(frame int, channel int) float32

	failAfter int // frames after which ReadSamples fails; <0 disables
	closed    bool
}

// NewMockSource creates a source producing frames frames of channels samples each.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
		failAfter:  -1,
	}
}

// NewSilentSource creates a source that generates silence.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

// NewConstantSource creates a source with a constant value on every channel.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

// NewSineSource creates a full-scale sine wave on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewToneSource(sampleRate, channels, frames, frequency, 1)
}

// NewToneSource creates a sine wave of the given amplitude on every channel.
func NewToneSource(sampleRate, channels, frames int, frequency, amplitude float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(amplitude * math.Sin(2*math.Pi*frequency*t))
	})
}

// NewFailingSource creates a silent source whose reads fail with ErrMockRead
// once afterFrames frames have been produced.
func NewFailingSource(sampleRate, channels, afterFrames int) *MockSource {
	m := NewSilentSource(sampleRate, channels, math.MaxInt32)
	m.failAfter = afterFrames
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.generated = 0
}

// Samples renders the whole source as one interleaved slice without
// consuming it.
func (m *MockSource) Samples() []float32 {
	out := make([]float32, 0, m.frames*m.channels)
	for f := range m.frames {
		for ch := range m.channels {
			out = append(out, m.waveform(f, ch))
		}
	}

	return out
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAfter >= 0 && m.generated >= m.failAfter {
		return 0, ErrMockRead
	}

	if m.generated >= m.frames {
		return 0, io.EOF
	}

	want := min(len(dst)/m.channels, m.frames-m.generated)
	if m.failAfter >= 0 {
		want = min(want, m.failAfter-m.generated)
	}

	for frame := range want {
		idx := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(idx, ch)
		}
	}

	m.generated += want
	written := want * m.channels

	if m.generated >= m.frames {
		return written, io.EOF
	}

	return written, nil
}
