// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockReader simulates a go-audio decoder.
type mockReader struct {
	sampleRate int
	channels   int
	samples    []int
	offset     int
	fail       error
}

func (m *mockReader) Format() *goaudio.Format {
	return &goaudio.Format{SampleRate: m.sampleRate, NumChannels: m.channels}
}

func (m *mockReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.fail != nil {
		return 0, m.fail
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func newMock(samples ...int) *mockReader {
	return &mockReader{sampleRate: 8000, channels: 1, samples: samples}
}

func TestNewSource_BitDepth(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{8, 16, 24, 32} {
		if _, err := NewSource(newMock(), 8000, 1, bits); err != nil {
			t.Errorf("NewSource(bits=%d) error = %v", bits, err)
		}
	}

	for _, bits := range []int{0, 4, 12, 64} {
		_, err := NewSource(newMock(), 8000, 1, bits)
		if !errors.Is(err, ErrUnsupportedBitDepth) {
			t.Errorf("NewSource(bits=%d) error = %v, want ErrUnsupportedBitDepth", bits, err)
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src, err := NewSource(newMock(), 44100, 2, 24)
	if err != nil {
		t.Fatal(err)
	}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BitDepth() != 24 {
		t.Errorf("BitDepth() = %d, want 24", src.BitDepth())
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096 before first read", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_Normalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		bits  int
		opts  []Option
		input []int
		want  []float32
	}{
		{"16-bit", 16, nil, []int{0, 16384, -32768}, []float32{0, 0.5, -1}},
		{"24-bit", 24, nil, []int{4194304, -8388608}, []float32{0.5, -1}},
		{"32-bit", 32, nil, []int{1073741824}, []float32{0.5}},
		{"signed 8-bit", 8, nil, []int{64, -128}, []float32{0.5, -1}},
		{"unsigned 8-bit", 8, []Option{Unsigned8()}, []int{128, 192, 0}, []float32{0, 0.5, -1}},
		{"unsigned flag ignored above 8 bits", 16, []Option{Unsigned8()}, []int{16384}, []float32{0.5}},
		{"raw two's complement 8-bit", 8, []Option{Signed8()}, []int{64, 192, 128, 255}, []float32{0.5, -0.5, -1, -0.0078125}},
		{"signed flag keeps negative 8-bit", 8, []Option{Signed8()}, []int{-64}, []float32{-0.5}},
		{"signed flag ignored above 8 bits", 16, []Option{Signed8()}, []int{-16384, 255}, []float32{-0.5, 255.0 / 32768}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := NewSource(newMock(tt.input...), 8000, 1, tt.bits, tt.opts...)
			if err != nil {
				t.Fatal(err)
			}

			buf := make([]float32, 16)
			n, err := src.ReadSamples(buf)
			if err != io.EOF {
				t.Errorf("ReadSamples() error = %v, want io.EOF on short read", err)
			}
			if n != len(tt.want) {
				t.Fatalf("ReadSamples() n = %d, want %d", n, len(tt.want))
			}

			for i, w := range tt.want {
				if buf[i] != w {
					t.Errorf("sample %d = %v, want %v", i, buf[i], w)
				}
			}
		})
	}
}

func TestSource_ReadSamples_Chunks(t *testing.T) {
	t.Parallel()

	src, err := NewSource(newMock(1, 2, 3, 4, 5), 8000, 1, 16)
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]float32, 2)
	total := 0

	for {
		n, err := src.ReadSamples(buf)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total != 5 {
		t.Errorf("read %d samples, want 5", total)
	}
	if src.BufSize() != 2 {
		t.Errorf("BufSize() = %d, want 2", src.BufSize())
	}
}

func TestSource_ReadSamples_Empty(t *testing.T) {
	t.Parallel()

	src, _ := NewSource(newMock(1), 8000, 1, 16)

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	m := newMock()
	m.fail = io.ErrUnexpectedEOF
	src, _ := NewSource(m, 8000, 1, 16)

	_, err := src.ReadSamples(make([]float32, 8))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSeekable(t *testing.T) {
	t.Parallel()

	br := bytes.NewReader([]byte("abc"))
	rs, err := Seekable(br)
	if err != nil {
		t.Fatal(err)
	}
	if rs != br {
		t.Error("Seekable() should return a ReadSeeker unchanged")
	}

	rs, err = Seekable(io.MultiReader(strings.NewReader("hello")))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := rs.Seek(1, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	rest, _ := io.ReadAll(rs)
	if string(rest) != "ello" {
		t.Errorf("after seek got %q, want %q", rest, "ello")
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestSeekable_ReadError(t *testing.T) {
	t.Parallel()

	if _, err := Seekable(errReader{}); err == nil {
		t.Error("Seekable() error = nil, want buffering error")
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int, 1<<16)
	for i := range samples {
		samples[i] = i%65536 - 32768
	}
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for range b.N {
		src, _ := NewSource(newMock(samples...), 44100, 2, 16)
		for {
			if _, err := src.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
