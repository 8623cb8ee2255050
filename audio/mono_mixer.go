// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer flattens a multi-channel source to one channel by averaging the
// samples of each frame. A read that ends mid-frame keeps the partial frame
// for the next call.
type MonoMixer struct {
	src   Source
	tmp   []float32
	carry int // samples of an incomplete frame at the front of tmp
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }
func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels < 1 {
		return 0, ErrInvalidChannels
	}
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	need := len(dst) * channels
	if cap(m.tmp) < need {
		buf := make([]float32, max(need, 8192))
		copy(buf, m.tmp[:m.carry])
		m.tmp = buf
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp[m.carry:])
	total := m.carry + n
	frames := total / channels

	switch channels {
	case 2:
		for f := range frames {
			idx := f << 1
			dst[f] = (m.tmp[idx] + m.tmp[idx+1]) * 0.5
		}
	default:
		inv := float32(1) / float32(channels)
		for f := range frames {
			var sum float32
			for _, v := range m.tmp[f*channels : (f+1)*channels] {
				sum += v
			}
			dst[f] = sum * inv
		}
	}

	// a partial frame left at end of stream is dropped
	m.carry = copy(m.tmp, m.tmp[frames*channels:total])
	if err != nil {
		m.carry = 0
	}

	return frames, err
}

// Interleaved exposes every sample of src, all channels interleaved, as one
// mono stream. It performs no mixing.
type Interleaved struct {
	Source
}

func NewInterleaved(src Source) *Interleaved {
	return &Interleaved{Source: src}
}

func (i *Interleaved) Channels() int { return 1 }
