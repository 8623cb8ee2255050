// SPDX-License-Identifier: EPL-2.0

package fft

import "github.com/mjibson/go-dsp/fft"

// godspTransform delegates to go-dsp, which allocates its output on every call.
type godspTransform struct {
	n int
}

// NewGoDSP returns a go-dsp backed executor of length n.
func NewGoDSP(n int) (Transform, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}

	return &godspTransform{n: n}, nil
}

func (t *godspTransform) Len() int { return t.n }

func (t *godspTransform) Forward(dst, src []complex128) error {
	if err := checkBuffers(t.n, dst, src); err != nil {
		return err
	}

	copy(dst, fft.FFT(src))

	return nil
}
