// SPDX-License-Identifier: EPL-2.0

package fft

import "gonum.org/v1/gonum/dsp/fourier"

// gonumTransform wraps fourier.CmplxFFT, which keeps its own work buffers.
type gonumTransform struct {
	n   int
	fft *fourier.CmplxFFT
}

// NewGonum plans a gonum complex FFT executor of length n.
func NewGonum(n int) (Transform, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}

	return &gonumTransform{n: n, fft: fourier.NewCmplxFFT(n)}, nil
}

func (t *gonumTransform) Len() int { return t.n }

func (t *gonumTransform) Forward(dst, src []complex128) error {
	if err := checkBuffers(t.n, dst, src); err != nil {
		return err
	}

	t.fft.Coefficients(dst, src)

	return nil
}
