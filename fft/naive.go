// SPDX-License-Identifier: EPL-2.0

package fft

import (
	"math"
	"math/cmplx"
)

// naiveTransform is the O(n²) textbook DFT with a precomputed twiddle table.
// It is the reference the fast backends are checked against.
type naiveTransform struct {
	n       int
	twiddle []complex128
}

// NewNaive returns a direct DFT executor of length n.
func NewNaive(n int) (Transform, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}

	tw := make([]complex128, n)
	for k := range n {
		tw[k] = cmplx.Rect(1, -2*math.Pi*float64(k)/float64(n))
	}

	return &naiveTransform{n: n, twiddle: tw}, nil
}

func (t *naiveTransform) Len() int { return t.n }

func (t *naiveTransform) Forward(dst, src []complex128) error {
	if err := checkBuffers(t.n, dst, src); err != nil {
		return err
	}

	// dst may alias src
	in := src
	if &dst[0] == &src[0] {
		in = append([]complex128(nil), src...)
	}

	for k := range t.n {
		var sum complex128
		idx := 0
		for j := range t.n {
			sum += in[j] * t.twiddle[idx]
			idx += k
			if idx >= t.n {
				idx -= t.n
			}
		}
		dst[k] = sum
	}

	return nil
}
