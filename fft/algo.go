// SPDX-License-Identifier: EPL-2.0

package fft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

type algoTransform struct {
	n    int
	plan *algofft.Plan[complex128]
}

// NewAlgo plans an algo-fft executor of length n.
func NewAlgo(n int) (Transform, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("algo-fft plan %d: %w", n, err)
	}

	return &algoTransform{n: n, plan: plan}, nil
}

func (t *algoTransform) Len() int { return t.n }

func (t *algoTransform) Forward(dst, src []complex128) error {
	if err := checkBuffers(t.n, dst, src); err != nil {
		return err
	}

	if err := t.plan.Forward(dst, src); err != nil {
		return fmt.Errorf("algo-fft forward: %w", err)
	}

	return nil
}
