// SPDX-License-Identifier: EPL-2.0

package spectrum

import "iter"

// WindowCount returns how many full windows of size fftSize, hop samples
// apart, fit into n samples: floor((n-fftSize)/hop)+1, or 0 when n < fftSize.
func WindowCount(n, fftSize, hop int) int {
	if fftSize < 1 || hop < 1 || n < fftSize {
		return 0
	}

	return (n-fftSize)/hop + 1
}

// windowOffsets yields the start offsets of count consecutive windows,
// beginning with window index first.
func windowOffsets(first, count, hop int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := first; i < first+count; i++ {
			if !yield(i * hop) {
				return
			}
		}
	}
}
