// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"slices"
	"testing"
)

func TestWindowCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n, fft, hop int
		want        int
	}{
		{0, 2048, 1024, 0},
		{2047, 2048, 1024, 0},
		{2048, 2048, 1024, 1},
		{3071, 2048, 1024, 1},
		{3072, 2048, 1024, 2},
		{8192, 2048, 1024, 7},
		{100, 10, 10, 10},
		{100, 10, 3, 31},
		{100, 10, 100, 1},
		{5, 0, 1, 0},
		{5, 2, 0, 0},
	}

	for _, tt := range tests {
		if got := WindowCount(tt.n, tt.fft, tt.hop); got != tt.want {
			t.Errorf("WindowCount(%d, %d, %d) = %d, want %d", tt.n, tt.fft, tt.hop, got, tt.want)
		}
	}
}

func TestWindowCount_Formula(t *testing.T) {
	t.Parallel()

	for n := 0; n < 300; n++ {
		for _, hop := range []int{1, 7, 16, 32} {
			got := WindowCount(n, 32, hop)

			want := 0
			for start := 0; start+32 <= n; start += hop {
				want++
			}

			if got != want {
				t.Fatalf("WindowCount(%d, 32, %d) = %d, want %d", n, hop, got, want)
			}
		}
	}
}

func TestWindowOffsets(t *testing.T) {
	t.Parallel()

	got := slices.Collect(windowOffsets(0, 4, 512))
	want := []int{0, 512, 1024, 1536}
	if !slices.Equal(got, want) {
		t.Errorf("windowOffsets(0, 4, 512) = %v, want %v", got, want)
	}

	got = slices.Collect(windowOffsets(3, 2, 10))
	want = []int{30, 40}
	if !slices.Equal(got, want) {
		t.Errorf("windowOffsets(3, 2, 10) = %v, want %v", got, want)
	}

	if got := slices.Collect(windowOffsets(0, 0, 10)); len(got) != 0 {
		t.Errorf("windowOffsets(0, 0, 10) = %v, want empty", got)
	}

	for start := range windowOffsets(0, 100, 1) {
		if start == 2 {
			break
		}
	}
}
