// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFullScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits int
		want float32
	}{
		{8, 128},
		{16, 32768},
		{24, 8388608},
		{32, 2147483648},
		{12, 32768},
		{0, 32768},
	}

	for _, tt := range tests {
		if got := FullScale(tt.bits); got != tt.want {
			t.Errorf("FullScale(%d) = %v, want %v", tt.bits, got, tt.want)
		}
	}
}

func TestFloat32ToPCM(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		bits  int
		want  int
	}{
		{"zero", 0.0, 16, 0},
		{"max positive 16", 1.0, 16, math.MaxInt16},
		{"max negative 16", -1.0, 16, -math.MaxInt16},
		{"half positive 16", 0.5, 16, 16383},
		{"half negative 16", -0.5, 16, -16383},
		{"small positive 16", 0.001, 16, 32},
		{"clamp over max 16", 1.5, 16, math.MaxInt16},
		{"clamp under min 16", -100.0, 16, -math.MaxInt16},
		{"max positive 8", 1.0, 8, 127},
		{"max positive 24", 1.0, 24, 8388607},
		{"half 24", 0.5, 24, 4194303},
		{"max positive 32", 1.0, 32, math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float32ToPCM(tt.input, tt.bits)
			// float32 rounding may shift the result by one step
			if diff := got - tt.want; diff > 1 || diff < -1 {
				t.Errorf("Float32ToPCM(%v, %d) = %v, want %v", tt.input, tt.bits, got, tt.want)
			}
		})
	}
}

func TestPCMToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    int
		bits int
		want float32
	}{
		{0, 16, 0},
		{16384, 16, 0.5},
		{-32768, 16, -1},
		{32767, 16, 32767.0 / 32768.0},
		{-128, 8, -1},
		{64, 8, 0.5},
		{-8388608, 24, -1},
		{4194304, 24, 0.5},
		{-2147483648, 32, -1},
	}

	for _, tt := range tests {
		if got := PCMToFloat32(tt.v, tt.bits); got != tt.want {
			t.Errorf("PCMToFloat32(%d, %d) = %v, want %v", tt.v, tt.bits, got, tt.want)
		}
	}
}

// TestPCMRoundTrip checks that converting to PCM and back stays within one
// quantization step.
func TestPCMRoundTrip(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{8, 16, 24} {
		step := 1 / float64(FullScale(bits))

		for f := -1.0; f <= 1.0; f += 0.01 {
			back := PCMToFloat32(Float32ToPCM(float32(f), bits), bits)

			if d := math.Abs(float64(back) - f); d > 2*step {
				t.Errorf("bits=%d: %v -> %v (diff %v, step %v)", bits, f, back, d, step)
			}
		}
	}
}

func TestFloat32ToPCMMonotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToPCM(-1.0, 16)

	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToPCM(float32(f), 16)
		if curr < prev {
			t.Errorf("Float32ToPCM not monotonic: f=%v gives %v, previous %v", f, curr, prev)
		}
		prev = curr
	}
}

func BenchmarkPCMToFloat32(b *testing.B) {
	in := make([]int, 4096)
	out := make([]float32, 4096)
	for i := range in {
		in[i] = (i*37)%65536 - 32768
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		for j, v := range in {
			out[j] = PCMToFloat32(v, 16)
		}
	}
}

func TestPCMToFloat32_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = PCMToFloat32(12345, 16)
	})

	if allocs > 0 {
		t.Errorf("PCMToFloat32 allocated %v times, want 0", allocs)
	}
}
