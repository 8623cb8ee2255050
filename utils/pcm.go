// SPDX-License-Identifier: EPL-2.0

package utils

// FullScale returns 2^(bitDepth-1), the magnitude of the most negative
// signed sample at bitDepth. Unknown depths fall back to 16-bit.
func FullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 16:
		return 32768.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// PCMToFloat32 normalizes a signed integer sample to [-1, 1).
func PCMToFloat32(v int, bitDepth int) float32 {
	return float32(v) / FullScale(bitDepth)
}

// Float32ToPCM clamps x to [-1, 1] and scales it to a signed integer sample.
// The positive side uses full scale minus one to avoid overflow.
func Float32ToPCM(x float32, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int(float64(x) * (float64(FullScale(bitDepth)) - 1))
}
