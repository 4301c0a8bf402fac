// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// SupportedBitDepth reports whether bitDepth is an integer PCM depth the
// codecs can read and write.
func SupportedBitDepth(bitDepth int) bool {
	switch bitDepth {
	case 16, 24, 32:
		return true
	}
	return false
}

// FullScale is the magnitude of the most negative sample at bitDepth.
// Unknown depths fall back to 16-bit.
func FullScale(bitDepth int) float64 {
	switch bitDepth {
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// IntToFloat32 normalizes an integer PCM sample to [-1, 1).
func IntToFloat32(v, bitDepth int) float32 {
	return float32(float64(v) / FullScale(bitDepth))
}

// Float32ToInt scales x to bitDepth, rounding to the nearest step and
// clamping to the representable range. It is the exact inverse of
// IntToFloat32 for 16 and 24-bit samples.
func Float32ToInt(x float32, bitDepth int) int {
	full := FullScale(bitDepth)
	v := math.Round(float64(x) * full)
	if v > full-1 {
		v = full - 1
	} else if v < -full {
		v = -full
	}
	return int(v)
}
