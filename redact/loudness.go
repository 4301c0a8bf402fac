// SPDX-License-Identifier: EPL-2.0

package redact

import "math"

// RMS is the root mean square over all channels of region. ok is false for
// an empty region.
func RMS(region [][]float32) (rms float64, ok bool) {
	var sum float64
	var n int
	for _, ch := range region {
		for _, v := range ch {
			x := float64(v)
			sum += x * x
		}
		n += len(ch)
	}
	if n == 0 {
		return 0, false
	}
	return math.Sqrt(sum / float64(n)), true
}

// Scale multiplies fill in place by RMS(original) * markStrength. An empty
// original leaves fill untouched.
func Scale(fill, original [][]float32, markStrength int) {
	rms, ok := RMS(original)
	if !ok {
		return
	}
	gain := float32(rms * float64(markStrength))
	for _, ch := range fill {
		for i := range ch {
			ch[i] *= gain
		}
	}
}
