// SPDX-License-Identifier: EPL-2.0

package redact

import (
	"math"

	"github.com/ik5/bleepblast/cutlist"
)

// SampleRange converts iv, widened by bufferPercent of its duration on each
// side, into the sample range [start, end) of a track with total samples per
// channel. Indices are floored and clamped to [0, total]. ok is false when the
// clamped range is empty, which happens for intervals entirely outside the
// track.
func SampleRange(iv cutlist.Interval, sampleRate int, bufferPercent float64, total int) (start, end int, ok bool) {
	gap := iv.End - iv.Start
	pad := gap * bufferPercent / 100

	from := math.Floor((iv.Start - pad) * float64(sampleRate))
	to := math.Floor((iv.End + pad) * float64(sampleRate))
	if math.IsNaN(from) || math.IsNaN(to) {
		return 0, 0, false
	}

	start = clampIndex(from, total)
	end = clampIndex(to, total)
	if start >= end {
		return start, end, false
	}
	return start, end, true
}

// clampIndex keeps huge or infinite values from overflowing int conversion.
func clampIndex(x float64, total int) int {
	switch {
	case x <= 0:
		return 0
	case x >= float64(total):
		return total
	}
	return int(x)
}
