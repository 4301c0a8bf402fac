// SPDX-License-Identifier: EPL-2.0

package cutlist

import (
	"encoding/json"
	"math"
)

// Interval is one span of the track to mask, in seconds.
// Start <= End always holds and Start == End is never produced by this package.
type Interval struct {
	Label string
	Start float64
	End   float64
}

// Duration in seconds.
func (iv Interval) Duration() float64 { return iv.End - iv.Start }

// MarshalJSON writes [label, start, end], or [start, end] for unlabeled
// intervals, which is the shape LoadManual reads back.
func (iv Interval) MarshalJSON() ([]byte, error) {
	if iv.Label == "" {
		return json.Marshal([2]float64{iv.Start, iv.End})
	}
	return json.Marshal([3]any{iv.Label, iv.Start, iv.End})
}

// newInterval applies the invariants shared by every builder.
func newInterval(label string, start, end float64) (Interval, bool) {
	if math.IsNaN(start) || math.IsNaN(end) || math.IsInf(start, 0) || math.IsInf(end, 0) {
		return Interval{}, false
	}
	if start >= end {
		return Interval{}, false
	}
	return Interval{Label: label, Start: start, End: end}, true
}
