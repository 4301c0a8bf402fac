// SPDX-License-Identifier: EPL-2.0

package redact

import (
	"math"
	"testing"

	"github.com/ik5/bleepblast/cutlist"
)

func TestSampleRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		iv            cutlist.Interval
		bufferPercent float64
		start, end    int
		ok            bool
	}{
		{"exact", cutlist.Interval{Start: 4, End: 6}, 0, 400, 600, true},
		{"padded", cutlist.Interval{Start: 4, End: 6}, 25, 350, 650, true},
		{"floored", cutlist.Interval{Start: 0.015, End: 0.027}, 0, 1, 2, true},
		{"clamped start", cutlist.Interval{Start: -1, End: 2}, 0, 0, 200, true},
		{"clamped end", cutlist.Interval{Start: 9, End: 12}, 0, 900, 1000, true},
		{"padding past edges", cutlist.Interval{Start: 0, End: 10}, 50, 0, 1000, true},
		{"after track", cutlist.Interval{Start: 20, End: 30}, 0, 1000, 1000, false},
		{"before track", cutlist.Interval{Start: -5, End: -1}, 0, 0, 0, false},
		{"sub-sample", cutlist.Interval{Start: 0.001, End: 0.002}, 0, 0, 0, false},
		{"nan", cutlist.Interval{Start: math.NaN(), End: 1}, 0, 0, 0, false},
		{"infinite end", cutlist.Interval{Start: 5, End: math.Inf(1)}, 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start, end, ok := SampleRange(tt.iv, 100, tt.bufferPercent, 1000)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v (range %d..%d)", ok, tt.ok, start, end)
			}
			if !tt.ok {
				return
			}
			if start != tt.start || end != tt.end {
				t.Errorf("range = %d..%d, want %d..%d", start, end, tt.start, tt.end)
			}
		})
	}
}

func TestSampleRange_BoundsAlwaysValid(t *testing.T) {
	t.Parallel()

	for _, iv := range []cutlist.Interval{
		{Start: -1e12, End: 1e12},
		{Start: 3.3, End: 3.31},
		{Start: 0, End: 1e-9},
	} {
		start, end, ok := SampleRange(iv, 44100, 30, 5000)
		if start < 0 || end > 5000 || start > end {
			t.Errorf("%+v: range %d..%d out of bounds", iv, start, end)
		}
		if ok && start >= end {
			t.Errorf("%+v: ok with empty range", iv)
		}
	}
}
