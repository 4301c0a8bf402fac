// SPDX-License-Identifier: EPL-2.0

// Package redact masks intervals of a decoded track.
//
// For each interval the Splicer:
//  1. converts it to a sample range with SampleRange (padding by
//     Config.BufferPercent, flooring, clamping to the track)
//  2. generates filler of the same length and channel count
//  3. scales the filler to RMS(original region) * Config.MarkStrength
//  4. writes it over the region in place
//
// Intervals are processed in the order given. Overlapping intervals see the
// output of earlier ones; the result is deterministic for a given order but
// no sorting or merging is done. Out-of-range intervals are no-ops.
//
//	sp, err := redact.New(redact.Config{
//	    Filler:        filler.Silence,
//	    MarkStrength:  1,
//	    BufferPercent: 0,
//	}, redact.WithLogger(logger))
//	records := sp.ApplyAll(buf, intervals)
package redact
