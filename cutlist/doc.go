// SPDX-License-Identifier: EPL-2.0

// Package cutlist builds the ordered list of intervals to mask.
//
// A cutlist comes from one of two places:
//
//   - A transcript plus a wordlist. BuildFromTranscript walks every word in
//     transcript order and keeps those whose trimmed, lowercased token is in
//     the wordlist, plus tokens already starred out upstream (any token
//     containing "*" except the "[*]" placeholder).
//   - A manual cutlist recorded earlier, read by LoadManual.
//
// Intervals are returned exactly in source order. Overlapping or unsorted
// intervals are passed through untouched.
//
// Transcript JSON:
//
//	{"segments": [{"words": [{"text": "darn", "start": 1.2, "end": 1.5}]}]}
//
// The token may be under "text" or "word" (checked in that order). Words
// with missing or mistyped fields, or with start >= end, are skipped.
//
// Manual cutlist JSON:
//
//	{"bleep": "silence", "radioCutlist": [[1.2, 1.5], [3.0, 3.4]]}
//
// WriteCutlist emits a bare array of [label, start, end] triples (pairs when
// unlabeled) that LoadManual reads back.
//
// PhoneticMatcher can stand in for a plain Wordlist to also catch
// misspelled transcript tokens.
package cutlist
