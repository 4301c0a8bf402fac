// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding and encoding.
//
// This package uses github.com/go-audio/aiff for both directions. Integer PCM
// at 16, 24 and 32 bits is supported with any channel count.
//
//	file, _ := os.Open("speech.aiff")
//	source, err := aiff.Decoder{}.Decode(file)
//	buf, err := audio.ReadBuffer(source)
//
//	out, _ := os.Create("masked.aiff")
//	err = aiff.Encoder{BitDepth: 16}.Encode(out, buf)
//
// The decoder needs seekable input; anything else is read into memory first.
package aiff
