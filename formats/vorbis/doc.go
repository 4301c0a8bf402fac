// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files.
// Decoding only: masked tracks are written as WAV or AIFF.
//
//	file, _ := os.Open("interview.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := audio.ReadBuffer(source)
//
// Samples are float32 in [-1.0, 1.0] with the stream's own channel count and
// sample rate.
package vorbis
