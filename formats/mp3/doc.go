// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// Decoding only: there is no MP3 encoder, masked tracks are written as WAV or AIFF.
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: always 2 (go-mp3 upmixes mono streams)
//   - Sample rate: that of the MP3 stream
//
// # Decoding MP3 Files
//
//	file, _ := os.Open("episode.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := audio.ReadBuffer(source)
package mp3
