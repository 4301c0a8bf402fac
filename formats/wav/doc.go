// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Both directions use the github.com/go-audio/wav library.
//
// # Supported Formats
//
// Currently supported:
//   - Integer PCM at 16, 24 and 32 bits
//   - Any channel count
//   - Any sample rate
//
// # Decoding WAV Files
//
//	file, _ := os.Open("speech.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := audio.ReadBuffer(source)
//
// The decoder streams float32 samples in the range [-1.0, 1.0]. Input that is
// not an io.ReadSeeker is read into memory first.
//
// # Writing WAV Files
//
//	out, _ := os.Create("masked.wav")
//	err := wav.Encoder{BitDepth: 24}.Encode(out, buf)
//
// Samples outside [-1, 1] are clamped while encoding.
//
// # Error Handling
//
//   - ErrNotWavFile: The input is not a RIFF/WAVE file
//   - ErrOnlyPCMSupported: Compressed or float WAV data
//   - ErrUnsupportedBitDepth: Bit depth other than 16, 24 or 32
//   - ErrUnsupportedWavLayout, ErrUnsupportedWavChunks: Broken header or missing data chunk
package wav
