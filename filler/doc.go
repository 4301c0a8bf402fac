// SPDX-License-Identifier: EPL-2.0

// Package filler generates the audio that replaces a masked region.
//
// Four strategies implement Filler:
//   - Fuzz: uniform noise in [0, 1), seeded with WithSeed for repeatable output
//   - Tone ("beep"): a 12 kHz sine by default, same on every channel
//   - Silence: zeros
//   - Reverse: the replaced region played backwards
//
// Raw filler is unscaled, the redact package matches it to the loudness of
// the region it replaces.
//
//	f, err := filler.New(filler.Tone, filler.WithFrequency(1000))
//	samples := f.Generate(len(region[0]), 48000, region)
package filler
