// SPDX-License-Identifier: EPL-2.0

package filler

import "math"

// ToneFiller is a sine at Frequency Hz on every channel. Phase restarts at
// zero on each call.
type ToneFiller struct {
	Frequency float64
}

func (ToneFiller) Kind() Kind { return Tone }

// EffectiveFrequency is the frequency actually generated at sampleRate.
// A tone at or above Nyquist cannot be represented and would sample to zero
// (12 kHz at 8 or 24 kHz), so it is moved to sampleRate/4.
func (t ToneFiller) EffectiveFrequency(sampleRate int) float64 {
	f := t.Frequency
	if f <= 0 {
		f = DefaultToneFrequency
	}
	if f >= float64(sampleRate)/2 {
		f = float64(sampleRate) / 4
	}
	return f
}

func (t ToneFiller) Generate(length, sampleRate int, original [][]float32) [][]float32 {
	out := alloc(len(original), length)
	if len(out) == 0 || sampleRate <= 0 {
		return out
	}

	step := 2 * math.Pi * t.EffectiveFrequency(sampleRate) / float64(sampleRate)
	wave := out[0]
	for i := range wave {
		wave[i] = float32(math.Sin(step * float64(i)))
	}
	for c := 1; c < len(out); c++ {
		copy(out[c], wave)
	}
	return out
}
