// SPDX-License-Identifier: EPL-2.0

package filler

import "math/rand/v2"

// FuzzFiller is independent uniform noise in [0, 1) for every sample.
type FuzzFiller struct {
	rng *rand.Rand
}

func (*FuzzFiller) Kind() Kind { return Fuzz }

func (f *FuzzFiller) Generate(length, _ int, original [][]float32) [][]float32 {
	out := alloc(len(original), length)
	for c := range out {
		for i := range out[c] {
			out[c][i] = f.rng.Float32()
		}
	}
	return out
}
