// SPDX-License-Identifier: EPL-2.0

package filler

// ReverseFiller plays the original region backwards, channel by channel.
type ReverseFiller struct{}

func (ReverseFiller) Kind() Kind { return Reverse }

// Generate requires len(original[c]) >= length; missing samples stay zero.
func (ReverseFiller) Generate(length, _ int, original [][]float32) [][]float32 {
	out := alloc(len(original), length)
	for c, src := range original {
		n := min(length, len(src))
		for i := range n {
			out[c][i] = src[n-1-i]
		}
	}
	return out
}
