// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Buffer is a fully decoded track held as one sample slice per channel.
// All channels always have the same length.
type Buffer struct {
	SampleRate int
	Data       [][]float32
}

// NewBuffer allocates a silent buffer of frames samples per channel.
func NewBuffer(sampleRate, channels, frames int) *Buffer {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}
	return &Buffer{SampleRate: sampleRate, Data: data}
}

// Channels returns the channel count.
func (b *Buffer) Channels() int { return len(b.Data) }

// Len returns the number of samples per channel.
func (b *Buffer) Len() int {
	if len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// Duration in seconds.
func (b *Buffer) Duration() float64 {
	if b.SampleRate == 0 {
		return 0
	}
	return float64(b.Len()) / float64(b.SampleRate)
}

// Region returns per-channel views of samples [start:end). The views alias
// the buffer, writes through them mutate b.
func (b *Buffer) Region(start, end int) [][]float32 {
	out := make([][]float32, len(b.Data))
	for c, ch := range b.Data {
		out[c] = ch[start:end:end]
	}
	return out
}

// Replace overwrites [start:start+len(frames[c])) of every channel.
func (b *Buffer) Replace(start int, frames [][]float32) {
	for c := range b.Data {
		if c >= len(frames) {
			return
		}
		copy(b.Data[c][start:], frames[c])
	}
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	data := make([][]float32, len(b.Data))
	for c, ch := range b.Data {
		data[c] = append([]float32(nil), ch...)
	}
	return &Buffer{SampleRate: b.SampleRate, Data: data}
}

// Interleaved returns the samples frame by frame (L R L R ...).
func (b *Buffer) Interleaved() []float32 {
	channels := b.Channels()
	frames := b.Len()
	out := make([]float32, channels*frames)
	for c, ch := range b.Data {
		for f, v := range ch {
			out[f*channels+c] = v
		}
	}
	return out
}

// Validate checks that the buffer is a proper channel x sample matrix.
func (b *Buffer) Validate() error {
	if len(b.Data) == 0 {
		return ErrNoChannels
	}
	n := len(b.Data[0])
	for _, ch := range b.Data[1:] {
		if len(ch) != n {
			return ErrRaggedBuffer
		}
	}
	return nil
}

// ReadBuffer drains src into a Buffer and closes it.
// Trailing values that do not form a whole frame are dropped.
func ReadBuffer(src Source) (*Buffer, error) {
	defer src.Close()

	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	size := src.BufSize()
	if size < channels {
		size = 4096
	}
	size -= size % channels
	chunk := make([]float32, size)

	buf := NewBuffer(src.SampleRate(), channels, 0)
	pending := make([]float32, 0, channels)

	for {
		n, err := src.ReadSamples(chunk)
		if n > 0 {
			samples := chunk[:n]
			// Some decoders return partial frames, stitch them back together.
			if len(pending) > 0 {
				need := min(channels-len(pending), len(samples))
				pending = append(pending, samples[:need]...)
				samples = samples[need:]
				if len(pending) == channels {
					for c, v := range pending {
						buf.Data[c] = append(buf.Data[c], v)
					}
					pending = pending[:0]
				}
			}
			frames := len(samples) / channels
			for f := range frames {
				base := f * channels
				for c := range channels {
					buf.Data[c] = append(buf.Data[c], samples[base+c])
				}
			}
			pending = append(pending, samples[frames*channels:]...)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			// A source that returns nothing without EOF is considered finished.
			break
		}
	}

	return buf, nil
}
