// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"

	"github.com/ik5/bleepblast/audio"
)

// Waveform yields the value of sample at index sample on channel.
type Waveform func(sample int, channel int) float32

// MockSource is a test helper that streams generated audio data.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	chunk        int // Max frames per ReadSamples call, 0 = unlimited
	waveform     Waveform
	closed       bool
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
func NewMockSource(sampleRate, channels, totalSamples int, waveform Waveform) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// WithChunk limits every read to at most frames frames, to exercise callers
// that must loop.
func (m *MockSource) WithChunk(frames int) *MockSource {
	m.chunk = frames
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.totalSamples-m.generated)
	if m.chunk > 0 {
		framesToWrite = min(framesToWrite, m.chunk)
	}

	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}

// NewBuffer builds a Buffer of frames samples per channel from waveform.
func NewBuffer(sampleRate, channels, frames int, waveform Waveform) *audio.Buffer {
	buf := audio.NewBuffer(sampleRate, channels, frames)
	for c := range channels {
		for i := range frames {
			buf.Data[c][i] = waveform(i, c)
		}
	}
	return buf
}

// Sine is a unit amplitude sine at frequency Hz, identical on all channels.
func Sine(sampleRate int, frequency float64) Waveform {
	return func(sample int, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	}
}

// Constant returns value everywhere.
func Constant(value float32) Waveform {
	return func(int, int) float32 { return value }
}

// Ramp encodes position and channel into every value so that moved or
// reordered samples are easy to spot: channel c, sample i -> (i+1)/scale * sign.
// Channel 0 is positive, channel 1 negative, further channels alternate.
func Ramp(scale int) Waveform {
	return func(sample int, channel int) float32 {
		v := float32(sample+1) / float32(scale)
		if channel%2 == 1 {
			return -v
		}
		return v
	}
}

// RMS of every sample in region.
func RMS(region [][]float32) float64 {
	var sum float64
	var n int
	for _, ch := range region {
		for _, v := range ch {
			sum += float64(v) * float64(v)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return math.Sqrt(sum / float64(n))
}
