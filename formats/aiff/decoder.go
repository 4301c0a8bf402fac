// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/bleepblast/audio"
	"github.com/ik5/bleepblast/utils"
)

// frameReader is the part of aiff.Decoder the source reads from
type frameReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type aiffSource struct {
	dec      frameReader
	format   *goaudio.Format
	bitDepth int
	intBuf   *goaudio.IntBuffer
}

func (s *aiffSource) SampleRate() int { return s.format.SampleRate }
func (s *aiffSource) Channels() int   { return s.format.NumChannels }
func (s *aiffSource) Close() error    { return nil }

// BufSize is one second of interleaved samples, capped to keep reads small.
func (s *aiffSource) BufSize() int {
	n := min(s.format.SampleRate*s.format.NumChannels, 8192)
	return max(n-n%max(s.format.NumChannels, 1), 1)
}

// ReadSamples fills dst with normalized samples. The decoder reports the end
// of the SSND chunk as a short read, which is turned into io.EOF here.
func (s *aiffSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{Format: s.format, SourceBitDepth: s.bitDepth, Data: make([]int, len(dst))}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	for i, v := range s.intBuf.Data[:n] {
		dst[i] = utils.IntToFloat32(v, s.bitDepth)
	}

	switch {
	case err == io.EOF || (err == nil && n < len(dst)):
		return n, io.EOF
	case err != nil:
		return n, fmt.Errorf("reading aiff samples: %w", err)
	}
	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := audio.Seekable(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	depth := int(dec.BitDepth)
	if !utils.SupportedBitDepth(depth) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, depth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels == 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	return &aiffSource{dec: dec, format: format, bitDepth: depth}, nil
}
