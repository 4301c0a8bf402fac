// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/bleepblast/audio"
	"github.com/ik5/bleepblast/utils"
)

// go-mp3 always produces interleaved stereo 16-bit little-endian PCM
const (
	mp3Channels    = 2
	bytesPerSample = 2
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// odd byte left over from the previous Read
	carry []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return mp3Channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	bytesNeeded := len(dst)*bytesPerSample - len(s.carry)
	if cap(s.buf) < bytesNeeded+len(s.carry) {
		s.buf = make([]byte, bytesNeeded+len(s.carry))
	}
	s.buf = s.buf[:len(s.carry)+bytesNeeded]
	copy(s.buf, s.carry)

	n, err := s.dec.Read(s.buf[len(s.carry):])
	total := len(s.carry) + n
	s.carry = s.carry[:0]

	samples := total / bytesPerSample
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[i*bytesPerSample:]))
		dst[i] = utils.IntToFloat32(int(v), 16)
	}
	if total%bytesPerSample != 0 {
		s.carry = append(s.carry, s.buf[total-1])
	}

	if err == io.EOF {
		if samples == 0 {
			return 0, io.EOF
		}
		return samples, nil
	}
	if err != nil {
		return samples, fmt.Errorf("%w", err)
	}
	return samples, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
