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

// Encoder writes big-endian integer PCM AIFF files. A zero BitDepth means 16-bit.
type Encoder struct {
	BitDepth int
}

func (e Encoder) Encode(w io.WriteSeeker, buf *audio.Buffer) error {
	bitDepth := e.BitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}
	if !utils.SupportedBitDepth(bitDepth) {
		return ErrUnsupportedBitDepth
	}
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("%w", err)
	}

	channels := buf.Channels()
	enc := aiff.NewEncoder(w, buf.SampleRate, bitDepth, channels)

	interleaved := buf.Interleaved()
	data := make([]int, len(interleaved))
	for i, x := range interleaved {
		data[i] = utils.Float32ToInt(x, bitDepth)
	}

	intBuf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: buf.SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(intBuf); err != nil {
		return fmt.Errorf("writing aiff samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing aiff: %w", err)
	}
	return nil
}
