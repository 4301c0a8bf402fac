// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/bleepblast/audio"
	"github.com/ik5/bleepblast/utils"
)

// wavPCMFormat is the WAVE_FORMAT_PCM tag
const wavPCMFormat = 1

// Encoder writes integer PCM WAV files. A zero BitDepth means 16-bit.
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
	enc := wav.NewEncoder(w, buf.SampleRate, bitDepth, channels, wavPCMFormat)

	// Clamping happens here, the buffer keeps the unclamped filler
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
		return fmt.Errorf("writing wav samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}
	return nil
}
