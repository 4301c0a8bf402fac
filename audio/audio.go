// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Encoder persists a whole Buffer. Container headers usually need their
// sizes patched after the data is written, hence the WriteSeeker.
type Encoder interface {
	Encode(w io.WriteSeeker, buf *Buffer) error
}

// Registry for decoders and encoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	decoders map[string]Decoder
	encoders map[string]Encoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[string]Decoder),
		encoders: make(map[string]Encoder),
		mtx:      &sync.Mutex{},
	}
}

// Register adds a decoder for format, replacing any previous one.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.decoders[normalizeFormat(format)] = d
}

// RegisterEncoder adds an encoder for format, replacing any previous one.
func (r *Registry) RegisterEncoder(format string, e Encoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.encoders[normalizeFormat(format)] = e
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.decoders[normalizeFormat(format)]
	return d, ok
}

func (r *Registry) GetEncoder(format string) (Encoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.encoders[normalizeFormat(format)]
	return e, ok
}

// DecoderFor picks the decoder matching the extension of path.
func (r *Registry) DecoderFor(path string) (Decoder, error) {
	format := FormatFromPath(path)
	d, ok := r.Get(format)
	if !ok {
		return nil, &FormatError{Format: format, Op: "decode"}
	}
	return d, nil
}

// EncoderFor picks the encoder matching the extension of path.
func (r *Registry) EncoderFor(path string) (Encoder, error) {
	format := FormatFromPath(path)
	e, ok := r.GetEncoder(format)
	if !ok {
		return nil, &FormatError{Format: format, Op: "encode"}
	}
	return e, nil
}

// FormatFromPath returns the lowercased file extension of path without the dot.
func FormatFromPath(path string) string {
	return normalizeFormat(filepath.Ext(path))
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}
