// SPDX-License-Identifier: EPL-2.0

package filler

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// Kind names a filler strategy.
type Kind string

const (
	Fuzz    Kind = "fuzz"
	Tone    Kind = "beep"
	Silence Kind = "silence"
	Reverse Kind = "reverse"
)

// DefaultKind is used when nothing else is configured.
const DefaultKind = Fuzz

// DefaultToneFrequency of the beep, in Hz.
const DefaultToneFrequency = 12000.0

var ErrUnknownKind = errors.New("unknown filler kind")

// Kinds lists every filler kind in display order.
func Kinds() []Kind { return []Kind{Fuzz, Tone, Silence, Reverse} }

// IsValid reports whether k is a known kind.
func (k Kind) IsValid() bool {
	switch k {
	case Fuzz, Tone, Silence, Reverse:
		return true
	}
	return false
}

func (k Kind) String() string { return string(k) }

// ParseKind accepts the kind names case-insensitively, plus "tone" for Tone.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "tone" {
		return Tone, nil
	}
	k := Kind(name)
	if !k.IsValid() {
		return "", fmt.Errorf("%w %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Filler produces replacement audio for a masked region.
//
// Generate returns len(original) channels of exactly length samples each.
// original is the region being replaced and must not be modified.
type Filler interface {
	Kind() Kind
	Generate(length, sampleRate int, original [][]float32) [][]float32
}

type options struct {
	rng       *rand.Rand
	frequency float64
}

// Option configures New.
type Option func(*options)

// WithSeed makes Fuzz deterministic.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand sets the random source used by Fuzz.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithFrequency sets the Tone frequency in Hz.
func WithFrequency(hz float64) Option {
	return func(o *options) {
		if hz > 0 {
			o.frequency = hz
		}
	}
}

// New returns the filler for kind. Options that do not apply to kind are ignored.
func New(kind Kind, opts ...Option) (Filler, error) {
	o := options{frequency: DefaultToneFrequency}
	for _, opt := range opts {
		opt(&o)
	}

	switch kind {
	case Fuzz:
		rng := o.rng
		if rng == nil {
			rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		return &FuzzFiller{rng: rng}, nil
	case Tone:
		return ToneFiller{Frequency: o.frequency}, nil
	case Silence:
		return SilenceFiller{}, nil
	case Reverse:
		return ReverseFiller{}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownKind, string(kind))
}

func alloc(channels, length int) [][]float32 {
	out := make([][]float32, channels)
	for c := range out {
		out[c] = make([]float32, length)
	}
	return out
}
