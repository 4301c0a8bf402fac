// SPDX-License-Identifier: EPL-2.0

package redact

import (
	"errors"

	"github.com/ik5/bleepblast/filler"
)

const (
	DefaultMarkStrength  = 4
	DefaultBufferPercent = 5.0
)

// Config controls how every interval is masked.
type Config struct {
	Filler filler.Kind
	// MarkStrength multiplies the loudness-matched filler.
	MarkStrength int
	// BufferPercent widens each interval on both sides by this share of its
	// duration.
	BufferPercent float64
}

func DefaultConfig() Config {
	return Config{
		Filler:        filler.DefaultKind,
		MarkStrength:  DefaultMarkStrength,
		BufferPercent: DefaultBufferPercent,
	}
}

// Validate returns every violation joined, each one a *ConfigError.
func (c Config) Validate() error {
	var errs []error
	if !c.Filler.IsValid() {
		errs = append(errs, &ConfigError{Field: "filler", Err: ErrUnknownFiller})
	}
	if c.MarkStrength < 1 {
		errs = append(errs, &ConfigError{Field: "mark_strength", Err: ErrInvalidMarkStrength})
	}
	// NaN fails both comparisons
	if !(c.BufferPercent >= 0 && c.BufferPercent <= 100) {
		errs = append(errs, &ConfigError{Field: "buffer_percent", Err: ErrInvalidBufferPercent})
	}
	return errors.Join(errs...)
}
