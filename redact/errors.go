// SPDX-License-Identifier: EPL-2.0

package redact

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig matches every *ConfigError through errors.Is.
	ErrConfig = errors.New("invalid configuration")

	ErrNoCutlistSource          = errors.New("either a transcript and wordlist, or a manual cutlist is required")
	ErrConflictingCutlistSource = errors.New("a transcript/wordlist and a manual cutlist are mutually exclusive")
	ErrIncompleteTranscript     = errors.New("a transcript and a wordlist must be given together")
	ErrInvalidMarkStrength      = errors.New("mark strength must be an integer >= 1")
	ErrInvalidBufferPercent     = errors.New("buffer percent must be between 0 and 100")
	ErrUnknownFiller            = errors.New("unknown filler kind")
	ErrInvalidBitDepth          = errors.New("bit depth must be 16, 24 or 32")
	ErrInvalidToneFrequency     = errors.New("tone frequency must be a positive number of Hz")
)

// ConfigError is a configuration problem detected before any audio is read.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config: %v", e.Err)
	}
	return fmt.Sprintf("config: %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func (e *ConfigError) Is(target error) bool { return target == ErrConfig }
