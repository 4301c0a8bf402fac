// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrNoChannels        = errors.New("source has no channels")
	ErrRaggedBuffer      = errors.New("channels have different lengths")
)

// FormatError reports a missing decoder or encoder for a format.
type FormatError struct {
	Format string
	Op     string
}

func (e *FormatError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("%s: %s (no file extension)", e.Op, ErrUnsupportedFormat)
	}
	return fmt.Sprintf("%s: %s %q", e.Op, ErrUnsupportedFormat, e.Format)
}

func (e *FormatError) Unwrap() error { return ErrUnsupportedFormat }
