// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ik5/bleepblast/audio"
)

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	errs := []error{
		audio.ErrUnsupportedFormat,
		audio.ErrNoChannels,
		audio.ErrRaggedBuffer,
	}

	for i, a := range errs {
		for j, b := range errs {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors %d and %d compare equal: %v", i, j, a)
			}
		}
	}
}

func TestFormatError_Message(t *testing.T) {
	t.Parallel()

	err := &audio.FormatError{Format: "flac", Op: "decode"}
	if !strings.Contains(err.Error(), `"flac"`) || !strings.HasPrefix(err.Error(), "decode:") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, audio.ErrUnsupportedFormat) {
		t.Error("FormatError does not unwrap to ErrUnsupportedFormat")
	}

	noExt := &audio.FormatError{Op: "encode"}
	if !strings.Contains(noExt.Error(), "no file extension") {
		t.Errorf("Error() = %q, want mention of missing extension", noExt.Error())
	}
}
