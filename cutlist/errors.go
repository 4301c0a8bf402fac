// SPDX-License-Identifier: EPL-2.0

package cutlist

import "errors"

var (
	ErrMalformedTranscript = errors.New("malformed transcript")
	ErrMalformedWordlist   = errors.New("malformed wordlist")
	ErrMalformedCutlist    = errors.New("malformed cutlist")
	ErrMissingCutlistKey   = errors.New("cutlist has no " + ManualKey + " entry")
)
