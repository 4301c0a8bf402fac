// SPDX-License-Identifier: EPL-2.0

package cutlist

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

// TokenKeys are the word fields that may hold the token, checked in order.
var TokenKeys = []string{"text", "word"}

// RedactedPlaceholder is what transcribers emit for a fully hidden word. It
// contains the wildcard marker but is not itself a match.
const RedactedPlaceholder = "[*]"

const wildcard = "*"

type Word struct {
	Token string
	Start float64
	End   float64
}

type Segment struct {
	Words []Word
}

// Transcript is the subset of a speech-to-text result needed for masking.
type Transcript struct {
	Segments []Segment
	// Skipped counts word entries dropped for missing or mistyped fields.
	Skipped int
}

// ParseTranscript reads {"segments": [{"words": [...]}]} JSON. Word entries
// without a string token or numeric start/end are skipped, never fatal.
func ParseTranscript(data []byte) (*Transcript, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedTranscript)
	}

	root := gjson.ParseBytes(data)
	segments := root.Get("segments")
	if !segments.IsArray() {
		return nil, fmt.Errorf("%w: segments must be an array", ErrMalformedTranscript)
	}

	t := &Transcript{}
	for _, seg := range segments.Array() {
		words := seg.Get("words")
		if !words.IsArray() {
			continue
		}

		var s Segment
		for _, w := range words.Array() {
			word, ok := parseWord(w)
			if !ok {
				t.Skipped++
				continue
			}
			s.Words = append(s.Words, word)
		}
		t.Segments = append(t.Segments, s)
	}

	return t, nil
}

func parseWord(w gjson.Result) (Word, bool) {
	if !w.IsObject() {
		return Word{}, false
	}

	token, ok := "", false
	for _, key := range TokenKeys {
		if v := w.Get(key); v.Type == gjson.String {
			token, ok = v.Str, true
			break
		}
	}
	if !ok {
		return Word{}, false
	}

	start, end := w.Get("start"), w.Get("end")
	if start.Type != gjson.Number || end.Type != gjson.Number {
		return Word{}, false
	}

	return Word{Token: token, Start: start.Num, End: end.Num}, true
}

// LoadTranscript reads and parses the transcript at path.
func LoadTranscript(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading transcript: %w", err)
	}
	t, err := ParseTranscript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Matcher decides whether a normalized (trimmed, lowercased) token is listed.
type Matcher interface {
	Match(token string) bool
}

// BuildFromTranscript selects every word whose normalized token matches m,
// plus every token carrying the wildcard marker other than the placeholder.
// Output follows transcript order; nothing is sorted, merged or deduplicated.
func BuildFromTranscript(t *Transcript, m Matcher) []Interval {
	var out []Interval
	for _, seg := range t.Segments {
		for _, w := range seg.Words {
			label := normalize(w.Token)
			if !m.Match(label) && !isWildcard(w.Token) {
				continue
			}
			if iv, ok := newInterval(label, w.Start, w.End); ok {
				out = append(out, iv)
			}
		}
	}
	return out
}

func isWildcard(token string) bool {
	return token != RedactedPlaceholder && strings.Contains(token, wildcard)
}

func normalize(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}
