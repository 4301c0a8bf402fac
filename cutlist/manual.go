// SPDX-License-Identifier: EPL-2.0

package cutlist

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

const (
	// ManualKey holds the interval list of a manual cutlist.
	ManualKey = "radioCutlist"
	// FillerKey optionally overrides the configured filler kind.
	FillerKey = "bleep"
)

// Manual is a previously recorded cutlist.
type Manual struct {
	// Filler is the raw filler override, empty when absent.
	Filler    string
	Intervals []Interval
	// Skipped counts entries that were not [start, end] or [label, start, end]
	// pairs of numbers, or that had zero or negative width.
	Skipped int
}

// ParseManual accepts either {"bleep": "...", "radioCutlist": [[s, e], ...]}
// or a bare array as written by WriteCutlist. Entries may be [start, end] or
// [label, start, end].
func ParseManual(data []byte) (*Manual, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedCutlist)
	}

	root := gjson.ParseBytes(data)
	m := &Manual{}

	var entries gjson.Result
	switch {
	case root.IsArray():
		entries = root
	case root.IsObject():
		entries = root.Get(ManualKey)
		if !entries.Exists() {
			return nil, ErrMissingCutlistKey
		}
		if !entries.IsArray() {
			return nil, fmt.Errorf("%w: %s must be an array", ErrMalformedCutlist, ManualKey)
		}
		if f := root.Get(FillerKey); f.Type == gjson.String {
			m.Filler = f.Str
		}
	default:
		return nil, fmt.Errorf("%w: expected object or array", ErrMalformedCutlist)
	}

	for _, e := range entries.Array() {
		iv, ok := parseEntry(e)
		if !ok {
			m.Skipped++
			continue
		}
		m.Intervals = append(m.Intervals, iv)
	}

	return m, nil
}

func parseEntry(e gjson.Result) (Interval, bool) {
	if !e.IsArray() {
		return Interval{}, false
	}
	parts := e.Array()

	var label string
	switch len(parts) {
	case 2:
	case 3:
		if parts[0].Type != gjson.String {
			return Interval{}, false
		}
		label = parts[0].Str
		parts = parts[1:]
	default:
		return Interval{}, false
	}

	if parts[0].Type != gjson.Number || parts[1].Type != gjson.Number {
		return Interval{}, false
	}
	return newInterval(label, parts[0].Num, parts[1].Num)
}

// LoadManual reads and parses the manual cutlist at path.
func LoadManual(path string) (*Manual, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cutlist: %w", err)
	}
	m, err := ParseManual(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
