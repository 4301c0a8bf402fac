// SPDX-License-Identifier: EPL-2.0

package cutlist

import (
	"encoding/json"
	"fmt"
	"os"
)

// Wordlist is the set of tokens to mask. It matches exactly.
type Wordlist struct {
	words map[string]struct{}
	order []string
}

// NewWordlist normalizes and stores words. Empty entries are ignored.
func NewWordlist(words ...string) *Wordlist {
	wl := &Wordlist{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		n := normalize(w)
		if n == "" {
			continue
		}
		if _, dup := wl.words[n]; dup {
			continue
		}
		wl.words[n] = struct{}{}
		wl.order = append(wl.order, n)
	}
	return wl
}

// ParseWordlist reads a JSON array of strings.
func ParseWordlist(data []byte) (*Wordlist, error) {
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedWordlist, err)
	}
	return NewWordlist(words...), nil
}

// LoadWordlist reads and parses the wordlist at path.
func LoadWordlist(path string) (*Wordlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading wordlist: %w", err)
	}
	wl, err := ParseWordlist(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return wl, nil
}

func (wl *Wordlist) Match(token string) bool {
	_, ok := wl.words[token]
	return ok
}

// Words returns the normalized entries in input order.
func (wl *Wordlist) Words() []string { return wl.order }

func (wl *Wordlist) Len() int { return len(wl.order) }
