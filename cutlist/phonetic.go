// SPDX-License-Identifier: EPL-2.0

package cutlist

import "github.com/antzucaro/matchr"

// DefaultPhoneticThreshold is the minimum Jaro-Winkler score for a
// sounds-alike token to count as a wordlist hit.
const DefaultPhoneticThreshold = 0.85

// PhoneticMatcher extends a Wordlist with sounds-alike matching, for
// transcripts that misspell the words being masked. A token matches when it
// is listed exactly, or when it shares a Double Metaphone code with an entry
// and their Jaro-Winkler similarity reaches Threshold.
type PhoneticMatcher struct {
	list      *Wordlist
	threshold float64
	codes     []map[string]struct{}
}

// NewPhoneticMatcher precomputes codes for every entry of wl. A threshold
// outside (0, 1] is replaced by DefaultPhoneticThreshold.
func NewPhoneticMatcher(wl *Wordlist, threshold float64) *PhoneticMatcher {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultPhoneticThreshold
	}
	pm := &PhoneticMatcher{list: wl, threshold: threshold}
	for _, w := range wl.Words() {
		pm.codes = append(pm.codes, metaphoneCodes(w))
	}
	return pm
}

// Threshold returns the effective similarity threshold.
func (pm *PhoneticMatcher) Threshold() float64 { return pm.threshold }

func (pm *PhoneticMatcher) Match(token string) bool {
	if token == "" {
		return false
	}
	if pm.list.Match(token) {
		return true
	}

	tokenCodes := metaphoneCodes(token)
	if len(tokenCodes) == 0 {
		return false
	}
	for i, w := range pm.list.Words() {
		if !overlaps(tokenCodes, pm.codes[i]) {
			continue
		}
		if matchr.JaroWinkler(token, w, false) >= pm.threshold {
			return true
		}
	}
	return false
}

func metaphoneCodes(s string) map[string]struct{} {
	codes := make(map[string]struct{}, 2)
	p, alt := matchr.DoubleMetaphone(s)
	if p != "" {
		codes[p] = struct{}{}
	}
	if alt != "" {
		codes[alt] = struct{}{}
	}
	return codes
}

func overlaps(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for code := range a {
		if _, ok := b[code]; ok {
			return true
		}
	}
	return false
}
