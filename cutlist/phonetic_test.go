// SPDX-License-Identifier: EPL-2.0

package cutlist

import "testing"

func TestPhoneticMatcher_Match(t *testing.T) {
	t.Parallel()

	pm := NewPhoneticMatcher(NewWordlist("darn"), DefaultPhoneticThreshold)

	tests := []struct {
		token string
		want  bool
	}{
		{"darn", true},
		{"darnn", true},
		{"hello", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := pm.Match(tt.token); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestPhoneticMatcher_Threshold(t *testing.T) {
	t.Parallel()

	wl := NewWordlist("darn")
	tests := map[float64]float64{
		0:   DefaultPhoneticThreshold,
		-1:  DefaultPhoneticThreshold,
		1.5: DefaultPhoneticThreshold,
		0.9: 0.9,
		1.0: 1.0,
	}

	for in, want := range tests {
		if got := NewPhoneticMatcher(wl, in).Threshold(); got != want {
			t.Errorf("NewPhoneticMatcher(%v).Threshold() = %v, want %v", in, got, want)
		}
	}
}

func TestPhoneticMatcher_InBuild(t *testing.T) {
	t.Parallel()

	tr := &Transcript{Segments: []Segment{{Words: []Word{
		{Token: "Darnn", Start: 1, End: 2},
		{Token: "hello", Start: 2, End: 3},
	}}}}

	plain := BuildFromTranscript(tr, NewWordlist("darn"))
	if len(plain) != 0 {
		t.Errorf("plain wordlist matched %+v", plain)
	}

	fuzzy := BuildFromTranscript(tr, NewPhoneticMatcher(NewWordlist("darn"), 0))
	if len(fuzzy) != 1 || fuzzy[0].Label != "darnn" {
		t.Errorf("phonetic build = %+v, want one darnn interval", fuzzy)
	}
}
