// SPDX-License-Identifier: EPL-2.0

package cutlist

import (
	"errors"
	"slices"
	"testing"
)

func TestNewWordlist_Normalizes(t *testing.T) {
	t.Parallel()

	wl := NewWordlist("  Darn", "HECK ", "darn", "", "   ")

	if wl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", wl.Len())
	}
	if want := []string{"darn", "heck"}; !slices.Equal(wl.Words(), want) {
		t.Errorf("Words() = %v, want %v", wl.Words(), want)
	}
	if !wl.Match("heck") {
		t.Error("Match(heck) = false, want true")
	}
	if wl.Match("HECK") {
		t.Error("Match expects normalized tokens, HECK should not match")
	}
}

func TestParseWordlist(t *testing.T) {
	t.Parallel()

	wl, err := ParseWordlist([]byte(`["Darn", "heck"]`))
	if err != nil {
		t.Fatalf("ParseWordlist() error = %v", err)
	}
	if !wl.Match("darn") || !wl.Match("heck") {
		t.Errorf("Words() = %v", wl.Words())
	}

	for _, bad := range []string{`{"words": []}`, `[1, 2]`, `[`} {
		if _, err := ParseWordlist([]byte(bad)); !errors.Is(err, ErrMalformedWordlist) {
			t.Errorf("ParseWordlist(%s) error = %v, want ErrMalformedWordlist", bad, err)
		}
	}
}
