// SPDX-License-Identifier: EPL-2.0

package cutlist

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteCutlist writes intervals verbatim as a JSON array, in order.
func WriteCutlist(w io.Writer, intervals []Interval) error {
	if intervals == nil {
		intervals = []Interval{}
	}
	if err := json.NewEncoder(w).Encode(intervals); err != nil {
		return fmt.Errorf("encoding cutlist: %w", err)
	}
	return nil
}

// SaveCutlist writes intervals to path, replacing any existing file.
func SaveCutlist(path string, intervals []Interval) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating cutlist: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing cutlist: %w", cerr)
		}
	}()

	return WriteCutlist(f, intervals)
}
