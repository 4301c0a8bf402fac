// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/bleepblast/filler"
	"github.com/ik5/bleepblast/utils"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML profile at path and returns a validated [Profile].
func Load(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	p, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return p, nil
}

// LoadFromReader decodes a YAML profile from r and validates the result.
// An empty document yields an empty profile.
func LoadFromReader(r io.Reader) (*Profile, error) {
	p := &Profile{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks that p contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(p *Profile) error {
	var errs []error

	if p.Filler != "" {
		if _, err := filler.ParseKind(p.Filler); err != nil {
			errs = append(errs, fmt.Errorf("filler: %w", err))
		}
	}
	if p.MarkStrength < 0 {
		errs = append(errs, fmt.Errorf("mark_strength %d must be >= 1", p.MarkStrength))
	}
	if p.BufferPercent != nil && !(*p.BufferPercent >= 0 && *p.BufferPercent <= 100) {
		errs = append(errs, fmt.Errorf("buffer_percent %v must be between 0 and 100", *p.BufferPercent))
	}
	if p.BitDepth != 0 && !utils.SupportedBitDepth(p.BitDepth) {
		errs = append(errs, fmt.Errorf("bit_depth %d is invalid; valid values: 16, 24, 32", p.BitDepth))
	}
	if p.ToneFrequency < 0 {
		errs = append(errs, fmt.Errorf("tone_frequency %v must be positive", p.ToneFrequency))
	}
	if p.LogLevel != "" && !p.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", p.LogLevel))
	}
	if p.PhoneticThreshold < 0 || p.PhoneticThreshold > 1 {
		errs = append(errs, fmt.Errorf("phonetic_threshold %v must be between 0 and 1", p.PhoneticThreshold))
	}

	return errors.Join(errs...)
}
