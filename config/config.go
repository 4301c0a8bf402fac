// SPDX-License-Identifier: EPL-2.0

// Package config loads the optional YAML profile that supplies defaults to
// the bleepblast command. Every field is optional; zero values fall back to
// the built-in defaults and command-line flags override the profile.
//
//	filler: silence
//	mark_strength: 2
//	buffer_percent: 10
//	bit_depth: 24
//	tone_frequency: 1000
//	log_level: debug
//	seed: 42
//	phonetic_threshold: 0.9
package config

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Profile is the root of the YAML file.
type Profile struct {
	Filler            string   `yaml:"filler"`
	MarkStrength      int      `yaml:"mark_strength"`
	BufferPercent     *float64 `yaml:"buffer_percent"`
	BitDepth          int      `yaml:"bit_depth"`
	ToneFrequency     float64  `yaml:"tone_frequency"`
	LogLevel          LogLevel `yaml:"log_level"`
	Seed              *uint64  `yaml:"seed"`
	PhoneticThreshold float64  `yaml:"phonetic_threshold"`
}
