// SPDX-License-Identifier: EPL-2.0

package redact

import (
	"fmt"
	"log/slog"

	"github.com/ik5/bleepblast/audio"
	"github.com/ik5/bleepblast/cutlist"
	"github.com/ik5/bleepblast/filler"
)

// Record describes what happened to one interval.
type Record struct {
	Interval cutlist.Interval
	// Start and End are the sample indices that were replaced.
	Start, End int
	// Applied is false when the range was empty and nothing changed.
	Applied bool
}

// Splicer masks intervals of a Buffer in place. It is not safe for
// concurrent use and must be the only writer of the buffer while ApplyAll runs.
type Splicer struct {
	cfg    Config
	filler filler.Filler
	logger *slog.Logger
}

// Option configures a Splicer.
type Option func(*Splicer)

// WithLogger sets the logger records are emitted to. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Splicer) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithFiller overrides the filler built from Config.Filler, e.g. a seeded Fuzz.
func WithFiller(f filler.Filler) Option {
	return func(s *Splicer) {
		s.filler = f
	}
}

// New validates cfg and returns a Splicer.
func New(cfg Config, opts ...Option) (*Splicer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Splicer{cfg: cfg, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}

	if s.filler == nil {
		f, err := filler.New(cfg.Filler)
		if err != nil {
			return nil, &ConfigError{Field: "filler", Err: fmt.Errorf("%w: %w", ErrUnknownFiller, err)}
		}
		s.filler = f
	}
	return s, nil
}

// Filler returns the filler in use.
func (s *Splicer) Filler() filler.Filler { return s.filler }

// ApplyAll masks every interval in the order given, each against the buffer
// as left by the previous ones. Channel count and length of buf never change.
// Empty ranges are skipped.
func (s *Splicer) ApplyAll(buf *audio.Buffer, intervals []cutlist.Interval) []Record {
	records := make([]Record, 0, len(intervals))
	for _, iv := range intervals {
		records = append(records, s.Apply(buf, iv))
	}
	return records
}

// Apply masks a single interval.
func (s *Splicer) Apply(buf *audio.Buffer, iv cutlist.Interval) Record {
	total := buf.Len()
	start, end, ok := SampleRange(iv, buf.SampleRate, s.cfg.BufferPercent, total)
	rec := Record{Interval: iv, Start: start, End: end}
	if !ok || buf.Channels() == 0 {
		s.logger.Debug("skipped interval",
			"label", iv.Label,
			"from", iv.Start,
			"to", iv.End,
			"start", start,
			"end", end,
		)
		return rec
	}

	original := buf.Region(start, end)
	fill := s.filler.Generate(end-start, buf.SampleRate, original)
	Scale(fill, original, s.cfg.MarkStrength)
	buf.Replace(start, fill)

	rec.Applied = true
	s.logger.Info("masked interval",
		"label", iv.Label,
		"from", iv.Start,
		"to", iv.End,
		"start", start,
		"end", end,
		"filler", s.filler.Kind(),
	)
	return rec
}
