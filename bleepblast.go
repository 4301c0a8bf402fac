// SPDX-License-Identifier: EPL-2.0

package bleepblast

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ik5/bleepblast/audio"
	"github.com/ik5/bleepblast/cutlist"
	"github.com/ik5/bleepblast/filler"
	"github.com/ik5/bleepblast/formats/aiff"
	"github.com/ik5/bleepblast/formats/mp3"
	"github.com/ik5/bleepblast/formats/vorbis"
	"github.com/ik5/bleepblast/formats/wav"
	"github.com/ik5/bleepblast/redact"
	"github.com/ik5/bleepblast/utils"
)

// DefaultBitDepth of encoded output.
const DefaultBitDepth = 16

// Options describes one redaction run. Exactly one cutlist source must be
// set: Transcript together with Wordlist, or Manual.
type Options struct {
	Input      string
	Transcript string
	Wordlist   string
	Manual     string
	Output     string
	// CutlistOutput, when set, receives the applied intervals.
	CutlistOutput string

	Config redact.Config

	// BitDepth of the output file, DefaultBitDepth when zero.
	BitDepth int
	// ToneFrequency in Hz, filler.DefaultToneFrequency when zero.
	ToneFrequency float64
	// Seed makes Fuzz deterministic when non-nil.
	Seed *uint64
	// PhoneticThreshold enables sounds-alike wordlist matching when > 0.
	// It must not exceed 1.
	PhoneticThreshold float64

	// Registry selects codecs by extension, DefaultRegistry() when nil.
	Registry *audio.Registry
	Logger   *slog.Logger
}

// Result summarizes a completed run.
type Result struct {
	Filler     filler.Kind
	SampleRate int
	Channels   int
	Samples    int
	Intervals  []cutlist.Interval
	Records    []redact.Record
}

// Masked counts the intervals that changed audio.
func (r *Result) Masked() int {
	n := 0
	for _, rec := range r.Records {
		if rec.Applied {
			n++
		}
	}
	return n
}

// DefaultRegistry knows every bundled format. Encoders write bitDepth PCM.
func DefaultRegistry(bitDepth int) *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})

	reg.RegisterEncoder("wav", wav.Encoder{BitDepth: bitDepth})
	reg.RegisterEncoder("wave", wav.Encoder{BitDepth: bitDepth})
	reg.RegisterEncoder("aiff", aiff.Encoder{BitDepth: bitDepth})
	reg.RegisterEncoder("aif", aiff.Encoder{BitDepth: bitDepth})
	return reg
}

// Validate checks o without touching the filesystem. Every failure is a
// *redact.ConfigError.
func (o *Options) Validate() error {
	var errs []error

	hasTranscript := o.Transcript != "" || o.Wordlist != ""
	switch {
	case hasTranscript && o.Manual != "":
		errs = append(errs, &redact.ConfigError{Field: "cutlist", Err: redact.ErrConflictingCutlistSource})
	case o.Manual == "" && o.Transcript == "" && o.Wordlist == "":
		errs = append(errs, &redact.ConfigError{Field: "cutlist", Err: redact.ErrNoCutlistSource})
	case o.Manual == "" && (o.Transcript == "" || o.Wordlist == ""):
		errs = append(errs, &redact.ConfigError{Field: "cutlist", Err: redact.ErrIncompleteTranscript})
	}

	if o.Input == "" {
		errs = append(errs, &redact.ConfigError{Field: "input", Err: errors.New("input path is required")})
	}
	if o.Output == "" {
		errs = append(errs, &redact.ConfigError{Field: "output", Err: errors.New("output path is required")})
	}
	if o.BitDepth != 0 && !utils.SupportedBitDepth(o.BitDepth) {
		errs = append(errs, &redact.ConfigError{Field: "bit_depth", Err: fmt.Errorf("%w: %d", redact.ErrInvalidBitDepth, o.BitDepth)})
	}
	// NaN fails the comparison
	if !(o.ToneFrequency >= 0) {
		errs = append(errs, &redact.ConfigError{Field: "tone_frequency", Err: redact.ErrInvalidToneFrequency})
	}
	if o.PhoneticThreshold < 0 || o.PhoneticThreshold > 1 {
		errs = append(errs, &redact.ConfigError{Field: "phonetic_threshold", Err: errors.New("must be between 0 and 1")})
	}
	if err := o.Config.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Run decodes Input once, masks every cutlist interval in order, encodes the
// result to Output and optionally saves the cutlist. Configuration errors are
// reported before any file is opened.
func Run(o Options) (*Result, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	bitDepth := o.BitDepth
	if bitDepth == 0 {
		bitDepth = DefaultBitDepth
	}
	reg := o.Registry
	if reg == nil {
		reg = DefaultRegistry(bitDepth)
	}

	// Resolve codecs up front so an unsupported extension fails fast.
	dec, err := reg.DecoderFor(o.Input)
	if err != nil {
		return nil, fmt.Errorf("input %q: %w", o.Input, err)
	}
	enc, err := reg.EncoderFor(o.Output)
	if err != nil {
		return nil, fmt.Errorf("output %q: %w", o.Output, err)
	}

	begin := time.Now()
	last := begin
	elapsed := func() []any {
		now := time.Now()
		attrs := []any{"elapsed", now.Sub(begin).Round(time.Millisecond), "step", now.Sub(last).Round(time.Millisecond)}
		last = now
		return attrs
	}

	cfg := o.Config
	intervals, override, err := buildCutlist(o, logger)
	if err != nil {
		return nil, err
	}
	if override != "" {
		cfg.Filler = override
	}
	logger.Info("cutlist built",
		append([]any{"intervals", len(intervals), "filler", cfg.Filler, "buffer_percent", cfg.BufferPercent, "mark_strength", cfg.MarkStrength}, elapsed()...)...)

	buf, err := decodeFile(dec, o.Input)
	if err != nil {
		return nil, err
	}
	logger.Info("decoded",
		append([]any{"input", o.Input, "sample_rate", buf.SampleRate, "channels", buf.Channels(), "samples", buf.Len()}, elapsed()...)...)

	fillOpts := []filler.Option{filler.WithFrequency(o.ToneFrequency)}
	if o.Seed != nil {
		fillOpts = append(fillOpts, filler.WithSeed(*o.Seed))
	}
	f, err := filler.New(cfg.Filler, fillOpts...)
	if err != nil {
		return nil, &redact.ConfigError{Field: "filler", Err: err}
	}

	sp, err := redact.New(cfg, redact.WithFiller(f), redact.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	records := sp.ApplyAll(buf, intervals)

	res := &Result{
		Filler:     cfg.Filler,
		SampleRate: buf.SampleRate,
		Channels:   buf.Channels(),
		Samples:    buf.Len(),
		Intervals:  intervals,
		Records:    records,
	}
	logger.Info("masked", append([]any{"applied", res.Masked(), "skipped", len(records) - res.Masked()}, elapsed()...)...)

	if err := encodeFile(enc, o.Output, buf); err != nil {
		return nil, err
	}
	logger.Info("encoded", append([]any{"output", o.Output, "bit_depth", bitDepth}, elapsed()...)...)

	if o.CutlistOutput != "" {
		if err := cutlist.SaveCutlist(o.CutlistOutput, intervals); err != nil {
			return nil, fmt.Errorf("cutlist output %q: %w", o.CutlistOutput, err)
		}
		logger.Info("cutlist written", "path", o.CutlistOutput)
	}

	return res, nil
}

func buildCutlist(o Options, logger *slog.Logger) ([]cutlist.Interval, filler.Kind, error) {
	if o.Manual != "" {
		m, err := cutlist.LoadManual(o.Manual)
		if err != nil {
			return nil, "", err
		}
		if m.Skipped > 0 {
			logger.Warn("skipped malformed cutlist entries", "count", m.Skipped)
		}

		var override filler.Kind
		if m.Filler != "" {
			k, err := filler.ParseKind(m.Filler)
			if err != nil {
				logger.Warn("ignoring filler override from cutlist", "filler", m.Filler, "err", err)
			} else {
				override = k
			}
		}
		return m.Intervals, override, nil
	}

	t, err := cutlist.LoadTranscript(o.Transcript)
	if err != nil {
		return nil, "", err
	}
	if t.Skipped > 0 {
		logger.Debug("skipped malformed transcript words", "count", t.Skipped)
	}
	wl, err := cutlist.LoadWordlist(o.Wordlist)
	if err != nil {
		return nil, "", err
	}

	var m cutlist.Matcher = wl
	if o.PhoneticThreshold > 0 {
		m = cutlist.NewPhoneticMatcher(wl, o.PhoneticThreshold)
	}
	return cutlist.BuildFromTranscript(t, m), "", nil
}

func decodeFile(dec audio.Decoder, path string) (*audio.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	buf, err := audio.ReadBuffer(src)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	return buf, nil
}

func encodeFile(enc audio.Encoder, path string, buf *audio.Buffer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", cerr)
		}
	}()

	if err := enc.Encode(f, buf); err != nil {
		return fmt.Errorf("encoding %q: %w", path, err)
	}
	return nil
}
