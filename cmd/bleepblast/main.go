// SPDX-License-Identifier: EPL-2.0

// Command bleepblast masks words in an audio file, driven by a transcript
// and wordlist or by a manual cutlist.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/ik5/bleepblast"
	"github.com/ik5/bleepblast/config"
	"github.com/ik5/bleepblast/filler"
	"github.com/ik5/bleepblast/internal/cli"
	"github.com/ik5/bleepblast/redact"
)

var (
	version = "0.0.1"
)

// CLI defines the command-line interface. Numeric flags are pointers so an
// unset flag falls back to the profile, then to built-in defaults, while an
// explicit value is always validated.
type CLI struct {
	Version    bool     `short:"v" help:"Show version information"`
	Input      string   `arg:"" name:"file" help:"Input audio file (wav, aiff, mp3, ogg)" type:"existingfile" optional:""`
	Transcript string   `short:"l" name:"lyrics" aliases:"transcript" help:"Transcript JSON for the input track" type:"existingfile"`
	Wordlist   string   `short:"w" help:"JSON list of words to mask" type:"existingfile"`
	Manual     string   `short:"u" name:"user" aliases:"manual" help:"Use a manual cutlist instead of a transcript" type:"existingfile"`
	Output     string   `short:"o" help:"Write masked audio to this file (wav or aiff)" type:"path"`
	Cutout     string   `short:"c" help:"Write the applied cutlist JSON to this file" type:"path"`
	Filler     string   `short:"b" name:"bleep" help:"Filler: fuzz, beep, silence, reverse (default: fuzz)"`
	Mark       *int     `short:"m" help:"Loudness multiplier for the filler (default: 4)"`
	Buffer     *float64 `short:"B" help:"Percent padding each side of a masked word (default: 5)"`
	BitDepth   *int     `name:"bit-depth" help:"Output bit depth: 16, 24 or 32 (default: 16)"`
	Frequency  *float64 `help:"Beep frequency in Hz (default: 12000)"`
	Seed       string   `help:"Seed for the fuzz filler, unseeded when empty"`
	Phonetic   *float64 `help:"Also mask sounds-alike words at this similarity (0-1, 0 disables)"`
	Config     string   `type:"path" help:"Path to a YAML profile (optional)"`
	LogLevel   string   `name:"log-level" help:"Log level: debug, info, warn, error"`
}

func main() {
	os.Exit(run())
}

func run() int {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("bleepblast"),
		kong.Description("Mask words in audio with loudness-matched filler"),
		kong.UsageOnError(),
	)

	if cliArgs.Version {
		cli.PrintVersion(version)
		return 0
	}

	if cliArgs.Input == "" || cliArgs.Output == "" {
		cli.PrintError("an input file and --output are required")
		_ = ctx.PrintUsage(false)
		return 1
	}

	profile := &config.Profile{}
	if cliArgs.Config != "" {
		p, err := config.Load(cliArgs.Config)
		if err != nil {
			cli.PrintError(err.Error())
			return 1
		}
		profile = p
	}

	level := config.LogLevel(cliArgs.LogLevel)
	if level == "" {
		level = profile.LogLevel
	}
	slog.SetDefault(newLogger(level))

	opts, err := buildOptions(cliArgs, profile)
	if err != nil {
		cli.PrintError(err.Error())
		if errors.Is(err, redact.ErrConfig) {
			_ = ctx.PrintUsage(false)
			return 2
		}
		return 1
	}

	res, err := bleepblast.Run(opts)
	if err != nil {
		if errors.Is(err, redact.ErrConfig) {
			cli.PrintError(err.Error())
			_ = ctx.PrintUsage(false)
			return 2
		}
		cli.PrintError(err.Error())
		return 1
	}

	cli.PrintSummary(os.Stdout, "Done", []cli.Field{
		{Key: "Output", Value: opts.Output},
		{Key: "Filler", Value: res.Filler.String()},
		{Key: "Masked", Value: fmt.Sprintf("%d of %d", res.Masked(), len(res.Records))},
		{Key: "Channels", Value: strconv.Itoa(res.Channels)},
		{Key: "Duration", Value: fmt.Sprintf("%.2fs", float64(res.Samples)/float64(max(res.SampleRate, 1)))},
	})
	return 0
}

// buildOptions layers flags over the profile over built-in defaults. Explicit
// flag values are passed through unchanged so Run rejects out-of-range ones.
func buildOptions(c *CLI, p *config.Profile) (bleepblast.Options, error) {
	cfg := redact.DefaultConfig()

	fillerName := c.Filler
	if fillerName == "" {
		fillerName = p.Filler
	}
	if fillerName != "" {
		k, err := filler.ParseKind(fillerName)
		if err != nil {
			return bleepblast.Options{}, &redact.ConfigError{Field: "filler", Err: fmt.Errorf("%w: %w", redact.ErrUnknownFiller, err)}
		}
		cfg.Filler = k
	}

	switch {
	case c.Mark != nil:
		cfg.MarkStrength = *c.Mark
	case p.MarkStrength != 0:
		cfg.MarkStrength = p.MarkStrength
	}

	switch {
	case c.Buffer != nil:
		cfg.BufferPercent = *c.Buffer
	case p.BufferPercent != nil:
		cfg.BufferPercent = *p.BufferPercent
	}

	opts := bleepblast.Options{
		Input:             c.Input,
		Transcript:        c.Transcript,
		Wordlist:          c.Wordlist,
		Manual:            c.Manual,
		Output:            c.Output,
		CutlistOutput:     c.Cutout,
		Config:            cfg,
		BitDepth:          p.BitDepth,
		ToneFrequency:     p.ToneFrequency,
		PhoneticThreshold: p.PhoneticThreshold,
		Seed:              p.Seed,
		Logger:            slog.Default(),
	}

	// Zero means "default" in Options, so an explicit zero has to be caught here.
	if c.BitDepth != nil {
		if *c.BitDepth == 0 {
			return bleepblast.Options{}, &redact.ConfigError{Field: "bit_depth", Err: fmt.Errorf("%w: 0", redact.ErrInvalidBitDepth)}
		}
		opts.BitDepth = *c.BitDepth
	}
	if c.Frequency != nil {
		if *c.Frequency == 0 {
			return bleepblast.Options{}, &redact.ConfigError{Field: "tone_frequency", Err: redact.ErrInvalidToneFrequency}
		}
		opts.ToneFrequency = *c.Frequency
	}
	if c.Phonetic != nil {
		opts.PhoneticThreshold = *c.Phonetic
	}

	if c.Seed != "" {
		seed, err := strconv.ParseUint(c.Seed, 10, 64)
		if err != nil {
			return bleepblast.Options{}, &redact.ConfigError{Field: "seed", Err: err}
		}
		opts.Seed = &seed
	}

	return opts, nil
}

func newLogger(level config.LogLevel) *slog.Logger {
	var lvl slog.Level
	switch level {
	case config.LogDebug:
		lvl = slog.LevelDebug
	case config.LogWarn:
		lvl = slog.LevelWarn
	case config.LogError:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
