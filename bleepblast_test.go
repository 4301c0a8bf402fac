// SPDX-License-Identifier: EPL-2.0

package bleepblast

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/bleepblast/audio"
	"github.com/ik5/bleepblast/cutlist"
	"github.com/ik5/bleepblast/filler"
	"github.com/ik5/bleepblast/formats/wav"
	"github.com/ik5/bleepblast/internal/audiotest"
	"github.com/ik5/bleepblast/redact"
)

const testTranscript = `{"segments": [{"words": [
	{"text": "well", "start": 0.0, "end": 0.2},
	{"text": "Darn", "start": 0.25, "end": 0.5},
	{"text": "it", "start": 0.5, "end": 0.6},
	{"text": "h*ck", "start": 0.75, "end": 0.875}
]}]}`

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeWav(t *testing.T, path string, buf *audio.Buffer) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := (wav.Encoder{}).Encode(f, buf); err != nil {
		t.Fatal(err)
	}
}

func readWav(t *testing.T, path string) *audio.Buffer {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src, err := wav.Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode(%s) error = %v", path, err)
	}
	buf, err := audio.ReadBuffer(src)
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

// fixture writes a one second 8 kHz stereo track plus transcript and wordlist.
func fixture(t *testing.T) (dir, input, transcript, wordlist string) {
	t.Helper()

	dir = t.TempDir()
	input = filepath.Join(dir, "in.wav")
	writeWav(t, input, audiotest.NewBuffer(8000, 2, 8000, audiotest.Sine(8000, 440)))
	transcript = writeFile(t, dir, "transcript.json", testTranscript)
	wordlist = writeFile(t, dir, "words.json", `["darn"]`)
	return dir, input, transcript, wordlist
}

func TestRun_Transcript(t *testing.T) {
	t.Parallel()

	dir, input, transcript, wordlist := fixture(t)
	output := filepath.Join(dir, "out.wav")

	res, err := Run(Options{
		Input:      input,
		Transcript: transcript,
		Wordlist:   wordlist,
		Output:     output,
		Config:     redact.Config{Filler: filler.Silence, MarkStrength: 1},
		Logger:     discard,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(res.Intervals) != 2 || res.Masked() != 2 {
		t.Fatalf("intervals = %+v, masked = %d", res.Intervals, res.Masked())
	}
	if res.SampleRate != 8000 || res.Channels != 2 || res.Samples != 8000 {
		t.Errorf("result = %+v", res)
	}

	in, out := readWav(t, input), readWav(t, output)
	if out.Len() != in.Len() || out.Channels() != in.Channels() {
		t.Fatalf("output shape %dx%d, want %dx%d", out.Channels(), out.Len(), in.Channels(), in.Len())
	}

	masked := func(i int) bool { return (i >= 2000 && i < 4000) || (i >= 6000 && i < 7000) }
	for c := range out.Data {
		for i := range out.Data[c] {
			switch {
			case masked(i) && out.Data[c][i] != 0:
				t.Fatalf("sample [%d][%d] = %v, want silence", c, i, out.Data[c][i])
			case !masked(i) && out.Data[c][i] != in.Data[c][i]:
				t.Fatalf("untouched sample [%d][%d] = %v, want %v", c, i, out.Data[c][i], in.Data[c][i])
			}
		}
	}
}

func TestRun_ManualRoundTrip(t *testing.T) {
	t.Parallel()

	for _, kind := range []filler.Kind{filler.Silence, filler.Tone, filler.Reverse, filler.Fuzz} {
		dir, input, transcript, wordlist := fixture(t)
		seed := uint64(5)
		cfg := redact.Config{Filler: kind, MarkStrength: 4, BufferPercent: 5}

		first := filepath.Join(dir, "first.wav")
		saved := filepath.Join(dir, "cutlist.json")
		if _, err := Run(Options{
			Input: input, Transcript: transcript, Wordlist: wordlist,
			Output: first, CutlistOutput: saved,
			Config: cfg, Seed: &seed, Logger: discard,
		}); err != nil {
			t.Fatalf("%s: transcript run error = %v", kind, err)
		}

		second := filepath.Join(dir, "second.wav")
		if _, err := Run(Options{
			Input: input, Manual: saved, Output: second,
			Config: cfg, Seed: &seed, Logger: discard,
		}); err != nil {
			t.Fatalf("%s: manual run error = %v", kind, err)
		}

		a, _ := os.ReadFile(first)
		b, _ := os.ReadFile(second)
		if !bytes.Equal(a, b) {
			t.Errorf("%s: manual replay differs from transcript run", kind)
		}
	}
}

func TestRun_ManualFillerOverride(t *testing.T) {
	t.Parallel()

	dir, input, _, _ := fixture(t)
	manual := writeFile(t, dir, "manual.json", `{"bleep": "silence", "radioCutlist": [[0.25, 0.5]]}`)

	res, err := Run(Options{
		Input:  input,
		Manual: manual,
		Output: filepath.Join(dir, "out.wav"),
		Config: redact.Config{Filler: filler.Tone, MarkStrength: 4},
		Logger: discard,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Filler != filler.Silence {
		t.Errorf("Filler = %s, want silence from cutlist", res.Filler)
	}

	out := readWav(t, filepath.Join(dir, "out.wav"))
	for i := 2000; i < 4000; i++ {
		if out.Data[0][i] != 0 {
			t.Fatalf("sample %d = %v, want 0", i, out.Data[0][i])
		}
	}
}

func TestRun_UnknownOverrideIgnored(t *testing.T) {
	t.Parallel()

	dir, input, _, _ := fixture(t)
	manual := writeFile(t, dir, "manual.json", `{"bleep": "kazoo", "radioCutlist": [[0.25, 0.5]]}`)

	res, err := Run(Options{
		Input:  input,
		Manual: manual,
		Output: filepath.Join(dir, "out.wav"),
		Config: redact.Config{Filler: filler.Reverse, MarkStrength: 1},
		Logger: discard,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Filler != filler.Reverse {
		t.Errorf("Filler = %s, want reverse", res.Filler)
	}
}

func TestRun_EmptyCutlistStillExports(t *testing.T) {
	t.Parallel()

	dir, input, _, _ := fixture(t)
	manual := writeFile(t, dir, "manual.json", `[]`)
	output := filepath.Join(dir, "out.wav")
	saved := filepath.Join(dir, "saved.json")

	res, err := Run(Options{
		Input: input, Manual: manual, Output: output, CutlistOutput: saved,
		Config: redact.DefaultConfig(), Logger: discard,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(res.Records) != 0 {
		t.Errorf("records = %+v, want none", res.Records)
	}

	in, out := readWav(t, input), readWav(t, output)
	for c := range in.Data {
		for i := range in.Data[c] {
			if in.Data[c][i] != out.Data[c][i] {
				t.Fatalf("sample [%d][%d] changed", c, i)
			}
		}
	}

	data, err := os.ReadFile(saved)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]\n" {
		t.Errorf("saved cutlist = %q, want %q", data, "[]\n")
	}
}

func TestRun_ConfigErrorsBeforeAudio(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	missing := filepath.Join(dir, "does-not-exist.wav")
	output := filepath.Join(dir, "out.wav")

	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"no source", Options{Input: missing, Output: output, Config: redact.DefaultConfig()}, redact.ErrNoCutlistSource},
		{"both sources", Options{Input: missing, Output: output, Transcript: "t.json", Wordlist: "w.json", Manual: "m.json", Config: redact.DefaultConfig()}, redact.ErrConflictingCutlistSource},
		{"transcript only", Options{Input: missing, Output: output, Transcript: "t.json", Config: redact.DefaultConfig()}, redact.ErrIncompleteTranscript},
		{"wordlist only", Options{Input: missing, Output: output, Wordlist: "w.json", Config: redact.DefaultConfig()}, redact.ErrIncompleteTranscript},
		{"bad mark", Options{Input: missing, Output: output, Manual: "m.json", Config: redact.Config{Filler: filler.Fuzz}}, redact.ErrInvalidMarkStrength},
		{"bad buffer", Options{Input: missing, Output: output, Manual: "m.json", Config: redact.Config{Filler: filler.Fuzz, MarkStrength: 1, BufferPercent: -5}}, redact.ErrInvalidBufferPercent},
		{"negative frequency", Options{Input: missing, Output: output, Manual: "m.json", ToneFrequency: -10, Config: redact.DefaultConfig()}, redact.ErrInvalidToneFrequency},
		{"bad bit depth", Options{Input: missing, Output: output, Manual: "m.json", BitDepth: 12, Config: redact.DefaultConfig()}, redact.ErrInvalidBitDepth},
		{"bad filler", Options{Input: missing, Output: output, Manual: "m.json", Config: redact.Config{Filler: "kazoo", MarkStrength: 1}}, redact.ErrUnknownFiller},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.opts.Logger = discard
			_, err := Run(tt.opts)
			if !errors.Is(err, redact.ErrConfig) {
				t.Fatalf("Run() error = %v, want a config error", err)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Run() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := os.Stat(output); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("output created despite config error: %v", err)
	}
}

func TestRun_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	dir, input, _, _ := fixture(t)
	manual := writeFile(t, dir, "manual.json", `[]`)

	_, err := Run(Options{
		Input: input, Manual: manual, Output: filepath.Join(dir, "out.mp3"),
		Config: redact.DefaultConfig(), Logger: discard,
	})
	if !errors.Is(err, audio.ErrUnsupportedFormat) {
		t.Errorf("Run() error = %v, want ErrUnsupportedFormat", err)
	}
	if errors.Is(err, redact.ErrConfig) {
		t.Error("unsupported format reported as config error")
	}
}

func TestRun_MissingInput(t *testing.T) {
	t.Parallel()

	dir, _, _, _ := fixture(t)
	manual := writeFile(t, dir, "manual.json", `[]`)

	_, err := Run(Options{
		Input: filepath.Join(dir, "gone.wav"), Manual: manual, Output: filepath.Join(dir, "out.wav"),
		Config: redact.DefaultConfig(), Logger: discard,
	})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Run() error = %v, want os.ErrNotExist", err)
	}
}

func TestRun_BitDepth(t *testing.T) {
	t.Parallel()

	dir, input, _, _ := fixture(t)
	manual := writeFile(t, dir, "manual.json", `[[0.1, 0.2]]`)
	output := filepath.Join(dir, "out.wav")

	if _, err := Run(Options{
		Input: input, Manual: manual, Output: output, BitDepth: 24,
		Config: redact.DefaultConfig(), Logger: discard,
	}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := readWav(t, output)
	if out.Len() != 8000 {
		t.Errorf("Len() = %d, want 8000", out.Len())
	}

	o := Options{Input: input, Manual: manual, Output: output, BitDepth: 8, Config: redact.DefaultConfig()}
	if err := o.Validate(); !errors.Is(err, redact.ErrConfig) {
		t.Errorf("Validate() with 8-bit = %v, want config error", err)
	}
}

func TestRun_PhoneticMatching(t *testing.T) {
	t.Parallel()

	dir, input, _, wordlist := fixture(t)
	transcript := writeFile(t, dir, "misspelt.json",
		`{"segments": [{"words": [{"text": "darnn", "start": 0.25, "end": 0.5}]}]}`)

	opts := Options{
		Input: input, Transcript: transcript, Wordlist: wordlist,
		Output: filepath.Join(dir, "out.wav"),
		Config: redact.DefaultConfig(), Logger: discard,
	}

	res, err := Run(opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Intervals) != 0 {
		t.Errorf("exact matching found %+v", res.Intervals)
	}

	opts.PhoneticThreshold = cutlist.DefaultPhoneticThreshold
	res, err = Run(opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Intervals) != 1 {
		t.Errorf("phonetic matching found %+v, want one interval", res.Intervals)
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry(16)
	for _, name := range []string{"a.wav", "b.WAVE", "c.aiff", "d.aif", "e.mp3", "f.ogg", "g.oga"} {
		if _, err := reg.DecoderFor(name); err != nil {
			t.Errorf("DecoderFor(%s) error = %v", name, err)
		}
	}
	for _, name := range []string{"a.wav", "c.aiff"} {
		if _, err := reg.EncoderFor(name); err != nil {
			t.Errorf("EncoderFor(%s) error = %v", name, err)
		}
	}
	for _, name := range []string{"e.mp3", "f.ogg", "noext"} {
		if _, err := reg.EncoderFor(name); !errors.Is(err, audio.ErrUnsupportedFormat) {
			t.Errorf("EncoderFor(%s) error = %v, want ErrUnsupportedFormat", name, err)
		}
	}
}
