// SPDX-License-Identifier: EPL-2.0

// Package bleepblast masks words in audio tracks.
//
// Given a track and a list of time intervals, it replaces every interval
// with filler audio (noise, a beep, silence, or the region reversed) scaled
// to the loudness of what it replaces. Duration and channel layout of the
// track never change.
//
// # Quick Start
//
//	res, err := bleepblast.Run(bleepblast.Options{
//	    Input:      "episode.wav",
//	    Transcript: "episode.json",
//	    Wordlist:   "words.json",
//	    Output:     "episode.clean.wav",
//	    Config:     redact.DefaultConfig(),
//	})
//
// # Cutlists
//
// Intervals come from a transcript matched against a wordlist, or from a
// manual cutlist recorded earlier (see the cutlist package). Setting
// Options.CutlistOutput saves the applied intervals so the same cut can be
// replayed later through Options.Manual.
//
// # Formats
//
// Input is decoded by extension:
//   - WAV (PCM 16/24/32-bit) via formats/wav
//   - AIFF (PCM 16/24/32-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// Output is WAV or AIFF at Options.BitDepth.
//
// # Building Blocks
//
// Run is a thin composition of:
//   - audio.ReadBuffer to decode once into memory
//   - cutlist.BuildFromTranscript or cutlist.LoadManual
//   - redact.Splicer, which owns the buffer while masking
//   - an audio.Encoder to write the result
//
// Use them directly for in-memory processing.
package bleepblast
