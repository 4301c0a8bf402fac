// SPDX-License-Identifier: EPL-2.0

// Package audio provides the audio primitives shared by the redaction pipeline.
//
// This package contains:
//   - Source interface for streaming decoded audio
//   - Decoder and Encoder interfaces implemented by the formats subpackages
//   - Registry mapping file extensions to decoders and encoders
//   - Buffer, the in-memory channel x sample matrix the pipeline mutates
//
// # Source Interface
//
// The Source interface is what every decoder returns:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 values in the range [-1.0, 1.0].
//
// # Buffers
//
// ReadBuffer drains a Source once and de-interleaves it:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	buf, err := audio.ReadBuffer(src)
//	// buf.Data[c][i] is sample i of channel c
//
// The channel count and the number of samples per channel of a Buffer are
// never changed by the pipeline. Region returns aliasing views, Replace
// writes a region back in place.
//
// # Format Registry
//
// The registry selects codecs by extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.RegisterEncoder("wav", wav.Encoder{BitDepth: 16})
//	dec, err := registry.DecoderFor("speech.wav")
//
// A missing codec yields a *FormatError wrapping ErrUnsupportedFormat.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
