// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-stream primitives the analyzer reads from.
//
// This package contains:
//   - Source interface for decoded audio input
//   - MonoMixer and Interleaved for flattening multi-channel audio
//   - ReadAll for materializing a whole stream
//   - Format registry for decoder lookup by file extension
//
// # Source Interface
//
// All decoders and flatteners implement Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// # Flattening
//
// MonoMixer averages the samples of each frame:
//
//	mono := audio.NewMonoMixer(source)
//
// Interleaved keeps every sample and reports a single channel, so a stereo
// stream becomes one stream of twice the length:
//
//	flat := audio.NewInterleaved(source)
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.Lookup("take.wav")
//
// Keys are case-insensitive and a leading dot is ignored.
//
// # Sample Format
//
// Samples are float32 in the range [-1.0, 1.0], interleaved by channel.
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available. ReadAll
// consumes the io.EOF and only reports real failures:
//
//	samples, err := audio.ReadAll(mono, 4096)
//	if err != nil {
//	    return err
//	}
package audio
