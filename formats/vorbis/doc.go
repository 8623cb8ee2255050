// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files.
//
// # Decoding Vorbis Files
//
//	file, _ := os.Open("audio.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// ReadSamples only fills whole frames, so a dst shorter than one frame
// yields (0, nil). Vorbis packets may decode to an empty read; callers that
// drain a source should tolerate (0, nil) a few times, as audio.ReadAll does.
//
// # Channel Layout
//
// Samples are interleaved in the order the stream declares:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// Lossy decoding can overshoot full scale slightly; values are passed on
// unclamped.
package vorbis
