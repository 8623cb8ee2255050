// SPDX-License-Identifier: EPL-2.0

// Package audspec computes the time-averaged magnitude spectrum of an audio
// recording, in decibels.
//
// The recording is decoded (formats), flattened to one channel (audio),
// cut into half-overlapping windows and averaged bin by bin (spectrum).
// The render package turns the result into an image.
//
// # Supported Formats
//
//   - WAV (PCM 8/16/24/32-bit) via formats/wav
//   - AIFF (PCM 8/16/24/32-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// # Quick Start
//
//	avg, _ := spectrum.NewAverager(spectrum.DefaultConfig(), nil)
//	spec, err := audspec.AnalyzeFile("take.wav", nil, avg)
//	if err != nil {
//	    // spectrum.KindOf(err) tells decode failures from short input
//	}
//	_ = render.SaveFile("fft_spectrum_db.png", spec, render.DefaultOptions())
//
// Multi-channel input is mixed to mono by default. WithChannelMode(Interleave)
// instead treats the interleaved samples as one long stream.
package audspec
