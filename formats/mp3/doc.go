// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MPEG-1/2
// Layer III streams into float32 samples in the range [-1.0, 1.0].
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: always 2; mono files are duplicated by go-mp3
//   - Sample rate: the rate of the stream
//
// Use audio.NewMonoMixer to fold the output to one channel before
// spectral analysis:
//
//	src, _ := mp3.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(src)
//
// # Limitations
//
//   - Decoding only
//   - go-mp3 may return a few leading frames of decoder delay as silence
package mp3
