// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Parsing and writing of the RIFF container is done by
// github.com/go-audio/wav; this package turns its integer PCM frames into
// float32 samples in [-1.0, 1.0] and back.
//
// # Supported Formats
//
//   - PCM and WAVE_FORMAT_EXTENSIBLE integer data
//   - 8-bit (unsigned), 16, 24 and 32-bit samples
//   - Any channel count and sample rate
//
// Floating point and compressed WAV files are rejected with
// ErrUnsupportedWavFormat.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Readers that cannot seek are buffered in memory first.
//
// # Writing WAV Files
//
//	out, _ := os.Create("tone.wav")
//	defer out.Close()
//	err := wav.Encode(out, 8000, 16, 1, samples)
//
// # Error Handling
//
//   - ErrNotWavFile: the input has no RIFF/WAVE header
//   - ErrUnsupportedWavFormat: the format tag is not integer PCM
//   - ErrUnsupportedBitDepth: the sample size is not 8, 16, 24 or 32 bits
//
// Errors are wrapped; compare with errors.Is.
package wav
