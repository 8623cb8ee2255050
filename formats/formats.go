// SPDX-License-Identifier: EPL-2.0

// Package formats wires every bundled decoder into an audio.Registry.
package formats

import (
	"github.com/ik5/audspec/audio"
	"github.com/ik5/audspec/formats/aiff"
	"github.com/ik5/audspec/formats/mp3"
	"github.com/ik5/audspec/formats/vorbis"
	"github.com/ik5/audspec/formats/wav"
)

// NewRegistry returns a registry keyed by the usual file extensions of the
// supported containers.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})

	return reg
}
