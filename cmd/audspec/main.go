// SPDX-License-Identifier: EPL-2.0

// Command audspec saves the time-averaged dB spectrum of an audio file as
// an image.
//
//	audspec [flags] <input-file>
//	audspec config
package main

import (
	"os"

	"github.com/ik5/audspec/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
