// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

const maxEmptyReads = 64

// ReadAll drains src and returns every sample it produced, in order.
// bufSize is the read chunk; values below 1 fall back to src.BufSize(),
// then to 4096. io.EOF is not returned as an error.
func ReadAll(src Source, bufSize int) ([]float32, error) {
	if bufSize < 1 {
		bufSize = src.BufSize()
	}
	if bufSize < 1 {
		bufSize = 4096
	}

	// Assume ~2 seconds to start, grow as needed
	out := make([]float32, 0, max(src.SampleRate()*src.Channels()*2, bufSize))
	buf := make([]float32, bufSize)
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}

		// some decoders legitimately return (0, nil) for a packet without
		// audio; give up only after a run of them
		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				break
			}
			continue
		}
		empty = 0
	}

	return out, nil
}
