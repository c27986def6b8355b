// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
)

// pcmReader is an interface for gomp3.Decoder to allow testing
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Decode reads an entire MP3 stream and returns interleaved stereo
// 16-bit PCM samples together with the source sample rate.
//
// go-mp3 always produces stereo output, upmixing mono files.
func Decode(r io.Reader) ([]int16, int, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	pcm, err := readAll(dec)
	if err != nil {
		return nil, 0, err
	}

	return pcm, dec.SampleRate(), nil
}

// readAll drains dec, converting its 16-bit little-endian PCM bytes to
// int16 samples.
func readAll(dec pcmReader) ([]int16, error) {
	var pcm []int16

	buf := make([]byte, 8192)
	for {
		n, err := dec.Read(buf)

		for i := 0; i+1 < n; i += 2 {
			pcm = append(pcm, int16(binary.LittleEndian.Uint16(buf[i:i+2])))
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return pcm, nil
			}

			return nil, fmt.Errorf("%w", err)
		}
	}
}
