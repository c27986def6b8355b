// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

// pcmReader is an interface for aiff.Decoder to allow testing
type pcmReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decode reads an entire AIFF stream and returns interleaved 16-bit PCM
// samples, the source sample rate, and the channel count. Only 16-bit
// PCM files are supported.
func Decode(r io.Reader) ([]int16, int, int, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio needs seeking; buffer non-seekable input in memory.
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("%w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, 0, 0, ErrNotAiffFile
	}
	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, 0, 0, ErrOnlyPCM16bitSupported
	}
	format := dec.Format()
	if format == nil {
		return nil, 0, 0, ErrUnsupportedAiffLayout
	}

	pcm, err := readAll(dec)
	if err != nil {
		return nil, 0, 0, err
	}

	return pcm, format.SampleRate, format.NumChannels, nil
}

// readAll drains dec chunk by chunk; PCMBuffer reports zero samples once
// the stream is exhausted.
func readAll(dec pcmReader) ([]int16, error) {
	var pcm []int16

	buf := &goaudio.IntBuffer{
		Data:   make([]int, 8192),
		Format: dec.Format(),
	}
	for {
		n, err := dec.PCMBuffer(buf)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			return pcm, nil
		}

		for _, s := range buf.Data[:n] {
			pcm = append(pcm, int16(s))
		}
	}
}
