// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/audmixer/formats/aiff"
	"github.com/ik5/audmixer/formats/mp3"
	"github.com/ik5/audmixer/formats/vorbis"
)

var errUnsupportedFormat = errors.New("unsupported audio format")

// loadPCM decodes the file at path into interleaved stereo 16-bit PCM
// and reports the source sample rate. Mono inputs are duplicated to
// both channels.
func loadPCM(path string) ([]int16, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return loadWAV(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".ogg":
		pcm, rate, channels, err := vorbis.Decode(f)
		if err != nil {
			return nil, 0, err
		}
		if channels == 1 {
			pcm = monoToStereo(pcm)
		}
		return pcm, rate, nil
	case ".aiff", ".aif":
		pcm, rate, channels, err := aiff.Decode(f)
		if err != nil {
			return nil, 0, err
		}
		if channels == 1 {
			pcm = monoToStereo(pcm)
		}
		return pcm, rate, nil
	default:
		return nil, 0, fmt.Errorf("%w: %s", errUnsupportedFormat, filepath.Ext(path))
	}
}

func loadWAV(f *os.File) ([]int16, int, error) {
	dec := gowav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("%w: not a valid WAV file", errUnsupportedFormat)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	pcm := make([]int16, len(buf.Data))
	for i, s := range buf.Data {
		pcm[i] = int16(s)
	}

	if buf.Format.NumChannels == 1 {
		pcm = monoToStereo(pcm)
	}

	return pcm, buf.Format.SampleRate, nil
}

func monoToStereo(mono []int16) []int16 {
	stereo := make([]int16, len(mono)*2)
	for i, s := range mono {
		stereo[2*i] = s
		stereo[2*i+1] = s
	}

	return stereo
}
