// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audmixer/utils"
)

// Decode reads an entire Ogg Vorbis stream and returns interleaved
// 16-bit PCM samples, the source sample rate, and the channel count.
func Decode(r io.Reader) ([]int16, int, int, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w", err)
	}

	return toPCM16(data), format.SampleRate, format.Channels, nil
}

// toPCM16 converts normalized float32 samples to 16-bit PCM.
func toPCM16(data []float32) []int16 {
	pcm := make([]int16, len(data))
	for i, s := range data {
		pcm[i] = utils.Float32ToInt16(s)
	}

	return pcm
}
