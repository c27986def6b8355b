// SPDX-License-Identifier: EPL-2.0

package audmixer

import (
	"errors"
	"fmt"

	"github.com/ik5/audmixer/mixer"
)

var ErrInvalidFrameCount = errors.New("frame count must be positive")

// Track is one offline source for MixDown: interleaved stereo int16 PCM
// at its own sample rate.
type Track struct {
	Samples []int16
	Rate    int
}

// mixDownChunk is the number of output frames rendered per engine pull.
const mixDownChunk = 256

// MixDown renders an offline mix of up to two tracks at outputRate and
// collects frames stereo frames as 16-bit PCM.
//
// The tracks are fed through the same engine the real-time paths use:
// dma goes to the primary source and streaming to the streaming source,
// each resampled from its own rate with rate control disabled (an offline
// render must not be throttled). Either track may be nil. Tracks shorter
// than the requested length pad with silence, like a starved live source.
//
// Parameters:
//   - outputRate: target sample rate in Hz (e.g., 44100, 48000)
//   - dma, streaming: the source tracks, interleaved stereo int16
//   - frames: number of output frames to render
//
// Returns the rendered interleaved stereo samples (len frames*2).
//
// Example:
//
//	music := audmixer.Track{Samples: musicPCM, Rate: 44100}
//	voice := audmixer.Track{Samples: voicePCM, Rate: 32000}
//	pcm, err := audmixer.MixDown(48000, &voice, &music, 48000*10)
//	if err != nil {
//	    return err
//	}
//	// pcm now holds ten seconds of the combined stream at 48kHz
func MixDown(outputRate int, dma, streaming *Track, frames int) ([]int16, error) {
	if frames <= 0 {
		return nil, ErrInvalidFrameCount
	}

	m, err := mixer.New(outputRate)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if dma != nil {
		if err := m.SetDMAInputSampleRate(dma.Rate); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}
	if streaming != nil {
		if err := m.SetStreamingInputSampleRate(streaming.Rate); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	out := make([]int16, frames*2)
	var dmaPos, streamPos int

	for done := 0; done < frames; {
		n := min(mixDownChunk, frames-done)
		if dma != nil {
			n = min(n, maxChunkFrames(dma.Rate, outputRate))
		}
		if streaming != nil {
			n = min(n, maxChunkFrames(streaming.Rate, outputRate))
		}

		// Top up each source to the cumulative input position this chunk
		// ends at. An absolute target keeps the buffered lead fixed at
		// the interpolation lookahead instead of growing every chunk.
		if dma != nil {
			dmaPos += pushTo(m.PushSamples, dma, dmaPos,
				inputTarget(done+n, dma.Rate, outputRate))
		}
		if streaming != nil {
			streamPos += pushTo(m.PushStreamingSamples, streaming, streamPos,
				inputTarget(done+n, streaming.Rate, outputRate))
		}

		m.Mix(out[done*2:(done+n)*2], n, false)
		done += n
	}

	return out, nil
}

// inputTarget is the total input frames a track must have delivered for
// the engine to render outFrames output frames, plus interpolation
// lookahead.
func inputTarget(outFrames, rate, outputRate int) int {
	return outFrames*rate/outputRate + 4
}

// maxChunkFrames caps a chunk's output frames so its input-side footprint
// stays within half the engine's per-source buffering, which matters when
// downsampling steeply.
func maxChunkFrames(rate, outputRate int) int {
	n := (mixer.SourceBufferFrames / 2) * outputRate / rate
	if n < 1 {
		n = 1
	}
	return n
}

// pushTo feeds push with the track frames in [pos, target), clamped to
// the track length. Returns the number of input frames pushed.
func pushTo(push func([]int16), t *Track, pos, target int) int {
	total := len(t.Samples) / 2
	if target > total {
		target = total
	}
	if target <= pos {
		return 0
	}
	push(t.Samples[pos*2 : target*2])
	return target - pos
}
