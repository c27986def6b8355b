// SPDX-License-Identifier: EPL-2.0

package mixer

import "sync/atomic"

const (
	// ringFrames is the fixed capacity of a ring in stereo frames.
	// Must be a power of two so masking replaces modulo.
	ringFrames = 2048

	// SourceBufferFrames is each source's buffering capacity, in input
	// frames. Pushing more than this before the next mix overruns the
	// source and drops its oldest frames.
	SourceBufferFrames = ringFrames

	frameMask = ringFrames - 1

	// lapSlack is the guard band, in frames, between a lap-recovered read
	// position and the frames the producer overwrites next. Pushes landing
	// during a single mix call must stay below it, or they reach slots the
	// consumer is still interpolating.
	lapSlack = 512
)

// ring is a fixed-capacity circular store of interleaved stereo float
// samples. The write index is mutated only by the producer call path and
// the read index only by the consumer call path; with exactly one thread
// on each side the atomic counters are all the synchronization needed.
//
// Both counters grow monotonically and are masked on storage access. The
// producer never blocks: when it laps the reader the oldest unread frames
// are overwritten in place, and the reader detects the lap and jumps
// forward (see fifo.mix).
type ring struct {
	data [ringFrames * 2]float32

	writeIndex atomic.Uint32
	readIndex  atomic.Uint32
}

// pushFrame stores one stereo frame and publishes it. Producer side only.
func (rb *ring) pushFrame(left, right float32) {
	w := rb.writeIndex.Load()
	// Pairs with the consumer's readIndex store: reads of frames the
	// consumer has finished are ordered before this slot's reuse.
	_ = rb.readIndex.Load()
	i := (w & frameMask) * 2
	rb.data[i] = left
	rb.data[i+1] = right
	rb.writeIndex.Store(w + 1)
}

// frameAt reads the frame at an absolute frame position without advancing
// the read index. Used for interpolation lookahead.
func (rb *ring) frameAt(frame uint32) (left, right float32) {
	i := (frame & frameMask) * 2
	return rb.data[i], rb.data[i+1]
}

// advance moves the read index forward by n frames. Consumer side only.
func (rb *ring) advance(n uint32) {
	rb.readIndex.Store(rb.readIndex.Load() + n)
}

// available returns the number of unread frames, clamped to [0, ringFrames].
// The clamp matters after an overrun: the raw distance can exceed capacity
// until the consumer catches up.
func (rb *ring) available() uint32 {
	d := rb.writeIndex.Load() - rb.readIndex.Load()
	if d > ringFrames {
		return ringFrames
	}
	return d
}
