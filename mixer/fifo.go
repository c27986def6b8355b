// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"sync/atomic"

	"github.com/ik5/audmixer/utils"
)

// kernel selects the interpolation used when a fifo is pulled. Exactly two
// exist; they are fixed at construction.
type kernel int

const (
	kernelLinear kernel = iota
	kernelCubic
)

// fifo accepts pushed 16-bit PCM at its own input rate and produces output
// samples at the owning mixer's rate through fractional-position
// interpolation. One producer thread and one consumer thread per instance.
//
// The fractional read position and the rate-control average live on the
// consumer side and persist across pulls. Volume and input rate are plain
// atomics so the control plane can update them from other threads.
type fifo struct {
	mixer *Mixer
	kind  kernel

	buf ring

	inputRate atomic.Uint32
	lvolume   atomic.Uint32
	rvolume   atomic.Uint32

	// fed flips once the first samples arrive; an untouched source does
	// not count toward the mixer-wide available-frames minimum.
	fed atomic.Bool

	// Consumer-owned resampling state.
	fraction float64
	fillAvg  float64
}

func newFifo(m *Mixer, kind kernel, inputRate uint32) *fifo {
	f := &fifo{mixer: m, kind: kind}
	f.inputRate.Store(inputRate)
	f.lvolume.Store(255)
	f.rvolume.Store(255)
	return f
}

// pushSamples converts interleaved stereo int16 PCM to float frames and
// stores them. Never blocks; on overrun the oldest unread frames are
// overwritten. A trailing odd sample is ignored.
func (f *fifo) pushSamples(samples []int16) {
	frames := len(samples) / 2
	for i := 0; i < frames; i++ {
		f.buf.pushFrame(
			utils.Int16ToFloat32(samples[2*i]),
			utils.Int16ToFloat32(samples[2*i+1]),
		)
	}
	if frames > 0 {
		f.fed.Store(true)
	}
}

// setInputSampleRate updates the nominal source rate. Takes effect on the
// next pull; no crossfade, an abrupt rate step is accepted.
func (f *fifo) setInputSampleRate(rate int) error {
	if rate <= 0 {
		return ErrInvalidSampleRate
	}
	f.inputRate.Store(uint32(rate))
	return nil
}

func (f *fifo) inputSampleRate() int {
	return int(f.inputRate.Load())
}

func (f *fifo) setVolume(left, right uint8) {
	f.lvolume.Store(uint32(left))
	f.rvolume.Store(uint32(right))
}

func (f *fifo) volume() (left, right uint8) {
	return uint8(f.lvolume.Load()), uint8(f.rvolume.Load())
}

// availableOutputFrames estimates how many output-rate frames the buffered
// input-rate frames represent, rounded down. The product is formed in
// uint64; frames*rate does not fit uint32 for high output rates.
func (f *fifo) availableOutputFrames() uint32 {
	avail := uint64(f.buf.available()) * uint64(f.mixer.outputRate)
	return uint32(avail / uint64(f.inputRate.Load()))
}

// mix pulls up to frames output frames from the fifo and accumulates them into
// dst (interleaved stereo, len(dst) >= frames*2), applying volume scaling.
// Output frames past the point of source starvation are left untouched, so
// a starved fifo simply contributes silence. Consumer call path.
func (f *fifo) mix(dst []float32, frames int, honorRateLimit bool) {
	read := f.buf.readIndex.Load()
	write := f.buf.writeIndex.Load()

	// The writer lapped us: everything older than one capacity is gone.
	// Jumping forward here keeps readIndex consumer-owned while realizing
	// the drop-oldest overrun policy. Resuming lapSlack frames ahead of
	// the overwrite frontier keeps concurrent pushes off the slots this
	// call interpolates.
	if write-read > ringFrames {
		read = write - ringFrames + lapSlack
	}

	rate := float64(f.inputRate.Load())
	if honorRateLimit {
		rate *= f.frequencyShift()
		if speed := f.mixer.Speed(); speed > 0 {
			rate *= speed
		}
	}
	ratio := rate / float64(f.mixer.outputRate)

	lvol := float32(f.lvolume.Load()) / 256.0
	rvol := float32(f.rvolume.Load()) / 256.0

	// Signed comparison: a ratio above 1 can step read past write, and the
	// unsigned difference would then wrap instead of stopping the loop.
	for i := 0; i < frames && int32(write-read) > 0; i++ {
		l, r := f.interpolate(read, write, float32(f.fraction))
		dst[2*i] += l * lvol
		dst[2*i+1] += r * rvol

		f.fraction += ratio
		step := uint32(f.fraction)
		read += step
		f.fraction -= float64(step)
	}

	if int32(read-write) > 0 {
		read = write
	}
	f.buf.readIndex.Store(read)
}

// interpolate evaluates the fifo's kernel at frame position read with
// sub-frame fraction x. Lookahead taps that would pass the write head hold
// the newest frame instead of reading a slot the producer has not filled.
func (f *fifo) interpolate(read, write uint32, x float32) (left, right float32) {
	if f.kind == kernelLinear {
		l0, r0 := f.buf.frameAt(read)
		l1, r1 := f.tap(read+1, write)
		return utils.LinearInterpolate(l0, l1, x), utils.LinearInterpolate(r0, r1, x)
	}

	// 4-point Catmull-Rom around [read, read+1]. The read-1 tap is either
	// the most recently consumed frame, still intact in storage, or the
	// zeroed pre-history at stream start.
	l0, r0 := f.buf.frameAt(read - 1)
	l1, r1 := f.buf.frameAt(read)
	l2, r2 := f.tap(read+1, write)
	l3, r3 := f.tap(read+2, write)
	return utils.CubicInterpolate(l0, l1, l2, l3, x),
		utils.CubicInterpolate(r0, r1, r2, r3, x)
}

// tap clamps a lookahead position to the newest written frame.
func (f *fifo) tap(pos, write uint32) (left, right float32) {
	if int32(pos-write) >= 0 {
		pos = write - 1
	}
	return f.buf.frameAt(pos)
}
