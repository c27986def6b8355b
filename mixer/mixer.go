// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"
)

// Default nominal input rates of the three source roles.
const (
	DefaultDMARate       = 32000
	DefaultStreamingRate = 48000
	DefaultSpeakerRate   = 3000
)

// CaptureKind names one of the two optional post-mix capture streams.
type CaptureKind int

const (
	// CaptureDiscTrack records the mixed stream for disc-track dumps.
	CaptureDiscTrack CaptureKind = iota
	// CaptureProcessed records the mixed stream for processed-audio dumps.
	CaptureProcessed

	captureKinds
)

func (k CaptureKind) String() string {
	switch k {
	case CaptureDiscTrack:
		return "disc-track"
	case CaptureProcessed:
		return "processed"
	}
	return fmt.Sprintf("capture(%d)", int(k))
}

// Sink consumes the final mixed stream when its capture kind is active.
type Sink interface {
	Start(path string, sampleRate int) error
	Stop() error
	SetSkipSilence(skip bool)
	AddStereoSamples(samples []int16) error
}

type captureSlot struct {
	sink   Sink
	rate   int
	active bool
}

// Mixer merges three independently-clocked PCM sources into one stream at
// a fixed output rate. Each source has its own fifo, interpolation kernel
// and closed-loop rate control; the mixer sums them with volume scaling
// and converts to the output format with triangular dithering.
//
// Producers call the Push methods, one thread per source. A single
// consumer thread calls Mix or MixFloat32. The mutex guards only the
// control plane (capture state, multi-fifo reads) and the mix call itself;
// per-sample paths rely on the fifos' single-writer counters.
type Mixer struct {
	mu sync.Mutex

	outputRate int

	dma       *fifo
	streaming *fifo
	speaker   *fifo

	speedBits atomic.Uint64
	running   atomic.Bool

	scratch []float32

	rng         *rand.Rand
	ditherLPrev float32
	ditherRPrev float32

	logger   *slog.Logger
	captures [captureKinds]captureSlot
}

// Option customizes a Mixer at construction time.
type Option func(*Mixer)

// WithLogger replaces the default slog logger used for control-plane
// events. The hot path never logs.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mixer) { m.logger = l }
}

// WithDitherSeed seeds the dither noise generator, making the float to
// int16 conversion deterministic.
func WithDitherSeed(seed uint64) Option {
	return func(m *Mixer) { m.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithCaptureSink attaches a capture sink for the given kind, recording at
// sampleRate when started.
func WithCaptureSink(kind CaptureKind, sink Sink, sampleRate int) Option {
	return func(m *Mixer) {
		if kind < 0 || kind >= captureKinds {
			return
		}
		m.captures[kind] = captureSlot{sink: sink, rate: sampleRate}
	}
}

// New creates a mixer producing interleaved stereo at outputRate. The rate
// is fixed for the mixer's lifetime.
func New(outputRate int, opts ...Option) (*Mixer, error) {
	if outputRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	m := &Mixer{
		outputRate: outputRate,
		logger:     slog.Default(),
	}
	m.dma = newFifo(m, kernelCubic, DefaultDMARate)
	m.streaming = newFifo(m, kernelCubic, DefaultStreamingRate)
	// Linear for the sparse speaker source; a 4-tap kernel rings on large
	// rate ratios like 3 kHz to device rate.
	m.speaker = newFifo(m, kernelLinear, DefaultSpeakerRate)

	m.SetSpeed(1.0)
	m.running.Store(true)

	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15))
	}
	return m, nil
}

// OutputSampleRate returns the device rate the mixer was built with.
func (m *Mixer) OutputSampleRate() int { return m.outputRate }

// SetSpeed publishes the current emulation speed scalar (1.0 = full
// speed). Written by the producing core, read on the mix path.
func (m *Mixer) SetSpeed(speed float64) {
	m.speedBits.Store(math.Float64bits(speed))
}

// Speed returns the last published emulation speed scalar.
func (m *Mixer) Speed() float64 {
	return math.Float64frombits(m.speedBits.Load())
}

// SetRunning gates mixing. While false, Mix emits pure silence and leaves
// the fifos untouched.
func (m *Mixer) SetRunning(running bool) { m.running.Store(running) }

// Running reports whether mixing is active.
func (m *Mixer) Running() bool { return m.running.Load() }

// PushSamples feeds interleaved stereo int16 PCM to the DMA source.
func (m *Mixer) PushSamples(samples []int16) {
	m.dma.pushSamples(samples)
}

// PushStreamingSamples feeds interleaved stereo int16 PCM to the streaming
// source.
func (m *Mixer) PushStreamingSamples(samples []int16) {
	m.streaming.pushSamples(samples)
}

// PushSpeakerSamples feeds mono int16 PCM to the speaker source,
// duplicating each sample to both channels. The speaker source re-clocks
// at runtime, so the rate accompanies every push.
func (m *Mixer) PushSpeakerSamples(samples []int16, sampleRate int) error {
	if err := m.speaker.setInputSampleRate(sampleRate); err != nil {
		return err
	}
	stereo := make([]int16, len(samples)*2)
	for i, s := range samples {
		stereo[2*i] = s
		stereo[2*i+1] = s
	}
	m.speaker.pushSamples(stereo)
	return nil
}

// SetDMAInputSampleRate updates the DMA source's nominal rate.
func (m *Mixer) SetDMAInputSampleRate(rate int) error {
	return m.dma.setInputSampleRate(rate)
}

// DMAInputSampleRate returns the DMA source's nominal rate.
func (m *Mixer) DMAInputSampleRate() int { return m.dma.inputSampleRate() }

// SetStreamingInputSampleRate updates the streaming source's nominal rate.
func (m *Mixer) SetStreamingInputSampleRate(rate int) error {
	return m.streaming.setInputSampleRate(rate)
}

// StreamingInputSampleRate returns the streaming source's nominal rate.
func (m *Mixer) StreamingInputSampleRate() int { return m.streaming.inputSampleRate() }

// SetStreamingVolume sets the streaming source's per-channel volume,
// 0-255, applied as v/256 at mix time.
func (m *Mixer) SetStreamingVolume(left, right uint8) {
	m.streaming.setVolume(left, right)
}

// StreamingVolume returns the streaming source's per-channel volume.
func (m *Mixer) StreamingVolume() (left, right uint8) { return m.streaming.volume() }

// SetSpeakerVolume sets the speaker source's per-channel volume, 0-255.
func (m *Mixer) SetSpeakerVolume(left, right uint8) {
	m.speaker.setVolume(left, right)
}

// SpeakerVolume returns the speaker source's per-channel volume.
func (m *Mixer) SpeakerVolume() (left, right uint8) { return m.speaker.volume() }

// AvailableOutputFrames reports the minimum available-frame estimate
// across sources that have received samples: the limiting source bounds
// how much the caller can request without underrunning any of them.
func (m *Mixer) AvailableOutputFrames() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	avail := -1
	for _, f := range []*fifo{m.dma, m.streaming, m.speaker} {
		if !f.fed.Load() {
			continue
		}
		n := int(f.availableOutputFrames())
		if avail < 0 || n < avail {
			avail = n
		}
	}
	if avail < 0 {
		return 0
	}
	return avail
}

// Mix pulls the requested number of stereo frames from every source, sums them with volume
// scaling, clamps to [-1, 1] and converts to int16 with triangular
// dithering. dst must hold at least frames*2 values. Starved sources pad
// with silence; the return value is always frames (0 only on a bad call).
// Post-mix samples are forwarded to active capture sinks.
func (m *Mixer) Mix(dst []int16, frames int, honorRateLimit bool) int {
	if frames <= 0 || len(dst) < frames*2 {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := dst[:frames*2]
	if !m.running.Load() {
		for i := range out {
			out[i] = 0
		}
		return frames
	}

	buf := m.scratchBuffer(frames * 2)
	m.dma.mix(buf, frames, honorRateLimit)
	m.streaming.mix(buf, frames, honorRateLimit)
	m.speaker.mix(buf, frames, honorRateLimit)

	for i := 0; i < len(out); i += 2 {
		out[i] = m.quantize(buf[i], &m.ditherLPrev)
		out[i+1] = m.quantize(buf[i+1], &m.ditherRPrev)
	}

	m.forwardToCaptures(out)
	return frames
}

// MixFloat32 is the float output path: same mixing as Mix without
// quantization or dithering, hard-clamped to [-1, 1]. Capture sinks take
// int16 and are not fed from this path.
func (m *Mixer) MixFloat32(dst []float32, frames int, honorRateLimit bool) int {
	if frames <= 0 || len(dst) < frames*2 {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := dst[:frames*2]
	for i := range out {
		out[i] = 0
	}
	if !m.running.Load() {
		return frames
	}

	m.dma.mix(out, frames, honorRateLimit)
	m.streaming.mix(out, frames, honorRateLimit)
	m.speaker.mix(out, frames, honorRateLimit)

	for i, v := range out {
		if v > 1 {
			out[i] = 1
		} else if v < -1 {
			out[i] = -1
		}
	}
	return frames
}

// StartCapture begins forwarding the mixed stream to the sink configured
// for kind, recording to path. Starting an already-started capture is a
// warning and a no-op, never an error.
func (m *Mixer) StartCapture(kind CaptureKind, path string) error {
	if kind < 0 || kind >= captureKinds {
		return ErrUnknownCaptureKind
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c := &m.captures[kind]
	if c.sink == nil {
		return ErrNoCaptureSink
	}
	if c.active {
		m.logger.Warn("capture already started", "kind", kind.String(), "path", path)
		return nil
	}
	if err := c.sink.Start(path, c.rate); err != nil {
		return fmt.Errorf("%w", err)
	}
	c.sink.SetSkipSilence(false)
	c.active = true
	m.logger.Info("capture started", "kind", kind.String(), "path", path, "rate", c.rate)
	return nil
}

// StopCapture stops forwarding to the sink for kind. Stopping an
// already-stopped capture is a warning and a no-op.
func (m *Mixer) StopCapture(kind CaptureKind) error {
	if kind < 0 || kind >= captureKinds {
		return ErrUnknownCaptureKind
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c := &m.captures[kind]
	if c.sink == nil {
		return ErrNoCaptureSink
	}
	if !c.active {
		m.logger.Warn("capture already stopped", "kind", kind.String())
		return nil
	}
	c.active = false
	if err := c.sink.Stop(); err != nil {
		return fmt.Errorf("%w", err)
	}
	m.logger.Info("capture stopped", "kind", kind.String())
	return nil
}

func (m *Mixer) forwardToCaptures(samples []int16) {
	for kind := range m.captures {
		c := &m.captures[kind]
		if !c.active {
			continue
		}
		if err := c.sink.AddStereoSamples(samples); err != nil {
			m.logger.Warn("capture write failed",
				"kind", CaptureKind(kind).String(), "err", err)
		}
	}
}

// scratchBuffer returns a zeroed accumulation buffer of n values, reusing
// the previous allocation when large enough.
func (m *Mixer) scratchBuffer(n int) []float32 {
	if cap(m.scratch) < n {
		m.scratch = make([]float32, n)
	}
	s := m.scratch[:n]
	for i := range s {
		s[i] = 0
	}
	return s
}
