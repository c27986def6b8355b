//go:build !headless

// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/audmixer/mixer"
)

// Player drives a mixing engine from the platform audio device. oto pulls
// finished samples through Read at the device cadence; each Read turns
// into one Mix call on the attached engine.
type Player struct {
	ctx    *oto.Context
	player *oto.Player

	// Atomic so Read never takes a lock on the hot path.
	mixer atomic.Pointer[mixer.Mixer]

	pcm []int16

	mu      sync.Mutex // setup and control operations only
	started bool
}

// NewPlayer opens the audio device for interleaved stereo 16-bit output
// at sampleRate and blocks until the device is ready.
func NewPlayer(sampleRate int) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   50 * time.Millisecond,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	<-ready

	return &Player{ctx: ctx}, nil
}

// Attach connects a mixing engine and creates the device player. Must be
// called before Start.
func (p *Player) Attach(m *mixer.Mixer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.mixer.Store(m)
	if p.player == nil {
		p.player = p.ctx.NewPlayer(p)
		p.pcm = make([]int16, 4096)
	}
}

// Read satisfies the pull callback: it mixes exactly the requested number
// of frames. With no engine attached it emits silence, so device cadence
// never stalls.
func (p *Player) Read(b []byte) (int, error) {
	m := p.mixer.Load()
	frames := len(b) / 4

	if m == nil {
		for i := range b {
			b[i] = 0
		}
		return len(b), nil
	}

	if len(p.pcm) < frames*2 {
		p.pcm = make([]int16, frames*2)
	}
	pcm := p.pcm[:frames*2]

	m.Mix(pcm, frames, true)
	pcm16ToLE(pcm, b)
	return frames * 4, nil
}

// Start begins playback.
func (p *Player) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started && p.player != nil {
		p.player.Play()
		p.started = true
	}
}

// Stop pauses playback; Start resumes it.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started && p.player != nil {
		p.player.Pause()
		p.started = false
	}
}

// Close releases the device player.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.player != nil {
		p.player.Close()
		p.player = nil
	}
	p.started = false
}

// IsStarted reports whether playback is running.
func (p *Player) IsStarted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.started
}
