//go:build headless

// SPDX-License-Identifier: EPL-2.0

package playback

import "github.com/ik5/audmixer/mixer"

// Player is the headless stub: same surface as the device-backed player,
// no audio hardware touched.
type Player struct {
	m       *mixer.Mixer
	started bool
}

func NewPlayer(sampleRate int) (*Player, error) {
	return &Player{}, nil
}

func (p *Player) Attach(m *mixer.Mixer) {
	p.m = m
}

func (p *Player) Read(b []byte) (int, error) {
	for i := range b {
		b[i] = 0
	}
	return len(b), nil
}

func (p *Player) Start() {
	p.started = true
}

func (p *Player) Stop() {
	p.started = false
}

func (p *Player) Close() {
	p.started = false
}

func (p *Player) IsStarted() bool {
	return p.started
}
