// SPDX-License-Identifier: EPL-2.0

// Package mixer implements a real-time multi-source audio mixing engine.
//
// The engine merges three independently-clocked PCM sources (DMA,
// streaming, speaker) into one interleaved stereo stream at a fixed
// output rate. Each source feeds a lock-minimal ring-buffer fifo that
// resamples on demand through fractional-position interpolation, with a
// closed-loop controller nudging the effective input rate so the buffer
// fill stays near a low watermark instead of underrunning or overrunning.
//
// # Threading
//
// Every fifo has exactly one producer (a Push call path) and all fifos
// share one consumer (Mix, invoked by the audio output callback). Ring
// counters are single-writer atomics; no lock is taken per sample. A
// coarse mutex guards control-plane operations that touch more than one
// fifo at a time.
//
// # Degradation
//
// Nothing in the engine blocks or fails on the hot path. Starvation pads
// with silence, overrun overwrites the oldest frames, and rate drift is
// absorbed as a bounded, inaudible pitch shift. The only user-visible
// failure surface is log warnings and audible artifacts.
//
// # Basic usage
//
//	m, err := mixer.New(48000)
//	if err != nil {
//	    return err
//	}
//
//	// Producer threads:
//	m.PushSamples(dmaPCM)             // stereo int16 at 32 kHz
//	m.PushStreamingSamples(discPCM)   // stereo int16 at 48 kHz
//	m.PushSpeakerSamples(mono, 3000)  // mono int16, variable rate
//
//	// Audio output callback:
//	out := make([]int16, 1024*2)
//	m.Mix(out, 1024, true)
package mixer
