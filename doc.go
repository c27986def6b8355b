// SPDX-License-Identifier: EPL-2.0

// Package audmixer provides a real-time multi-source audio mixing engine
// with dynamic rate control.
//
// The engine merges several independently-clocked PCM streams into one
// stereo output stream at a fixed device rate. Each source is resampled
// through fractional-position interpolation while a feedback controller
// nudges its effective rate so buffer fill stays bounded: instead of
// blocking producers or dropping audio, drift is absorbed as a slight,
// inaudible pitch shift.
//
// # Quick Start
//
// Real-time use centers on the mixer subpackage:
//
//	m, err := mixer.New(48000)
//	if err != nil {
//	    return err
//	}
//
//	// Emulation core, per source thread:
//	m.PushSamples(dmaPCM)
//	m.PushStreamingSamples(discPCM)
//
//	// Audio device callback:
//	out := make([]int16, frames*2)
//	m.Mix(out, frames, true)
//
// The playback subpackage wires the engine to the platform audio device,
// and formats/wav captures the mixed stream to disk.
//
// # Offline Rendering
//
// For non-real-time use, MixDown renders tracks through the same engine:
//
//	pcm, err := audmixer.MixDown(48000, &voiceTrack, &musicTrack, frames)
//
// # Subpackages
//
//   - mixer: ring buffers, resampling fifos, rate control, the engine
//   - playback: audio device output via ebitengine/oto
//   - formats/wav: WAV writing and streaming capture sinks
//   - utils: interpolation kernels and PCM conversion helpers
//
// # Sample Format
//
// Sources push signed 16-bit PCM; internally audio is float32 in
// [-1.0, 1.0]; output is int16 (with triangular dithering) or float32.
package audmixer
