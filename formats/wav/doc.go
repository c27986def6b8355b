// SPDX-License-Identifier: EPL-2.0

// Package wav writes 16-bit PCM WAV files.
//
// It has two entry points: WriteWAV16 for one-shot dumps of a complete
// sample slice, and CaptureWriter for streaming capture of a live mixed
// stream whose length is unknown until Stop.
//
// # One-shot writing
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 48000, 2, samples)
//
// The function writes a complete WAV file with proper headers.
//
// # Streaming capture
//
// CaptureWriter implements the mixing engine's capture sink contract and
// is usually attached through mixer.WithCaptureSink:
//
//	sink := wav.NewCaptureWriter()
//	m, _ := mixer.New(48000, mixer.WithCaptureSink(mixer.CaptureDiscTrack, sink, 48000))
//	m.StartCapture(mixer.CaptureDiscTrack, "dump.wav")
//
// The encoder finalizes the RIFF header when the capture stops, so a
// capture that is never stopped leaves an incomplete file.
//
// # Error Handling
//
// The package defines sentinel errors:
//   - ErrInvalidChannelCount: non-positive channel count
//   - ErrPartialFrame: sample count not a multiple of channels
//   - ErrAlreadyStarted / ErrNotStarted: capture lifecycle misuse
package wav
