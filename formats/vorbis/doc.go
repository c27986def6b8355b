// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// streams into interleaved 16-bit PCM suitable for pushing into the
// mixing engine.
//
// # Decoding Ogg Vorbis Files
//
//	file, _ := os.Open("audio.ogg")
//	pcm, rate, channels, err := vorbis.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// # Output Format
//
// Vorbis decoder output:
//   - Sample format: int16, interleaved
//   - Channels: as encoded (commonly 1 or 2)
//   - Sample rate: as encoded
//
// # Limitations
//
// Note:
//   - Vorbis writing is not supported (decoding only)
//   - The entire stream is decoded into memory
package vorbis
