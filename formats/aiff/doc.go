// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF streams into
// interleaved 16-bit PCM suitable for pushing into the mixing engine.
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("audio.aiff")
//	pcm, rate, channels, err := aiff.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// # Output Format
//
// AIFF decoder output:
//   - Sample format: int16, interleaved
//   - Channels: as encoded (commonly 1 or 2)
//   - Sample rate: as encoded
//
// # Limitations
//
// Note:
//   - Only 16-bit PCM files are supported
//   - AIFF writing is not supported (decoding only)
//   - The entire stream is decoded into memory
package aiff
