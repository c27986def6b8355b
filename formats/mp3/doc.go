// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 streams
// into interleaved 16-bit PCM suitable for pushing into the mixing
// engine.
//
// # Decoding MP3 Files
//
//	file, _ := os.Open("audio.mp3")
//	pcm, rate, err := mp3.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// # Output Format
//
// MP3 decoder output:
//   - Sample format: int16, interleaved
//   - Channels: 2 (go-mp3 upmixes mono files to stereo)
//   - Sample rate: depends on the MP3 file (typically 44.1kHz or 48kHz)
//
// # Limitations
//
// Note:
//   - MP3 writing is not supported (decoding only)
//   - The entire stream is decoded into memory
package mp3
