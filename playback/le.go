// SPDX-License-Identifier: EPL-2.0

package playback

import "encoding/binary"

// pcm16ToLE serializes interleaved int16 PCM into little-endian bytes.
// dst must hold len(src)*2 bytes.
func pcm16ToLE(src []int16, dst []byte) {
	for i, s := range src {
		binary.LittleEndian.PutUint16(dst[2*i:2*i+2], uint16(s))
	}
}
