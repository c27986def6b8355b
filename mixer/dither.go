// SPDX-License-Identifier: EPL-2.0

package mixer

// ditherAmplitude is the half-range of each dither draw, in quantization
// steps. The difference of two consecutive draws spans one full step with
// a triangular distribution.
const ditherAmplitude = 0.5

// quantize converts one float sample in [-1, 1] to int16, applying
// triangular dithering: the difference between the fresh dither value and
// the previous one is added before truncation, and the fresh value is
// carried to the next call through prev. Each channel keeps its own prev.
func (m *Mixer) quantize(sample float32, prev *float32) int16 {
	if sample > 1 {
		sample = 1
	} else if sample < -1 {
		sample = -1
	}
	scaled := sample * 32768

	d := (m.rng.Float32()*2 - 1) * ditherAmplitude
	scaled += d - *prev
	*prev = d

	if scaled > 32767 {
		scaled = 32767
	} else if scaled < -32768 {
		scaled = -32768
	}
	return int16(scaled)
}
