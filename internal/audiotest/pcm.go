// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates deterministic PCM test signals for the
// mixing engine tests.
package audiotest

import "math"

// ConstantPCM16 returns frames stereo frames of a constant value as
// interleaved int16 PCM.
func ConstantPCM16(frames int, value int16) []int16 {
	pcm := make([]int16, frames*2)
	for i := range pcm {
		pcm[i] = value
	}
	return pcm
}

// SinePCM16 returns frames stereo frames of a sine wave at the given
// frequency and amplitude (0..1), identical on both channels, as
// interleaved int16 PCM sampled at sampleRate.
func SinePCM16(sampleRate, frames int, frequency, amplitude float64) []int16 {
	pcm := make([]int16, frames*2)
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)
		s := int16(amplitude * 32767.0 * math.Sin(2*math.Pi*frequency*t))
		pcm[2*i] = s
		pcm[2*i+1] = s
	}
	return pcm
}

// RampPCM16 returns a mono ramp of n samples rising by step each sample,
// starting at zero.
func RampPCM16(n int, step int16) []int16 {
	pcm := make([]int16, n)
	for i := range pcm {
		pcm[i] = int16(i) * step
	}
	return pcm
}
