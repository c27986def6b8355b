// SPDX-License-Identifier: EPL-2.0

package mixer

// Rate-control tunables. Each fifo steers its buffer fill toward
// lowWatermark by nudging the effective input rate: a draining buffer
// stretches playback slightly, a filling one speeds it up, trading a few
// cents of pitch for bounded latency instead of blocking or dropping.
const (
	// lowWatermark is the target fill fraction of the control window.
	lowWatermark = 0.5

	// controlWindow is the fill reference, in output frames.
	controlWindow = float64(ringFrames)

	// controlAvg is the smoothing constant of the running error average.
	// Larger values react slower but wobble less.
	controlAvg = 32.0

	// controlFactor converts the averaged fill error into a frequency shift.
	controlFactor = 0.2

	// maxFreqShift bounds the multiplicative shift to 1 +/- maxFreqShift.
	maxFreqShift = 0.005
)

// frequencyShift folds the current buffer fill into the running error
// average and returns the clamped multiplicative rate adjustment.
// Consumer call path only; the average is not shared.
func (f *fifo) frequencyShift() float64 {
	fill := float64(f.availableOutputFrames()) / controlWindow
	e := fill - lowWatermark
	f.fillAvg = (e + f.fillAvg*(controlAvg-1)) / controlAvg

	shift := 1 + f.fillAvg*controlFactor
	if shift < 1-maxFreqShift {
		shift = 1 - maxFreqShift
	} else if shift > 1+maxFreqShift {
		shift = 1 + maxFreqShift
	}
	return shift
}
