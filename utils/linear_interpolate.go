// SPDX-License-Identifier: EPL-2.0

package utils

// LinearInterpolate performs linear interpolation between two samples.
// x is the fractional position between y0 and y1 (0 <= x <= 1).
func LinearInterpolate(y0, y1, x float32) float32 {
	return y0*(1-x) + y1*x
}
