package utils

// Int16ToFloat32 converts a signed 16-bit PCM sample to float32.
// Maps [-32768, 32767] -> [-1.0, 1.0) by dividing by 32768.
func Int16ToFloat32(s int16) float32 {
	return float32(s) * (1.0 / 32768.0)
}
