// SPDX-License-Identifier: EPL-2.0

package utils

// Int16ToFloat32 is the inverse of Float32ToInt16.
func Int16ToFloat32(v int16) float32 {
	if v < 0 {
		return float32(v) / 32768.0
	}
	return float32(v) / 32767.0
}
