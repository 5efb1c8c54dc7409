// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 maps x in [-1, 1] onto the full int16 range. Positive
// values scale by 32767 and negative values by 32768 so that both ends of
// the float range reach the integer extremes. Out of range input is clamped.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	if x >= 0 {
		return int16(x * 32767.0)
	}
	return int16(x * 32768.0)
}
