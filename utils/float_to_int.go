// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 converts a normalized [-1,1] sample back to 16-bit PCM.
// It is the exact inverse of the x/32768 scaling used by the decoders, so
// PCM16 input survives the float32 round trip unchanged.
func Float32ToInt16(x float32) int16 {
	v := math.Round(float64(x) * 32768.0)

	// Clamp
	if v > math.MaxInt16 {
		return math.MaxInt16
	} else if v < math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}

// WrapToInt16 truncates x toward zero and keeps the low 16 bits of the
// two's complement result, so 32768 becomes -32768 and 65536 becomes 0.
// NaN and infinities map to 0.
func WrapToInt16(x float64) int16 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}

	t := math.Trunc(x)
	if t >= 1<<63 || t < -(1<<63) {
		// outside int64; Mod is exact and keeps the low 16 bits intact
		t = math.Mod(t, 1<<16)
	}

	return int16(int64(t))
}

// SaturateToInt16 truncates x toward zero and clamps it to the int16 range.
// NaN maps to 0.
func SaturateToInt16(x float64) int16 {
	if math.IsNaN(x) {
		return 0
	}

	t := math.Trunc(x)
	if t > math.MaxInt16 {
		return math.MaxInt16
	} else if t < math.MinInt16 {
		return math.MinInt16
	}

	return int16(t)
}
