package utils

// Float32ToInt16 converts a normalized float sample to a signed 16-bit PCM
// value. The input is clamped to [-1, 1] first. Scaling is asymmetric:
// non-positive values scale by 32768 (so -1.0 maps to exactly -32768) and
// strictly positive values scale by 32767 (so +1.0 maps to 32767 without
// overflow). The conversion truncates toward zero.
//
// This is the exact inverse pairing of Int16ToFloat32; existing transport
// payloads depend on the round-trip staying within one quantization step,
// so the asymmetry must be preserved.
func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	if x > 0 {
		return int16(x * 32767.0)
	}

	return int16(x * 32768.0)
}

// Int16ToFloat32 converts a signed 16-bit PCM value to a normalized float
// sample by dividing by 32768. The negative extreme maps to exactly -1.0;
// the positive extreme maps to slightly under +1.0.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}
