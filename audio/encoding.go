// SPDX-License-Identifier: EPL-2.0

package audio

// Encoding identifies how a container stores its samples.
type Encoding int

const (
	EncodingUnknown Encoding = iota
	EncodingPCMU8            // unsigned 8-bit integer
	EncodingPCM16            // signed 16-bit integer
	EncodingPCM24            // signed 24-bit integer
	EncodingPCM32            // signed 32-bit integer
	EncodingFloat32          // IEEE 754 single precision
	EncodingFloat64          // IEEE 754 double precision
	EncodingPCMS8            // signed 8-bit integer (AIFF)
)

var encodingNames = map[Encoding]string{
	EncodingUnknown: "unknown",
	EncodingPCMU8:   "pcm_u8",
	EncodingPCM16:   "pcm_s16",
	EncodingPCM24:   "pcm_s24",
	EncodingPCM32:   "pcm_s32",
	EncodingFloat32: "float32",
	EncodingFloat64: "float64",
	EncodingPCMS8:   "pcm_s8",
}

func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}

	return encodingNames[EncodingUnknown]
}

// PCMEncoding maps an integer PCM bit depth to its Encoding, following the
// WAV convention that 8-bit samples are unsigned.
func PCMEncoding(bitDepth int) Encoding {
	switch bitDepth {
	case 8:
		return EncodingPCMU8
	case 16:
		return EncodingPCM16
	case 24:
		return EncodingPCM24
	case 32:
		return EncodingPCM32
	}

	return EncodingUnknown
}

// FloatEncoding maps an IEEE float bit depth to its Encoding.
func FloatEncoding(bitDepth int) Encoding {
	switch bitDepth {
	case 32:
		return EncodingFloat32
	case 64:
		return EncodingFloat64
	}

	return EncodingUnknown
}
