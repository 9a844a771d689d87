// SPDX-License-Identifier: EPL-2.0

package convolve

import (
	"fmt"

	"github.com/ik5/sensfilt/utils"
)

// Overflow decides what re-quantization does with values outside int16.
type Overflow string

const (
	// OverflowWrap truncates toward zero and keeps the low 16 bits, so a
	// value just above 32767 comes out near -32768. This matches the
	// reference filtering tool.
	OverflowWrap Overflow = "wrap"

	// OverflowSaturate truncates toward zero and clamps to [-32768, 32767].
	OverflowSaturate Overflow = "saturate"
)

// IsValid reports whether o is a recognised overflow policy.
func (o Overflow) IsValid() bool {
	return o == OverflowWrap || o == OverflowSaturate
}

func (o Overflow) converter() (func(float64) int16, error) {
	switch o {
	case OverflowWrap:
		return utils.WrapToInt16, nil
	case OverflowSaturate:
		return utils.SaturateToInt16, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOverflow, o)
}

// Requantize converts the convolution result to 16-bit samples and keeps the
// first frames of them; the tail beyond frames is discarded.
func Requantize(full []float64, frames int, overflow Overflow) ([]int16, error) {
	if frames > len(full) {
		return nil, fmt.Errorf("convolve: requantize %d frames from %d samples", frames, len(full))
	}

	conv, err := overflow.converter()
	if err != nil {
		return nil, err
	}

	out := make([]int16, frames)
	for i := range out {
		out[i] = conv(full[i])
	}

	return out, nil
}
