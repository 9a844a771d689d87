// SPDX-License-Identifier: EPL-2.0

package convolve

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownMethod   = errors.New("convolve: unknown method")
	ErrUnknownOverflow = errors.New("convolve: unknown overflow policy")
)

// Method selects how the full linear convolution is computed.
type Method string

const (
	// MethodDirect accumulates each output sample as a dot product, the same
	// order a time-domain reference implementation uses.
	MethodDirect Method = "direct"

	// MethodFFT uses FFT overlap-add. Results that land on an integer match
	// MethodDirect exactly; a result within 1e-6 below an integer can still
	// come out one step higher after truncation toward zero.
	MethodFFT Method = "fft"

	// MethodAuto uses MethodDirect for kernels up to AutoThreshold taps and
	// MethodFFT above.
	MethodAuto Method = "auto"
)

// AutoThreshold is the longest kernel MethodAuto convolves directly.
const AutoThreshold = 64

// IsValid reports whether m is a recognised method.
func (m Method) IsValid() bool {
	switch m {
	case MethodDirect, MethodFFT, MethodAuto:
		return true
	}
	return false
}

// resolve picks the concrete method for a kernel of length taps.
func (m Method) resolve(taps int) Method {
	if m == MethodAuto {
		if taps <= AutoThreshold {
			return MethodDirect
		}
		return MethodFFT
	}
	return m
}

// Full returns the full linear convolution of signal and kernel: every
// overlap position, len(signal)+len(kernel)-1 samples. If either input is
// empty there is no overlap and the result is zero-filled to that length
// (or empty).
func Full(signal, kernel []float64, method Method) ([]float64, error) {
	if len(signal) == 0 || len(kernel) == 0 {
		return make([]float64, max(len(signal)+len(kernel)-1, 0)), nil
	}

	switch method.resolve(len(kernel)) {
	case MethodDirect:
		return Direct(signal, kernel), nil
	case MethodFFT:
		return OverlapAdd(signal, kernel, 0)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
