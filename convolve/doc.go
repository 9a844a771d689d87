// SPDX-License-Identifier: EPL-2.0

// Package convolve applies impulse responses to PCM16 channels.
//
// Each channel goes through three steps:
//  1. Full linear convolution in float64: len(signal)+len(kernel)-1 samples,
//     every partial overlap included.
//  2. Re-quantization to int16 by truncation toward zero. Overflow wraps by
//     default (OverflowWrap); OverflowSaturate clamps instead.
//  3. Truncation to the input frame count. The convolution tail is dropped,
//     never folded back.
//
// # Methods
//
//   - MethodDirect: time-domain dot products, O(N*M). Default.
//   - MethodFFT: FFT overlap-add, O(N log M).
//   - MethodAuto: direct up to AutoThreshold taps, FFT above.
//
// # Usage
//
//	engine, err := convolve.New(
//	    convolve.WithMethod(convolve.MethodAuto),
//	    convolve.WithLogger(logger),
//	)
//	out, err := engine.Process(pair, leftIR, rightIR)
//
// Left and right are filtered independently, concurrently unless
// WithParallel(false) is given. An empty impulse response acts as the unit
// impulse.
package convolve
