// SPDX-License-Identifier: EPL-2.0

package convolve

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// snapTolerance is how close to an integer an FFT result must be to be
// treated as that integer. Round-off leaves exact results like 1500 at
// 1499.9999999, which truncation toward zero would turn into 1499.
const snapTolerance = 1e-6

// OverlapAdd computes the full linear convolution with FFT overlap-add.
// The signal is cut into blocks of blockSize samples, each block is
// convolved in the frequency domain and the results are summed at their
// offsets. Results within snapTolerance of an integer are set to that
// integer. blockSize <= 0 picks max(nextPowerOf2(len(kernel)), 256).
func OverlapAdd(signal, kernel []float64, blockSize int) ([]float64, error) {
	n, m := len(signal), len(kernel)
	if n == 0 || m == 0 {
		return make([]float64, max(n+m-1, 0)), nil
	}

	if blockSize <= 0 {
		blockSize = max(nextPowerOf2(m), 256)
	}

	// linear, not circular: room for block + kernel - 1
	fftSize := nextPowerOf2(blockSize + m - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("convolve: create FFT plan: %w", err)
	}

	kernelFreq := make([]complex128, fftSize)
	for i, v := range kernel {
		kernelFreq[i] = complex(v, 0)
	}
	if err := plan.Forward(kernelFreq, kernelFreq); err != nil {
		return nil, fmt.Errorf("convolve: kernel FFT: %w", err)
	}

	out := make([]float64, n+m-1)
	block := make([]complex128, fftSize)

	for start := 0; start < n; start += blockSize {
		end := min(start+blockSize, n)

		clear(block)
		for i, v := range signal[start:end] {
			block[i] = complex(v, 0)
		}

		if err := plan.Forward(block, block); err != nil {
			return nil, fmt.Errorf("convolve: forward FFT: %w", err)
		}
		for i := range block {
			block[i] *= kernelFreq[i]
		}
		if err := plan.Inverse(block, block); err != nil {
			return nil, fmt.Errorf("convolve: inverse FFT: %w", err)
		}

		for i := range end - start + m - 1 {
			out[start+i] += real(block[i])
		}
	}

	for i, v := range out {
		if r := math.Round(v); math.Abs(v-r) < snapTolerance {
			out[i] = r
		}
	}

	return out, nil
}
