// SPDX-License-Identifier: EPL-2.0

package convolve

import (
	"slices"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Direct computes the full linear convolution in the time domain. Output
// sample k is the dot product of the overlapping signal window with the
// reversed kernel. O(N*M).
func Direct(signal, kernel []float64) []float64 {
	n, m := len(signal), len(kernel)
	if n == 0 || m == 0 {
		return make([]float64, max(n+m-1, 0))
	}

	out := make([]float64, n+m-1)

	rev := slices.Clone(kernel)
	slices.Reverse(rev)

	prod := make([]float64, min(n, m))

	for k := range out {
		lo := max(0, k-m+1)
		hi := min(k, n-1)
		width := hi - lo + 1

		// signal[lo..hi] pairs with kernel[k-lo..k-hi], i.e. rev[m-1-k+lo..m-1-k+hi]
		vecmath.MulBlock(prod[:width], signal[lo:hi+1], rev[m-1-k+lo:m-k+hi])

		var acc float64
		for _, p := range prod[:width] {
			acc += p
		}
		out[k] = acc
	}

	return out
}
