// Package rbf optimized scalar kernels
package rbf

import (
	"math"
)

// evaluateRows computes output rows [start, end). This is the workhorse
// shared by the scalar and parallel kernels.
//
// Two transformations over the reference loop:
//   - exp(-(theta·r)²) = exp(-theta²·r²), so the per-pair sqrt and
//     re-square cancel and the squared distance is used directly
//   - row slices are hoisted out of the inner loop so the compiler can
//     keep the bounds checks out of the D-loop
//
// Results differ from Reference only by the rounding of the elided
// sqrt/square round trip.
func evaluateRows(out []float64, x [][]float64, beta []float64, theta float64, start, end int) {
	theta2 := theta * theta
	for i := start; i < end; i++ {
		xi := x[i]
		var sum float64
		for j := range x {
			xj := x[j]
			var d2 float64
			for k := range xi {
				diff := xj[k] - xi[k]
				d2 += diff * diff
			}
			sum += beta[j] * math.Exp(-theta2*d2)
		}
		out[i] = sum
	}
}

func evaluateScalar(out []float64, x [][]float64, beta []float64, theta float64) {
	evaluateRows(out, x, beta, theta, 0, len(x))
}

// evaluateBlocked tiles the j loop so one panel of coordinate rows is
// streamed against every output row before the next panel is touched.
// For N·D too large for cache this turns the O(N²·D) coordinate traffic
// into panel-sized reuse, same arithmetic as the scalar kernel.
func evaluateBlocked(out []float64, x [][]float64, beta []float64, theta float64) {
	n := len(x)
	theta2 := theta * theta
	bs := blockRows(len(x[0]))

	for i := range out {
		out[i] = 0
	}

	for j0 := 0; j0 < n; j0 += bs {
		j1 := j0 + bs
		if j1 > n {
			j1 = n
		}
		for i := 0; i < n; i++ {
			xi := x[i]
			sum := out[i]
			for j := j0; j < j1; j++ {
				xj := x[j]
				var d2 float64
				for k := range xi {
					diff := xj[k] - xi[k]
					d2 += diff * diff
				}
				sum += beta[j] * math.Exp(-theta2*d2)
			}
			out[i] = sum
		}
	}
}

// blockRows sizes a coordinate panel to stay resident in half of L1,
// or half of L2 on FMA-capable cores where the wider pipelines keep the
// larger panel fed. One row costs D coordinates plus its weight.
func blockRows(d int) int {
	target := L1CacheSize / 2
	if HasFMA() {
		target = L2CacheSize / 2
	}
	rowBytes := (d + 1) * 8
	bs := target / rowBytes
	if bs < MinBlockRows {
		bs = MinBlockRows
	}
	return bs
}
