// Package rbf reference implementation for verification
package rbf

import (
	"math"
)

// Reference contains the simple, correct evaluation used to verify the
// optimized kernels. It is the literal form of the definition: per-pair
// Euclidean distance (squared differences accumulated in float64, then
// sqrt), scaled by theta, squared again inside the exponential.
type Reference struct{}

// Evaluate fills out with the Gaussian RBF sum using the textbook
// triple loop. out must have len(x) slots; shapes are the caller's
// responsibility here, Evaluate/EvaluateInto validate before dispatch.
func (Reference) Evaluate(out []float64, x [][]float64, beta []float64, theta float64) {
	for i := range x {
		var sum float64
		for j := range x {
			var d2 float64
			for k := range x[j] {
				diff := x[j][k] - x[i][k]
				d2 += diff * diff
			}
			r := math.Sqrt(d2)
			sum += beta[j] * math.Exp(-(theta*r)*(theta*r))
		}
		out[i] = sum
	}
}

// Kernel returns a single Gaussian kernel value exp(-(theta·r)²) for a
// pairwise distance r. Exposed for tests that probe kernel behavior
// directly (monotonicity in theta, decay with distance).
func (Reference) Kernel(theta, r float64) float64 {
	return math.Exp(-(theta * r) * (theta * r))
}
