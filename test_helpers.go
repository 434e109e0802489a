package rbf

import (
	"math/rand"
	"testing"
)

// randomCoordinates builds an n×d coordinate matrix with deterministic
// pseudo-random values in [-1, 1)
func randomCoordinates(tb testing.TB, rng *rand.Rand, n, d int) [][]float64 {
	tb.Helper()
	x := make([][]float64, n)
	for i := range x {
		row := make([]float64, d)
		for k := range row {
			row[k] = 2*rng.Float64() - 1
		}
		x[i] = row
	}
	return x
}

// randomWeights builds n deterministic pseudo-random weights in [-1, 1)
func randomWeights(tb testing.TB, rng *rand.Rand, n int) []float64 {
	tb.Helper()
	beta := make([]float64, n)
	for i := range beta {
		beta[i] = 2*rng.Float64() - 1
	}
	return beta
}

// evaluateOrFail runs a variant and fails the test on error
func evaluateOrFail(tb testing.TB, v Variant, x [][]float64, beta []float64, theta float64) []float64 {
	tb.Helper()
	out, err := EvaluateVariant(v, x, beta, theta)
	if err != nil {
		tb.Fatalf("%s evaluation failed: %v", v, err)
	}
	return out
}
