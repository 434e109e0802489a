package rbf

import (
	"fmt"
	"math/rand"
	"testing"
)

// Every optimized kernel must agree with the Reference oracle. Allowed
// divergence is summation order plus the sqrt elision, bounded by the
// relaxed tolerance.
func TestVariantsAgainstReference(t *testing.T) {
	sizes := []struct{ n, d int }{
		{1, 1},
		{5, 0}, // zero-width rows, every pair at distance zero
		{2, 3},
		{16, 4},
		{33, 7},
		{128, 16},
		{257, 3},
		{600, 2}, // crosses the parallel dispatch threshold
	}

	rng := rand.New(rand.NewSource(42))
	for _, sz := range sizes {
		x := randomCoordinates(t, rng, sz.n, sz.d)
		beta := randomWeights(t, rng, sz.n)
		theta := 0.75

		want := make([]float64, sz.n)
		Reference{}.Evaluate(want, x, beta, theta)

		for _, v := range Variants() {
			if v == VariantNaive {
				continue
			}
			t.Run(fmt.Sprintf("%s/N_%d/D_%d", v, sz.n, sz.d), func(t *testing.T) {
				got := evaluateOrFail(t, v, x, beta, theta)
				res := VerifyFloat64s(want, got, RelaxedTolerance())
				if !res.Passed() {
					t.Errorf("diverged from reference:\n%s", res)
				}
			})
		}
	}
}

// The auto dispatcher must route to some agreeing kernel at every size,
// including across the parallel cutover.
func TestAutoDispatchAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for _, n := range []int{1, 64, ParallelMinRows - 1, ParallelMinRows, ParallelMinRows + 37} {
		x := randomCoordinates(t, rng, n, 3)
		beta := randomWeights(t, rng, n)

		want := make([]float64, n)
		Reference{}.Evaluate(want, x, beta, 1.25)

		got, err := Evaluate(x, beta, 1.25)
		if err != nil {
			t.Fatalf("N=%d: %v", n, err)
		}
		res := VerifyFloat64s(want, got, RelaxedTolerance())
		if !res.Passed() {
			t.Errorf("N=%d: auto dispatch diverged:\n%s", n, res)
		}
	}
}

// EvaluateInto must leave no stale data behind: reusing a dirty output
// buffer gives the same answer as a fresh one.
func TestEvaluateIntoReuse(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	x := randomCoordinates(t, rng, 40, 3)
	beta := randomWeights(t, rng, 40)

	for _, v := range Variants() {
		fresh := evaluateOrFail(t, v, x, beta, 0.9)

		dirty := make([]float64, 40)
		for i := range dirty {
			dirty[i] = 1e30
		}
		if err := EvaluateInto(dirty, v, x, beta, 0.9); err != nil {
			t.Fatalf("%s: %v", v, err)
		}
		res := VerifyFloat64s(fresh, dirty, StrictTolerance())
		if !res.Passed() {
			t.Errorf("%s: reused buffer diverged:\n%s", v, res)
		}
	}
}
