package rbf

import (
	"fmt"
	"math/rand"
	"testing"
)

// Benchmark every kernel across the size grid. FLOP count per call:
// N² pairwise distances at 3D ops each (sub, mul, add), plus exp,
// multiply and accumulate per pair.
func BenchmarkEvaluate(b *testing.B) {
	sizes := []struct{ n, d int }{
		{128, 3},
		{512, 3},
		{1024, 3},
		{512, 16},
	}

	for _, sz := range sizes {
		rng := rand.New(rand.NewSource(1))
		x := randomCoordinates(b, rng, sz.n, sz.d)
		beta := randomWeights(b, rng, sz.n)
		out := make([]float64, sz.n)

		for _, v := range Variants() {
			b.Run(fmt.Sprintf("%s/N_%d/D_%d", v, sz.n, sz.d), func(b *testing.B) {
				b.SetBytes(int64(sz.n * sz.d * 8)) // coordinate panel per outer row
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if err := EvaluateInto(out, v, x, beta, 0.75); err != nil {
						b.Fatal(err)
					}
				}

				flops := float64(sz.n) * float64(sz.n) * float64(3*sz.d+3)
				timePerOp := b.Elapsed().Seconds() / float64(b.N)
				b.ReportMetric(flops/timePerOp/1e9, "GFLOPS")
			})
		}
	}
}

// The dispatcher's own overhead at the sizes where it matters most.
func BenchmarkAutoDispatch(b *testing.B) {
	for _, n := range []int{64, ParallelMinRows} {
		rng := rand.New(rand.NewSource(2))
		x := randomCoordinates(b, rng, n, 3)
		beta := randomWeights(b, rng, n)
		out := make([]float64, n)

		b.Run(fmt.Sprintf("N_%d", n), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := EvaluateInto(out, VariantAuto, x, beta, 0.75); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
