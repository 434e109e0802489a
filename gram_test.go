package rbf

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGramMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	cases := []struct{ n, d int }{
		{1, 1}, {2, 2}, {10, 5}, {64, 3}, {100, 12},
	}

	for _, tc := range cases {
		x := randomCoordinates(t, rng, tc.n, tc.d)
		beta := randomWeights(t, rng, tc.n)

		want := make([]float64, tc.n)
		Reference{}.Evaluate(want, x, beta, 1.3)

		got, err := EvaluateVariant(VariantGram, x, beta, 1.3)
		require.NoError(t, err, "N=%d D=%d", tc.n, tc.d)
		require.Len(t, got, tc.n)

		for i := range want {
			assert.InDelta(t, want[i], got[i], TestToleranceRelaxed,
				"N=%d D=%d index %d", tc.n, tc.d, i)
		}
	}
}

// The Gram expansion ‖xi‖²+‖xj‖²−2·xi·xj cancels catastrophically for
// near-identical rows; the clamp must keep the kernel at 1 instead of
// letting a negative residue push it above 1 or into NaN territory.
func TestGramNearIdenticalRows(t *testing.T) {
	base := []float64{1e3, -2e3, 3e3}
	x := [][]float64{
		base,
		{base[0] + 1e-9, base[1], base[2]},
		{0, 0, 0},
	}
	beta := []float64{1, 1, 1}

	got, err := EvaluateVariant(VariantGram, x, beta, 2.0)
	require.NoError(t, err)

	for i, v := range got {
		require.False(t, math.IsNaN(v), "NaN at index %d", i)
		// Each kernel term is in (0, 1], three terms total. The slack
		// covers expansion error on the ~1e7 squared norms.
		assert.LessOrEqual(t, v, 3.0+1e-6, "index %d", i)
		assert.Positive(t, v, "index %d", i)
	}
}

func TestGramSinglePoint(t *testing.T) {
	x := [][]float64{{2.5, -1.5}}
	beta := []float64{0.125}

	got, err := EvaluateVariant(VariantGram, x, beta, 3.0)
	require.NoError(t, err)
	require.Len(t, got, 1)

	// Distance to self comes off the Gram diagonal and cancels exactly,
	// so the result is the bare weight.
	assert.Equal(t, beta[0], got[0])
}
