// Package rbf gonum matrix formulation
package rbf

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// evaluateGram is the library formulation of the evaluation: build the
// full N×N kernel matrix and apply it to beta in one MulVec. Squared
// pairwise distances come from the Gram expansion
//
//	‖xi-xj‖² = G[i,i] + G[j,j] - 2·G[i,j],  G = X·Xᵀ
//
// so the O(N²·D) inner-product work runs through gonum's blocked GEMM
// instead of the scalar loop. Costs O(N²) transient memory for G and K.
func evaluateGram(out []float64, x [][]float64, beta []float64, theta float64) {
	n := len(x)
	d := len(x[0])

	// Zero-width rows have no inner-product structure to hand to GEMM,
	// and mat.NewDense rejects a zero dimension. Every pair sits at
	// distance zero; the scalar kernel covers that directly.
	if d == 0 {
		evaluateScalar(out, x, beta, theta)
		return
	}

	xm := mat.NewDense(n, d, nil)
	for i, row := range x {
		xm.SetRow(i, row)
	}

	var g mat.Dense
	g.Mul(xm, xm.T())

	// Diagonal of G doubles as the squared norms. Reading them back from
	// G rather than re-dotting the rows keeps the i == j distance exactly
	// zero regardless of summation order.
	sq := make([]float64, n)
	for i := range sq {
		sq[i] = g.At(i, i)
	}

	theta2 := theta * theta
	k := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d2 := sq[i] + sq[j] - 2*g.At(i, j)
			// Cancellation in the expansion can leave a tiny negative
			// residue for near-identical rows; a distance can't be.
			if d2 < 0 {
				d2 = 0
			}
			k.Set(i, j, math.Exp(-theta2*d2))
		}
	}

	ov := mat.NewVecDense(n, out)
	ov.MulVec(k, mat.NewVecDense(n, beta))
}
