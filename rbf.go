// Copyright ©2025 The rbf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbf

import (
	"fmt"
	"runtime"
)

// Variant identifies an evaluation kernel.
type Variant int

const (
	// VariantAuto lets Evaluate pick a kernel from the problem size
	// and detected CPU features.
	VariantAuto Variant = iota

	// VariantNaive is the textbook triple loop (Reference).
	VariantNaive

	// VariantScalar is the sqrt-elided single-pass scalar kernel.
	VariantScalar

	// VariantBlocked tiles the inner row loop for cache residency.
	VariantBlocked

	// VariantGram is the gonum matrix formulation.
	VariantGram

	// VariantParallel shards output rows across CPU cores.
	VariantParallel
)

// String returns the kernel name used in benchmarks and logs.
func (v Variant) String() string {
	switch v {
	case VariantAuto:
		return "auto"
	case VariantNaive:
		return "naive"
	case VariantScalar:
		return "scalar"
	case VariantBlocked:
		return "blocked"
	case VariantGram:
		return "gram"
	case VariantParallel:
		return "parallel"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Variants lists every concrete kernel, in narrative order. Useful for
// comparison loops in tests and the bench tool.
func Variants() []Variant {
	return []Variant{VariantNaive, VariantScalar, VariantBlocked, VariantGram, VariantParallel}
}

// Evaluate computes the Gaussian RBF sum
//
//	out[i] = Σ_j beta[j] · exp(-(theta·‖x[i]-x[j]‖)²)
//
// for every row of x. The output is freshly allocated and owned by the
// caller. Evaluate is a pure function of its inputs: x and beta are only
// read, and no state survives the call.
//
// x must be rectangular and beta must have one weight per row; anything
// else fails with a shape error (IsShapeError). theta = 0 degenerates
// every kernel term to 1, N = 0 returns an empty output. NaN and Inf
// coordinates propagate per IEEE-754; a negative theta behaves like its
// absolute value since only theta² enters the kernel.
func Evaluate(x [][]float64, beta []float64, theta float64) ([]float64, error) {
	return EvaluateVariant(VariantAuto, x, beta, theta)
}

// EvaluateVariant is Evaluate with a forced kernel choice.
func EvaluateVariant(v Variant, x [][]float64, beta []float64, theta float64) ([]float64, error) {
	out := make([]float64, len(x))
	if err := EvaluateInto(out, v, x, beta, theta); err != nil {
		return nil, err
	}
	return out, nil
}

// EvaluateInto writes the RBF sum into dst, which must have one slot per
// row of x. It allocates nothing beyond what the chosen kernel needs
// (VariantGram builds the N×N kernel matrix; the loop kernels are
// allocation-free).
func EvaluateInto(dst []float64, v Variant, x [][]float64, beta []float64, theta float64) error {
	n := len(x)
	if err := checkShapes(x, beta); err != nil {
		return err
	}
	if len(dst) != n {
		return NewShapeError("EvaluateInto",
			fmt.Sprintf("output length %d does not match %d coordinate rows", len(dst), n))
	}
	if n == 0 {
		return nil
	}

	switch pickVariant(v, n, len(x[0])) {
	case VariantNaive:
		Reference{}.Evaluate(dst, x, beta, theta)
	case VariantScalar:
		evaluateScalar(dst, x, beta, theta)
	case VariantBlocked:
		evaluateBlocked(dst, x, beta, theta)
	case VariantGram:
		evaluateGram(dst, x, beta, theta)
	case VariantParallel:
		evaluateParallel(dst, x, beta, theta)
	default:
		return NewInvalidArgError("EvaluateInto", fmt.Sprintf("unknown variant %d", int(v)))
	}
	return nil
}

// checkShapes enforces the only failure mode the evaluation defines:
// the weight count must match the row count and x must be rectangular.
func checkShapes(x [][]float64, beta []float64) error {
	if len(beta) != len(x) {
		return NewShapeError("Evaluate",
			fmt.Sprintf("weight count %d does not match %d coordinate rows", len(beta), len(x)))
	}
	if len(x) == 0 {
		return nil
	}
	d := len(x[0])
	for i, row := range x {
		if len(row) != d {
			return NewShapeError("Evaluate",
				fmt.Sprintf("coordinate row %d has %d columns, row 0 has %d", i, len(row), d))
		}
	}
	return nil
}

// pickVariant resolves VariantAuto. The cutovers are heuristic: small
// problems stay on the scalar kernel, large ones go parallel, and
// mid-size single-core problems whose coordinate panel falls out of L2
// get the blocked kernel.
func pickVariant(v Variant, n, d int) Variant {
	if v != VariantAuto {
		return v
	}
	if n >= ParallelMinRows && runtime.NumCPU() > 1 {
		return VariantParallel
	}
	if n*d*8 > L2CacheSize {
		return VariantBlocked
	}
	return VariantScalar
}
