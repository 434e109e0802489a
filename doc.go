// Copyright ©2025 The rbf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rbf evaluates Gaussian radial basis function sums on the CPU.
//
// Given an N×D coordinate matrix X, an N-length weight vector beta and a
// bandwidth theta, Evaluate produces an N-length output where
//
//	out[i] = Σ_j beta[j] · exp(-(theta·‖X[i]-X[j]‖)²)
//
// The package keeps the textbook triple loop as its correctness oracle
// (Reference) and layers progressively faster kernels on top of it:
//
//   - a scalar kernel that elides the sqrt/re-square round trip
//   - a cache-blocked kernel for problems that fall out of L1
//   - a gonum-backed matrix formulation (Gram expansion plus MulVec)
//   - a parallel kernel that shards output rows across cores
//
// Evaluate picks a kernel from the problem size and detected CPU features;
// EvaluateVariant forces a specific one. All kernels are verified against
// Reference by the tolerance framework in tolerance.go.
package rbf
