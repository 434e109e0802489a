// Package rbf tolerance-based verification for floating-point comparisons
package rbf

import (
	"fmt"
	"math"
)

// ToleranceConfig defines tolerance parameters for float64 comparison
type ToleranceConfig struct {
	// AbsTol is the absolute tolerance for values near zero
	AbsTol float64

	// RelTol is the relative tolerance as a fraction of the larger value
	RelTol float64

	// ULPTol is the maximum allowed difference in ULPs (Units in Last Place)
	ULPTol int

	// CheckNaN determines if NaN values should be considered equal
	CheckNaN bool

	// CheckInf determines if Inf values should be considered equal
	CheckInf bool
}

// DefaultTolerance returns default tolerance configuration
func DefaultTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   1e-12,
		RelTol:   1e-10,
		ULPTol:   4,
		CheckNaN: true,
		CheckInf: true,
	}
}

// StrictTolerance returns strict tolerance configuration for high precision
func StrictTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   1e-15,
		RelTol:   1e-13,
		ULPTol:   1,
		CheckNaN: true,
		CheckInf: true,
	}
}

// RelaxedTolerance returns relaxed tolerance for kernels that reorder
// summation or elide the sqrt round trip
func RelaxedTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   1e-9,
		RelTol:   1e-8,
		ULPTol:   64,
		CheckNaN: true,
		CheckInf: true,
	}
}

// Float64NearEqual checks if two float64 values are equal within tolerance
func Float64NearEqual(a, b float64, tol ToleranceConfig) bool {
	// Handle special cases
	if tol.CheckNaN && math.IsNaN(a) && math.IsNaN(b) {
		return true
	}

	if tol.CheckInf {
		if math.IsInf(a, 1) && math.IsInf(b, 1) {
			return true // Both +Inf
		}
		if math.IsInf(a, -1) && math.IsInf(b, -1) {
			return true // Both -Inf
		}
	}

	// Check if exactly equal (handles ±0)
	if a == b {
		return true
	}

	// Absolute difference
	diff := math.Abs(a - b)

	// Check absolute tolerance
	if diff <= tol.AbsTol {
		return true
	}

	// Check relative tolerance
	larger := math.Max(math.Abs(a), math.Abs(b))
	if diff <= larger*tol.RelTol {
		return true
	}

	// Check ULP difference
	if tol.ULPTol > 0 {
		if Float64ULPDiff(a, b) <= tol.ULPTol {
			return true
		}
	}

	return false
}

// Float64ULPDiff computes the difference in ULPs between two float64 values
func Float64ULPDiff(a, b float64) int {
	aBits := math.Float64bits(a)
	bBits := math.Float64bits(b)

	// Different signs can't use simple bit subtraction
	if (aBits^bBits)&(1<<63) != 0 {
		return math.MaxInt
	}

	var diff uint64
	if aBits > bBits {
		diff = aBits - bBits
	} else {
		diff = bBits - aBits
	}
	if diff > math.MaxInt {
		return math.MaxInt
	}
	return int(diff)
}

// VerificationResult summarizes an array comparison
type VerificationResult struct {
	MaxAbsError float64
	MaxRelError float64
	MaxULPError int
	NumErrors   int
	TotalItems  int
	FirstError  int // Index of first error, -1 if none
}

// VerifyFloat64s compares two float64 slices and returns detailed results
func VerifyFloat64s(expected, actual []float64, tol ToleranceConfig) VerificationResult {
	result := VerificationResult{
		TotalItems: len(expected),
		FirstError: -1,
	}

	if len(expected) != len(actual) {
		// Count the larger side so an empty expected slice still fails.
		result.NumErrors = len(expected)
		if len(actual) > result.NumErrors {
			result.NumErrors = len(actual)
		}
		return result
	}

	for i := range expected {
		if !Float64NearEqual(expected[i], actual[i], tol) {
			result.NumErrors++
			if result.FirstError == -1 {
				result.FirstError = i
			}

			absDiff := math.Abs(expected[i] - actual[i])
			if absDiff > result.MaxAbsError {
				result.MaxAbsError = absDiff
			}

			// Relative error (avoid division by zero)
			if expected[i] != 0 {
				relDiff := absDiff / math.Abs(expected[i])
				if relDiff > result.MaxRelError {
					result.MaxRelError = relDiff
				}
			}

			ulpDiff := Float64ULPDiff(expected[i], actual[i])
			if ulpDiff > result.MaxULPError {
				result.MaxULPError = ulpDiff
			}
		}
	}

	return result
}

// Passed returns true if no element fell outside tolerance
func (r VerificationResult) Passed() bool {
	return r.NumErrors == 0
}

// String formats the verification result for display
func (r VerificationResult) String() string {
	if r.NumErrors == 0 {
		return "PASS: All values match within tolerance"
	}

	errorRate := float64(r.NumErrors) / float64(r.TotalItems) * 100
	return fmt.Sprintf("FAIL: %d/%d values differ (%.2f%%)\n"+
		"  Max absolute error: %e\n"+
		"  Max relative error: %e\n"+
		"  Max ULP difference: %d\n"+
		"  First error at index: %d",
		r.NumErrors, r.TotalItems, errorRate,
		r.MaxAbsError, r.MaxRelError, r.MaxULPError,
		r.FirstError)
}
