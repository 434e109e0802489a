// Package rbf configuration constants
package rbf

// Cache sizes for different levels (in bytes)
const (
	// L1 cache size per core (typical for modern CPUs)
	L1CacheSize = 32 * 1024 // 32KB

	// L2 cache size per core (typical for modern CPUs)
	L2CacheSize = 256 * 1024 // 256KB

	// L3 cache size (shared, typical for modern CPUs)
	L3CacheSize = 8 * 1024 * 1024 // 8MB
)

// Kernel dispatch parameters
const (
	// Minimum row count before the auto dispatcher goes parallel.
	// Below this the goroutine fan-out costs more than the N² loop.
	ParallelMinRows = 512

	// Smallest coordinate panel the blocked kernel will use
	MinBlockRows = 8
)

// Test tolerance levels for different precision requirements
const (
	TestToleranceStrict  = 1e-14 // For the worked-example tests
	TestToleranceNormal  = 1e-12 // For standard tests
	TestToleranceRelaxed = 1e-8  // For reordered summation
)
