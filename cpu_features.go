package rbf

import (
	"strings"

	"golang.org/x/sys/cpu"
)

// CPUFeatures tracks available CPU instruction set extensions
type CPUFeatures struct {
	HasSSE4    bool
	HasAVX     bool
	HasAVX2    bool
	HasAVX512F bool
	HasFMA     bool
}

// Global CPU feature detection
var cpuFeatures CPUFeatures

func init() {
	detectCPUFeatures()
}

// detectCPUFeatures populates the global cpuFeatures struct
func detectCPUFeatures() {
	cpuFeatures = CPUFeatures{
		HasSSE4:    cpu.X86.HasSSE41 || cpu.X86.HasSSE42,
		HasAVX:     cpu.X86.HasAVX,
		HasAVX2:    cpu.X86.HasAVX2,
		HasAVX512F: cpu.X86.HasAVX512F,
		HasFMA:     cpu.X86.HasFMA,
	}
}

// HasFMA returns true if the CPU has fused multiply-add, which the Go
// compiler uses for the distance accumulation on amd64. The blocked
// kernel sizes its panels wider when it is present.
func HasFMA() bool {
	return cpuFeatures.HasFMA
}

// KernelClass returns the widest vector class the CPU offers. Purely
// informational for logs and the bench tool; the kernels themselves are
// portable Go.
func KernelClass() string {
	switch {
	case cpuFeatures.HasAVX512F:
		return "AVX512"
	case cpuFeatures.HasAVX2 && cpuFeatures.HasFMA:
		return "AVX2"
	case cpuFeatures.HasSSE4:
		return "SSE4"
	default:
		return "scalar"
	}
}

// CPUInfo returns a string describing available CPU features
func CPUInfo() string {
	features := []string{}
	if cpuFeatures.HasSSE4 {
		features = append(features, "SSE4")
	}
	if cpuFeatures.HasAVX {
		features = append(features, "AVX")
	}
	if cpuFeatures.HasAVX2 {
		features = append(features, "AVX2")
	}
	if cpuFeatures.HasAVX512F {
		features = append(features, "AVX512F")
	}
	if cpuFeatures.HasFMA {
		features = append(features, "FMA")
	}
	if len(features) == 0 {
		return "no vector extensions detected"
	}
	return strings.Join(features, ", ")
}
