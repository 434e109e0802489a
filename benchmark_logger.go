package rbf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// BenchmarkResult captures one timed kernel run
type BenchmarkResult struct {
	Name      string        `json:"name"`
	Variant   string        `json:"variant"`
	Rows      int           `json:"rows"`
	Dims      int           `json:"dims"`
	Status    string        `json:"status"` // "pass" or "fail"
	NsPerOp   float64       `json:"ns_per_op,omitempty"`
	MFLOPS    float64       `json:"mflops,omitempty"`
	Speedup   float64       `json:"speedup,omitempty"` // vs the naive kernel
	Duration  time.Duration `json:"duration,omitempty"`
	Error     string        `json:"error,omitempty"`
	CPU       string        `json:"cpu,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// BenchmarkLogger manages logging of benchmark results to file
type BenchmarkLogger struct {
	mu          sync.Mutex
	results     []BenchmarkResult
	logDir      string
	sessionFile string
}

var globalLogger = &BenchmarkLogger{
	logDir: "benchmark_logs",
}

// InitBenchmarkLogger initializes the logger for a new benchmark session
func InitBenchmarkLogger(sessionName string) error {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()

	if err := os.MkdirAll(globalLogger.logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	globalLogger.sessionFile = filepath.Join(globalLogger.logDir,
		fmt.Sprintf("%s_%s.json", sessionName, timestamp))

	// Reset results for new session
	globalLogger.results = nil

	return globalLogger.flush()
}

// SetBenchmarkLogDir redirects the session files, for tools that want
// their results somewhere other than ./benchmark_logs
func SetBenchmarkLogDir(dir string) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.logDir = dir
}

// LogBenchmarkResult logs a single benchmark result
func LogBenchmarkResult(result BenchmarkResult) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()

	result.Timestamp = time.Now()
	if result.CPU == "" {
		result.CPU = CPUInfo()
	}
	globalLogger.results = append(globalLogger.results, result)

	// Flush to disk immediately to avoid losing data on crash
	globalLogger.flush()
}

// SessionFile returns the path of the current session log, or "" when
// the logger has not been initialized
func SessionFile() string {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	return globalLogger.sessionFile
}

// flush writes results to disk
func (bl *BenchmarkLogger) flush() error {
	if bl.sessionFile == "" {
		return nil // Not initialized
	}

	data, err := json.MarshalIndent(bl.results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	return os.WriteFile(bl.sessionFile, data, 0644)
}
