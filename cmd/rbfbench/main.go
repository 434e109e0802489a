// Copyright ©2025 The rbf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rbfbench times every RBF evaluation kernel on a grid of
// problem sizes, verifies each against the naive reference, and prints
// a comparison table. With -session it also writes a JSON log of the
// run via the package benchmark logger.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/fieldworks/rbf"
)

func main() {
	var (
		rowsFlag = flag.String("rows", "128,512,1024", "Comma-separated row counts N")
		dimsFlag = flag.String("dims", "3", "Comma-separated dimensions D")
		theta    = flag.Float64("theta", 0.75, "Kernel bandwidth")
		seed     = flag.Int64("seed", 42, "PRNG seed for problem generation")
		reps     = flag.Int("reps", 5, "Timing repetitions per kernel (best is kept)")
		tolName  = flag.String("tol", "relaxed", "Verification tolerance: strict, default or relaxed")
		session  = flag.String("session", "", "Benchmark session name; writes JSON under benchmark_logs/")
	)
	flag.Parse()

	rows, err := parseInts(*rowsFlag)
	if err != nil {
		log.Fatalf("bad -rows: %v", err)
	}
	dims, err := parseInts(*dimsFlag)
	if err != nil {
		log.Fatalf("bad -dims: %v", err)
	}
	tol, err := parseTolerance(*tolName)
	if err != nil {
		log.Fatalf("bad -tol: %v", err)
	}

	if *session != "" {
		if err := rbf.InitBenchmarkLogger(*session); err != nil {
			log.Fatalf("failed to init benchmark logger: %v", err)
		}
	}

	fmt.Printf("CPU: %s (kernel class %s)\n", rbf.CPUInfo(), rbf.KernelClass())
	fmt.Printf("theta=%g seed=%d reps=%d tolerance=%s\n\n", *theta, *seed, *reps, *tolName)
	fmt.Printf("%-10s %8s %6s %14s %10s %10s %8s  %s\n",
		"kernel", "N", "D", "time/op", "MFLOPS", "speedup", "verify", "checksum")

	failed := false
	for _, n := range rows {
		for _, d := range dims {
			if runGrid(n, d, *theta, *seed, *reps, tol, *session != "") {
				failed = true
			}
			fmt.Println()
		}
	}

	if *session != "" {
		fmt.Printf("session log: %s\n", rbf.SessionFile())
	}
	if failed {
		os.Exit(1)
	}
}

// runGrid times every kernel on one N×D problem. Returns true if any
// kernel failed verification.
func runGrid(n, d int, theta float64, seed int64, reps int, tol rbf.ToleranceConfig, logResults bool) bool {
	rng := rand.New(rand.NewSource(seed))
	x := make([][]float64, n)
	for i := range x {
		row := make([]float64, d)
		for k := range row {
			row[k] = 2*rng.Float64() - 1
		}
		x[i] = row
	}
	beta := make([]float64, n)
	for i := range beta {
		beta[i] = 2*rng.Float64() - 1
	}

	want, err := rbf.EvaluateVariant(rbf.VariantNaive, x, beta, theta)
	if err != nil {
		log.Fatalf("reference evaluation failed: %v", err)
	}

	failed := false
	var naiveTime time.Duration
	for _, v := range rbf.Variants() {
		best, out := timeKernel(v, x, beta, theta, reps)
		if v == rbf.VariantNaive {
			naiveTime = best
		}

		res := rbf.VerifyFloat64s(want, out, tol)
		status := "ok"
		if !res.Passed() {
			status = "FAIL"
			failed = true
		}

		flops := float64(n) * float64(n) * float64(3*d+3)
		mflops := flops / best.Seconds() / 1e6
		speedup := naiveTime.Seconds() / best.Seconds()

		fmt.Printf("%-10s %8d %6d %14v %10.1f %9.2fx %8s  %.6f\n",
			v, n, d, best, mflops, speedup, status, floats.Sum(out))
		if status == "FAIL" {
			fmt.Println(indent(res.String()))
		}

		if logResults {
			lr := rbf.BenchmarkResult{
				Name:     fmt.Sprintf("%s/N_%d/D_%d", v, n, d),
				Variant:  v.String(),
				Rows:     n,
				Dims:     d,
				Status:   "pass",
				NsPerOp:  float64(best.Nanoseconds()),
				MFLOPS:   mflops,
				Speedup:  speedup,
				Duration: best,
			}
			if !res.Passed() {
				lr.Status = "fail"
				lr.Error = res.String()
			}
			rbf.LogBenchmarkResult(lr)
		}
	}
	return failed
}

// timeKernel runs one kernel reps times and keeps the best wall time.
func timeKernel(v rbf.Variant, x [][]float64, beta []float64, theta float64, reps int) (time.Duration, []float64) {
	out := make([]float64, len(x))
	best := time.Duration(1<<63 - 1)
	for r := 0; r < reps; r++ {
		start := time.Now()
		if err := rbf.EvaluateInto(out, v, x, beta, theta); err != nil {
			log.Fatalf("%s evaluation failed: %v", v, err)
		}
		if elapsed := time.Since(start); elapsed < best {
			best = elapsed
		}
	}
	return best, out
}

func parseInts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	vals := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		if v <= 0 {
			return nil, fmt.Errorf("size must be positive, got %d", v)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func parseTolerance(name string) (rbf.ToleranceConfig, error) {
	switch name {
	case "strict":
		return rbf.StrictTolerance(), nil
	case "default":
		return rbf.DefaultTolerance(), nil
	case "relaxed":
		return rbf.RelaxedTolerance(), nil
	default:
		return rbf.ToleranceConfig{}, fmt.Errorf("unknown tolerance %q", name)
	}
}

func indent(s string) string {
	return "    " + strings.ReplaceAll(s, "\n", "\n    ")
}
