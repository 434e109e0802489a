// Package rbf parallel kernel
package rbf

import (
	"runtime"
	"sync"
)

// evaluateParallel shards the outer row loop across workers. Each worker
// owns a contiguous range of output rows, so every slot is written
// exactly once and each worker walks the coordinate panel in order.
// Safe because output rows are independent: x and beta are only read.
func evaluateParallel(out []float64, x [][]float64, beta []float64, theta float64) {
	n := len(x)
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	rowsPerWorker := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := start + rowsPerWorker
		if end > n {
			end = n
		}
		go func(start, end int) {
			defer wg.Done()
			evaluateRows(out, x, beta, theta, start, end)
		}(start, end)
	}
	wg.Wait()
}
