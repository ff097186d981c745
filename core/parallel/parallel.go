// Package parallel provides a small chunked fan-out helper for CPU-bound
// loops over index ranges.
package parallel

import (
	"runtime"
	"sync"
)

// For splits [0, items) into at most workers contiguous chunks and runs fn
// on each chunk in its own goroutine, blocking until all complete. A
// non-positive workers value uses one worker per CPU.
func For(items, workers int, fn func(start, end int)) {
	if items <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > items {
		workers = items
	}
	if workers == 1 {
		fn(0, items)
		return
	}

	chunk := (items + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < items; start += chunk {
		end := start + chunk
		if end > items {
			end = items
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
