package parallel_test

import (
	"sync/atomic"
	"testing"

	"github.com/ezoic/boostsplit/core/parallel"
)

func TestForCoversEveryIndexOnce(t *testing.T) {
	for _, workers := range []int{0, 1, 3, 16} {
		items := 100
		counts := make([]int64, items)
		parallel.For(items, workers, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt64(&counts[i], 1)
			}
		})
		for i, c := range counts {
			if c != 1 {
				t.Fatalf("workers=%d: index %d visited %d times", workers, i, c)
			}
		}
	}
}

func TestForZeroItems(t *testing.T) {
	called := false
	parallel.For(0, 4, func(start, end int) { called = true })
	if called {
		t.Errorf("fn should not run for zero items")
	}
}

func TestForMoreWorkersThanItems(t *testing.T) {
	var visited int64
	parallel.For(3, 10, func(start, end int) {
		atomic.AddInt64(&visited, int64(end-start))
	})
	if visited != 3 {
		t.Errorf("expected 3 items visited, got %d", visited)
	}
}
