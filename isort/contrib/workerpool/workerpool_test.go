// Copyright 2025 The go-isort Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelForCoversEveryIndexOnce(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 3, 4, 5, 9, 100, 1001} {
		hits := make([]atomic.Int32, n)
		pool.ParallelFor(n, func(start, end int) {
			if start >= end {
				t.Errorf("n=%d: empty range [%d, %d)", n, start, end)
			}
			for i := start; i < end; i++ {
				hits[i].Add(1)
			}
		})
		for i := range hits {
			if got := hits[i].Load(); got != 1 {
				t.Errorf("n=%d: index %d visited %d times, want 1", n, i, got)
			}
		}
	}
}

func TestParallelForAtomicCoversEveryIndexOnce(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 2, 7, 100, 1000} {
		hits := make([]atomic.Int32, n)
		pool.ParallelForAtomic(n, func(i int) {
			hits[i].Add(1)
		})
		for i := range hits {
			if got := hits[i].Load(); got != 1 {
				t.Errorf("n=%d: index %d visited %d times, want 1", n, i, got)
			}
		}
	}
}

func TestZeroWork(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(start, end int) { called = true })
	pool.ParallelForAtomic(0, func(i int) { called = true })
	pool.ParallelFor(-1, func(start, end int) { called = true })
	if called {
		t.Error("fn called for n <= 0")
	}
}

func TestAfterClose(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // idempotent

	var sum atomic.Int64
	pool.ParallelFor(10, func(start, end int) {
		for i := start; i < end; i++ {
			sum.Add(int64(i))
		}
	})
	pool.ParallelForAtomic(10, func(i int) {
		sum.Add(int64(i))
	})
	if got := sum.Load(); got != 90 {
		t.Errorf("sum after Close = %d, want 90", got)
	}
}

func TestReuse(t *testing.T) {
	pool := New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	for iter := range 100 {
		var count atomic.Int64
		pool.ParallelForAtomic(50, func(i int) {
			count.Add(1)
		})
		if count.Load() != 50 {
			t.Fatalf("iteration %d: count = %d, want 50", iter, count.Load())
		}
	}
}

func BenchmarkParallelForAtomic(b *testing.B) {
	pool := New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	data := make([]int, 4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelForAtomic(len(data), func(j int) {
			data[j] = j * 2
		})
	}
}
