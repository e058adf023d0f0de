// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.Workers() != runtime.GOMAXPROCS(0) {
		t.Errorf("Workers() = %d, want %d", pool.Workers(), runtime.GOMAXPROCS(0))
	}
}

func TestChunksCoverRange(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 7, 8, 33, 100, 1001} {
		hits := make([]int32, n)
		pool.Chunks(n, 8, func(lo, hi int) {
			if lo%8 != 0 {
				t.Errorf("n=%d: range [%d, %d) does not start on a multiple of 8", n, lo, hi)
			}
			for i := lo; i < hi; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Errorf("n=%d: index %d visited %d times, want 1", n, i, h)
			}
		}
	}
}

func TestChunksZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.Chunks(0, 4, func(lo, hi int) {
		called = true
	})
	if called {
		t.Error("Chunks with n=0 should not call fn")
	}
}

func TestEach(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)
	err := pool.Each(context.Background(), n, func(i int) error {
		results[i] = i * 2
		return nil
	})
	if err != nil {
		t.Fatalf("Each: %v", err)
	}
	for i := range n {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestEachFirstError(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	errBoom := errors.New("boom")
	var calls atomic.Int32
	err := pool.Each(context.Background(), 1000, func(i int) error {
		calls.Add(1)
		if i == 10 {
			return errBoom
		}
		return nil
	})
	if !errors.Is(err, errBoom) {
		t.Errorf("Each: err = %v, want %v", err, errBoom)
	}
	if calls.Load() == 1000 {
		t.Error("Each kept handing out work after an error")
	}
}

func TestEachCanceled(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var calls atomic.Int32
	err := pool.Each(ctx, 50, func(int) error {
		calls.Add(1)
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Each: err = %v, want context.Canceled", err)
	}
	if calls.Load() != 0 {
		t.Errorf("Each ran %d tasks on a canceled context, want 0", calls.Load())
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()
}

func TestClosedPoolRunsInline(t *testing.T) {
	pool := New(4)
	pool.Close()

	var sum atomic.Int64
	pool.Chunks(10, 1, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			sum.Add(int64(i))
		}
	})
	if sum.Load() != 45 {
		t.Errorf("sum = %d, want 45", sum.Load())
	}
}

func BenchmarkEach(b *testing.B) {
	pool := New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	var sink atomic.Int64
	for b.Loop() {
		pool.Each(context.Background(), 256, func(i int) error {
			sink.Add(int64(i))
			return nil
		})
	}
}
