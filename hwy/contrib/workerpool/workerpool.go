// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs independent pieces of work on a fixed set of
// long-lived goroutines. The dvec slice kernels split their input into
// aligned chunks with Chunks; the harness runs one catalog entry per task
// with Each.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.Each(ctx, len(ops), func(i int) error {
//	    return runOne(ops[i])
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of worker goroutines fed through a shared queue. It is safe
// for concurrent use; a closed Pool runs work on the calling goroutine.
type Pool struct {
	workers   int
	jobs      chan job
	closeOnce sync.Once
	closed    atomic.Bool
}

type job struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool of the given size. A size <= 0 means GOMAXPROCS.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		jobs:    make(chan job, workers*2),
	}
	for range workers {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for j := range p.jobs {
		j.run()
		j.done.Done()
	}
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers once queued work has drained. It may be called
// more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.jobs)
	})
}

// fanOut runs fn on n workers and waits for all of them.
func (p *Pool) fanOut(n int, fn func(w int)) {
	var wg sync.WaitGroup
	wg.Add(n)
	for w := range n {
		p.jobs <- job{run: func() { fn(w) }, done: &wg}
	}
	wg.Wait()
}

// Chunks splits [0, n) into at most Workers() contiguous ranges and calls fn
// once per range. Every range except the last has a length that is a
// multiple of align, so vector kernels see whole registers and only the last
// range carries a tail. It blocks until every range is done.
func (p *Pool) Chunks(n, align int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if align <= 0 {
		align = 1
	}
	blocks := (n + align - 1) / align
	workers := min(p.workers, blocks)
	if workers <= 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	per := (blocks + workers - 1) / workers * align
	workers = (n + per - 1) / per
	p.fanOut(workers, func(w int) {
		lo := w * per
		fn(lo, min(lo+per, n))
	})
}

// Each calls fn(i) for every i in [0, n), handing out indices one at a time
// so uneven tasks balance across workers. It stops handing out indices once
// ctx is done or fn fails, and returns the first error, or ctx.Err().
func (p *Pool) Each(ctx context.Context, n int, fn func(i int) error) error {
	if n <= 0 {
		return ctx.Err()
	}

	var (
		next     atomic.Int64
		errOnce  sync.Once
		firstErr error
		stop     atomic.Bool
	)
	fail := func(err error) {
		errOnce.Do(func() { firstErr = err })
		stop.Store(true)
	}
	work := func(int) {
		for !stop.Load() {
			if err := ctx.Err(); err != nil {
				fail(err)
				return
			}
			i := int(next.Add(1)) - 1
			if i >= n {
				return
			}
			if err := fn(i); err != nil {
				fail(err)
				return
			}
		}
	}

	workers := min(p.workers, n)
	if workers <= 1 || p.closed.Load() {
		work(0)
	} else {
		p.fanOut(workers, work)
	}
	return firstErr
}
