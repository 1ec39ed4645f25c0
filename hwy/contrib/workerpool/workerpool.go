// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs batched kernels (for example many independent dot
// products) across a fixed set of goroutines. A Pool is created once and
// reused, so a batch costs one channel send per worker instead of one
// goroutine per call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	scores := dot.DotBatchParallel(pool, queries, keys)
//
// Each kernel still runs on a single goroutine and keeps its fixed
// accumulation order; the pool only decides which goroutine runs which rows.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ajroetker/quadlane/internal/logging"
)

// Pool is a fixed set of worker goroutines.
type Pool struct {
	workers   int
	tasks     chan task
	closeOnce sync.Once
	closed    atomic.Bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool with the given number of workers. If workers <= 0 it
// uses GOMAXPROCS.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		tasks:   make(chan task, workers*2),
	}
	for range workers {
		go p.loop()
	}
	logging.L().Debug("workerpool started", "workers", workers)
	return p
}

func (p *Pool) loop() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers after queued work finishes. It is safe to call
// more than once. A closed pool runs all later work on the caller's
// goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// For splits [0, n) into at most Workers() contiguous ranges and calls fn
// once per range. It returns when every range is done.
func (p *Pool) For(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.workers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.tasks <- task{run: func() { fn(start, end) }, done: &wg}
	}
	wg.Wait()
}

// ForBatched hands out [0, n) in ranges of batch items to whichever worker
// is free next. Use it when the cost per item varies, such as rows of
// different lengths.
func (p *Pool) ForBatched(n, batch int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batch = max(batch, 1)
	batches := (n + batch - 1) / batch
	workers := min(p.workers, batches)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- task{
			run: func() {
				for {
					start := int(next.Add(1)-1) * batch
					if start >= n {
						return
					}
					fn(start, min(start+batch, n))
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}
