// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/semaphore"
)

// ErrPoolClosed is returned by Do after Close.
var ErrPoolClosed = errors.New("worker pool is closed")

// Pool limits the number of jobs running concurrently.
type Pool struct {
	sem  *semaphore.Weighted
	size int

	mu      sync.RWMutex
	closed  bool
	running sync.WaitGroup
}

// NewPool returns a pool running at most size jobs at once. Sizes below one
// are raised to one.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{
		sem:  semaphore.NewWeighted(int64(size)),
		size: size,
	}
}

// Size returns the maximum number of concurrent jobs.
func (p *Pool) Size() int {
	return p.size
}

// Do runs job on a pool goroutine and waits for its result.
//
// While queued, cancelling ctx abandons the job. Once started the job runs
// to completion even if ctx is cancelled; Do then returns ctx.Err() and the
// result is dropped.
func Do[T any](ctx context.Context, p *Pool, job func() (T, error)) (T, error) {
	var zero T

	if err := p.start(ctx); err != nil {
		return zero, err
	}

	type result struct {
		val T
		err error
	}
	done := make(chan result, 1)

	go func() {
		defer p.finish()
		val, err := job()
		done <- result{val: val, err: err}
	}()

	select {
	case r := <-done:
		return r.val, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func (p *Pool) start(ctx context.Context) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		p.sem.Release(1)
		return ErrPoolClosed
	}
	p.running.Add(1)
	return nil
}

func (p *Pool) finish() {
	p.sem.Release(1)
	p.running.Done()
}

// Close rejects new jobs and waits for running ones to finish.
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.running.Wait()
}
