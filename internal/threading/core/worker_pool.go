package core

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"wallcaster/internal/mathutil"
)

// WorkerPool manages a fixed set of goroutines that run submitted jobs.
type WorkerPool struct {
	numWorkers int
	jobQueue   chan func()
	wg         sync.WaitGroup
	quit       chan struct{}
	stopOnce   sync.Once

	queued    atomic.Int32
	completed atomic.Uint64
}

// NewWorkerPool creates a pool with numWorkers goroutines; zero or less means
// one per CPU. Call Start before submitting.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		numWorkers: numWorkers,
		jobQueue:   make(chan func(), numWorkers*2),
		quit:       make(chan struct{}),
	}
}

// CreateDefaultWorkerPool creates and starts a pool sized to the CPU count.
func CreateDefaultWorkerPool() *WorkerPool {
	pool := NewWorkerPool(0)
	pool.Start()
	return pool
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		go wp.worker()
	}
}

func (wp *WorkerPool) worker() {
	for {
		select {
		case job := <-wp.jobQueue:
			job()
			wp.queued.Add(-1)
			wp.completed.Add(1)
			wp.wg.Done()
		case <-wp.quit:
			return
		}
	}
}

// Submit queues a job, blocking while the queue is full.
func (wp *WorkerPool) Submit(job func()) {
	wp.wg.Add(1)
	wp.queued.Add(1)
	wp.jobQueue <- job
}

// Wait blocks until every submitted job has finished.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// Stop shuts the workers down. Jobs still queued are abandoned.
func (wp *WorkerPool) Stop() {
	wp.stopOnce.Do(func() { close(wp.quit) })
}

// ParallelFor runs fn for every index in [start, end) and returns once all
// calls are done.
func (wp *WorkerPool) ParallelFor(start, end int, fn func(int)) {
	wp.ParallelForWithContext(context.Background(), start, end, fn)
}

// ParallelForWithContext is ParallelFor that stops handing out indices once
// ctx is cancelled.
func (wp *WorkerPool) ParallelForWithContext(ctx context.Context, start, end int, fn func(int)) {
	if start >= end {
		return
	}

	// At most one chunk per worker.
	chunkSize := mathutil.IntCeilDiv(end-start, mathutil.IntMax(1, wp.numWorkers))

	for i := start; i < end; i += chunkSize {
		chunkStart := i
		chunkEnd := mathutil.IntMin(i+chunkSize, end)
		wp.Submit(func() {
			for j := chunkStart; j < chunkEnd; j++ {
				select {
				case <-ctx.Done():
					return
				default:
					fn(j)
				}
			}
		})
	}
	wp.Wait()
}

// GetNumWorkers returns the number of workers in the pool.
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// QueuedJobs returns the number of submitted jobs not yet finished.
func (wp *WorkerPool) QueuedJobs() int32 {
	return wp.queued.Load()
}

// CompletedJobs returns the number of jobs run since the pool was created.
func (wp *WorkerPool) CompletedJobs() uint64 {
	return wp.completed.Load()
}
