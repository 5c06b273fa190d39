package threading

import (
	"wallcaster/internal/threading/monitoring"
	"wallcaster/internal/threading/rendering"
)

// ThreadingComponents groups the concurrency helpers the game owns.
type ThreadingComponents struct {
	ParallelCaster     *rendering.ParallelCaster
	PerformanceMonitor *monitoring.PerformanceMonitor
}

// NewThreadingComponents creates the parallel caster and the monitor.
func NewThreadingComponents() *ThreadingComponents {
	return &ThreadingComponents{
		ParallelCaster:     rendering.NewParallelCaster(),
		PerformanceMonitor: monitoring.NewPerformanceMonitor(),
	}
}

// SyncWorkerMetrics copies the pool counters into the monitor.
func (tc *ThreadingComponents) SyncWorkerMetrics() {
	pool := tc.ParallelCaster.Pool()
	tc.PerformanceMonitor.UpdateWorkerMetrics(pool.QueuedJobs(), pool.CompletedJobs())
}

// Shutdown stops the worker pool and clears the counters.
func (tc *ThreadingComponents) Shutdown() {
	if tc.ParallelCaster != nil {
		tc.ParallelCaster.Stop()
	}
	if tc.PerformanceMonitor != nil {
		tc.PerformanceMonitor.Reset()
	}
}
