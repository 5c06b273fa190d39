package rendering

import (
	"wallcaster/internal/raycast"
	"wallcaster/internal/threading/core"
)

// inlineRayLimit is the ray count below which columns are cast on the
// calling goroutine.
const inlineRayLimit = 8

// ParallelCaster spreads the column casts of a frame over a worker pool.
// Columns are independent, so each worker writes only its own slots; hits
// are forwarded to the sink afterwards in column order.
type ParallelCaster struct {
	workerPool *core.WorkerPool
	results    []columnResult
}

type columnResult struct {
	strip raycast.StripHit
	ok    bool
}

// NewParallelCaster creates a caster backed by a CPU-sized worker pool.
func NewParallelCaster() *ParallelCaster {
	return NewParallelCasterWithPool(core.CreateDefaultWorkerPool())
}

// NewParallelCasterWithPool uses an already started pool.
func NewParallelCasterWithPool(pool *core.WorkerPool) *ParallelCaster {
	return &ParallelCaster{workerPool: pool}
}

// PerformRayCast produces the same emissions, in the same order, as
// raycast.Caster.PerformRayCast. It is not safe for concurrent use.
func (pc *ParallelCaster) PerformRayCast(c *raycast.Caster, pose raycast.Pose, grid raycast.Grid, objects []raycast.SceneObject) error {
	if err := c.Ready(); err != nil {
		return err
	}

	c.EmitObjects(pose, objects)

	numRays := c.View().NumRays()
	if cap(pc.results) < numRays {
		pc.results = make([]columnResult, numRays)
	}
	results := pc.results[:numRays]

	cast := func(i int) {
		strip, ok := c.ProjectColumn(i, pose, grid)
		results[i] = columnResult{strip: strip, ok: ok}
	}

	if numRays <= inlineRayLimit {
		for i := 0; i < numRays; i++ {
			cast(i)
		}
	} else {
		pc.workerPool.ParallelFor(0, numRays, cast)
	}

	sink := c.Sink()
	for i := range results {
		if results[i].ok {
			sink.AddStripToRender(results[i].strip)
		}
	}
	return nil
}

// Pool exposes the worker pool for metrics.
func (pc *ParallelCaster) Pool() *core.WorkerPool {
	return pc.workerPool
}

// Stop shuts down the worker pool.
func (pc *ParallelCaster) Stop() {
	pc.workerPool.Stop()
}
