package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// lowFPSThreshold is the frame rate below which CheckPerformanceAlerts warns.
const lowFPSThreshold = 30.0

// PerformanceMonitor tracks frame and cast timings with lock-free counters.
type PerformanceMonitor struct {
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds spent inside the frame
	castTime   atomic.Uint64 // nanoseconds

	// The frame rate comes from the time between the last two frame starts.
	frameInterval  atomic.Uint64 // nanoseconds
	lastFrameStart atomic.Int64  // unix nanoseconds, 0 before the first frame

	stripsEmitted  atomic.Uint64
	spritesEmitted atomic.Uint64

	queuedJobs    atomic.Int32
	completedJobs atomic.Uint64

	mutex        sync.RWMutex
	avgFrameTime float64
	avgCastTime  float64
	startTime    time.Time
}

// NewPerformanceMonitor creates a monitor whose uptime starts now.
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{startTime: time.Now()}
}

// FrameTimer measures one frame.
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing and records the interval since the
// previous frame started.
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	now := time.Now()
	pm.markFrameStart(now)
	return &FrameTimer{monitor: pm, startTime: now}
}

func (pm *PerformanceMonitor) markFrameStart(now time.Time) {
	prev := pm.lastFrameStart.Swap(now.UnixNano())
	if prev != 0 && now.UnixNano() > prev {
		pm.frameInterval.Store(uint64(now.UnixNano() - prev))
	}
}

func (pm *PerformanceMonitor) framesPerSecond() float64 {
	interval := pm.frameInterval.Load()
	if interval == 0 {
		return 0
	}
	return float64(time.Second) / float64(interval)
}

// EndFrame records the frame time and folds it into the running average.
func (ft *FrameTimer) EndFrame() {
	elapsed := uint64(time.Since(ft.startTime).Nanoseconds())
	pm := ft.monitor
	pm.frameTime.Store(elapsed)
	count := pm.frameCount.Add(1)

	pm.mutex.Lock()
	pm.avgFrameTime += (float64(elapsed) - pm.avgFrameTime) / float64(count)
	pm.mutex.Unlock()
}

// CastTimer measures one ray cast.
type CastTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartCast begins cast timing.
func (pm *PerformanceMonitor) StartCast() *CastTimer {
	return &CastTimer{monitor: pm, startTime: time.Now()}
}

// EndCast records the cast time along with how much it emitted.
func (ct *CastTimer) EndCast(strips, sprites int) {
	elapsed := uint64(time.Since(ct.startTime).Nanoseconds())
	pm := ct.monitor
	pm.castTime.Store(elapsed)
	pm.stripsEmitted.Store(uint64(strips))
	pm.spritesEmitted.Store(uint64(sprites))

	pm.mutex.Lock()
	if pm.avgCastTime == 0 {
		pm.avgCastTime = float64(elapsed)
	} else {
		pm.avgCastTime = 0.9*pm.avgCastTime + 0.1*float64(elapsed)
	}
	pm.mutex.Unlock()
}

// UpdateWorkerMetrics copies the worker pool counters.
func (pm *PerformanceMonitor) UpdateWorkerMetrics(queued int32, completed uint64) {
	pm.queuedJobs.Store(queued)
	pm.completedJobs.Store(completed)
}

// FrameMetrics is a snapshot for the HUD.
type FrameMetrics struct {
	FramesPerSecond float64
	CastTimeMs      float64
	Strips          uint64
	Sprites         uint64
}

// GetCurrentMetrics returns the latest frame figures.
func (pm *PerformanceMonitor) GetCurrentMetrics() FrameMetrics {
	return FrameMetrics{
		FramesPerSecond: pm.framesPerSecond(),
		CastTimeMs:      float64(pm.castTime.Load()) / float64(time.Millisecond),
		Strips:          pm.stripsEmitted.Load(),
		Sprites:         pm.spritesEmitted.Load(),
	}
}

// GetDetailedStats returns every tracked figure keyed by name.
func (pm *PerformanceMonitor) GetDetailedStats() map[string]interface{} {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return map[string]interface{}{
		"uptime_seconds":     time.Since(pm.startTime).Seconds(),
		"frame_count":        pm.frameCount.Load(),
		"avg_frame_time_ms":  pm.avgFrameTime / float64(time.Millisecond),
		"avg_cast_time_ms":   pm.avgCastTime / float64(time.Millisecond),
		"last_frame_time_ms": float64(pm.frameTime.Load()) / float64(time.Millisecond),
		"frame_interval_ms":  float64(pm.frameInterval.Load()) / float64(time.Millisecond),
		"last_cast_time_ms":  float64(pm.castTime.Load()) / float64(time.Millisecond),
		"strips_emitted":     pm.stripsEmitted.Load(),
		"sprites_emitted":    pm.spritesEmitted.Load(),
		"queued_jobs":        pm.queuedJobs.Load(),
		"completed_jobs":     pm.completedJobs.Load(),
		"memory_alloc_mb":    memStats.Alloc / 1024 / 1024,
		"gc_cycles":          memStats.NumGC,
		"goroutines":         runtime.NumGoroutine(),
		"cpu_cores":          runtime.NumCPU(),
	}
}

// PerformanceAlert is a single warning raised by CheckPerformanceAlerts.
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
}

// CheckPerformanceAlerts reports a low frame rate.
func (pm *PerformanceMonitor) CheckPerformanceAlerts() []PerformanceAlert {
	var alerts []PerformanceAlert
	if fps := pm.framesPerSecond(); fps > 0 {
		if fps < lowFPSThreshold {
			alerts = append(alerts, PerformanceAlert{
				Type:      "low_fps",
				Message:   "Frame rate is below 30 FPS",
				Value:     fps,
				Threshold: lowFPSThreshold,
			})
		}
	}
	return alerts
}

// Reset clears all counters and restarts the uptime clock.
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	pm.frameInterval.Store(0)
	pm.lastFrameStart.Store(0)
	pm.castTime.Store(0)
	pm.stripsEmitted.Store(0)
	pm.spritesEmitted.Store(0)
	pm.queuedJobs.Store(0)
	pm.completedJobs.Store(0)

	pm.mutex.Lock()
	pm.avgFrameTime = 0
	pm.avgCastTime = 0
	pm.startTime = time.Now()
	pm.mutex.Unlock()
}
