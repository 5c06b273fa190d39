package game

import (
	"log"
	"time"
)

const perfLogInterval = 3 * time.Second

func (g *Game) maybeLogPerf() {
	if !g.config.Threading.PerfLog {
		return
	}

	now := time.Now()
	if !g.perfLastLog.IsZero() && now.Sub(g.perfLastLog) < perfLogInterval {
		return
	}
	g.perfLastLog = now
	g.logPerfSnapshot()
}

func (g *Game) logPerfSnapshot() {
	g.threading.SyncWorkerMetrics()
	stats := g.threading.PerformanceMonitor.GetDetailedStats()

	log.Printf("[PERF] frame=%.2fms cast=%.2fms avg_cast=%.2fms strips=%v sprites=%v parallel=%v completed_jobs=%v goroutines=%v alloc=%vMB",
		getPerfFloat(stats, "last_frame_time_ms"),
		getPerfFloat(stats, "last_cast_time_ms"),
		getPerfFloat(stats, "avg_cast_time_ms"),
		stats["strips_emitted"], stats["sprites_emitted"],
		g.parallel,
		stats["completed_jobs"], stats["goroutines"], stats["memory_alloc_mb"])

	for _, alert := range g.threading.PerformanceMonitor.CheckPerformanceAlerts() {
		log.Printf("[PERF] %s: %s (%.1f < %.1f)", alert.Type, alert.Message, alert.Value, alert.Threshold)
	}
}

func getPerfFloat(stats map[string]interface{}, key string) float64 {
	if v, ok := stats[key].(float64); ok {
		return v
	}
	return 0
}
