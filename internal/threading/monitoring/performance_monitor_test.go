package monitoring

import (
	"testing"
	"time"
)

func TestNewPerformanceMonitor(t *testing.T) {
	pm := NewPerformanceMonitor()
	if pm == nil {
		t.Fatal("NewPerformanceMonitor returned nil")
	}
	if time.Since(pm.startTime) > time.Second {
		t.Error("Start time should be recent")
	}
}

func TestPerformanceMonitorFrameTiming(t *testing.T) {
	pm := NewPerformanceMonitor()

	frameTimer := pm.StartFrame()
	time.Sleep(10 * time.Millisecond)
	frameTimer.EndFrame()

	if pm.frameCount.Load() != 1 {
		t.Errorf("Expected frame count to be 1, got %d", pm.frameCount.Load())
	}
	if pm.frameTime.Load() < uint64(10*time.Millisecond) {
		t.Errorf("Expected frame time of at least 10ms, got %d ns", pm.frameTime.Load())
	}

	if fps := pm.GetCurrentMetrics().FramesPerSecond; fps != 0 {
		t.Errorf("Expected no FPS before a second frame starts, got %f", fps)
	}
}

func TestFramesPerSecondUsesIntervalBetweenFrames(t *testing.T) {
	pm := NewPerformanceMonitor()
	start := time.Now()

	// Frames that finish instantly but start 50ms apart run at 20 FPS.
	pm.markFrameStart(start)
	pm.markFrameStart(start.Add(50 * time.Millisecond))

	fps := pm.GetCurrentMetrics().FramesPerSecond
	if fps < 19.9 || fps > 20.1 {
		t.Errorf("Expected 20 FPS, got %f", fps)
	}
	alerts := pm.CheckPerformanceAlerts()
	if len(alerts) != 1 || alerts[0].Type != "low_fps" {
		t.Fatalf("Expected one low_fps alert, got %+v", alerts)
	}

	pm.markFrameStart(start.Add(60 * time.Millisecond))
	if len(pm.CheckPerformanceAlerts()) != 0 {
		t.Error("A 10ms interval should not raise an alert")
	}
}

func TestPerformanceMonitorCastTiming(t *testing.T) {
	pm := NewPerformanceMonitor()

	timer := pm.StartCast()
	time.Sleep(time.Millisecond)
	timer.EndCast(160, 3)

	metrics := pm.GetCurrentMetrics()
	if metrics.Strips != 160 || metrics.Sprites != 3 {
		t.Errorf("Expected 160 strips and 3 sprites, got %d and %d", metrics.Strips, metrics.Sprites)
	}
	if metrics.CastTimeMs < 1 {
		t.Errorf("Expected cast time of at least 1ms, got %f", metrics.CastTimeMs)
	}

	stats := pm.GetDetailedStats()
	for _, key := range []string{"avg_cast_time_ms", "last_frame_time_ms", "strips_emitted", "goroutines"} {
		if _, ok := stats[key]; !ok {
			t.Errorf("Missing stat %q", key)
		}
	}
}

func TestPerformanceAlertsAndReset(t *testing.T) {
	pm := NewPerformanceMonitor()
	pm.frameInterval.Store(uint64(50 * time.Millisecond))

	alerts := pm.CheckPerformanceAlerts()
	if len(alerts) != 1 || alerts[0].Type != "low_fps" {
		t.Fatalf("Expected one low_fps alert, got %+v", alerts)
	}

	pm.UpdateWorkerMetrics(3, 42)
	pm.Reset()
	if pm.frameInterval.Load() != 0 || pm.completedJobs.Load() != 0 {
		t.Error("Reset should clear counters")
	}
	if len(pm.CheckPerformanceAlerts()) != 0 {
		t.Error("No alerts expected after reset")
	}
}
