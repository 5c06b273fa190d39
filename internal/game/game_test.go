package game

import (
	"math"
	"strings"
	"testing"

	"wallcaster/internal/config"
	"wallcaster/internal/mathutil"
	"wallcaster/internal/raycast"
	"wallcaster/internal/world"
)

const testLevel = `
11111
1+.a1
1...1
11111
`

func newTestGame(t *testing.T, mutate func(*config.Config)) *Game {
	t.Helper()
	level, err := world.ParseMap(strings.NewReader(testLevel))
	if err != nil {
		t.Fatalf("ParseMap: %v", err)
	}
	cfg := config.Default()
	cfg.Graphics.TextureDir = ""
	if mutate != nil {
		mutate(cfg)
	}
	g := NewGame(cfg, level, world.NewTileManager())
	t.Cleanup(g.Close)
	return g
}

func TestNewGameStartsAtStartCell(t *testing.T) {
	g := newTestGame(t, func(cfg *config.Config) { cfg.World.StartRotation = 90 })

	pose := g.Pose()
	if pose.X != 1.5 || pose.Y != 1.5 {
		t.Errorf("start position = (%v, %v), want (1.5, 1.5)", pose.X, pose.Y)
	}
	if math.Abs(pose.Rot-math.Pi/2) > 1e-12 {
		t.Errorf("start rotation = %v, want π/2", pose.Rot)
	}
	if !g.Parallel() {
		t.Error("default config enables parallel casting")
	}
}

func TestStepToggles(t *testing.T) {
	g := newTestGame(t, nil)
	hud := g.showHUD

	g.Step(Controls{ToggleParallel: true})
	if g.Parallel() {
		t.Error("P should turn parallel casting off")
	}
	g.Step(Controls{ToggleParallel: true, ToggleHUD: true})
	if !g.Parallel() {
		t.Error("second P should turn parallel casting back on")
	}
	if g.showHUD == hud {
		t.Error("F3 should flip the HUD")
	}
}

func TestStepForwardStopsAtWall(t *testing.T) {
	g := newTestGame(t, nil)
	radius := g.config.Movement.CollisionRadius

	g.Step(Controls{Forward: true})
	if math.Abs(g.Pose().X-(1.5+g.config.GetMoveSpeed())) > 1e-12 {
		t.Fatalf("one step forward moved to x=%v", g.Pose().X)
	}

	for i := 0; i < 200; i++ {
		g.Step(Controls{Forward: true})
	}
	pose := g.Pose()
	if pose.X >= 4-radius {
		t.Errorf("walked into the wall: x=%v", pose.X)
	}
	if pose.X < 4-radius-g.config.GetMoveSpeed() {
		t.Errorf("stopped too early: x=%v", pose.X)
	}
	if pose.Y != 1.5 {
		t.Errorf("y drifted to %v", pose.Y)
	}
}

func TestStepStrafeUsesRightVector(t *testing.T) {
	g := newTestGame(t, nil)

	// Facing east, right is south (+y).
	g.Step(Controls{StrafeRight: true})
	pose := g.Pose()
	if math.Abs(pose.Y-(1.5+g.config.GetMoveSpeed())) > 1e-12 || math.Abs(pose.X-1.5) > 1e-12 {
		t.Errorf("strafe right moved to (%v, %v)", pose.X, pose.Y)
	}
}

func TestRotationStaysNormalized(t *testing.T) {
	g := newTestGame(t, nil)

	for _, c := range []Controls{{TurnLeft: true}, {TurnRight: true}} {
		for i := 0; i < 500; i++ {
			g.Step(c)
			if rot := g.Pose().Rot; rot < 0 || rot > mathutil.TwoPi {
				t.Fatalf("rotation left [0, 2π]: %v", rot)
			}
		}
	}
}

func TestCastFrameParallelMatchesSequential(t *testing.T) {
	g := newTestGame(t, func(cfg *config.Config) { cfg.World.StartRotation = 10 })

	g.parallel = false
	if err := g.CastFrame(); err != nil {
		t.Fatalf("sequential cast: %v", err)
	}
	seqStrips := append([]raycast.StripHit(nil), g.engine.Strips()...)
	seqSprites := append([]raycast.SpriteProjection(nil), g.engine.Sprites()...)

	g.parallel = true
	if err := g.CastFrame(); err != nil {
		t.Fatalf("parallel cast: %v", err)
	}

	if len(seqStrips) == 0 {
		t.Fatal("an enclosed room should produce strips")
	}
	if len(g.engine.Strips()) != len(seqStrips) {
		t.Fatalf("parallel produced %d strips, sequential %d", len(g.engine.Strips()), len(seqStrips))
	}
	for i, strip := range g.engine.Strips() {
		if strip != seqStrips[i] {
			t.Fatalf("strip %d differs: %+v vs %+v", i, strip, seqStrips[i])
		}
	}
	if len(g.engine.Sprites()) != len(seqSprites) {
		t.Errorf("parallel produced %d sprites, sequential %d", len(g.engine.Sprites()), len(seqSprites))
	}

	metrics := g.threading.PerformanceMonitor.GetCurrentMetrics()
	if metrics.Strips != uint64(len(seqStrips)) {
		t.Errorf("monitor saw %d strips, want %d", metrics.Strips, len(seqStrips))
	}
}

func TestLayoutUsesConfiguredSize(t *testing.T) {
	g := newTestGame(t, nil)
	w, h := g.Layout(1920, 1080)
	if w != g.config.GetScreenWidth() || h != g.config.GetScreenHeight() {
		t.Errorf("Layout = %dx%d", w, h)
	}
}
