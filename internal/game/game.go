package game

import (
	"fmt"
	"log"
	"time"

	"wallcaster/internal/collision"
	"wallcaster/internal/config"
	"wallcaster/internal/graphics"
	"wallcaster/internal/mathutil"
	"wallcaster/internal/raycast"
	"wallcaster/internal/render"
	"wallcaster/internal/threading"
	"wallcaster/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game is the ebiten shell around the raycaster: it moves the camera,
// casts one frame per Draw and hands the result to the render engine.
type Game struct {
	config *config.Config
	level  *world.MapData
	camera *Camera
	input  *InputHandler

	caster    *raycast.Caster
	engine    *render.Engine
	threading *threading.ThreadingComponents

	parallel bool
	showHUD  bool

	lastCastErr error
	perfLastLog time.Time
}

// NewGame wires a level into a ready-to-run game. No GPU resources are
// created until the first Draw.
func NewGame(cfg *config.Config, level *world.MapData, tiles *world.TileManager) *Game {
	if missing := tiles.MissingWalls(level); len(missing) > 0 {
		log.Printf("Warning: wall ids %v have no tile definition, using fallback texture", missing)
	}

	atlas := graphics.NewTextureAtlas(tiles, cfg.Graphics.TextureDir)
	engine := render.NewEngine(atlas, cfg.Graphics)

	view := raycast.NewViewGeometry(cfg.GetCameraFOV(), cfg.GetScreenWidth(), cfg.GetScreenHeight(), cfg.Camera.StripWidth)
	view.SetMapSize(level.Width, level.Height)

	return &Game{
		config:    cfg,
		level:     level,
		camera:    &Camera{Pose: level.StartPose(cfg.GetStartRotation())},
		input:     NewInputHandler(),
		caster:    raycast.NewCaster(view, engine),
		engine:    engine,
		threading: threading.NewThreadingComponents(),
		parallel:  cfg.Threading.ParallelCast,
		showHUD:   cfg.Graphics.ShowHUD,
	}
}

// Pose returns the current camera pose.
func (g *Game) Pose() raycast.Pose {
	return g.camera.Pose
}

// Parallel reports whether frames are cast on the worker pool.
func (g *Game) Parallel() bool {
	return g.parallel
}

// Step applies one tick of player intent.
func (g *Game) Step(c Controls) {
	if c.ToggleParallel {
		g.parallel = !g.parallel
		log.Printf("Parallel casting: %v", g.parallel)
	}
	if c.ToggleHUD {
		g.showHUD = !g.showHUD
	}

	rotSpeed := g.config.GetRotSpeed()
	if c.TurnLeft {
		g.camera.Rotate(-rotSpeed)
	}
	if c.TurnRight {
		g.camera.Rotate(rotSpeed)
	}

	forward, strafe := 0.0, 0.0
	if c.Forward {
		forward++
	}
	if c.Back {
		forward--
	}
	if c.StrafeRight {
		strafe++
	}
	if c.StrafeLeft {
		strafe--
	}
	if forward == 0 && strafe == 0 {
		return
	}

	speed := g.config.GetMoveSpeed()
	dx := (forward*g.camera.GetForwardX() + strafe*g.camera.GetRightX()) * speed
	dy := (forward*g.camera.GetForwardY() + strafe*g.camera.GetRightY()) * speed
	g.camera.X, g.camera.Y = collision.SlideMove(g.level, g.camera.X, g.camera.Y, dx, dy, g.config.Movement.CollisionRadius)
}

// CastFrame fills the render engine with the current view.
func (g *Game) CastFrame() error {
	g.engine.BeginFrame()
	castTimer := g.threading.PerformanceMonitor.StartCast()

	var err error
	if g.parallel {
		err = g.threading.ParallelCaster.PerformRayCast(g.caster, g.camera.Pose, g.level.Grid, g.level.Objects)
	} else {
		err = g.caster.PerformRayCast(g.camera.Pose, g.level.Grid, g.level.Objects)
	}

	castTimer.EndCast(len(g.engine.Strips()), len(g.engine.Sprites()))
	return err
}

// Update handles one game tick.
func (g *Game) Update() error {
	g.Step(g.input.ReadControls())
	g.maybeLogPerf()
	return nil
}

// Draw casts and paints one frame. Frame timing lives here since ebiten may
// run several Update ticks per rendered frame.
func (g *Game) Draw(screen *ebiten.Image) {
	frameTimer := g.threading.PerformanceMonitor.StartFrame()
	defer frameTimer.EndFrame()

	if err := g.CastFrame(); err != nil {
		if g.lastCastErr == nil {
			log.Printf("Error: ray cast failed: %v", err)
		}
		g.lastCastErr = err
	} else {
		g.lastCastErr = nil
	}

	g.engine.Draw(screen)
	if g.showHUD {
		ebitenutil.DebugPrint(screen, g.hudText())
	}
}

func (g *Game) hudText() string {
	metrics := g.threading.PerformanceMonitor.GetCurrentMetrics()
	mode := "sequential"
	if g.parallel {
		mode = fmt.Sprintf("parallel x%d", g.threading.ParallelCaster.Pool().GetNumWorkers())
	}
	return fmt.Sprintf("FPS %.1f  TPS %.1f\ncast %.2fms %s [P]\nstrips %d  sprites %d\npos %.2f, %.2f  facing %.0f deg\n[F3] hide",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		metrics.CastTimeMs, mode,
		metrics.Strips, metrics.Sprites,
		g.camera.X, g.camera.Y, mathutil.Degrees(g.camera.Rot))
}

// Layout keeps the logical screen at the configured size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.config.GetScreenWidth(), g.config.GetScreenHeight()
}

// Close stops the worker pool.
func (g *Game) Close() {
	g.threading.Shutdown()
}
