package game

import (
	"wallcaster/internal/game/keytracker"

	"github.com/hajimehoshi/ebiten/v2"
)

// Controls is the player intent for one tick.
type Controls struct {
	Forward, Back           bool
	TurnLeft, TurnRight     bool
	StrafeLeft, StrafeRight bool

	ToggleParallel bool
	ToggleHUD      bool
}

// InputHandler reads the keyboard into Controls.
type InputHandler struct {
	parallelKey *keytracker.KeyStateTracker
	hudKey      *keytracker.KeyStateTracker
}

// NewInputHandler binds P to the parallel toggle and F3 to the HUD toggle.
func NewInputHandler() *InputHandler {
	return &InputHandler{
		parallelKey: keytracker.New(ebiten.KeyP),
		hudKey:      keytracker.New(ebiten.KeyF3),
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// ReadControls polls the keyboard. Arrows or WASD move and turn, Q and E strafe.
func (ih *InputHandler) ReadControls() Controls {
	return Controls{
		Forward:        anyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Back:           anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		TurnLeft:       anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		TurnRight:      anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		StrafeLeft:     anyPressed(ebiten.KeyQ),
		StrafeRight:    anyPressed(ebiten.KeyE),
		ToggleParallel: ih.parallelKey.JustPressed(),
		ToggleHUD:      ih.hudKey.JustPressed(),
	}
}
