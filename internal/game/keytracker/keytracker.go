// Package keytracker turns ebiten's level-triggered key state into
// edge-triggered presses.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyStateTracker tracks the previous state of one key.
type KeyStateTracker struct {
	key         ebiten.Key
	prevPressed bool
}

// New creates a tracker for key.
func New(key ebiten.Key) *KeyStateTracker {
	return &KeyStateTracker{key: key}
}

// Key returns the tracked key.
func (k *KeyStateTracker) Key() ebiten.Key {
	return k.key
}

// JustPressed polls ebiten and returns true on the tick the key goes down.
func (k *KeyStateTracker) JustPressed() bool {
	return k.Observe(ebiten.IsKeyPressed(k.key))
}

// Observe records the current key state and reports whether it is a new press.
func (k *KeyStateTracker) Observe(pressed bool) bool {
	justPressed := pressed && !k.prevPressed
	k.prevPressed = pressed
	return justPressed
}
