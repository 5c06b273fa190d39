package game

import (
	"math"

	"wallcaster/internal/mathutil"
	"wallcaster/internal/raycast"
)

// Camera is the viewer. Its pose is what the raycaster sees.
type Camera struct {
	raycast.Pose
}

// GetForwardX returns the X component of the forward direction vector
func (c *Camera) GetForwardX() float64 {
	return math.Cos(c.Rot)
}

// GetForwardY returns the Y component of the forward direction vector
func (c *Camera) GetForwardY() float64 {
	return math.Sin(c.Rot)
}

// GetRightX returns the X component of the right direction vector
func (c *Camera) GetRightX() float64 {
	return math.Cos(c.Rot + math.Pi/2)
}

// GetRightY returns the Y component of the right direction vector
func (c *Camera) GetRightY() float64 {
	return math.Sin(c.Rot + math.Pi/2)
}

// Rotate turns the camera and brings Rot back into [0, 2π). Angle must be
// smaller than a full turn.
func (c *Camera) Rotate(angle float64) {
	c.Rot = mathutil.NormalizeAngle(c.Rot + angle)
}
