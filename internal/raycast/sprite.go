package raycast

import (
	"math"

	"wallcaster/internal/mathutil"
)

// spriteCenterOffset moves an object from its cell corner to the cell centre.
const spriteCenterOffset = 0.5

// ProjectObject computes the billboard of obj as seen from pose. ok is false
// when the object falls outside the visibility band.
//
// The band keeps objects whose normalized bearing is within one full FOV of
// the view direction on either side, which is wider than the visible frustum.
// Sprites that pass but lie off-screen are clipped by the renderer.
func (c *Caster) ProjectObject(obj SceneObject, pose Pose) (SpriteProjection, bool) {
	distX := obj.Position.X - pose.X + spriteCenterOffset
	distY := obj.Position.Y - pose.Y + spriteCenterOffset
	dist := math.Hypot(distX, distY)
	angle := math.Atan2(distY, distX) - pose.Rot

	bearing := mathutil.NormalizeAngle(angle)
	if !(bearing <= c.view.fov || bearing+c.view.fov >= mathutil.TwoPi) {
		return SpriteProjection{}, false
	}

	size := c.view.viewDist / (math.Cos(angle) * dist)
	return SpriteProjection{
		ID:    obj.ID,
		DrawX: c.view.viewDist*math.Tan(angle) + c.view.screenWidth/2 - size/2,
		DrawY: (c.view.screenHeight - size) / 2,
		Size:  size,
		Dist:  dist,
	}, true
}
