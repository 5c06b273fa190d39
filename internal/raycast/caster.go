package raycast

import (
	"errors"
	"math"

	"wallcaster/internal/mathutil"
)

// TextureSize is the texel width of every wall texture.
const TextureSize = 64

// ErrMapSizeUnset is returned when a cast is attempted before SetMapSize was
// given non-zero dimensions.
var ErrMapSizeUnset = errors.New("raycast: map size not set")

// Caster projects a viewer pose onto the screen described by its
// ViewGeometry and pushes the results into a RenderSink.
type Caster struct {
	view *ViewGeometry
	sink RenderSink
}

// NewCaster creates a caster. The view is shared, not copied, so later
// SetMapSize calls on it are seen by the caster.
func NewCaster(view *ViewGeometry, sink RenderSink) *Caster {
	return &Caster{view: view, sink: sink}
}

// View returns the projection parameters in use.
func (c *Caster) View() *ViewGeometry {
	return c.view
}

// Sink returns the receiver of draw descriptors.
func (c *Caster) Sink() RenderSink {
	return c.sink
}

// Ready reports whether the caster can run a cast.
func (c *Caster) Ready() error {
	if c.view.mapWidth <= 0 || c.view.mapHeight <= 0 {
		return ErrMapSizeUnset
	}
	return nil
}

// PerformRayCast emits one SpriteProjection per visible object followed by
// one StripHit per column that struck a wall, in column order.
func (c *Caster) PerformRayCast(pose Pose, grid Grid, objects []SceneObject) error {
	if err := c.Ready(); err != nil {
		return err
	}

	c.EmitObjects(pose, objects)

	for i := 0; i < c.view.numRays; i++ {
		if strip, ok := c.ProjectColumn(i, pose, grid); ok {
			c.sink.AddStripToRender(strip)
		}
	}
	return nil
}

// EmitObjects projects every object and forwards the visible ones.
func (c *Caster) EmitObjects(pose Pose, objects []SceneObject) {
	for _, obj := range objects {
		if sprite, ok := c.ProjectObject(obj, pose); ok {
			c.sink.AddObjectToDraw(sprite)
		}
	}
}

// ProjectColumn casts the ray for strip i and converts the hit into screen
// space. The returned strip carries both the fisheye-corrected distance used
// for its height and the raw distance.
func (c *Caster) ProjectColumn(i int, pose Pose, grid Grid) (StripHit, bool) {
	rayAngle := mathutil.NormalizeAngle(pose.Rot + c.view.RayAngle(i))

	hit, ok := c.CastWall(rayAngle, pose, grid)
	if !ok {
		return StripHit{}, false
	}

	corrected := hit.Dist * math.Cos(pose.Rot-rayAngle)
	height := c.view.viewDist / corrected

	return StripHit{
		TextureID:     hit.TextureID,
		TextureX:      hit.TextureX * (TextureSize - 1),
		ScreenX:       float64(i) * c.view.stripWidth,
		ScreenY:       (c.view.screenHeight - height) / 2,
		Width:         c.view.stripWidth,
		Height:        height,
		IsDark:        hit.IsDark,
		Dist:          hit.Dist,
		CorrectedDist: corrected,
	}, true
}
