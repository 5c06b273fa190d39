// Package render paints the draw descriptors produced by the raycaster onto
// an ebiten screen.
package render

import (
	"image"
	"image/color"
	"math"
	"sort"

	"wallcaster/internal/config"
	"wallcaster/internal/graphics"
	"wallcaster/internal/mathutil"
	"wallcaster/internal/raycast"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// Shading controls how distance and wall orientation darken a draw.
type Shading struct {
	FogDistance   float64
	DarkFactor    float64
	BrightnessMin float64
}

// ShadingFromConfig reads the shading parameters from the graphics section.
func ShadingFromConfig(cfg config.GraphicsConfig) Shading {
	return Shading{
		FogDistance:   cfg.FogDistance,
		DarkFactor:    cfg.DarkFactor,
		BrightnessMin: cfg.BrightnessMin,
	}
}

// Brightness returns the colour scale for something dist cells away.
func (s Shading) Brightness(dist float64, dark bool) float64 {
	brightness := 1.0
	if s.FogDistance > 0 {
		brightness = 1.0 - dist/s.FogDistance
	}
	if brightness < s.BrightnessMin {
		brightness = s.BrightnessMin
	}
	if brightness > 1 {
		brightness = 1
	}
	if dark {
		brightness *= s.DarkFactor
	}
	return brightness
}

// drawItem is either a strip or a sprite; exactly one pointer is set.
type drawItem struct {
	dist   float64
	strip  *raycast.StripHit
	sprite *raycast.SpriteProjection
}

// Engine collects one frame of strips and sprites and paints them.
// It implements raycast.RenderSink.
type Engine struct {
	atlas   *graphics.TextureAtlas
	shading Shading
	sky     color.RGBA
	floor   color.RGBA

	strips  []raycast.StripHit
	sprites []raycast.SpriteProjection
	items   []drawItem
}

// NewEngine creates an engine drawing with atlas.
func NewEngine(atlas *graphics.TextureAtlas, cfg config.GraphicsConfig) *Engine {
	return &Engine{
		atlas:   atlas,
		shading: ShadingFromConfig(cfg),
		sky:     graphics.NamedColor(cfg.SkyColor, colornames.Lightsteelblue),
		floor:   graphics.NamedColor(cfg.FloorColor, colornames.Dimgray),
	}
}

func (e *Engine) AddStripToRender(strip raycast.StripHit) {
	e.strips = append(e.strips, strip)
}

func (e *Engine) AddObjectToDraw(sprite raycast.SpriteProjection) {
	e.sprites = append(e.sprites, sprite)
}

// BeginFrame drops everything buffered by the previous frame.
func (e *Engine) BeginFrame() {
	e.strips = e.strips[:0]
	e.sprites = e.sprites[:0]
}

// Strips returns the strips buffered this frame.
func (e *Engine) Strips() []raycast.StripHit {
	return e.strips
}

// Sprites returns the sprites buffered this frame.
func (e *Engine) Sprites() []raycast.SpriteProjection {
	return e.sprites
}

// buildDrawList merges strips and sprites into painter's order, farthest
// first. Equal distances keep strips ahead of sprites so a sprite touching a
// wall stays visible, and otherwise keep emission order.
func buildDrawList(items []drawItem, strips []raycast.StripHit, sprites []raycast.SpriteProjection) []drawItem {
	items = items[:0]
	for i := range strips {
		items = append(items, drawItem{dist: strips[i].Dist, strip: &strips[i]})
	}
	for i := range sprites {
		items = append(items, drawItem{dist: sprites[i].Dist, sprite: &sprites[i]})
	}
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].dist > items[b].dist
	})
	return items
}

// Draw paints sky, floor and the buffered frame onto screen.
func (e *Engine) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	w, h := float32(bounds.Dx()), float32(bounds.Dy())
	vector.DrawFilledRect(screen, 0, 0, w, h/2, e.sky, false)
	vector.DrawFilledRect(screen, 0, h/2, w, h-h/2, e.floor, false)

	e.items = buildDrawList(e.items, e.strips, e.sprites)
	for _, item := range e.items {
		if item.strip != nil {
			e.drawStrip(screen, item.strip)
		} else {
			e.drawSprite(screen, item.sprite)
		}
	}
}

// textureColumn converts a texel coordinate to a column index inside the
// texture.
func textureColumn(texX float64) int {
	return mathutil.IntMax(0, mathutil.IntMin(int(texX), raycast.TextureSize-1))
}

func (e *Engine) drawStrip(screen *ebiten.Image, strip *raycast.StripHit) {
	col := textureColumn(strip.TextureX)
	texture := e.atlas.Wall(strip.TextureID)
	slice := texture.SubImage(image.Rect(col, 0, col+1, raycast.TextureSize)).(*ebiten.Image)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(strip.Width, strip.Height/raycast.TextureSize)
	opts.GeoM.Translate(strip.ScreenX, strip.ScreenY)
	brightness := float32(e.shading.Brightness(strip.Dist, strip.IsDark))
	opts.ColorScale.Scale(brightness, brightness, brightness, 1.0)
	screen.DrawImage(slice, opts)
}

// spriteRect returns the on-screen box of a sprite after applying its
// configured scale. Scaled sprites stay centred horizontally and rest on
// the floor line of the unscaled box.
func spriteRect(sprite *raycast.SpriteProjection, scale float64) (x, y, size float64) {
	size = sprite.Size * scale
	x = sprite.DrawX + (sprite.Size-size)/2
	y = sprite.DrawY + sprite.Size - size
	return x, y, size
}

func (e *Engine) drawSprite(screen *ebiten.Image, sprite *raycast.SpriteProjection) {
	x, y, size := spriteRect(sprite, e.atlas.SpriteScale(sprite.ID))
	// An object in the viewer's own cell projects to an infinite size.
	if size <= 0 || math.IsInf(size, 0) || math.IsNaN(size) {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(size/graphics.SpriteSize, size/graphics.SpriteSize)
	opts.GeoM.Translate(x, y)
	brightness := float32(e.shading.Brightness(sprite.Dist, false))
	opts.ColorScale.Scale(brightness, brightness, brightness, 1.0)
	screen.DrawImage(e.atlas.Sprite(sprite.ID), opts)
}
