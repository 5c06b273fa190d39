package graphics

import (
	"image"
	"image/color"

	"wallcaster/internal/raycast"
	"wallcaster/internal/world"
)

// GenerateWallTexture draws a TextureSize square texture for def.
func GenerateWallTexture(def world.WallTexture) *image.RGBA {
	const n = raycast.TextureSize
	base := NamedColor(def.Color, fallbackColor)
	accent := NamedColor(def.Accent, fallbackAccent)
	img := image.NewRGBA(image.Rect(0, 0, n, n))

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := base
			switch def.Pattern {
			case "bricks":
				row := y / 16
				offset := (row % 2) * 16
				if y%16 == 0 || (x+offset)%32 == 0 {
					c = accent
				}
			case "planks":
				if x%16 == 0 || (y == 20 && x%16 > 4) {
					c = accent
				}
			case "panels":
				if x < 2 || y < 2 || x >= n-2 || y >= n-2 || (x >= 20 && x < 44 && (y == 20 || y == 43)) {
					c = accent
				}
			case "stone":
				if (x*7+y*13)%23 == 0 || ((x/16+y/16)%2 == 0 && (x%16 == 0 || y%16 == 0)) {
					c = accent
				}
			default:
				if (x/8+y/8)%2 == 0 {
					c = accent
				}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// GenerateSprite draws a SpriteSize square billboard for def. Pixels outside
// the shape stay transparent.
func GenerateSprite(def world.ObjectSprite) *image.RGBA {
	const n = SpriteSize
	base := NamedColor(def.Color, fallbackColor)
	accent := NamedColor(def.Accent, fallbackAccent)
	img := image.NewRGBA(image.Rect(0, 0, n, n))

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			var c color.RGBA
			switch def.Shape {
			case "orb":
				dx, dy := x-n/2, y-n/2
				if d := dx*dx + dy*dy; d < (n/2-2)*(n/2-2) {
					c = base
					if d > (n/2-6)*(n/2-6) {
						c = accent
					}
				}
			case "barrel":
				if x >= 12 && x < n-12 && y >= 8 {
					c = base
					if y%14 == 0 || x == 12 || x == n-13 {
						c = accent
					}
				}
			default:
				if x >= 24 && x < n-24 {
					c = base
					if y < 6 || y >= n-6 {
						c = accent
					}
				}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
