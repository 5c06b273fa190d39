package graphics

import (
	"image"
	"image/color"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	"wallcaster/internal/raycast"
	"wallcaster/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
	xdraw "golang.org/x/image/draw"
)

// SpriteSize is the side of a generated object sprite.
const SpriteSize = 64

var (
	fallbackColor  = colornames.Magenta
	fallbackAccent = colornames.Black
)

// TextureAtlas holds one wall texture per wall id and one sprite per object
// id. Pixels are generated on the CPU up front; GPU images are created on
// first use so the atlas can be built before the game loop starts.
type TextureAtlas struct {
	tiles    *world.TileManager
	searchIn string

	wallPixels   map[int]*image.RGBA
	spritePixels map[string]*image.RGBA

	walls   map[int]*ebiten.Image
	sprites map[string]*ebiten.Image
}

// NewTextureAtlas builds pixels for everything tiles defines. If textureDir
// is non-empty, a PNG named after a wall or object ("brick.png") found there
// replaces the generated pixels.
func NewTextureAtlas(tiles *world.TileManager, textureDir string) *TextureAtlas {
	ta := &TextureAtlas{
		tiles:        tiles,
		searchIn:     textureDir,
		wallPixels:   make(map[int]*image.RGBA),
		spritePixels: make(map[string]*image.RGBA),
		walls:        make(map[int]*ebiten.Image),
		sprites:      make(map[string]*ebiten.Image),
	}

	for _, id := range tiles.WallIDs() {
		def, _ := tiles.Wall(id)
		if img := ta.loadIfExists(def.Name); img != nil {
			ta.wallPixels[id] = img
			continue
		}
		ta.wallPixels[id] = GenerateWallTexture(def)
	}
	for _, id := range tiles.ObjectIDs() {
		def, _ := tiles.Object(id)
		if img := ta.loadIfExists(def.Name); img != nil {
			ta.spritePixels[id] = img
			continue
		}
		ta.spritePixels[id] = GenerateSprite(def)
	}
	return ta
}

func (ta *TextureAtlas) loadIfExists(name string) *image.RGBA {
	if ta.searchIn == "" || name == "" {
		return nil
	}
	path := filepath.Join(ta.searchIn, name+".png")
	file, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		log.Printf("Warning: failed to decode %s: %v", path, err)
		return nil
	}
	return resampleTexture(img)
}

// resampleTexture scales img to TextureSize square. Nearest neighbour keeps
// texels sharp at wall resolution.
func resampleTexture(img image.Image) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, raycast.TextureSize, raycast.TextureSize))
	xdraw.NearestNeighbor.Scale(rgba, rgba.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return rgba
}

// WallPixels returns the CPU copy of a wall texture, generating a fallback
// checkerboard for unknown ids.
func (ta *TextureAtlas) WallPixels(id int) *image.RGBA {
	if img, ok := ta.wallPixels[id]; ok {
		return img
	}
	img := GenerateWallTexture(world.WallTexture{Pattern: "checker"})
	ta.wallPixels[id] = img
	return img
}

// SpritePixels returns the CPU copy of an object sprite.
func (ta *TextureAtlas) SpritePixels(id string) *image.RGBA {
	if img, ok := ta.spritePixels[id]; ok {
		return img
	}
	img := GenerateSprite(world.ObjectSprite{Shape: "pillar", Scale: 1})
	ta.spritePixels[id] = img
	return img
}

// Wall returns the GPU image for a wall id.
func (ta *TextureAtlas) Wall(id int) *ebiten.Image {
	if img, ok := ta.walls[id]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(ta.WallPixels(id))
	ta.walls[id] = img
	return img
}

// Sprite returns the GPU image for an object id.
func (ta *TextureAtlas) Sprite(id string) *ebiten.Image {
	if img, ok := ta.sprites[id]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(ta.SpritePixels(id))
	ta.sprites[id] = img
	return img
}

// SpriteScale returns the configured size factor for an object id.
func (ta *TextureAtlas) SpriteScale(id string) float64 {
	if def, ok := ta.tiles.Object(id); ok {
		return def.Scale
	}
	return 1
}

// NamedColor resolves an x/image/colornames name. Unknown names give fallback.
func NamedColor(name string, fallback color.RGBA) color.RGBA {
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	return fallback
}
