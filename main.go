package main

import (
	"log"

	"wallcaster/internal/config"
	"wallcaster/internal/game"
	"wallcaster/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	level, err := world.LoadMap(cfg.World.MapFile)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	// Missing tile definitions fall back to generated placeholder textures
	tiles := world.NewTileManager()
	if err := tiles.LoadTileConfig("assets/tiles.yaml"); err != nil {
		log.Printf("Warning: Failed to load tile config: %v", err)
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.NewGame(cfg, level, tiles)
	defer g.Close()
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
