package world

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// WallTexture describes how a wall texture id is generated.
type WallTexture struct {
	Name    string `yaml:"name"`
	Color   string `yaml:"color"`   // x/image/colornames name
	Accent  string `yaml:"accent"`  // x/image/colornames name
	Pattern string `yaml:"pattern"` // bricks, planks, panels or stone
}

// ObjectSprite describes how an object id is drawn.
type ObjectSprite struct {
	Name   string  `yaml:"name"`
	Color  string  `yaml:"color"`
	Accent string  `yaml:"accent"`
	Shape  string  `yaml:"shape"` // pillar, orb or barrel
	Scale  float64 `yaml:"scale"`
}

// TileConfig is the on-disk layout of tiles.yaml.
type TileConfig struct {
	Walls   map[int]WallTexture     `yaml:"walls"`
	Objects map[string]ObjectSprite `yaml:"objects"`
}

// TileManager resolves wall ids and object ids to their appearance.
type TileManager struct {
	walls   map[int]WallTexture
	objects map[string]ObjectSprite
}

// NewTileManager creates an empty tile manager
func NewTileManager() *TileManager {
	return &TileManager{
		walls:   make(map[int]WallTexture),
		objects: make(map[string]ObjectSprite),
	}
}

// LoadTileConfig loads tile configuration from a YAML file
func (tm *TileManager) LoadTileConfig(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read tile config file: %w", err)
	}
	return tm.ParseTileConfig(data)
}

// ParseTileConfig replaces the current definitions with those in data.
func (tm *TileManager) ParseTileConfig(data []byte) error {
	var tileConfig TileConfig
	if err := yaml.Unmarshal(data, &tileConfig); err != nil {
		return fmt.Errorf("failed to parse tile config: %w", err)
	}

	for id := range tileConfig.Walls {
		if id <= 0 {
			return fmt.Errorf("wall id %d must be positive", id)
		}
	}

	tm.walls = make(map[int]WallTexture, len(tileConfig.Walls))
	for id, wall := range tileConfig.Walls {
		tm.walls[id] = wall
	}
	tm.objects = make(map[string]ObjectSprite, len(tileConfig.Objects))
	for id, obj := range tileConfig.Objects {
		if obj.Scale <= 0 {
			obj.Scale = 1
		}
		tm.objects[id] = obj
	}
	return nil
}

// Wall returns the texture definition for a wall id.
func (tm *TileManager) Wall(id int) (WallTexture, bool) {
	w, ok := tm.walls[id]
	return w, ok
}

// Object returns the sprite definition for an object id.
func (tm *TileManager) Object(id string) (ObjectSprite, bool) {
	o, ok := tm.objects[id]
	return o, ok
}

// WallIDs returns every configured wall id in ascending order.
func (tm *TileManager) WallIDs() []int {
	ids := make([]int, 0, len(tm.walls))
	for id := range tm.walls {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// ObjectIDs returns every configured object id in ascending order.
func (tm *TileManager) ObjectIDs() []string {
	ids := make([]string, 0, len(tm.objects))
	for id := range tm.objects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MissingWalls lists wall ids used by the map that have no definition.
func (tm *TileManager) MissingWalls(m *MapData) []int {
	seen := make(map[int]bool)
	var missing []int
	for _, row := range m.Grid {
		for _, id := range row {
			if id <= 0 || seen[id] {
				continue
			}
			seen[id] = true
			if _, ok := tm.walls[id]; !ok {
				missing = append(missing, id)
			}
		}
	}
	sort.Ints(missing)
	return missing
}
