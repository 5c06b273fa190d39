package world

import (
	"reflect"
	"strings"
	"testing"
)

const sampleTiles = `
walls:
  1:
    name: brick
    color: firebrick
    accent: darkred
    pattern: bricks
  3:
    name: wood
    color: peru
    pattern: planks
objects:
  lamp:
    name: lamp
    color: gold
    shape: orb
    scale: 0.5
  barrel:
    color: saddlebrown
    shape: barrel
`

func TestParseTileConfig(t *testing.T) {
	tm := NewTileManager()
	if err := tm.ParseTileConfig([]byte(sampleTiles)); err != nil {
		t.Fatalf("ParseTileConfig: %v", err)
	}

	brick, ok := tm.Wall(1)
	if !ok || brick.Pattern != "bricks" || brick.Color != "firebrick" {
		t.Errorf("Wall(1) = %+v, %v", brick, ok)
	}
	if _, ok := tm.Wall(2); ok {
		t.Error("Wall(2) should be undefined")
	}
	if got := tm.WallIDs(); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("WallIDs = %v", got)
	}

	lamp, _ := tm.Object("lamp")
	if lamp.Scale != 0.5 {
		t.Errorf("lamp scale = %f, want 0.5", lamp.Scale)
	}
	barrel, _ := tm.Object("barrel")
	if barrel.Scale != 1 {
		t.Errorf("barrel scale should default to 1, got %f", barrel.Scale)
	}
	if got := tm.ObjectIDs(); !reflect.DeepEqual(got, []string{"barrel", "lamp"}) {
		t.Errorf("ObjectIDs = %v", got)
	}
}

func TestParseTileConfigRejectsBadInput(t *testing.T) {
	tm := NewTileManager()
	if err := tm.ParseTileConfig([]byte("walls:\n  0:\n    name: void\n")); err == nil {
		t.Error("expected an error for wall id 0")
	}
	if err := tm.ParseTileConfig([]byte("walls: [")); err == nil {
		t.Error("expected a yaml error")
	}
}

func TestMissingWalls(t *testing.T) {
	tm := NewTileManager()
	if err := tm.ParseTileConfig([]byte(sampleTiles)); err != nil {
		t.Fatalf("ParseTileConfig: %v", err)
	}
	data, err := ParseMap(strings.NewReader("1111\n1.21\n1.41\n1331\n"))
	if err != nil {
		t.Fatalf("ParseMap: %v", err)
	}
	if got := tm.MissingWalls(data); !reflect.DeepEqual(got, []int{2, 4}) {
		t.Errorf("MissingWalls = %v, want [2 4]", got)
	}
}

func TestBundledTilesCoverBundledLevel(t *testing.T) {
	tm := NewTileManager()
	if err := tm.LoadTileConfig("../../assets/tiles.yaml"); err != nil {
		t.Fatalf("LoadTileConfig: %v", err)
	}
	data, err := LoadMap("../../assets/level1.map")
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	if missing := tm.MissingWalls(data); len(missing) != 0 {
		t.Errorf("tiles.yaml is missing walls %v", missing)
	}
	for _, obj := range data.Objects {
		if _, ok := tm.Object(obj.ID); !ok {
			t.Errorf("tiles.yaml has no sprite for object %q", obj.ID)
		}
	}
}
