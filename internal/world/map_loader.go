package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"wallcaster/internal/raycast"
)

// Map characters. Digits 1-9 are wall texture ids; lowercase letters place an
// object named after the letter; '@' places an object named by the next
// "  >[obj:key]" definition at the end of the line.
const (
	EmptyChar       = '.'
	StartChar       = '+'
	ObjectSlotChar  = '@'
	definitionStart = "  >"
)

var (
	// ErrNotRectangular is returned when map rows differ in length.
	ErrNotRectangular = errors.New("map rows have inconsistent width")
	// ErrEmptyMap is returned when a map file has no rows.
	ErrEmptyMap = errors.New("map contains no rows")
)

// MapData is a loaded level.
type MapData struct {
	Width   int
	Height  int
	Grid    raycast.Grid
	Objects []raycast.SceneObject
	StartX  int // -1 when the map has no '+'
	StartY  int
}

// startMarker is a cell value no wall can take; it is cleared after parsing.
const startMarker = -1

// LoadMap loads a map from the specified file path.
func LoadMap(mapPath string) (*MapData, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	data, err := ParseMap(file)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", mapPath, err)
	}
	return data, nil
}

// ParseMap reads a map in text form. Blank lines and lines starting with '#'
// are skipped.
func ParseMap(r io.Reader) (*MapData, error) {
	data := &MapData{StartX: -1, StartY: -1}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		y := len(data.Grid)
		row, objects, err := parseRow(line, y)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", y+1, err)
		}
		if y > 0 && len(row) != len(data.Grid[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d",
				ErrNotRectangular, y+1, len(row), len(data.Grid[0]))
		}
		for x, cell := range row {
			if cell == startMarker {
				data.StartX, data.StartY = x, y
				row[x] = 0
			}
		}
		data.Grid = append(data.Grid, row)
		data.Objects = append(data.Objects, objects...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map: %w", err)
	}
	if len(data.Grid) == 0 {
		return nil, ErrEmptyMap
	}

	data.Height = len(data.Grid)
	data.Width = len(data.Grid[0])
	return data, nil
}

func parseRow(line string, y int) ([]int, []raycast.SceneObject, error) {
	tiles := line
	var defs []string
	if i := strings.Index(line, definitionStart); i != -1 {
		tiles = line[:i]
		for _, def := range strings.Split(line[i+len(definitionStart):], ",") {
			def = strings.TrimPrefix(strings.TrimSpace(def), ">")
			key, ok := strings.CutPrefix(def, "[obj:")
			if !ok || !strings.HasSuffix(key, "]") {
				return nil, nil, fmt.Errorf("bad object definition %q", def)
			}
			defs = append(defs, strings.TrimSuffix(key, "]"))
		}
	}

	row := make([]int, 0, len(tiles))
	var objects []raycast.SceneObject
	for x, char := range tiles {
		cell := 0
		switch {
		case char == EmptyChar:
		case char == StartChar:
			cell = startMarker
		case char >= '1' && char <= '9':
			cell = int(char - '0')
		case char >= 'a' && char <= 'z':
			objects = append(objects, newObject(string(char), x, y))
		case char == ObjectSlotChar:
			if len(defs) == 0 {
				return nil, nil, fmt.Errorf("column %d: '@' without a matching [obj:key] definition", x+1)
			}
			objects = append(objects, newObject(defs[0], x, y))
			defs = defs[1:]
		default:
			return nil, nil, fmt.Errorf("column %d: unknown map character %q", x+1, char)
		}
		row = append(row, cell)
	}
	if len(defs) > 0 {
		return nil, nil, fmt.Errorf("%d object definitions without an '@' slot", len(defs))
	}
	return row, objects, nil
}

func newObject(id string, x, y int) raycast.SceneObject {
	return raycast.SceneObject{ID: id, Position: raycast.Vec2{X: float64(x), Y: float64(y)}}
}

// IsWall reports whether cell (x, y) blocks movement. Cells outside the map
// count as walls.
func (m *MapData) IsWall(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return true
	}
	return m.Grid[y][x] > 0
}

// StartPose returns the viewer pose at the centre of the start cell, or at the
// first empty cell when the map has no '+'.
func (m *MapData) StartPose(rot float64) raycast.Pose {
	x, y := m.StartX, m.StartY
	if x < 0 {
		x, y = m.firstEmptyCell()
	}
	return raycast.Pose{X: float64(x) + 0.5, Y: float64(y) + 0.5, Rot: rot}
}

func (m *MapData) firstEmptyCell() (int, int) {
	for y, row := range m.Grid {
		for x, cell := range row {
			if cell == 0 {
				return x, y
			}
		}
	}
	return 0, 0
}
