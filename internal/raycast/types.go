// Package raycast computes the draw parameters of a grid-based 2.5D view:
// one wall strip per screen column and one billboard per visible object.
// It never draws anything itself; results are pushed into a RenderSink.
package raycast

// Pose is the viewer position in grid-cell units and its facing in radians.
type Pose struct {
	X, Y float64
	Rot  float64
}

// Vec2 is a point in grid space.
type Vec2 struct {
	X, Y float64
}

// Grid is indexed [row][col], i.e. [y][x]. Zero is empty, any positive value
// is a wall texture id. All rows must have the same length.
type Grid [][]int

// Width returns the number of columns in the first row.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// SceneObject is a point sprite living in grid space.
type SceneObject struct {
	ID       string
	Position Vec2
}

// StripHit describes one wall column to be painted.
type StripHit struct {
	TextureID int
	TextureX  float64 // texel column, 0..63
	ScreenX   float64
	ScreenY   float64
	Width     float64
	Height    float64
	IsDark    bool    // hit came from the horizontal-line scan
	Dist      float64 // euclidean distance, for depth sorting and fog
	// CorrectedDist is Dist flattened onto the view direction; Height is
	// derived from it.
	CorrectedDist float64
}

// SpriteProjection describes one object billboard to be painted.
type SpriteProjection struct {
	ID    string
	DrawX float64
	DrawY float64
	Size  float64
	Dist  float64
}

// RenderSink receives draw descriptors as they are produced. Strips arrive
// in column order.
type RenderSink interface {
	AddStripToRender(strip StripHit)
	AddObjectToDraw(sprite SpriteProjection)
}

// CollectingSink is a RenderSink that appends everything it receives.
type CollectingSink struct {
	Strips  []StripHit
	Sprites []SpriteProjection
}

func (s *CollectingSink) AddStripToRender(strip StripHit) {
	s.Strips = append(s.Strips, strip)
}

func (s *CollectingSink) AddObjectToDraw(sprite SpriteProjection) {
	s.Sprites = append(s.Sprites, sprite)
}

// Reset empties both buffers and keeps their capacity.
func (s *CollectingSink) Reset() {
	s.Strips = s.Strips[:0]
	s.Sprites = s.Sprites[:0]
}
