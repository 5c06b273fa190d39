package raycast

import "math"

// ViewGeometry holds the projection parameters shared by every ray of a cast.
// Everything except the map size is fixed at construction.
type ViewGeometry struct {
	fov          float64
	viewDist     float64
	numRays      int
	stripWidth   float64
	screenWidth  float64
	screenHeight float64

	mapWidth  int
	mapHeight int
}

// NewViewGeometry derives the projection for a canvas of the given size cut
// into strips of stripWidth pixels. fov is the full horizontal field of view
// in radians.
func NewViewGeometry(fov float64, canvasWidth, canvasHeight int, stripWidth float64) *ViewGeometry {
	w := float64(canvasWidth)
	return &ViewGeometry{
		fov:          fov,
		viewDist:     (w / 2) / math.Tan(fov/2),
		numRays:      int(math.Ceil(w / stripWidth)),
		stripWidth:   stripWidth,
		screenWidth:  w,
		screenHeight: float64(canvasHeight),
	}
}

// SetMapSize records the grid dimensions the scans are bounded by. It must be
// called before casting and again whenever the map changes size.
func (v *ViewGeometry) SetMapSize(width, height int) {
	v.mapWidth = width
	v.mapHeight = height
}

func (v *ViewGeometry) FOV() float64          { return v.fov }
func (v *ViewGeometry) ViewDist() float64     { return v.viewDist }
func (v *ViewGeometry) NumRays() int          { return v.numRays }
func (v *ViewGeometry) StripWidth() float64   { return v.stripWidth }
func (v *ViewGeometry) ScreenWidth() float64  { return v.screenWidth }
func (v *ViewGeometry) ScreenHeight() float64 { return v.screenHeight }
func (v *ViewGeometry) MapWidth() int         { return v.mapWidth }
func (v *ViewGeometry) MapHeight() int        { return v.mapHeight }

// RayAngle returns the angle of strip i relative to the view direction.
func (v *ViewGeometry) RayAngle(i int) float64 {
	screenPos := (-float64(v.numRays)/2 + float64(i)) * v.stripWidth
	rayViewDist := math.Hypot(screenPos, v.viewDist)
	return math.Asin(screenPos / rayViewDist)
}
