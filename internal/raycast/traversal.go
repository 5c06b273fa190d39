package raycast

import "math"

// WallHit is the nearest wall struck by a single ray.
type WallHit struct {
	Dist      float64
	TextureID int
	TextureX  float64 // fraction of the cell face, [0, 1)
	IsDark    bool
}

// rayHeading splits a normalized angle into the stepping direction on each
// axis. Screen y grows downwards, so "up" is the half-turn above π.
func rayHeading(angle float64) (right, up bool) {
	right = angle > 1.5*math.Pi || angle < 0.5*math.Pi
	up = angle < 0 || angle > math.Pi
	return right, up
}

// CastWall walks the ray at the given normalized angle from pose across the
// grid lines of each axis and returns the nearer of the two hits. ok is false
// when neither scan found a wall inside the map bounds.
func (c *Caster) CastWall(angle float64, pose Pose, grid Grid) (hit WallHit, ok bool) {
	right, up := rayHeading(angle)
	tan := math.Tan(angle)

	vert, vertOK := c.scanVertical(tan, right, pose, grid)
	horiz, horizOK := c.scanHorizontal(1/tan, up, pose, grid)
	return resolveHits(vert, vertOK, horiz, horizOK)
}

// scanVertical checks every vertical grid line the ray crosses. The lower x
// bound is 1 so the cell left of the line always exists.
func (c *Caster) scanVertical(tan float64, right bool, pose Pose, grid Grid) (WallHit, bool) {
	mapW := float64(c.view.mapWidth)
	mapH := float64(c.view.mapHeight)

	dx := 1.0
	cellOffset := 0.0
	x := math.Ceil(pose.X)
	if !right {
		dx = -1
		cellOffset = -1
		x = math.Floor(pose.X)
	}
	dy := dx * tan
	y := pose.Y + (x-pose.X)*tan

	for x >= 1 && x < mapW && y >= 0 && y < mapH {
		wallX := int(math.Floor(x + cellOffset))
		wallY := int(math.Floor(y))
		if id := grid[wallY][wallX]; id > 0 {
			texX := fraction(y)
			if !right {
				texX = 1 - texX
			}
			return WallHit{
				Dist:      math.Hypot(x-pose.X, y-pose.Y),
				TextureID: id,
				TextureX:  texX,
			}, true
		}
		x += dx
		y += dy
	}
	return WallHit{}, false
}

// scanHorizontal is the row-wise mirror of scanVertical. cot is 1/tan and may
// be infinite, in which case x leaves the bounds immediately.
func (c *Caster) scanHorizontal(cot float64, up bool, pose Pose, grid Grid) (WallHit, bool) {
	mapW := float64(c.view.mapWidth)
	mapH := float64(c.view.mapHeight)

	dy := 1.0
	cellOffset := 0.0
	y := math.Ceil(pose.Y)
	if up {
		dy = -1
		cellOffset = -1
		y = math.Floor(pose.Y)
	}
	dx := dy * cot
	x := pose.X + (y-pose.Y)*cot

	for x >= 0 && x < mapW && y >= 1 && y < mapH {
		wallY := int(math.Floor(y + cellOffset))
		wallX := int(math.Floor(x))
		if id := grid[wallY][wallX]; id > 0 {
			texX := fraction(x)
			if up {
				texX = 1 - texX
			}
			return WallHit{
				Dist:      math.Hypot(x-pose.X, y-pose.Y),
				TextureID: id,
				TextureX:  texX,
				IsDark:    true,
			}, true
		}
		x += dx
		y += dy
	}
	return WallHit{}, false
}

// resolveHits picks the horizontal hit only when it is strictly nearer, so
// equal distances go to the vertical (lit) face. A winning hit at distance
// zero is dropped: the viewer is standing on the face and there is nothing
// to project.
func resolveHits(vert WallHit, vertOK bool, horiz WallHit, horizOK bool) (WallHit, bool) {
	vertOK = vertOK && vert.Dist != 0

	best, ok := vert, vertOK
	if horizOK && (!vertOK || horiz.Dist < vert.Dist) {
		best, ok = horiz, true
	}
	if !ok || best.Dist == 0 {
		return WallHit{}, false
	}
	return best, true
}

func fraction(v float64) float64 {
	return v - math.Floor(v)
}
