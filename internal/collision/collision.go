package collision

import "math"

// TileChecker reports which grid cells block movement.
type TileChecker interface {
	IsWall(tileX, tileY int) bool
}

// RectCircleCollision reports whether a circle overlaps an axis-aligned
// rectangle with its top-left corner at (rectX, rectY). Touching does not
// count as overlap.
func RectCircleCollision(rectX, rectY, circleX, circleY, radius, rectWidth, rectHeight float64) bool {
	deltaX := circleX - math.Max(rectX, math.Min(circleX, rectX+rectWidth))
	deltaY := circleY - math.Max(rectY, math.Min(circleY, rectY+rectHeight))
	return deltaX*deltaX+deltaY*deltaY < radius*radius
}

// CellCircleCollision is RectCircleCollision against the unit cell (x, y).
func CellCircleCollision(tileX, tileY int, circleX, circleY, radius float64) bool {
	return RectCircleCollision(float64(tileX), float64(tileY), circleX, circleY, radius, 1, 1)
}

// CanMoveTo reports whether a circle of the given radius centred at (x, y)
// is clear of every wall cell it could touch.
func CanMoveTo(checker TileChecker, x, y, radius float64) bool {
	minX := int(math.Floor(x - radius))
	maxX := int(math.Floor(x + radius))
	minY := int(math.Floor(y - radius))
	maxY := int(math.Floor(y + radius))

	for ty := minY; ty <= maxY; ty++ {
		for tx := minX; tx <= maxX; tx++ {
			if checker.IsWall(tx, ty) && CellCircleCollision(tx, ty, x, y, radius) {
				return false
			}
		}
	}
	return true
}

// SlideMove moves from (x, y) by (dx, dy), dropping whichever axis would
// collide so the mover slides along walls.
func SlideMove(checker TileChecker, x, y, dx, dy, radius float64) (float64, float64) {
	if CanMoveTo(checker, x+dx, y+dy, radius) {
		return x + dx, y + dy
	}
	if CanMoveTo(checker, x+dx, y, radius) {
		return x + dx, y
	}
	if CanMoveTo(checker, x, y+dy, radius) {
		return x, y + dy
	}
	return x, y
}
