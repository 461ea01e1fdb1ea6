package scene

import (
	"math"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// CellAspect is the width/height ratio of one terminal cell.
// Most terminal fonts are about twice as tall as they are wide.
const CellAspect = 0.5

// Camera is a perspective camera looking down -Z with +Y up.
type Camera struct {
	Pos    core.Vec3
	FOV    float64 // Vertical field of view in degrees
	Aspect float64 // Surface width/height in square units
	Near   float64
	Far    float64
}

// AspectFor returns the square-unit aspect ratio of a surface measured in cells.
func AspectFor(width, height int) float64 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float64(width) * CellAspect / float64(height)
}

// focal returns the projection scale for the vertical field of view.
func (c Camera) focal() float64 {
	return 1 / math.Tan(c.FOV*math.Pi/360)
}

// Depth returns the distance of p in front of the camera along the view axis.
func (c Camera) Depth(p core.Vec3) float64 {
	return c.Pos.Z - p.Z
}

// Visible reports whether p lies between the near and far planes.
func (c Camera) Visible(p core.Vec3) bool {
	d := c.Depth(p)
	return d >= c.Near && d <= c.Far
}

// Project maps a world point to fractional screen coordinates on a surface of
// the given size. ok is false when the point is outside the depth range.
func (c Camera) Project(p core.Vec3, width, height int) (sx, sy float64, ok bool) {
	if !c.Visible(p) {
		return 0, 0, false
	}
	r := p.Sub(c.Pos)
	depth := -r.Z
	f := c.focal()

	ndcX := r.X * f / (c.aspect() * depth)
	ndcY := r.Y * f / depth

	sx = (ndcX + 1) / 2 * float64(width)
	sy = (1 - ndcY) / 2 * float64(height)
	return sx, sy, true
}

// ScaleAt returns how many cells one world unit covers horizontally and
// vertically at the given depth.
func (c Camera) ScaleAt(depth float64, width, height int) (sx, sy float64) {
	if depth <= 0 {
		return 0, 0
	}
	f := c.focal()
	sx = f / (c.aspect() * depth) * float64(width) / 2
	sy = f / depth * float64(height) / 2
	return sx, sy
}

// Unproject casts a ray through the centre of the screen cell (col, row) and
// returns where it meets the horizontal plane y = planeY.
func (c Camera) Unproject(col, row, width, height int, planeY float64) (core.Vec3, bool) {
	if width <= 0 || height <= 0 {
		return core.Vec3{}, false
	}
	f := c.focal()
	ndcX := (float64(col)+0.5)/float64(width)*2 - 1
	ndcY := 1 - (float64(row)+0.5)/float64(height)*2

	dy := planeY - c.Pos.Y
	// The ray is (ndcX*aspect/f, ndcY/f, -1) scaled by depth.
	if ndcY == 0 || (dy < 0) != (ndcY < 0) {
		return core.Vec3{}, false
	}
	depth := dy * f / ndcY
	if depth < c.Near || depth > c.Far {
		return core.Vec3{}, false
	}
	x := c.Pos.X + ndcX*c.aspect()*depth/f
	return core.V3(x, planeY, c.Pos.Z-depth), true
}

func (c Camera) aspect() float64 {
	if c.Aspect <= 0 {
		return 1
	}
	return c.Aspect
}
