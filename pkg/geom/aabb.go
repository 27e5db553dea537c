package geom

import "math"

// AABB is an axis-aligned bounding box.
type AABB struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the AABB's extent along X.
func (b AABB) Width() float64 { return b.MaxX - b.MinX }

// Depth returns the AABB's extent along Y.
func (b AABB) Depth() float64 { return b.MaxY - b.MinY }

// Center returns the AABB's midpoint.
func (b AABB) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Union returns the smallest AABB containing both b and other.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		MinX: math.Min(b.MinX, other.MinX),
		MinY: math.Min(b.MinY, other.MinY),
		MaxX: math.Max(b.MaxX, other.MaxX),
		MaxY: math.Max(b.MaxY, other.MaxY),
	}
}

// Overlaps reports whether b and other intersect, inflated by eps.
func (b AABB) Overlaps(other AABB, eps float64) bool {
	return b.MinX-eps < other.MaxX && other.MinX-eps < b.MaxX &&
		b.MinY-eps < other.MaxY && other.MinY-eps < b.MaxY
}

// ClosestPointTo returns the point on b's boundary closest to target,
// projected onto whichever face of b is nearest along the dominant axis
// separating the two. Used by the circulation synthesizer to anchor
// hallway endpoints on a room's bounding rectangle.
func (b AABB) ClosestPointTo(target Point) Point {
	center := b.Center()
	dx := target.X - center.X
	dy := target.Y - center.Y

	halfW := b.Width() / 2
	halfD := b.Depth() / 2

	if halfW == 0 && halfD == 0 {
		return center
	}

	// Scale dx, dy so the larger-magnitude axis reaches its half-extent
	// first; that determines which face we land on.
	var tx, ty float64
	if halfW > 0 {
		tx = math.Abs(dx) / halfW
	}
	if halfD > 0 {
		ty = math.Abs(dy) / halfD
	}

	if tx >= ty {
		// East/west face.
		x := center.X + halfW*sign(dx)
		y := center.Y + dy
		y = clamp(y, b.MinY, b.MaxY)
		return Point{X: x, Y: y}
	}

	// North/south face.
	y := center.Y + halfD*sign(dy)
	x := center.X + dx
	x = clamp(x, b.MinX, b.MaxX)
	return Point{X: x, Y: y}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
