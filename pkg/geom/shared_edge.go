package geom

import "math"

// Direction is a cardinal direction, used both for the shared-edge test and
// for the observable-state projector's adjacency descriptions.
type Direction int

const (
	DirNone Direction = iota
	DirNorth
	DirSouth
	DirEast
	DirWest
)

// String returns the cardinal name of d.
func (d Direction) String() string {
	switch d {
	case DirNorth:
		return "NORTH"
	case DirSouth:
		return "SOUTH"
	case DirEast:
		return "EAST"
	case DirWest:
		return "WEST"
	default:
		return "NONE"
	}
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirNorth:
		return DirSouth
	case DirSouth:
		return DirNorth
	case DirEast:
		return DirWest
	case DirWest:
		return DirEast
	default:
		return DirNone
	}
}

// SharedEdge describes the segment where two axis-aligned bounding boxes
// meet along a shared wall.
type SharedEdge struct {
	// Direction is the cardinal direction from a's perspective: DirEast
	// means b lies to the east of a, sharing a's east (right) edge.
	Direction Direction
	// Start and End are the endpoints of the shared segment, in the axis
	// along which the two boxes overlap.
	Start, End Point
	// Length is the extent of the overlap, i.e. the usable wall length for
	// door placement.
	Length float64
}

// FindSharedEdge tests whether two AABBs share a wall within tolerance eps.
// It checks the vertical-overlap/horizontal-adjacency case (east/west) and
// the horizontal-overlap/vertical-adjacency case (north/south) and reports
// the first one found along with the overlap segment. ok is false when
// neither rooms' bounds actually touch within eps.
func FindSharedEdge(a, b AABB, eps float64) (edge SharedEdge, ok bool) {
	// East/west: a's right edge touches b's left edge, or vice versa.
	vOverlapStart := math.Max(a.MinY, b.MinY)
	vOverlapEnd := math.Min(a.MaxY, b.MaxY)
	vOverlap := vOverlapEnd - vOverlapStart

	if vOverlap > eps {
		if math.Abs(a.MaxX-b.MinX) < eps {
			return SharedEdge{
				Direction: DirEast,
				Start:     Point{X: a.MaxX, Y: vOverlapStart},
				End:       Point{X: a.MaxX, Y: vOverlapEnd},
				Length:    vOverlap,
			}, true
		}
		if math.Abs(b.MaxX-a.MinX) < eps {
			return SharedEdge{
				Direction: DirWest,
				Start:     Point{X: a.MinX, Y: vOverlapStart},
				End:       Point{X: a.MinX, Y: vOverlapEnd},
				Length:    vOverlap,
			}, true
		}
	}

	// North/south: a's top edge touches b's bottom edge, or vice versa.
	// Y increases northward by convention.
	hOverlapStart := math.Max(a.MinX, b.MinX)
	hOverlapEnd := math.Min(a.MaxX, b.MaxX)
	hOverlap := hOverlapEnd - hOverlapStart

	if hOverlap > eps {
		if math.Abs(a.MaxY-b.MinY) < eps {
			return SharedEdge{
				Direction: DirNorth,
				Start:     Point{X: hOverlapStart, Y: a.MaxY},
				End:       Point{X: hOverlapEnd, Y: a.MaxY},
				Length:    hOverlap,
			}, true
		}
		if math.Abs(b.MaxY-a.MinY) < eps {
			return SharedEdge{
				Direction: DirSouth,
				Start:     Point{X: hOverlapStart, Y: a.MinY},
				End:       Point{X: hOverlapEnd, Y: a.MinY},
				Length:    hOverlap,
			}, true
		}
	}

	return SharedEdge{}, false
}

// Midpoint returns the midpoint of the shared segment.
func (e SharedEdge) Midpoint() Point {
	return e.Start.Lerp(e.End, 0.5)
}

// VectorToCardinal classifies a displacement (dx, dy) as the dominant
// cardinal direction: NORTH/SOUTH when |dy| >= |dx|, else EAST/WEST. Y
// increases northward.
func VectorToCardinal(dx, dy float64) Direction {
	if math.Abs(dy) >= math.Abs(dx) {
		if dy >= 0 {
			return DirNorth
		}
		return DirSouth
	}
	if dx >= 0 {
		return DirEast
	}
	return DirWest
}

// DescribeRelativePosition returns a compound cardinal description of the
// displacement (dx, dy), e.g. "NORTH-EAST" when the minor-to-major axis
// ratio falls in (0.5, 2) — i.e. neither axis dominates strongly enough for
// a pure cardinal label.
func DescribeRelativePosition(dx, dy float64) string {
	ax, ay := math.Abs(dx), math.Abs(dy)
	major, minor := ax, ay
	if ay > ax {
		major, minor = ay, ax
	}
	if major == 0 {
		return VectorToCardinal(dx, dy).String()
	}
	ratio := minor / major

	primary := VectorToCardinal(dx, dy)
	if ratio <= 0.5 || ratio >= 2 {
		return primary.String()
	}

	var vert, horiz string
	if dy >= 0 {
		vert = "NORTH"
	} else {
		vert = "SOUTH"
	}
	if dx >= 0 {
		horiz = "EAST"
	} else {
		horiz = "WEST"
	}
	return vert + "-" + horiz
}
