package model

import "github.com/hearthstead/floorcore/pkg/geom"

// Project is the root of the building hierarchy.
type Project struct {
	ID         string
	Name       string
	UnitSystem string
	CodeRegion string
	Buildings  []string // ordered BuildingIds
	EventCount uint64   // monotonic per project, per spec §3
}

// Building belongs to a Project and owns an ordered list of Levels.
type Building struct {
	ID        string
	ProjectID string
	Name      string
	Levels    []string // ordered LevelIds
	GridID    string   // optional, empty when absent
}

// Level is one story within a Building.
type Level struct {
	ID           string
	BuildingID   string
	Name         string
	Elevation    float64 // feet above datum
	FloorToFloor float64
	FootprintID  string   // optional, empty when absent
	WallIDs      []string // ordered
	RoomIDs      []string // ordered
}

// Footprint is the closed polygon defining a level's exterior boundary.
type Footprint struct {
	ID      string
	LevelID string
	Polygon geom.Polygon
}

// Area returns the footprint's shoelace area.
func (f *Footprint) Area() float64 { return f.Polygon.Area() }

// Perimeter returns the footprint's perimeter.
func (f *Footprint) Perimeter() float64 { return f.Polygon.Perimeter() }

// Wall is a straight wall segment within a Level.
type Wall struct {
	ID         string
	LevelID    string
	Start, End geom.Point
	Height     float64
	AssemblyID string
	OpeningIDs []string // ordered
}

// Length returns the wall's length.
func (w *Wall) Length() float64 { return w.Start.Distance(w.End) }

// Opening is a door, window, or cased opening in a wall, or (when generated
// by the auto-router) a connection between two rooms that has not yet been
// anchored to a specific wall segment.
type Opening struct {
	ID         string
	Kind       OpeningKind
	WallID     string // empty when anchored only by Room1/Room2
	Room1      string // empty when anchored only by WallID
	Room2      string
	Position   float64 // [0,1] along the wall
	Width      float64
	Height     float64
	SillHeight float64 // windows only

	// Midpoint is the resolved world-space location of the opening when it
	// has no WallID to resolve a position against (i.e. it was generated by
	// the auto-router directly from a shared-edge midpoint). Zero value
	// when WallID is set; use ResolvedMidpoint to read either case.
	Midpoint geom.Point
}

// ResolvedMidpoint returns the opening's world-space position, resolving
// against its wall when anchored to one, or returning the stored Midpoint
// otherwise. Both representations must describe the same geometry, per
// spec §3.
func (o *Opening) ResolvedMidpoint(wall *Wall) geom.Point {
	if wall != nil {
		return wall.Start.Lerp(wall.End, o.Position)
	}
	return o.Midpoint
}

// Room is a named, typed space with a closed polygon boundary.
type Room struct {
	ID         string
	LevelID    string
	Name       string
	Type       RoomType
	Polygon    geom.Polygon
	OpeningIDs []string // openings on bordering walls
}

// Center returns the room's centroid.
func (r *Room) Center() geom.Point { return r.Polygon.Centroid() }

// Bounds returns the room's axis-aligned bounds.
func (r *Room) Bounds() geom.AABB { return r.Polygon.Bounds() }

// Area returns the room's unsigned shoelace area.
func (r *Room) Area() float64 { return r.Polygon.Area() }

// Dimensions returns the {width, depth} extent of the room's bounds.
func (r *Room) Dimensions() (width, depth float64) { return r.Polygon.Dimensions() }

// WallAssembly is a named, layered wall construction. Referenced by Walls;
// never destroyed while referenced (spec §3).
type WallAssembly struct {
	ID     string
	Name   string
	Layers []WallLayer
}

// Grid is a building-scoped collection of grid axes.
type Grid struct {
	ID         string
	BuildingID string
	AxisIDs    []string
}

// GridAxis is a single named axis within a Grid.
type GridAxis struct {
	ID        string
	GridID    string
	Name      string
	Direction GridDirection
	Offset    float64
}
