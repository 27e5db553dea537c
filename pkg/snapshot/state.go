package snapshot

import "github.com/hearthstead/floorcore/pkg/geom"

// RoomSummary is the projected view of one room, spec §4.G.
type RoomSummary struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Type   string     `json:"type"`
	Center geom.Point `json:"center"`
	Width  float64    `json:"width"`
	Depth  float64    `json:"depth"`
	Area   float64    `json:"area"`
	Bounds geom.AABB  `json:"bounds"`
}

// WallSummary is the projected view of one wall, spec §4.G.
type WallSummary struct {
	ID           string     `json:"id"`
	Start        geom.Point `json:"start"`
	End          geom.Point `json:"end"`
	Length       float64    `json:"length"`
	Facing       string     `json:"facing"` // NORTH/EAST/SOUTH/WEST, dominant-axis of Start->End
	IsStructural bool       `json:"isStructural"`
	IsExterior   bool       `json:"isExterior"`
	Height       float64    `json:"height"`
}

// OpeningSummary is the projected view of one opening, spec §4.G.
type OpeningSummary struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	WallID     string  `json:"wallId,omitempty"`
	Room1      string  `json:"room1,omitempty"`
	Room2      string  `json:"room2,omitempty"`
	Position   float64 `json:"position"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	SillHeight float64 `json:"sillHeight,omitempty"`
}

// Floorplan groups the geometric projections of a level.
type Floorplan struct {
	Rooms    []RoomSummary    `json:"rooms"`
	Walls    []WallSummary    `json:"walls"`
	Openings []OpeningSummary `json:"openings"`
}

// Layout carries the level's aggregate figures and the human-readable
// adjacency/circulation descriptions, spec §4.G.
type Layout struct {
	TotalArea   float64   `json:"totalArea"`
	Bounds      geom.AABB `json:"bounds"`
	Adjacencies []string  `json:"adjacencies"`
	Circulation []string  `json:"circulation"`
}

// Constraints mirrors constraints.Report's three disjoint lists, spec §4.F.
type Constraints struct {
	Satisfied []string `json:"satisfied"`
	Violated  []string `json:"violated"`
	Warnings  []string `json:"warnings"`
}

// Context carries the current project/building/level identity, spec §4.G.
type Context struct {
	ProjectID    string `json:"projectId"`
	ProjectName  string `json:"projectName"`
	BuildingID   string `json:"buildingId"`
	BuildingName string `json:"buildingName"`
	LevelID      string `json:"levelId"`
	LevelName    string `json:"levelName"`
	UnitSystem   string `json:"unitSystem"`
}

// ActionResult describes the outcome of the command that produced this
// State, set by the facade (package floorplan) after it runs a command.
// Nil when the State was produced by a plain read (e.g. get_observable_state
// called outside the context of a mutation).
type ActionResult struct {
	Tool    string            `json:"tool"`
	Args    map[string]string `json:"args,omitempty"`
	Result  string            `json:"result"` // "success" | "error"
	Message string            `json:"message,omitempty"`
	Created map[string]string `json:"created,omitempty"`
}

// State is the deterministic snapshot produced by Build, spec §4.G.
type State struct {
	Floorplan   Floorplan     `json:"floorplan"`
	Layout      Layout        `json:"layout"`
	LastAction  *ActionResult `json:"lastAction,omitempty"`
	Constraints Constraints   `json:"constraints"`
	Context     Context       `json:"context"`
}
