package circulation

import (
	"math"

	"github.com/hearthstead/floorcore/pkg/adjacency"
	"github.com/hearthstead/floorcore/pkg/config"
	"github.com/hearthstead/floorcore/pkg/connectivity"
	"github.com/hearthstead/floorcore/pkg/geom"
	"github.com/hearthstead/floorcore/pkg/model"
)

// forbiddenPenalty multiplies the Euclidean edge weight for a forbidden
// room-type pair so Prim's algorithm avoids it whenever any alternative
// exists, without excluding it outright (the MST must still span every
// room).
const forbiddenPenalty = 1000.0

// Segment is one hallway in the synthesized network.
type Segment struct {
	ID         string
	From, To   string // room IDs
	Centerline []geom.Point
	Width      float64
	Length     float64
}

// SubRectangles returns one rectangle per centerline leg, the corridor's
// footprint. A straight segment yields one rectangle; an elbow (L-shaped)
// segment yields two.
func (s Segment) SubRectangles() []geom.Polygon {
	rects := make([]geom.Polygon, 0, len(s.Centerline)-1)
	for i := 0; i < len(s.Centerline)-1; i++ {
		if r, ok := rectangleAlong(s.Centerline[i], s.Centerline[i+1], s.Width); ok {
			rects = append(rects, r)
		}
	}
	return rects
}

func rectangleAlong(a, b geom.Point, width float64) (geom.Polygon, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		return geom.Polygon{}, false
	}
	nx, ny := -dy/length, dx/length
	hw := width / 2
	return geom.Polygon{Points: []geom.Point{
		{X: a.X + nx*hw, Y: a.Y + ny*hw},
		{X: b.X + nx*hw, Y: b.Y + ny*hw},
		{X: b.X - nx*hw, Y: b.Y - ny*hw},
		{X: a.X - nx*hw, Y: a.Y - ny*hw},
	}}, true
}

// Network is the hallway network synthesized over a level's rooms.
type Network struct {
	Segments    []Segment
	TotalLength float64
	TotalArea   float64
	Junctions   []geom.Point
}

// connectionPoint is the point on a's bounding rectangle closest to b's
// centroid, per spec §4.E.
func connectionPoint(a, b *model.Room) geom.Point {
	return a.Bounds().ClosestPointTo(b.Center())
}

// edgeWeight implements spec §4.E's MST edge weight: zero when the pair is
// policy-connectable and already shares a wall wide enough for a door;
// otherwise centroid distance, penalized when the pair is forbidden.
func edgeWeight(cfg *config.Config, a, b *model.Room) float64 {
	if adjacency.AllowsDirectConnection(a.Type, b.Type) {
		if shared, ok := geom.FindSharedEdge(a.Bounds(), b.Bounds(), cfg.AdjacencyEpsilonWall); ok && shared.Length >= cfg.DoorWidth {
			return 0
		}
	}
	dist := a.Center().Distance(b.Center())
	if adjacency.IsForbidden(a.Type, b.Type) {
		dist *= forbiddenPenalty
	}
	return dist
}

// elbowCorner picks the canonical interior corner for an L-shaped hallway
// between a and b: horizontal-then-vertical when the horizontal separation
// dominates, vertical-then-horizontal otherwise (SPEC_FULL.md §9(b)).
func elbowCorner(a, b geom.Point) geom.Point {
	if math.Abs(b.X-a.X) >= math.Abs(b.Y-a.Y) {
		return geom.Point{X: b.X, Y: a.Y}
	}
	return geom.Point{X: a.X, Y: b.Y}
}

func centerline(a, b geom.Point) []geom.Point {
	const axisEps = 1e-6
	if math.Abs(a.X-b.X) < axisEps || math.Abs(a.Y-b.Y) < axisEps {
		return []geom.Point{a, b}
	}
	corner := elbowCorner(a, b)
	return []geom.Point{a, corner, b}
}

func polylineLength(pts []geom.Point) float64 {
	total := 0.0
	for i := 0; i < len(pts)-1; i++ {
		total += pts[i].Distance(pts[i+1])
	}
	return total
}

// BuildHallwayNetwork runs Prim's algorithm over a level's rooms, starting
// from the same entry room connectivity.PickEntry chooses, and returns the
// resulting hallway segments (spec §4.E). Zero-weight MST edges (rooms
// already directly connectable) produce no segment.
func BuildHallwayNetwork(s *model.Store, cfg *config.Config, levelID string) (Network, error) {
	roomIDs, err := s.GetLevelRooms(levelID)
	if err != nil {
		return Network{}, err
	}
	if len(roomIDs) < 2 {
		return Network{}, nil
	}

	rooms := make([]*model.Room, len(roomIDs))
	for i, id := range roomIDs {
		r, err := s.GetRoom(id)
		if err != nil {
			return Network{}, err
		}
		rooms[i] = r
	}

	entry, err := connectivity.PickEntry(s, roomIDs)
	if err != nil {
		return Network{}, err
	}
	entryIdx := 0
	for i, r := range rooms {
		if r.ID == entry.ID {
			entryIdx = i
			break
		}
	}

	n := len(rooms)
	const inf = math.MaxFloat64
	dist := make([]float64, n)
	parent := make([]int, n)
	inTree := make([]bool, n)
	for i := range dist {
		dist[i] = inf
		parent[i] = -1
	}
	dist[entryIdx] = 0

	for count := 0; count < n; count++ {
		u := -1
		best := inf
		for v := 0; v < n; v++ {
			if !inTree[v] && dist[v] < best {
				best, u = dist[v], v
			}
		}
		if u == -1 {
			break
		}
		inTree[u] = true
		for v := 0; v < n; v++ {
			if inTree[v] || v == u {
				continue
			}
			w := edgeWeight(cfg, rooms[u], rooms[v])
			if w < dist[v] {
				dist[v] = w
				parent[v] = u
			}
		}
	}

	var network Network
	junctionCount := make(map[string]int)

	for v := 0; v < n; v++ {
		u := parent[v]
		if u == -1 {
			continue
		}
		if dist[v] <= 1e-9 {
			continue // direct adjacency suffices, no hallway needed
		}

		from, to := rooms[u], rooms[v]
		a := connectionPoint(from, to)
		b := connectionPoint(to, from)
		line := centerline(a, b)
		length := polylineLength(line)

		seg := Segment{
			ID:         from.ID + "-" + to.ID,
			From:       from.ID,
			To:         to.ID,
			Centerline: line,
			Width:      cfg.HallwayWidth,
			Length:     length,
		}
		network.Segments = append(network.Segments, seg)
		network.TotalLength += length
		network.TotalArea += length * cfg.HallwayWidth
		junctionCount[from.ID]++
		junctionCount[to.ID]++
	}

	for _, r := range rooms {
		if junctionCount[r.ID] >= 3 {
			network.Junctions = append(network.Junctions, r.Center())
		}
	}

	return network, nil
}
