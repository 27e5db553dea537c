package circulation

import (
	"math"

	"github.com/hearthstead/floorcore/pkg/config"
	"github.com/hearthstead/floorcore/pkg/geom"
	"github.com/hearthstead/floorcore/pkg/model"
)

// openPlanClusterEpsilon is the adjacency tolerance used for open-plan
// cluster detection, resolved in SPEC_FULL.md §9(a) as 1 ft.
const openPlanClusterEpsilon = 1.0

// overlapFactor discounts traffic-path area when multiple paths share a
// cluster, per spec §4.E.
const overlapFactor = 0.8

// ClusterEntry is a connection between a room inside an open-plan cluster
// and a room outside it.
type ClusterEntry struct {
	RoomID      string
	OtherRoomID string
	Point       geom.Point
	Primary     bool // target is a foyer or hallway
}

// TrafficPath is a rectangular clearance zone inside an open-plan cluster.
type TrafficPath struct {
	Kind    string // "primary_circulation" | "kitchen_work_zone" | "entry_zone"
	Polygon geom.Polygon
}

// Cluster is a maximal connected component of open-plan rooms.
type Cluster struct {
	RoomIDs      []string
	Bounds       geom.AABB
	EntryPoints  []ClusterEntry
	TrafficPaths []TrafficPath
	// EstimatedArea is the traffic-path area, discounted by overlapFactor
	// when more than one path is present (spec §4.E).
	EstimatedArea float64
}

// DetectOpenPlanClusters finds maximal connected components of open-plan
// rooms (living/kitchen/dining/family/great_room) on a level and computes
// their traffic-path overlays, per spec §4.E.
func DetectOpenPlanClusters(s *model.Store, cfg *config.Config, levelID string) ([]Cluster, error) {
	roomIDs, err := s.GetLevelRooms(levelID)
	if err != nil {
		return nil, err
	}

	rooms := make(map[string]*model.Room)
	var openPlanIDs []string
	for _, id := range roomIDs {
		r, err := s.GetRoom(id)
		if err != nil {
			return nil, err
		}
		rooms[id] = r
		if r.Type.IsOpenPlan() {
			openPlanIDs = append(openPlanIDs, id)
		}
	}

	adj := make(map[string][]string, len(openPlanIDs))
	for _, id := range openPlanIDs {
		adj[id] = nil
	}
	for i := 0; i < len(openPlanIDs); i++ {
		for j := i + 1; j < len(openPlanIDs); j++ {
			a, b := rooms[openPlanIDs[i]], rooms[openPlanIDs[j]]
			if _, ok := geom.FindSharedEdge(a.Bounds(), b.Bounds(), openPlanClusterEpsilon); ok {
				adj[a.ID] = append(adj[a.ID], b.ID)
				adj[b.ID] = append(adj[b.ID], a.ID)
			}
		}
	}

	visited := make(map[string]bool, len(openPlanIDs))
	var clusters []Cluster
	for _, id := range openPlanIDs {
		if visited[id] {
			continue
		}
		var members []string
		queue := []string{id}
		visited[id] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			members = append(members, cur)
			for _, next := range adj[cur] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}

		cluster := buildCluster(s, cfg, levelID, members, rooms)
		clusters = append(clusters, cluster)
	}

	return clusters, nil
}

func buildCluster(s *model.Store, cfg *config.Config, levelID string, memberIDs []string, rooms map[string]*model.Room) Cluster {
	memberSet := make(map[string]bool, len(memberIDs))
	bounds := rooms[memberIDs[0]].Bounds()
	for _, id := range memberIDs {
		memberSet[id] = true
		bounds = bounds.Union(rooms[id].Bounds())
	}

	cluster := Cluster{RoomIDs: memberIDs, Bounds: bounds}

	openings, err := s.GetLevelRoomOpenings(levelID)
	if err == nil {
		for _, o := range openings {
			var inside, outside string
			switch {
			case memberSet[o.Room1] && !memberSet[o.Room2]:
				inside, outside = o.Room1, o.Room2
			case memberSet[o.Room2] && !memberSet[o.Room1]:
				inside, outside = o.Room2, o.Room1
			default:
				continue
			}
			other, err := s.GetRoom(outside)
			if err != nil {
				continue
			}
			primary := other.Type == model.RoomFoyer || other.Type == model.RoomHallway
			cluster.EntryPoints = append(cluster.EntryPoints, ClusterEntry{
				RoomID:      inside,
				OtherRoomID: outside,
				Point:       o.Midpoint,
				Primary:     primary,
			})
		}
	}

	cluster.TrafficPaths = buildTrafficPaths(cfg, cluster, rooms)
	total := 0.0
	for _, p := range cluster.TrafficPaths {
		total += p.Polygon.Area()
	}
	if len(cluster.TrafficPaths) > 1 {
		total *= overlapFactor
	}
	cluster.EstimatedArea = total

	return cluster
}

func buildTrafficPaths(cfg *config.Config, cluster Cluster, rooms map[string]*model.Room) []TrafficPath {
	var paths []TrafficPath

	if p, ok := primaryCirculationPath(cfg, cluster); ok {
		paths = append(paths, p)
	}
	if p, ok := kitchenWorkZone(cluster, rooms); ok {
		paths = append(paths, p)
	}
	for _, entry := range cluster.EntryPoints {
		if p, ok := entryZone(cfg, cluster, entry); ok {
			paths = append(paths, p)
		}
	}

	return paths
}

// primaryCirculationPath builds the primary circulation rectangle
// connecting the cluster's two externally-facing sides (spec §4.E). When
// the cluster has a recognized primary entry (a connection to a foyer or
// hallway), the path runs from that entry toward a secondary entry, or
// toward the opposite side of the bounds when there is only one. With no
// primary entry, it runs along the bounds' dominant axis, face-to-face.
func primaryCirculationPath(cfg *config.Config, cluster Cluster) (TrafficPath, bool) {
	var primary *ClusterEntry
	var secondary *ClusterEntry
	for i := range cluster.EntryPoints {
		if cluster.EntryPoints[i].Primary {
			primary = &cluster.EntryPoints[i]
			break
		}
	}
	if primary != nil {
		for i := range cluster.EntryPoints {
			if e := &cluster.EntryPoints[i]; e != primary {
				secondary = e
				break
			}
		}
	}

	var start, target geom.Point
	switch {
	case primary != nil && secondary != nil:
		start, target = primary.Point, secondary.Point
	case primary != nil:
		center := cluster.Bounds.Center()
		reflected := geom.Point{X: 2*center.X - primary.Point.X, Y: 2*center.Y - primary.Point.Y}
		start, target = primary.Point, cluster.Bounds.ClosestPointTo(reflected)
	default:
		start, target = dominantAxisFaces(cluster.Bounds)
	}

	rect, ok := rectangleAlong(start, target, cfg.HallwayWidth)
	if !ok {
		return TrafficPath{}, false
	}
	return TrafficPath{Kind: "primary_circulation", Polygon: rect}, true
}

// dominantAxisFaces returns the midpoints of the two opposite faces of
// bounds along its longer axis.
func dominantAxisFaces(bounds geom.AABB) (geom.Point, geom.Point) {
	center := bounds.Center()
	if bounds.Width() >= bounds.Depth() {
		return geom.Point{X: bounds.MinX, Y: center.Y}, geom.Point{X: bounds.MaxX, Y: center.Y}
	}
	return geom.Point{X: center.X, Y: bounds.MinY}, geom.Point{X: center.X, Y: bounds.MaxY}
}

// kitchenWorkZone builds a rectangle centered on the kitchen's centroid and
// oriented along its long axis, 70% of the long side by 4 ft deep; it is
// not placed against either long wall. (The source's island-declared
// variant, which widens the zone to 8 ft, has no counterpart in the data
// model here — Room carries no fixture/appliance list — so only the base
// 4 ft depth is implemented.)
func kitchenWorkZone(cluster Cluster, rooms map[string]*model.Room) (TrafficPath, bool) {
	const depth = 4.0
	for _, id := range cluster.RoomIDs {
		r := rooms[id]
		if r.Type != model.RoomKitchen {
			continue
		}
		w, d := r.Dimensions()
		center := r.Center()
		zoneWidth := 0.7 * w
		if d > w {
			zoneWidth = 0.7 * d
			return TrafficPath{Kind: "kitchen_work_zone", Polygon: geom.Polygon{Points: []geom.Point{
				{X: center.X - depth/2, Y: center.Y - zoneWidth/2},
				{X: center.X + depth/2, Y: center.Y - zoneWidth/2},
				{X: center.X + depth/2, Y: center.Y + zoneWidth/2},
				{X: center.X - depth/2, Y: center.Y + zoneWidth/2},
			}}}, true
		}
		return TrafficPath{Kind: "kitchen_work_zone", Polygon: geom.Polygon{Points: []geom.Point{
			{X: center.X - zoneWidth/2, Y: center.Y - depth/2},
			{X: center.X + zoneWidth/2, Y: center.Y - depth/2},
			{X: center.X + zoneWidth/2, Y: center.Y + depth/2},
			{X: center.X - zoneWidth/2, Y: center.Y + depth/2},
		}}}, true
	}
	return TrafficPath{}, false
}

// entryZone builds a 4 ft x max(1.5*doorWidth, 4 ft) landing just inside
// the cluster at the given entry point, extending toward the cluster's
// center.
func entryZone(cfg *config.Config, cluster Cluster, entry ClusterEntry) (TrafficPath, bool) {
	const across = 4.0
	depth := 1.5 * cfg.DoorWidth
	if depth < 4.0 {
		depth = 4.0
	}

	center := cluster.Bounds.Center()
	dx, dy := center.X-entry.Point.X, center.Y-entry.Point.Y
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		dx, dy, length = 1, 0, 1
	}
	landing := geom.Point{X: entry.Point.X + dx/length*depth, Y: entry.Point.Y + dy/length*depth}

	rect, ok := rectangleAlong(entry.Point, landing, across)
	if !ok {
		return TrafficPath{}, false
	}
	return TrafficPath{Kind: "entry_zone", Polygon: rect}, true
}
