package snapshot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hearthstead/floorcore/pkg/circulation"
	"github.com/hearthstead/floorcore/pkg/config"
	"github.com/hearthstead/floorcore/pkg/connectivity"
	"github.com/hearthstead/floorcore/pkg/constraints"
	"github.com/hearthstead/floorcore/pkg/geom"
	"github.com/hearthstead/floorcore/pkg/model"
)

// Build folds the store and components B-F into a deterministic State for
// levelID, per spec §4.G. The returned State's LastAction is always nil;
// the command facade (package floorplan) sets it after Build returns.
func Build(s *model.Store, cfg *config.Config, levelID string) (State, error) {
	level, err := s.GetLevel(levelID)
	if err != nil {
		return State{}, fmt.Errorf("building snapshot: %w", err)
	}
	building, err := s.GetBuilding(level.BuildingID)
	if err != nil {
		return State{}, fmt.Errorf("building snapshot: %w", err)
	}
	project, err := s.GetProject(building.ProjectID)
	if err != nil {
		return State{}, fmt.Errorf("building snapshot: %w", err)
	}

	roomIDs, err := s.GetLevelRooms(levelID)
	if err != nil {
		return State{}, fmt.Errorf("building snapshot: %w", err)
	}
	rooms := make([]*model.Room, 0, len(roomIDs))
	roomByID := make(map[string]*model.Room, len(roomIDs))
	for _, id := range roomIDs {
		r, err := s.GetRoom(id)
		if err != nil {
			return State{}, fmt.Errorf("building snapshot: %w", err)
		}
		rooms = append(rooms, r)
		roomByID[id] = r
	}

	wallIDs, err := s.GetLevelWalls(levelID)
	if err != nil {
		return State{}, fmt.Errorf("building snapshot: %w", err)
	}
	walls := make([]*model.Wall, 0, len(wallIDs))
	for _, id := range wallIDs {
		w, err := s.GetWall(id)
		if err != nil {
			return State{}, fmt.Errorf("building snapshot: %w", err)
		}
		walls = append(walls, w)
	}

	var footprintBounds geom.AABB
	haveFootprint := false
	if level.FootprintID != "" {
		fp, err := s.GetFootprint(level.FootprintID)
		if err != nil {
			return State{}, fmt.Errorf("building snapshot: %w", err)
		}
		footprintBounds = fp.Polygon.Bounds()
		haveFootprint = true
	}

	floorplan := Floorplan{
		Rooms:    buildRoomSummaries(rooms),
		Walls:    buildWallSummaries(s, walls, footprintBounds, haveFootprint),
		Openings: buildOpeningSummaries(s, walls, levelID),
	}

	layout, err := buildLayout(s, cfg, levelID, rooms, footprintBounds, haveFootprint)
	if err != nil {
		return State{}, fmt.Errorf("building snapshot: %w", err)
	}

	constraintReport, err := constraints.Check(s, cfg, levelID)
	if err != nil {
		return State{}, fmt.Errorf("building snapshot: %w", err)
	}

	return State{
		Floorplan: floorplan,
		Layout:    layout,
		Constraints: Constraints{
			Satisfied: constraintReport.Satisfied,
			Violated:  constraintReport.Violated,
			Warnings:  constraintReport.Warnings,
		},
		Context: Context{
			ProjectID:    project.ID,
			ProjectName:  project.Name,
			BuildingID:   building.ID,
			BuildingName: building.Name,
			LevelID:      level.ID,
			LevelName:    level.Name,
			UnitSystem:   project.UnitSystem,
		},
	}, nil
}

func buildRoomSummaries(rooms []*model.Room) []RoomSummary {
	out := make([]RoomSummary, 0, len(rooms))
	for _, r := range rooms {
		w, d := r.Dimensions()
		out = append(out, RoomSummary{
			ID:     r.ID,
			Name:   r.Name,
			Type:   string(r.Type),
			Center: r.Center(),
			Width:  w,
			Depth:  d,
			Area:   r.Area(),
			Bounds: r.Bounds(),
		})
	}
	return out
}

func buildWallSummaries(s *model.Store, walls []*model.Wall, footprintBounds geom.AABB, haveFootprint bool) []WallSummary {
	out := make([]WallSummary, 0, len(walls))
	for _, w := range walls {
		dx, dy := w.End.X-w.Start.X, w.End.Y-w.Start.Y
		out = append(out, WallSummary{
			ID:           w.ID,
			Start:        w.Start,
			End:          w.End,
			Length:       w.Length(),
			Facing:       geom.VectorToCardinal(dx, dy).String(),
			IsStructural: wallIsStructural(s, w),
			IsExterior:   haveFootprint && wallOnFootprintBoundary(w, footprintBounds),
			Height:       w.Height,
		})
	}
	return out
}

// wallIsStructural reports whether w's assembly carries a layer tagged
// "structural" (case-insensitive). Assemblies carry no dedicated boolean in
// this data model, so the role string is the only signal available; this
// heuristic is this implementation's own judgment call.
func wallIsStructural(s *model.Store, w *model.Wall) bool {
	a, err := s.GetWallAssembly(w.AssemblyID)
	if err != nil {
		return false
	}
	for _, layer := range a.Layers {
		if strings.EqualFold(layer.Role, "structural") {
			return true
		}
	}
	return false
}

// wallOnFootprintBoundary reports whether w's midpoint lies on the
// footprint's bounding box, within a fixed tolerance. The Core's footprint
// is an arbitrary polygon but walls are judged against its AABB, consistent
// with the rest of this implementation treating axis-aligned bounds as the
// unit of adjacency (spec §4.D/§4.E/§4.F all reason in AABB terms); a
// non-rectangular footprint's concave walls are not distinguished from its
// convex hull, a documented simplification.
func wallOnFootprintBoundary(w *model.Wall, bounds geom.AABB) bool {
	const eps = 0.5
	mid := w.Start.Lerp(w.End, 0.5)
	return mid.X <= bounds.MinX+eps || mid.X >= bounds.MaxX-eps ||
		mid.Y <= bounds.MinY+eps || mid.Y >= bounds.MaxY-eps
}

func buildOpeningSummaries(s *model.Store, walls []*model.Wall, levelID string) []OpeningSummary {
	seen := make(map[string]bool)
	var openings []*model.Opening

	for _, w := range walls {
		for _, id := range w.OpeningIDs {
			o, err := s.GetOpening(id)
			if err != nil || seen[id] {
				continue
			}
			seen[id] = true
			openings = append(openings, o)
		}
	}
	roomOpenings, err := s.GetLevelRoomOpenings(levelID)
	if err == nil {
		for _, o := range roomOpenings {
			if seen[o.ID] {
				continue
			}
			seen[o.ID] = true
			openings = append(openings, o)
		}
	}
	sort.Slice(openings, func(i, j int) bool { return openings[i].ID < openings[j].ID })

	out := make([]OpeningSummary, 0, len(openings))
	for _, o := range openings {
		out = append(out, OpeningSummary{
			ID:         o.ID,
			Type:       o.Kind.String(),
			WallID:     o.WallID,
			Room1:      o.Room1,
			Room2:      o.Room2,
			Position:   o.Position,
			Width:      o.Width,
			Height:     o.Height,
			SillHeight: o.SillHeight,
		})
	}
	return out
}

func buildLayout(s *model.Store, cfg *config.Config, levelID string, rooms []*model.Room, footprintBounds geom.AABB, haveFootprint bool) (Layout, error) {
	var totalArea float64
	var bounds geom.AABB
	haveBounds := false
	for _, r := range rooms {
		totalArea += r.Area()
		if !haveBounds {
			bounds = r.Bounds()
			haveBounds = true
		} else {
			bounds = bounds.Union(r.Bounds())
		}
	}
	if haveFootprint {
		if haveBounds {
			bounds = bounds.Union(footprintBounds)
		} else {
			bounds = footprintBounds
			haveBounds = true
		}
	}

	adjacencies := buildAdjacencyStrings(cfg, rooms)

	circulationStrings, err := buildCirculationStrings(s, cfg, levelID)
	if err != nil {
		return Layout{}, err
	}

	return Layout{
		TotalArea:   totalArea,
		Bounds:      bounds,
		Adjacencies: adjacencies,
		Circulation: circulationStrings,
	}, nil
}

// buildAdjacencyStrings renders "`B` is NORTH of `A`" for every pair of
// rooms sharing a wall, per spec §4.G. Direction is the shared edge's
// direction from the first room's perspective, so the string reads "the
// second room is <direction> of the first".
func buildAdjacencyStrings(cfg *config.Config, rooms []*model.Room) []string {
	var out []string
	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			edge, ok := geom.FindSharedEdge(rooms[i].Bounds(), rooms[j].Bounds(), cfg.AdjacencyEpsilonRoom)
			if !ok {
				continue
			}
			out = append(out, fmt.Sprintf("%q is %s of %q", rooms[j].Name, edge.Direction, rooms[i].Name))
		}
	}
	return out
}

func buildCirculationStrings(s *model.Store, cfg *config.Config, levelID string) ([]string, error) {
	var out []string

	network, err := circulation.BuildHallwayNetwork(s, cfg, levelID)
	if err != nil {
		return nil, err
	}
	for _, seg := range network.Segments {
		from, err := s.GetRoom(seg.From)
		if err != nil {
			continue
		}
		to, err := s.GetRoom(seg.To)
		if err != nil {
			continue
		}
		out = append(out, fmt.Sprintf("hallway connects %q and %q (%.1f ft, %.1f ft wide)",
			from.Name, to.Name, seg.Length, seg.Width))
	}

	clusters, err := circulation.DetectOpenPlanClusters(s, cfg, levelID)
	if err != nil {
		return nil, err
	}
	for _, c := range clusters {
		names := make([]string, 0, len(c.RoomIDs))
		for _, id := range c.RoomIDs {
			if r, err := s.GetRoom(id); err == nil {
				names = append(names, r.Name)
			}
		}
		out = append(out, fmt.Sprintf("open-plan cluster: %s (%.1f ft² circulation)",
			strings.Join(names, ", "), c.EstimatedArea))
	}

	report, err := connectivity.Validate(s, cfg, levelID)
	if err != nil {
		return nil, err
	}
	for _, w := range report.Warnings {
		out = append(out, w)
	}

	return out, nil
}
