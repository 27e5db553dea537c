package constraints

import (
	"fmt"

	"github.com/hearthstead/floorcore/pkg/config"
	"github.com/hearthstead/floorcore/pkg/connectivity"
	"github.com/hearthstead/floorcore/pkg/geom"
	"github.com/hearthstead/floorcore/pkg/model"
)

// Report is the checker's output: three disjoint lists of stable message
// text, per spec §4.F.
type Report struct {
	Satisfied []string
	Violated  []string
	Warnings  []string
}

// Check runs every rule in spec §4.F against a level's current snapshot.
func Check(s *model.Store, cfg *config.Config, levelID string) (Report, error) {
	roomIDs, err := s.GetLevelRooms(levelID)
	if err != nil {
		return Report{}, err
	}
	rooms := make([]*model.Room, 0, len(roomIDs))
	for _, id := range roomIDs {
		r, err := s.GetRoom(id)
		if err != nil {
			return Report{}, err
		}
		rooms = append(rooms, r)
	}

	var report Report

	checkRoomAreas(rooms, &report)
	if err := checkWallConnectionTally(s, cfg, levelID, &report); err != nil {
		return Report{}, err
	}
	checkAdjacencyExpectations(cfg, rooms, &report)
	checkKitchenLivingAdjacency(cfg, rooms, &report)
	checkEntryPrivacy(s, cfg, levelID, rooms, &report)
	checkPrimaryEnsuite(cfg, rooms, &report)

	return report, nil
}

// Rules 1-2: minimum area and typical range, per room type.
func checkRoomAreas(rooms []*model.Room, report *Report) {
	for _, r := range rooms {
		area := r.Area()
		if min, ok := minimumArea[r.Type]; ok {
			if area < min {
				report.Violated = append(report.Violated, fmt.Sprintf(
					"%s area %.1f ft² is below the %.0f ft² minimum for %s", r.Name, area, min, r.Type))
				continue
			}
			report.Satisfied = append(report.Satisfied, fmt.Sprintf(
				"%s meets the %.0f ft² minimum area for %s", r.Name, min, r.Type))
		}
		if typical, ok := typicalArea[r.Type]; ok && area < typical {
			report.Warnings = append(report.Warnings, fmt.Sprintf(
				"%s area %.1f ft² is below the typical %.0f ft² for %s", r.Name, area, typical, r.Type))
		}
	}
}

// Rule 3: wall-endpoint coincidence tally.
func checkWallConnectionTally(s *model.Store, cfg *config.Config, levelID string, report *Report) error {
	wallIDs, err := s.GetLevelWalls(levelID)
	if err != nil {
		return err
	}
	walls := make([]*model.Wall, 0, len(wallIDs))
	for _, id := range wallIDs {
		w, err := s.GetWall(id)
		if err != nil {
			return err
		}
		walls = append(walls, w)
	}

	count := 0
	for i := 0; i < len(walls); i++ {
		for j := i + 1; j < len(walls); j++ {
			if wallEndpointsCoincide(walls[i], walls[j], cfg.AdjacencyEpsilonWall) {
				count++
			}
		}
	}
	if count > 0 {
		report.Satisfied = append(report.Satisfied, fmt.Sprintf("%d wall connections found", count))
	}
	return nil
}

func wallEndpointsCoincide(a, b *model.Wall, eps float64) bool {
	return a.Start.Near(b.Start, eps) || a.Start.Near(b.End, eps) ||
		a.End.Near(b.Start, eps) || a.End.Near(b.End, eps)
}

// Rule 4: adjacency expectation rules.
func checkAdjacencyExpectations(cfg *config.Config, rooms []*model.Room, report *Report) {
	for _, r := range rooms {
		var neighborTypes []model.RoomType
		for _, other := range rooms {
			if other.ID == r.ID {
				continue
			}
			if _, ok := geom.FindSharedEdge(r.Bounds(), other.Bounds(), cfg.AdjacencyEpsilonRoom); ok {
				neighborTypes = append(neighborTypes, other.Type)
			}
		}
		if len(neighborTypes) == 0 {
			continue
		}

		if expected, ok := expectedNeighbors[r.Type]; ok {
			if !anyTypeIn(neighborTypes, expected) {
				report.Warnings = append(report.Warnings, fmt.Sprintf(
					"%s has adjacencies but none of its expected neighbor types", r.Name))
			}
		}
		if avoid, ok := avoidNeighbors[r.Type]; ok {
			if anyTypeIn(neighborTypes, avoid) {
				report.Warnings = append(report.Warnings, fmt.Sprintf(
					"%s is adjacent to a room type it should avoid", r.Name))
			}
		}
	}
}

func anyTypeIn(types []model.RoomType, set []model.RoomType) bool {
	for _, t := range types {
		for _, s := range set {
			if t == s {
				return true
			}
		}
	}
	return false
}

// Rule 5: kitchen-living adjacency.
func checkKitchenLivingAdjacency(cfg *config.Config, rooms []*model.Room, report *Report) {
	var kitchens, livings []*model.Room
	for _, r := range rooms {
		switch r.Type {
		case model.RoomKitchen:
			kitchens = append(kitchens, r)
		case model.RoomLiving:
			livings = append(livings, r)
		}
	}
	if len(kitchens) == 0 || len(livings) == 0 {
		return
	}
	for _, k := range kitchens {
		for _, l := range livings {
			if _, ok := geom.FindSharedEdge(k.Bounds(), l.Bounds(), cfg.AdjacencyEpsilonRoom); ok {
				return
			}
		}
	}
	report.Warnings = append(report.Warnings, "kitchen and living are not adjacent")
}

// Rule 6: entry privacy — a bathroom directly adjacent to the entry on a
// non-south side.
func checkEntryPrivacy(s *model.Store, cfg *config.Config, levelID string, rooms []*model.Room, report *Report) error {
	roomIDs, err := s.GetLevelRooms(levelID)
	if err != nil {
		return err
	}
	if len(roomIDs) == 0 {
		return nil
	}
	entry, err := connectivity.PickEntry(s, roomIDs)
	if err != nil {
		return err
	}

	for _, r := range rooms {
		if r.Type != model.RoomBathroom || r.ID == entry.ID {
			continue
		}
		shared, ok := geom.FindSharedEdge(entry.Bounds(), r.Bounds(), cfg.AdjacencyEpsilonRoom)
		if !ok {
			continue
		}
		if shared.Direction != geom.DirSouth {
			report.Warnings = append(report.Warnings, fmt.Sprintf(
				"%s is directly adjacent to the entry on the %s side; consider relocating for privacy",
				r.Name, shared.Direction))
		}
	}
	return nil
}

// Rule 7: a primary/master bedroom must have an adjacent bathroom
// (ensuite).
func checkPrimaryEnsuite(cfg *config.Config, rooms []*model.Room, report *Report) {
	for _, r := range rooms {
		if r.Type != model.RoomBedroom || !model.IsNamePrimary(r.Name) {
			continue
		}
		hasEnsuite := false
		for _, other := range rooms {
			if other.Type != model.RoomBathroom {
				continue
			}
			if _, ok := geom.FindSharedEdge(r.Bounds(), other.Bounds(), cfg.AdjacencyEpsilonRoom); ok {
				hasEnsuite = true
				break
			}
		}
		if !hasEnsuite {
			report.Warnings = append(report.Warnings, fmt.Sprintf(
				"%s has no adjacent ensuite bathroom", r.Name))
		}
	}
}
