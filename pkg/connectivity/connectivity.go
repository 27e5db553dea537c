package connectivity

import (
	"fmt"

	"github.com/hearthstead/floorcore/pkg/config"
	"github.com/hearthstead/floorcore/pkg/geom"
	"github.com/hearthstead/floorcore/pkg/model"
)

// Repair is a suggested door connection for an orphaned room.
type Repair struct {
	RoomID   string
	TargetID string
}

// Report is the outcome of validating a level's connectivity, per spec §4.D.
type Report struct {
	EntryRoomID      string
	Reachable        []string
	Orphans          []string
	IsFullyConnected bool
	Warnings         []string
	Repairs          []Repair
}

// PickEntry chooses the entry room: the first room (in insertion order)
// whose type is a recognized entry candidate, else the first room overall.
// The circulation synthesizer (component E) uses the same rule to start
// its hallway MST (spec §4.E).
func PickEntry(s *model.Store, roomIDs []string) (*model.Room, error) {
	if len(roomIDs) == 0 {
		return nil, nil
	}
	for _, id := range roomIDs {
		r, err := s.GetRoom(id)
		if err != nil {
			return nil, err
		}
		if r.Type.IsEntryCandidate() {
			return r, nil
		}
	}
	return s.GetRoom(roomIDs[0])
}

// Validate runs the connectivity check for a level: BFS reachability from
// the entry room over the undirected room-to-room door graph, orphan
// detection, and repair suggestions (spec §4.D).
func Validate(s *model.Store, cfg *config.Config, levelID string) (Report, error) {
	roomIDs, err := s.GetLevelRooms(levelID)
	if err != nil {
		return Report{}, err
	}
	if len(roomIDs) == 0 {
		return Report{IsFullyConnected: true}, nil
	}

	entry, err := PickEntry(s, roomIDs)
	if err != nil {
		return Report{}, err
	}

	adjacency := make(map[string][]string, len(roomIDs))
	for _, id := range roomIDs {
		adjacency[id] = nil
	}
	openings, err := s.GetLevelRoomOpenings(levelID)
	if err != nil {
		return Report{}, err
	}
	for _, o := range openings {
		adjacency[o.Room1] = append(adjacency[o.Room1], o.Room2)
		adjacency[o.Room2] = append(adjacency[o.Room2], o.Room1)
	}

	visited := map[string]bool{entry.ID: true}
	queue := []string{entry.ID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, neighbor := range adjacency[current] {
			if !visited[neighbor] {
				visited[neighbor] = true
				queue = append(queue, neighbor)
			}
		}
	}

	var reachable, orphans []string
	for _, id := range roomIDs {
		if visited[id] {
			reachable = append(reachable, id)
		} else {
			orphans = append(orphans, id)
		}
	}

	report := Report{
		EntryRoomID:      entry.ID,
		Reachable:        reachable,
		Orphans:          orphans,
		IsFullyConnected: len(orphans) == 0,
	}

	for _, orphanID := range orphans {
		orphan, err := s.GetRoom(orphanID)
		if err != nil {
			continue
		}
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("%s has no door connection (orphaned)", orphan.Name))

		bestTarget, bestLength := "", 0.0
		for _, candidateID := range reachable {
			candidate, err := s.GetRoom(candidateID)
			if err != nil {
				continue
			}
			shared, ok := geom.FindSharedEdge(orphan.Polygon.Bounds(), candidate.Polygon.Bounds(), cfg.AdjacencyEpsilonWall)
			if !ok || shared.Length < 3 {
				continue
			}
			if shared.Length > bestLength {
				bestLength, bestTarget = shared.Length, candidateID
			}
		}
		if bestTarget != "" {
			report.Repairs = append(report.Repairs, Repair{RoomID: orphanID, TargetID: bestTarget})
		}
	}

	return report, nil
}
