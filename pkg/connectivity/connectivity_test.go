package connectivity_test

import (
	"strings"
	"testing"

	"github.com/hearthstead/floorcore/pkg/config"
	"github.com/hearthstead/floorcore/pkg/connectivity"
	"github.com/hearthstead/floorcore/pkg/geom"
	"github.com/hearthstead/floorcore/pkg/model"
	"pgregory.net/rapid"
)

func rect(x0, y0, x1, y1 float64) geom.Polygon {
	return geom.Polygon{Points: []geom.Point{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	}}
}

func newLevel(t *testing.T) (*model.Store, string) {
	t.Helper()
	s := model.NewStore()
	project, err := s.CreateProject("P")
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	building, err := s.AddBuilding(project.ID, "B")
	if err != nil {
		t.Fatalf("AddBuilding: %v", err)
	}
	level, err := s.AddLevel(building.ID, "L", 0, 10)
	if err != nil {
		t.Fatalf("AddLevel: %v", err)
	}
	return s, level.ID
}

// Scenario S3: orphan detection.
func TestScenarioS3OrphanDetection(t *testing.T) {
	s, levelID := newLevel(t)
	cfg := config.DefaultConfig()

	_, err := s.CreateRoom(levelID, model.RoomFoyer, "foyer", rect(0, 0, 8, 8))
	if err != nil {
		t.Fatalf("CreateRoom foyer: %v", err)
	}
	bedroom, err := s.CreateRoom(levelID, model.RoomBedroom, "bedroom", rect(20, 20, 32, 32))
	if err != nil {
		t.Fatalf("CreateRoom bedroom: %v", err)
	}

	report, err := connectivity.Validate(s, cfg, levelID)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(report.Reachable) != 1 {
		t.Fatalf("reachable = %v, want [foyer]", report.Reachable)
	}
	if len(report.Orphans) != 1 || report.Orphans[0] != bedroom.ID {
		t.Fatalf("orphans = %v, want [%s]", report.Orphans, bedroom.ID)
	}
	found := false
	for _, w := range report.Warnings {
		if strings.Contains(w, "bedroom has no door connection (orphaned)") {
			found = true
		}
	}
	if !found {
		t.Fatalf("warnings = %v, expected an orphan warning mentioning the bedroom", report.Warnings)
	}
}

// Property (spec §8 law 7): reachable and orphans partition the room set.
func TestPropertyReachableOrphansPartition(t *testing.T) {
	cfg := config.DefaultConfig()
	rapid.Check(t, func(rt *rapid.T) {
		s, levelID := newLevel(t)
		n := rapid.IntRange(1, 8).Draw(rt, "n")
		for i := 0; i < n; i++ {
			x := float64(i) * 15
			_, err := s.CreateRoom(levelID, model.RoomBedroom, "R", rect(x, 0, x+10, 10))
			if err != nil {
				rt.Fatalf("CreateRoom: %v", err)
			}
		}

		report, err := connectivity.Validate(s, cfg, levelID)
		if err != nil {
			rt.Fatalf("Validate: %v", err)
		}
		if len(report.Reachable)+len(report.Orphans) != n {
			rt.Fatalf("reachable(%d) + orphans(%d) != room count(%d)", len(report.Reachable), len(report.Orphans), n)
		}
		seen := map[string]bool{}
		for _, id := range report.Reachable {
			if seen[id] {
				rt.Fatalf("room %s counted twice", id)
			}
			seen[id] = true
		}
		for _, id := range report.Orphans {
			if seen[id] {
				rt.Fatalf("room %s in both reachable and orphans", id)
			}
			seen[id] = true
		}
	})
}
