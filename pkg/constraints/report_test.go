package constraints_test

import (
	"strings"
	"testing"

	"github.com/hearthstead/floorcore/pkg/config"
	"github.com/hearthstead/floorcore/pkg/constraints"
	"github.com/hearthstead/floorcore/pkg/geom"
	"github.com/hearthstead/floorcore/pkg/model"
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

func TestMinimumAreaViolation(t *testing.T) {
	s, levelID := newLevel(t)
	cfg := config.DefaultConfig()

	if _, err := s.CreateRoom(levelID, model.RoomBedroom, "Tiny Bedroom", rect(0, 0, 5, 5)); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	report, err := constraints.Check(s, cfg, levelID)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	found := false
	for _, v := range report.Violated {
		if strings.Contains(v, "below the 70 ft² minimum") {
			found = true
		}
	}
	if !found {
		t.Fatalf("violated = %v, expected a minimum-area violation", report.Violated)
	}
}

func TestPrimaryEnsuiteWarning(t *testing.T) {
	s, levelID := newLevel(t)
	cfg := config.DefaultConfig()

	if _, err := s.CreateRoom(levelID, model.RoomBedroom, "Primary Bedroom", rect(0, 0, 14, 14)); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	report, err := constraints.Check(s, cfg, levelID)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	found := false
	for _, w := range report.Warnings {
		if strings.Contains(w, "no adjacent ensuite bathroom") {
			found = true
		}
	}
	if !found {
		t.Fatalf("warnings = %v, expected an ensuite warning", report.Warnings)
	}
}

func TestPrimaryEnsuiteSatisfiedWhenAdjacent(t *testing.T) {
	s, levelID := newLevel(t)
	cfg := config.DefaultConfig()

	if _, err := s.CreateRoom(levelID, model.RoomBedroom, "Primary Suite", rect(0, 0, 14, 14)); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if _, err := s.CreateRoom(levelID, model.RoomBathroom, "Ensuite Bath", rect(14, 0, 20, 8)); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	report, err := constraints.Check(s, cfg, levelID)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	for _, w := range report.Warnings {
		if strings.Contains(w, "no adjacent ensuite bathroom") {
			t.Fatalf("did not expect ensuite warning, got warnings %v", report.Warnings)
		}
	}
}

func TestKitchenLivingNotAdjacentWarning(t *testing.T) {
	s, levelID := newLevel(t)
	cfg := config.DefaultConfig()

	if _, err := s.CreateRoom(levelID, model.RoomKitchen, "Kitchen", rect(0, 0, 12, 10)); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if _, err := s.CreateRoom(levelID, model.RoomLiving, "Living", rect(50, 50, 70, 65)); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	report, err := constraints.Check(s, cfg, levelID)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	found := false
	for _, w := range report.Warnings {
		if w == "kitchen and living are not adjacent" {
			found = true
		}
	}
	if !found {
		t.Fatalf("warnings = %v, expected the kitchen-living adjacency warning", report.Warnings)
	}
}
