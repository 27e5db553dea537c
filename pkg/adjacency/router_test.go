package adjacency_test

import (
	"math"
	"strings"
	"testing"

	"github.com/hearthstead/floorcore/pkg/adjacency"
	"github.com/hearthstead/floorcore/pkg/config"
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

// Scenario S1: bedroom-hallway auto-connect.
func TestScenarioS1BedroomHallwayAutoConnect(t *testing.T) {
	s, levelID := newLevel(t)
	cfg := config.DefaultConfig()

	hallway, err := s.CreateRoom(levelID, model.RoomHallway, "Hallway", rect(0, 0, 20, 4))
	if err != nil {
		t.Fatalf("CreateRoom hallway: %v", err)
	}
	bedroom, err := s.CreateRoom(levelID, model.RoomBedroom, "Bedroom", rect(0, 4, 12, 16))
	if err != nil {
		t.Fatalf("CreateRoom bedroom: %v", err)
	}

	result, err := adjacency.RouteRoom(s, cfg, levelID, bedroom.ID)
	if err != nil {
		t.Fatalf("RouteRoom: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", result.Warnings)
	}
	if len(result.Openings) != 1 {
		t.Fatalf("expected exactly 1 opening, got %d", len(result.Openings))
	}

	opening := result.Openings[0]
	if opening.Kind != model.OpeningDoor {
		t.Fatalf("expected door, got %v", opening.Kind)
	}
	if opening.Width != 3 {
		t.Fatalf("door width = %v, want 3", opening.Width)
	}
	want := geom.Point{X: 6, Y: 4}
	if math.Abs(opening.Midpoint.X-want.X) > 1e-9 || math.Abs(opening.Midpoint.Y-want.Y) > 1e-9 {
		t.Fatalf("door position = %v, want %v", opening.Midpoint, want)
	}
	_ = hallway
}

// Scenario S2: bedroom-bedroom forbidden.
func TestScenarioS2BedroomBedroomForbidden(t *testing.T) {
	s, levelID := newLevel(t)
	cfg := config.DefaultConfig()

	_, err := s.CreateRoom(levelID, model.RoomBedroom, "Bedroom 1", rect(0, 0, 10, 10))
	if err != nil {
		t.Fatalf("CreateRoom bedroom1: %v", err)
	}
	bedroom2, err := s.CreateRoom(levelID, model.RoomBedroom, "Bedroom 2", rect(10, 0, 20, 10))
	if err != nil {
		t.Fatalf("CreateRoom bedroom2: %v", err)
	}

	result, err := adjacency.RouteRoom(s, cfg, levelID, bedroom2.ID)
	if err != nil {
		t.Fatalf("RouteRoom: %v", err)
	}
	if len(result.Openings) != 0 {
		t.Fatalf("expected zero auto-doors, got %d", len(result.Openings))
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected exactly 1 warning, got %d", len(result.Warnings))
	}
	if !strings.Contains(result.Warnings[0].Text, "between bedrooms") {
		t.Fatalf("warning text = %q, want it to contain %q", result.Warnings[0].Text, "between bedrooms")
	}
}

// Property (spec §8 law 5): open-plan idempotence — one cased opening
// regardless of creation order.
func TestPropertyOpenPlanIdempotence(t *testing.T) {
	cfg := config.DefaultConfig()

	run := func(first, second model.RoomType, firstRect, secondRect geom.Polygon) int {
		s, levelID := newLevel(t)
		r1, err := s.CreateRoom(levelID, first, "A", firstRect)
		if err != nil {
			t.Fatalf("CreateRoom: %v", err)
		}
		r2, err := s.CreateRoom(levelID, second, "B", secondRect)
		if err != nil {
			t.Fatalf("CreateRoom: %v", err)
		}
		if _, err := adjacency.RouteRoom(s, cfg, levelID, r1.ID); err != nil {
			t.Fatalf("RouteRoom r1: %v", err)
		}
		result, err := adjacency.RouteRoom(s, cfg, levelID, r2.ID)
		if err != nil {
			t.Fatalf("RouteRoom r2: %v", err)
		}
		return len(result.Openings)
	}

	livingRect := rect(0, 0, 10, 10)
	kitchenRect := rect(10, 0, 20, 10)

	forward := run(model.RoomLiving, model.RoomKitchen, livingRect, kitchenRect)
	backward := run(model.RoomKitchen, model.RoomLiving, kitchenRect, livingRect)

	if forward != 1 || backward != 1 {
		t.Fatalf("expected exactly one cased opening both orders, got forward=%d backward=%d", forward, backward)
	}
}

// Property (spec §8 law 9): auto-generated doors center on the shared
// segment's midpoint within epsilon.
func TestPropertyDoorPlacementCentered(t *testing.T) {
	s, levelID := newLevel(t)
	cfg := config.DefaultConfig()

	hallway, _ := s.CreateRoom(levelID, model.RoomHallway, "Hallway", rect(0, 0, 20, 4))
	bedroom, err := s.CreateRoom(levelID, model.RoomBedroom, "Bedroom", rect(3, 4, 15, 16))
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	result, err := adjacency.RouteRoom(s, cfg, levelID, bedroom.ID)
	if err != nil {
		t.Fatalf("RouteRoom: %v", err)
	}
	if len(result.Openings) != 1 {
		t.Fatalf("expected 1 opening, got %d", len(result.Openings))
	}
	want := geom.Point{X: (3 + 15) / 2, Y: 4}
	got := result.Openings[0].Midpoint
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Fatalf("door midpoint = %v, want %v", got, want)
	}
	_ = hallway
}

func TestDuplicateSuppression(t *testing.T) {
	s, levelID := newLevel(t)
	cfg := config.DefaultConfig()

	hallway, _ := s.CreateRoom(levelID, model.RoomHallway, "Hallway", rect(0, 0, 20, 4))
	bedroom, _ := s.CreateRoom(levelID, model.RoomBedroom, "Bedroom", rect(0, 4, 12, 16))

	if _, err := adjacency.RouteRoom(s, cfg, levelID, bedroom.ID); err != nil {
		t.Fatalf("RouteRoom first: %v", err)
	}
	result, err := adjacency.RouteRoom(s, cfg, levelID, bedroom.ID)
	if err != nil {
		t.Fatalf("RouteRoom second: %v", err)
	}
	if len(result.Openings) != 0 {
		t.Fatalf("expected no new openings on re-route, got %d", len(result.Openings))
	}
	_ = hallway
}
