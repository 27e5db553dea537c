package circulation_test

import (
	"math"
	"testing"

	"github.com/hearthstead/floorcore/pkg/circulation"
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

// Scenario S6: open-plan cluster and primary traffic path.
func TestScenarioS6OpenPlanCluster(t *testing.T) {
	s, levelID := newLevel(t)
	cfg := config.DefaultConfig()

	if _, err := s.CreateRoom(levelID, model.RoomLiving, "Living", rect(0, 0, 20, 15)); err != nil {
		t.Fatalf("CreateRoom living: %v", err)
	}
	if _, err := s.CreateRoom(levelID, model.RoomKitchen, "Kitchen", rect(20, 0, 32, 10)); err != nil {
		t.Fatalf("CreateRoom kitchen: %v", err)
	}
	if _, err := s.CreateRoom(levelID, model.RoomDining, "Dining", rect(20, 10, 32, 20)); err != nil {
		t.Fatalf("CreateRoom dining: %v", err)
	}

	clusters, err := circulation.DetectOpenPlanClusters(s, cfg, levelID)
	if err != nil {
		t.Fatalf("DetectOpenPlanClusters: %v", err)
	}
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	if len(clusters[0].RoomIDs) != 3 {
		t.Fatalf("expected 3 rooms in cluster, got %d", len(clusters[0].RoomIDs))
	}

	var foundPrimary, foundKitchen bool
	for _, p := range clusters[0].TrafficPaths {
		if p.Kind == "primary_circulation" {
			foundPrimary = true
			w, d := p.Polygon.Dimensions()
			if math.Abs(math.Min(w, d)-3.5) > 1e-6 {
				t.Fatalf("primary circulation width = %v, want 3.5", math.Min(w, d))
			}
		}
		if p.Kind == "kitchen_work_zone" {
			foundKitchen = true
			area := p.Polygon.Area()
			want := 0.7 * 12 * 4
			if math.Abs(area-want) > 1e-6 {
				t.Fatalf("kitchen work zone area = %v, want %v", area, want)
			}
		}
	}
	if !foundPrimary {
		t.Fatal("expected a primary circulation traffic path")
	}
	if !foundKitchen {
		t.Fatal("expected a kitchen work zone traffic path")
	}
}

// Property (spec §8 law 8): MST edge count bound.
func TestPropertyMSTEdgeCountBound(t *testing.T) {
	s, levelID := newLevel(t)
	cfg := config.DefaultConfig()

	n := 6
	for i := 0; i < n; i++ {
		x := float64(i) * 20
		_, err := s.CreateRoom(levelID, model.RoomBedroom, "R", rect(x, 0, x+10, 10))
		if err != nil {
			t.Fatalf("CreateRoom: %v", err)
		}
	}

	network, err := circulation.BuildHallwayNetwork(s, cfg, levelID)
	if err != nil {
		t.Fatalf("BuildHallwayNetwork: %v", err)
	}
	if len(network.Segments) > n-1 {
		t.Fatalf("expected at most %d segments, got %d", n-1, len(network.Segments))
	}
}

// Property (spec §8 law 8, fully open-plan): an all-open-plan level with
// shared walls produces an empty hallway network.
func TestPropertyFullyOpenPlanEmptyNetwork(t *testing.T) {
	s, levelID := newLevel(t)
	cfg := config.DefaultConfig()

	if _, err := s.CreateRoom(levelID, model.RoomLiving, "Living", rect(0, 0, 20, 15)); err != nil {
		t.Fatalf("CreateRoom living: %v", err)
	}
	if _, err := s.CreateRoom(levelID, model.RoomKitchen, "Kitchen", rect(20, 0, 32, 15)); err != nil {
		t.Fatalf("CreateRoom kitchen: %v", err)
	}

	network, err := circulation.BuildHallwayNetwork(s, cfg, levelID)
	if err != nil {
		t.Fatalf("BuildHallwayNetwork: %v", err)
	}
	if len(network.Segments) != 0 {
		t.Fatalf("expected empty network for directly-connectable open-plan rooms, got %d segments", len(network.Segments))
	}
}
