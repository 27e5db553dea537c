package snapshot_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/hearthstead/floorcore/pkg/config"
	"github.com/hearthstead/floorcore/pkg/geom"
	"github.com/hearthstead/floorcore/pkg/model"
	"github.com/hearthstead/floorcore/pkg/snapshot"
)

func rect(x0, y0, x1, y1 float64) geom.Polygon {
	return geom.Polygon{Points: []geom.Point{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	}}
}

func newLevel(t *testing.T) (*model.Store, string) {
	t.Helper()
	s := model.NewStore()
	project, err := s.CreateProject("Maple House")
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	building, err := s.AddBuilding(project.ID, "Main")
	if err != nil {
		t.Fatalf("AddBuilding: %v", err)
	}
	level, err := s.AddLevel(building.ID, "First Floor", 0, 10)
	if err != nil {
		t.Fatalf("AddLevel: %v", err)
	}
	return s, level.ID
}

func TestBuildReflectsRoomsAndAdjacency(t *testing.T) {
	s, levelID := newLevel(t)
	cfg := config.DefaultConfig()

	if _, err := s.CreateRoom(levelID, model.RoomLiving, "Living Room", rect(0, 0, 12, 10)); err != nil {
		t.Fatalf("CreateRoom living: %v", err)
	}
	if _, err := s.CreateRoom(levelID, model.RoomKitchen, "Kitchen", rect(12, 0, 22, 10)); err != nil {
		t.Fatalf("CreateRoom kitchen: %v", err)
	}

	st, err := snapshot.Build(s, cfg, levelID)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(st.Floorplan.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(st.Floorplan.Rooms))
	}
	if st.Layout.TotalArea != 120+100 {
		t.Fatalf("total area = %v, want %v", st.Layout.TotalArea, 220.0)
	}
	if len(st.Layout.Adjacencies) != 1 {
		t.Fatalf("expected 1 adjacency string, got %v", st.Layout.Adjacencies)
	}
	if !strings.Contains(st.Layout.Adjacencies[0], "Kitchen") || !strings.Contains(st.Layout.Adjacencies[0], "Living Room") {
		t.Fatalf("adjacency string = %q, expected both room names", st.Layout.Adjacencies[0])
	}
	if st.Context.ProjectName != "Maple House" || st.Context.BuildingName != "Main" || st.Context.LevelName != "First Floor" {
		t.Fatalf("context = %+v, expected names to round-trip", st.Context)
	}
}

func TestBuildIncludesWallsAndOpenings(t *testing.T) {
	s, levelID := newLevel(t)
	cfg := config.DefaultConfig()

	assembly, err := s.CreateWallAssembly("2x4 stud", []model.WallLayer{
		{MaterialTag: "gypsum", Thickness: 0.042, Role: "finish"},
		{MaterialTag: "stud", Thickness: 0.292, Role: "structural"},
	})
	if err != nil {
		t.Fatalf("CreateWallAssembly: %v", err)
	}
	wall, err := s.CreateWall(levelID, assembly.ID, geom.Point{X: 0, Y: 0}, geom.Point{X: 12, Y: 0}, 9)
	if err != nil {
		t.Fatalf("CreateWall: %v", err)
	}
	if _, err := s.AddOpening(wall.ID, model.OpeningWindow, 0.5, 3, 4, 2.5); err != nil {
		t.Fatalf("AddOpening: %v", err)
	}

	st, err := snapshot.Build(s, cfg, levelID)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(st.Floorplan.Walls) != 1 {
		t.Fatalf("expected 1 wall, got %d", len(st.Floorplan.Walls))
	}
	w := st.Floorplan.Walls[0]
	if !w.IsStructural {
		t.Fatalf("expected wall with a structural layer to report IsStructural")
	}
	if w.Facing != "EAST" {
		t.Fatalf("facing = %q, want EAST for a horizontal wall", w.Facing)
	}
	if len(st.Floorplan.Openings) != 1 {
		t.Fatalf("expected 1 opening, got %d", len(st.Floorplan.Openings))
	}
	if st.Floorplan.Openings[0].Type != "window" {
		t.Fatalf("opening type = %q, want window", st.Floorplan.Openings[0].Type)
	}
}

func TestFormatForLLMIsStable(t *testing.T) {
	s, levelID := newLevel(t)
	cfg := config.DefaultConfig()
	if _, err := s.CreateRoom(levelID, model.RoomBedroom, "Bedroom", rect(0, 0, 12, 12)); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	st, err := snapshot.Build(s, cfg, levelID)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	a := snapshot.FormatForLLM(st)
	b := snapshot.FormatForLLM(st)
	if a != b {
		t.Fatalf("FormatForLLM is not stable across repeated calls")
	}
	for _, header := range []string{"ROOMS\n", "WALLS\n", "OPENINGS\n", "LAYOUT\n", "ADJACENCIES\n", "CIRCULATION\n", "CONSTRAINTS\n"} {
		if !strings.Contains(a, header) {
			t.Fatalf("expected fixed section header %q in output:\n%s", header, a)
		}
	}
}

func TestStateJSONRoundTrip(t *testing.T) {
	s, levelID := newLevel(t)
	cfg := config.DefaultConfig()
	if _, err := s.CreateRoom(levelID, model.RoomBedroom, "Primary Bedroom", rect(0, 0, 14, 14)); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	st, err := snapshot.Build(s, cfg, levelID)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	data, err := json.Marshal(st)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out snapshot.State
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(out.Floorplan.Rooms) != len(st.Floorplan.Rooms) {
		t.Fatalf("round-trip lost rooms: got %d, want %d", len(out.Floorplan.Rooms), len(st.Floorplan.Rooms))
	}
	if out.Floorplan.Rooms[0].Name != "Primary Bedroom" {
		t.Fatalf("round-trip room name = %q, want %q", out.Floorplan.Rooms[0].Name, "Primary Bedroom")
	}
	if len(out.Constraints.Warnings) != len(st.Constraints.Warnings) {
		t.Fatalf("round-trip lost warnings")
	}
}
