package floorplan_test

import (
	"strings"
	"testing"

	"github.com/hearthstead/floorcore/pkg/config"
	"github.com/hearthstead/floorcore/pkg/floorplan"
	"github.com/hearthstead/floorcore/pkg/geom"
	"github.com/hearthstead/floorcore/pkg/model"
)

func rect(x0, y0, x1, y1 float64) geom.Polygon {
	return geom.Polygon{Points: []geom.Point{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	}}
}

func newCoreLevel(t *testing.T) (*floorplan.Core, string, string) {
	t.Helper()
	c := floorplan.NewCore(config.DefaultConfig())
	project, err := c.CreateProject("P")
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	building, err := c.AddBuilding(project.ID, "B")
	if err != nil {
		t.Fatalf("AddBuilding: %v", err)
	}
	level, err := c.AddLevel(building.ID, "L", 0, 10)
	if err != nil {
		t.Fatalf("AddLevel: %v", err)
	}
	return c, building.ID, level.ID
}

// Scenario S1 through the facade: creating the second room triggers the
// auto-door router and the returned snapshot reflects the new opening.
func TestFacadeCreateRoomTriggersAutoDoor(t *testing.T) {
	c, _, levelID := newCoreLevel(t)

	if _, _, err := c.CreateRoom(levelID, model.RoomHallway, "Hallway", rect(0, 0, 20, 4)); err != nil {
		t.Fatalf("CreateRoom hallway: %v", err)
	}
	_, st, err := c.CreateRoom(levelID, model.RoomBedroom, "Bedroom", rect(0, 4, 12, 16))
	if err != nil {
		t.Fatalf("CreateRoom bedroom: %v", err)
	}

	if len(st.Floorplan.Openings) != 1 {
		t.Fatalf("expected 1 auto-door, got %d", len(st.Floorplan.Openings))
	}
	o := st.Floorplan.Openings[0]
	if o.Type != "door" || o.Width != 3 {
		t.Fatalf("opening = %+v, want a 3 ft door", o)
	}
	if st.LastAction == nil || st.LastAction.Tool != "create_room" || st.LastAction.Result != "success" {
		t.Fatalf("LastAction = %+v, expected a successful create_room action", st.LastAction)
	}
}

// Scenario S4 through the facade: remove_level cascades and the mutation
// counter advances by exactly one.
func TestFacadeCascadeDeleteAdvancesCounterOnce(t *testing.T) {
	c, buildingID, levelID := newCoreLevel(t)

	if _, _, err := c.CreateRoom(levelID, model.RoomLiving, "Living", rect(0, 0, 10, 10)); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if _, _, err := c.CreateRoom(levelID, model.RoomKitchen, "Kitchen", rect(10, 0, 20, 10)); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	before := c.GetMutationCount()
	if err := c.RemoveLevel(levelID); err != nil {
		t.Fatalf("RemoveLevel: %v", err)
	}
	after := c.GetMutationCount()
	if after != before+1 {
		t.Fatalf("mutation count advanced by %d, want 1", after-before)
	}

	stats, err := c.GetBuildingStats(buildingID)
	if err != nil {
		t.Fatalf("GetBuildingStats: %v", err)
	}
	if stats.LevelCount != 0 {
		t.Fatalf("expected 0 levels remaining, got %d", stats.LevelCount)
	}
}

// Scenario S5 through the facade: offset_footprint updates area/perimeter.
func TestFacadeFootprintOffset(t *testing.T) {
	c, _, levelID := newCoreLevel(t)

	f, _, err := c.SetLevelFootprintRect(levelID, 20, 10)
	if err != nil {
		t.Fatalf("SetLevelFootprintRect: %v", err)
	}
	f, st, err := c.OffsetFootprint(f.ID, 1)
	if err != nil {
		t.Fatalf("OffsetFootprint: %v", err)
	}

	area, err := c.GetFootprintArea(f.ID)
	if err != nil {
		t.Fatalf("GetFootprintArea: %v", err)
	}
	if area != 22*12 {
		t.Fatalf("area = %v, want %v", area, 264.0)
	}
	perimeter, err := c.GetFootprintPerimeter(f.ID)
	if err != nil {
		t.Fatalf("GetFootprintPerimeter: %v", err)
	}
	if perimeter != 68 {
		t.Fatalf("perimeter = %v, want 68", perimeter)
	}
	if st.LastAction == nil || st.LastAction.Tool != "offset_footprint" {
		t.Fatalf("LastAction = %+v, expected offset_footprint", st.LastAction)
	}
}

func TestFacadeDeleteRoomDropsRoomOpenings(t *testing.T) {
	c, _, levelID := newCoreLevel(t)

	if _, _, err := c.CreateRoom(levelID, model.RoomHallway, "Hallway", rect(0, 0, 20, 4)); err != nil {
		t.Fatalf("CreateRoom hallway: %v", err)
	}
	bedroom, st, err := c.CreateRoom(levelID, model.RoomBedroom, "Bedroom", rect(0, 4, 12, 16))
	if err != nil {
		t.Fatalf("CreateRoom bedroom: %v", err)
	}
	if len(st.Floorplan.Openings) != 1 {
		t.Fatalf("expected 1 opening before delete, got %d", len(st.Floorplan.Openings))
	}

	st, err = c.DeleteRoom(bedroom.ID)
	if err != nil {
		t.Fatalf("DeleteRoom: %v", err)
	}
	if len(st.Floorplan.Openings) != 0 {
		t.Fatalf("expected 0 openings after deleting bedroom, got %d", len(st.Floorplan.Openings))
	}
	if len(st.Floorplan.Rooms) != 1 {
		t.Fatalf("expected 1 room remaining, got %d", len(st.Floorplan.Rooms))
	}
}

func TestFacadeGetObservableStateMatchesFormatForLLM(t *testing.T) {
	c, _, levelID := newCoreLevel(t)
	if _, _, err := c.CreateRoom(levelID, model.RoomBedroom, "Bedroom", rect(0, 0, 12, 12)); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	text, err := c.FormatObservableState(levelID)
	if err != nil {
		t.Fatalf("FormatObservableState: %v", err)
	}
	if !strings.Contains(text, "Bedroom") {
		t.Fatalf("formatted state missing room name:\n%s", text)
	}
}
