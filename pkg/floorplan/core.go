package floorplan

import (
	"fmt"

	"github.com/hearthstead/floorcore/pkg/adjacency"
	"github.com/hearthstead/floorcore/pkg/config"
	"github.com/hearthstead/floorcore/pkg/geom"
	"github.com/hearthstead/floorcore/pkg/model"
	"github.com/hearthstead/floorcore/pkg/snapshot"
)

// Core is the command facade: one store, one config, the externally
// callable surface of spec §4.H.
type Core struct {
	store *model.Store
	cfg   *config.Config
}

// NewCore constructs a Core over a fresh, empty store. A nil cfg falls back
// to config.DefaultConfig().
func NewCore(cfg *config.Config) *Core {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Core{store: model.NewStore(), cfg: cfg}
}

// reroute re-runs the adjacency router (component C) over every room on
// levelID, then rebuilds the observable snapshot — which re-validates
// connectivity (D) and constraints (F) as part of snapshot.Build. Called by
// every mutating method that touches a level, per spec §4.H's "re-runs
// §4.C-F on return" contract.
func (c *Core) reroute(levelID string) (snapshot.State, []adjacency.Warning, error) {
	roomIDs, err := c.store.GetLevelRooms(levelID)
	if err != nil {
		return snapshot.State{}, nil, err
	}
	var warnings []adjacency.Warning
	for _, roomID := range roomIDs {
		result, err := adjacency.RouteRoom(c.store, c.cfg, levelID, roomID)
		if err != nil {
			return snapshot.State{}, nil, err
		}
		warnings = append(warnings, result.Warnings...)
	}
	st, err := snapshot.Build(c.store, c.cfg, levelID)
	if err != nil {
		return snapshot.State{}, nil, err
	}
	return st, warnings, nil
}

func actionResult(tool string, args map[string]string, created map[string]string, warnings []adjacency.Warning) *snapshot.ActionResult {
	msg := ""
	if len(warnings) > 0 {
		msg = warnings[0].Text
	}
	return &snapshot.ActionResult{
		Tool:    tool,
		Args:    args,
		Result:  "success",
		Message: msg,
		Created: created,
	}
}

// CreateProject implements create_project.
func (c *Core) CreateProject(name string) (*model.Project, error) {
	p, err := c.store.CreateProject(name)
	if err != nil {
		return nil, fmt.Errorf("floorplan: create_project: %w", err)
	}
	return p, nil
}

// AddBuilding implements add_building.
func (c *Core) AddBuilding(projectID, name string) (*model.Building, error) {
	b, err := c.store.AddBuilding(projectID, name)
	if err != nil {
		return nil, fmt.Errorf("floorplan: add_building: %w", err)
	}
	return b, nil
}

// AddLevel implements add_level.
func (c *Core) AddLevel(buildingID, name string, elevation, floorToFloor float64) (*model.Level, error) {
	l, err := c.store.AddLevel(buildingID, name, elevation, floorToFloor)
	if err != nil {
		return nil, fmt.Errorf("floorplan: add_level: %w", err)
	}
	return l, nil
}

// SetLevelFootprint implements set_level_footprint.
func (c *Core) SetLevelFootprint(levelID string, polygon geom.Polygon) (*model.Footprint, snapshot.State, error) {
	f, err := c.store.SetLevelFootprint(levelID, polygon)
	if err != nil {
		return nil, snapshot.State{}, fmt.Errorf("floorplan: set_level_footprint: %w", err)
	}
	st, _, err := c.reroute(levelID)
	if err != nil {
		return nil, snapshot.State{}, fmt.Errorf("floorplan: set_level_footprint: %w", err)
	}
	st.LastAction = actionResult("set_level_footprint", nil, map[string]string{"footprintId": f.ID}, nil)
	return f, st, nil
}

// SetLevelFootprintRect implements set_level_footprint_rect.
func (c *Core) SetLevelFootprintRect(levelID string, w, d float64) (*model.Footprint, snapshot.State, error) {
	f, err := c.store.SetLevelFootprintRect(levelID, w, d)
	if err != nil {
		return nil, snapshot.State{}, fmt.Errorf("floorplan: set_level_footprint_rect: %w", err)
	}
	st, _, err := c.reroute(levelID)
	if err != nil {
		return nil, snapshot.State{}, fmt.Errorf("floorplan: set_level_footprint_rect: %w", err)
	}
	st.LastAction = actionResult("set_level_footprint_rect", nil, map[string]string{"footprintId": f.ID}, nil)
	return f, st, nil
}

// OffsetFootprint implements offset_footprint.
func (c *Core) OffsetFootprint(footprintID string, distance float64) (*model.Footprint, snapshot.State, error) {
	f, err := c.store.OffsetFootprint(footprintID, distance)
	if err != nil {
		return nil, snapshot.State{}, fmt.Errorf("floorplan: offset_footprint: %w", err)
	}
	st, _, err := c.reroute(f.LevelID)
	if err != nil {
		return nil, snapshot.State{}, fmt.Errorf("floorplan: offset_footprint: %w", err)
	}
	st.LastAction = actionResult("offset_footprint", nil, nil, nil)
	return f, st, nil
}

// CreateWallAssembly implements create_wall_assembly. Assemblies are not
// level-scoped (spec §3), so there is no snapshot to rebuild.
func (c *Core) CreateWallAssembly(name string, layers []model.WallLayer) (*model.WallAssembly, error) {
	a, err := c.store.CreateWallAssembly(name, layers)
	if err != nil {
		return nil, fmt.Errorf("floorplan: create_wall_assembly: %w", err)
	}
	return a, nil
}

// CreateWall implements create_wall.
func (c *Core) CreateWall(levelID, assemblyID string, start, end geom.Point, height float64) (*model.Wall, snapshot.State, error) {
	w, err := c.store.CreateWall(levelID, assemblyID, start, end, height)
	if err != nil {
		return nil, snapshot.State{}, fmt.Errorf("floorplan: create_wall: %w", err)
	}
	st, _, err := c.reroute(levelID)
	if err != nil {
		return nil, snapshot.State{}, fmt.Errorf("floorplan: create_wall: %w", err)
	}
	st.LastAction = actionResult("create_wall", nil, map[string]string{"wallId": w.ID}, nil)
	return w, st, nil
}

// RemoveWall implements remove_wall (cascades openings).
func (c *Core) RemoveWall(wallID string) (snapshot.State, error) {
	w, err := c.store.GetWall(wallID)
	if err != nil {
		return snapshot.State{}, fmt.Errorf("floorplan: remove_wall: %w", err)
	}
	levelID := w.LevelID
	if err := c.store.RemoveWall(wallID); err != nil {
		return snapshot.State{}, fmt.Errorf("floorplan: remove_wall: %w", err)
	}
	st, _, err := c.reroute(levelID)
	if err != nil {
		return snapshot.State{}, fmt.Errorf("floorplan: remove_wall: %w", err)
	}
	st.LastAction = actionResult("remove_wall", nil, nil, nil)
	return st, nil
}

// RemoveLevel implements remove_level. The level is gone afterward, so
// there is no snapshot to return.
func (c *Core) RemoveLevel(levelID string) error {
	if err := c.store.RemoveLevel(levelID); err != nil {
		return fmt.Errorf("floorplan: remove_level: %w", err)
	}
	return nil
}

// RemoveBuilding implements remove_building.
func (c *Core) RemoveBuilding(buildingID string) error {
	if err := c.store.RemoveBuilding(buildingID); err != nil {
		return fmt.Errorf("floorplan: remove_building: %w", err)
	}
	return nil
}

// AddGridAxis implements add_grid_axis. Grids are building-scoped, not
// level-scoped, so there is no snapshot to rebuild.
func (c *Core) AddGridAxis(buildingID, name string, direction model.GridDirection, offset float64) (*model.GridAxis, error) {
	axis, err := c.store.AddGridAxis(buildingID, name, direction, offset)
	if err != nil {
		return nil, fmt.Errorf("floorplan: add_grid_axis: %w", err)
	}
	return axis, nil
}
