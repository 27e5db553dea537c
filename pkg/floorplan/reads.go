package floorplan

import (
	"fmt"

	"github.com/hearthstead/floorcore/pkg/model"
	"github.com/hearthstead/floorcore/pkg/snapshot"
)

// GetBuildingStats implements get_building_stats.
func (c *Core) GetBuildingStats(buildingID string) (model.BuildingStats, error) {
	st, err := c.store.GetBuildingStats(buildingID)
	if err != nil {
		return model.BuildingStats{}, fmt.Errorf("floorplan: get_building_stats: %w", err)
	}
	return st, nil
}

// GetLevelRooms implements get_level_rooms.
func (c *Core) GetLevelRooms(levelID string) ([]string, error) {
	ids, err := c.store.GetLevelRooms(levelID)
	if err != nil {
		return nil, fmt.Errorf("floorplan: get_level_rooms: %w", err)
	}
	return ids, nil
}

// GetLevelWalls implements get_level_walls.
func (c *Core) GetLevelWalls(levelID string) ([]string, error) {
	ids, err := c.store.GetLevelWalls(levelID)
	if err != nil {
		return nil, fmt.Errorf("floorplan: get_level_walls: %w", err)
	}
	return ids, nil
}

// GetWallOpenings implements get_wall_openings.
func (c *Core) GetWallOpenings(wallID string) ([]string, error) {
	ids, err := c.store.GetWallOpenings(wallID)
	if err != nil {
		return nil, fmt.Errorf("floorplan: get_wall_openings: %w", err)
	}
	return ids, nil
}

// GetFootprintArea implements get_footprint_area.
func (c *Core) GetFootprintArea(footprintID string) (float64, error) {
	area, err := c.store.GetFootprintArea(footprintID)
	if err != nil {
		return 0, fmt.Errorf("floorplan: get_footprint_area: %w", err)
	}
	return area, nil
}

// GetFootprintPerimeter implements get_footprint_perimeter.
func (c *Core) GetFootprintPerimeter(footprintID string) (float64, error) {
	perimeter, err := c.store.GetFootprintPerimeter(footprintID)
	if err != nil {
		return 0, fmt.Errorf("floorplan: get_footprint_perimeter: %w", err)
	}
	return perimeter, nil
}

// GetLevelElevation implements get_level_elevation.
func (c *Core) GetLevelElevation(levelID string) (float64, error) {
	elev, err := c.store.GetLevelElevation(levelID)
	if err != nil {
		return 0, fmt.Errorf("floorplan: get_level_elevation: %w", err)
	}
	return elev, nil
}

// GetLevelHeight implements get_level_height.
func (c *Core) GetLevelHeight(levelID string) (float64, error) {
	height, err := c.store.GetLevelHeight(levelID)
	if err != nil {
		return 0, fmt.Errorf("floorplan: get_level_height: %w", err)
	}
	return height, nil
}

// GetLevelName implements get_level_name.
func (c *Core) GetLevelName(levelID string) (string, error) {
	name, err := c.store.GetLevelName(levelID)
	if err != nil {
		return "", fmt.Errorf("floorplan: get_level_name: %w", err)
	}
	return name, nil
}

// ListProjectIDs implements list_project_ids.
func (c *Core) ListProjectIDs() []string {
	return c.store.ListProjectIDs()
}

// GetProjectName implements get_project_name.
func (c *Core) GetProjectName(projectID string) (string, error) {
	name, err := c.store.GetProjectName(projectID)
	if err != nil {
		return "", fmt.Errorf("floorplan: get_project_name: %w", err)
	}
	return name, nil
}

// GetBuildingName implements get_building_name.
func (c *Core) GetBuildingName(buildingID string) (string, error) {
	name, err := c.store.GetBuildingName(buildingID)
	if err != nil {
		return "", fmt.Errorf("floorplan: get_building_name: %w", err)
	}
	return name, nil
}

// GetEventCount implements get_event_count.
func (c *Core) GetEventCount(projectID string) (uint64, error) {
	count, err := c.store.GetEventCount(projectID)
	if err != nil {
		return 0, fmt.Errorf("floorplan: get_event_count: %w", err)
	}
	return count, nil
}

// GetMutationCount implements get_mutation_count.
func (c *Core) GetMutationCount() uint64 {
	return c.store.MutationCount()
}

// GetObservableState implements get_observable_state.
func (c *Core) GetObservableState(levelID string) (snapshot.State, error) {
	st, err := snapshot.Build(c.store, c.cfg, levelID)
	if err != nil {
		return snapshot.State{}, fmt.Errorf("floorplan: get_observable_state: %w", err)
	}
	return st, nil
}

// FormatObservableState implements the formatStateForLLM companion to
// get_observable_state, spec §4.G.
func (c *Core) FormatObservableState(levelID string) (string, error) {
	st, err := c.GetObservableState(levelID)
	if err != nil {
		return "", err
	}
	return snapshot.FormatForLLM(st), nil
}
