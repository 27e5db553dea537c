package model

// AddGridAxis adds a named axis to a building's grid, creating the grid on
// first use.
func (s *Store) AddGridAxis(buildingID, name string, direction GridDirection, offset float64) (*GridAxis, error) {
	b, err := s.GetBuilding(buildingID)
	if err != nil {
		return nil, err
	}

	if b.GridID == "" {
		g := &Grid{ID: newID(), BuildingID: buildingID, AxisIDs: []string{}}
		s.grids[g.ID] = g
		b.GridID = g.ID
	}
	grid := s.grids[b.GridID]

	axis := &GridAxis{
		ID:        newID(),
		GridID:    grid.ID,
		Name:      name,
		Direction: direction,
		Offset:    offset,
	}
	s.gridAxes[axis.ID] = axis
	grid.AxisIDs = append(grid.AxisIDs, axis.ID)
	s.bump()
	return axis, nil
}

// GetGrid looks up a grid by ID.
func (s *Store) GetGrid(id string) (*Grid, error) {
	g, ok := s.grids[id]
	if !ok {
		return nil, notFound("GetGrid", "grid", id)
	}
	return g, nil
}

// GetGridAxis looks up a grid axis by ID.
func (s *Store) GetGridAxis(id string) (*GridAxis, error) {
	a, ok := s.gridAxes[id]
	if !ok {
		return nil, notFound("GetGridAxis", "gridAxis", id)
	}
	return a, nil
}

// removeGridCascade removes a grid and all its axes without touching the
// mutation counter; the caller bumps once for the whole outer operation.
func (s *Store) removeGridCascade(gridID string) {
	g, ok := s.grids[gridID]
	if !ok {
		return
	}
	for _, axisID := range g.AxisIDs {
		delete(s.gridAxes, axisID)
	}
	delete(s.grids, gridID)
}
