package model

// CreateProject creates a new, empty project.
func (s *Store) CreateProject(name string) (*Project, error) {
	p := &Project{
		ID:         newID(),
		Name:       name,
		UnitSystem: "feet",
		Buildings:  []string{},
	}
	s.projects[p.ID] = p
	s.bump()
	return p, nil
}

// GetProject looks up a project by ID.
func (s *Store) GetProject(id string) (*Project, error) {
	p, ok := s.projects[id]
	if !ok {
		return nil, notFound("GetProject", "project", id)
	}
	return p, nil
}

// ListProjectIDs returns every project ID in the store.
func (s *Store) ListProjectIDs() []string {
	ids := make([]string, 0, len(s.projects))
	for id := range s.projects {
		ids = append(ids, id)
	}
	return ids
}

// GetProjectName returns the project's name.
func (s *Store) GetProjectName(id string) (string, error) {
	p, err := s.GetProject(id)
	if err != nil {
		return "", err
	}
	return p.Name, nil
}

// GetEventCount returns the project's monotonic event counter.
func (s *Store) GetEventCount(id string) (uint64, error) {
	p, err := s.GetProject(id)
	if err != nil {
		return 0, err
	}
	return p.EventCount, nil
}

// AddBuilding creates a Building under project.
func (s *Store) AddBuilding(projectID, name string) (*Building, error) {
	p, err := s.GetProject(projectID)
	if err != nil {
		return nil, err
	}

	b := &Building{
		ID:        newID(),
		ProjectID: projectID,
		Name:      name,
		Levels:    []string{},
	}
	s.buildings[b.ID] = b
	p.Buildings = append(p.Buildings, b.ID)
	p.EventCount++
	s.bump()
	return b, nil
}

// GetBuilding looks up a building by ID.
func (s *Store) GetBuilding(id string) (*Building, error) {
	b, ok := s.buildings[id]
	if !ok {
		return nil, notFound("GetBuilding", "building", id)
	}
	return b, nil
}

// GetBuildingName returns the building's name.
func (s *Store) GetBuildingName(id string) (string, error) {
	b, err := s.GetBuilding(id)
	if err != nil {
		return "", err
	}
	return b.Name, nil
}

// BuildingStats summarizes a building for the get_building_stats query.
type BuildingStats struct {
	LevelCount int
	RoomCount  int
	WallCount  int
	TotalArea  float64
}

// GetBuildingStats aggregates room/wall counts and total room area across
// every level of a building.
func (s *Store) GetBuildingStats(buildingID string) (BuildingStats, error) {
	b, err := s.GetBuilding(buildingID)
	if err != nil {
		return BuildingStats{}, err
	}

	stats := BuildingStats{LevelCount: len(b.Levels)}
	for _, levelID := range b.Levels {
		level, ok := s.levels[levelID]
		if !ok {
			continue
		}
		stats.WallCount += len(level.WallIDs)
		stats.RoomCount += len(level.RoomIDs)
		for _, roomID := range level.RoomIDs {
			if room, ok := s.rooms[roomID]; ok {
				stats.TotalArea += room.Area()
			}
		}
	}
	return stats, nil
}

// RemoveBuilding deletes a building and cascades to its levels (which in
// turn cascade to footprints, walls, rooms, and openings). The mutation
// counter advances by exactly one for the whole cascade.
func (s *Store) RemoveBuilding(id string) error {
	b, err := s.GetBuilding(id)
	if err != nil {
		return err
	}
	s.removeBuildingCascade(b)
	s.bump()
	return nil
}

// removeBuildingCascade performs the cascade without touching the mutation
// counter; callers bump exactly once after the whole operation completes.
func (s *Store) removeBuildingCascade(b *Building) {
	for _, levelID := range append([]string(nil), b.Levels...) {
		if level, ok := s.levels[levelID]; ok {
			s.removeLevelCascade(level)
		}
	}

	if b.GridID != "" {
		s.removeGridCascade(b.GridID)
	}

	delete(s.buildings, b.ID)

	if p, ok := s.projects[b.ProjectID]; ok {
		p.Buildings = removeString(p.Buildings, b.ID)
		p.EventCount++
	}
}

func removeString(list []string, target string) []string {
	out := list[:0:0]
	for _, v := range list {
		if v != target {
			out = append(out, v)
		}
	}
	return out
}
