package model

import "github.com/hearthstead/floorcore/pkg/geom"

// AddLevel creates a Level under building.
func (s *Store) AddLevel(buildingID, name string, elevation, floorToFloor float64) (*Level, error) {
	b, err := s.GetBuilding(buildingID)
	if err != nil {
		return nil, err
	}

	l := &Level{
		ID:           newID(),
		BuildingID:   buildingID,
		Name:         name,
		Elevation:    elevation,
		FloorToFloor: floorToFloor,
		WallIDs:      []string{},
		RoomIDs:      []string{},
	}
	s.levels[l.ID] = l
	b.Levels = append(b.Levels, l.ID)
	s.touchProject(b.ProjectID)
	s.bump()
	return l, nil
}

// GetLevel looks up a level by ID.
func (s *Store) GetLevel(id string) (*Level, error) {
	l, ok := s.levels[id]
	if !ok {
		return nil, notFound("GetLevel", "level", id)
	}
	return l, nil
}

// GetLevelName returns the level's name.
func (s *Store) GetLevelName(id string) (string, error) {
	l, err := s.GetLevel(id)
	if err != nil {
		return "", err
	}
	return l.Name, nil
}

// GetLevelElevation returns the level's elevation above datum.
func (s *Store) GetLevelElevation(id string) (float64, error) {
	l, err := s.GetLevel(id)
	if err != nil {
		return 0, err
	}
	return l.Elevation, nil
}

// GetLevelHeight returns the level's floor-to-floor height.
func (s *Store) GetLevelHeight(id string) (float64, error) {
	l, err := s.GetLevel(id)
	if err != nil {
		return 0, err
	}
	return l.FloorToFloor, nil
}

// GetBuildingLevels returns the ordered level IDs of a building.
func (s *Store) GetBuildingLevels(buildingID string) ([]string, error) {
	b, err := s.GetBuilding(buildingID)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), b.Levels...), nil
}

// GetLevelRooms returns the room IDs of a level in insertion order. Returns
// an empty slice (not an error) for a level with no rooms, per spec §7.
func (s *Store) GetLevelRooms(levelID string) ([]string, error) {
	l, err := s.GetLevel(levelID)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), l.RoomIDs...), nil
}

// GetLevelWalls returns the wall IDs of a level in insertion order.
func (s *Store) GetLevelWalls(levelID string) ([]string, error) {
	l, err := s.GetLevel(levelID)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), l.WallIDs...), nil
}

// SetLevelFootprint sets (or replaces) a level's footprint polygon.
func (s *Store) SetLevelFootprint(levelID string, polygon geom.Polygon) (*Footprint, error) {
	l, err := s.GetLevel(levelID)
	if err != nil {
		return nil, err
	}
	if err := polygon.Validate(); err != nil {
		return nil, invalidGeometry("SetLevelFootprint", err.Error())
	}
	if polygon.SelfIntersects() {
		return nil, invalidGeometry("SetLevelFootprint", "footprint polygon self-intersects")
	}

	if l.FootprintID != "" {
		delete(s.footprints, l.FootprintID)
	}

	f := &Footprint{ID: newID(), LevelID: levelID, Polygon: polygon}
	s.footprints[f.ID] = f
	l.FootprintID = f.ID
	s.bump()
	return f, nil
}

// SetLevelFootprintRect is a convenience wrapper building a w x d rectangle
// footprint anchored at the origin.
func (s *Store) SetLevelFootprintRect(levelID string, w, d float64) (*Footprint, error) {
	poly := geom.Polygon{Points: []geom.Point{
		{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: d}, {X: 0, Y: d},
	}}
	return s.SetLevelFootprint(levelID, poly)
}

// GetFootprint looks up a footprint by ID.
func (s *Store) GetFootprint(id string) (*Footprint, error) {
	f, ok := s.footprints[id]
	if !ok {
		return nil, notFound("GetFootprint", "footprint", id)
	}
	return f, nil
}

// GetFootprintArea returns a footprint's area.
func (s *Store) GetFootprintArea(id string) (float64, error) {
	f, err := s.GetFootprint(id)
	if err != nil {
		return 0, err
	}
	return f.Area(), nil
}

// GetFootprintPerimeter returns a footprint's perimeter.
func (s *Store) GetFootprintPerimeter(id string) (float64, error) {
	f, err := s.GetFootprint(id)
	if err != nil {
		return 0, err
	}
	return f.Perimeter(), nil
}

// OffsetFootprint replaces a footprint's polygon with itself offset by
// distance (outward positive).
func (s *Store) OffsetFootprint(footprintID string, distance float64) (*Footprint, error) {
	f, err := s.GetFootprint(footprintID)
	if err != nil {
		return nil, err
	}
	offset := f.Polygon.Offset(distance)
	if err := offset.Validate(); err != nil {
		return nil, invalidGeometry("OffsetFootprint", err.Error())
	}
	f.Polygon = offset
	s.bump()
	return f, nil
}

// RemoveLevel deletes a level and cascades to its footprint, walls (and
// their openings), and rooms. The mutation counter advances by exactly one
// for the whole cascade (spec §8 scenario S4).
func (s *Store) RemoveLevel(id string) error {
	l, err := s.GetLevel(id)
	if err != nil {
		return err
	}
	s.removeLevelCascade(l)
	s.bump()
	return nil
}

func (s *Store) removeLevelCascade(l *Level) {
	if l.FootprintID != "" {
		delete(s.footprints, l.FootprintID)
	}
	for _, wallID := range append([]string(nil), l.WallIDs...) {
		if wall, ok := s.walls[wallID]; ok {
			s.removeWallCascade(wall)
		}
	}
	for _, roomID := range append([]string(nil), l.RoomIDs...) {
		if room, ok := s.rooms[roomID]; ok {
			s.removeRoomCascade(room)
		}
	}

	delete(s.levels, l.ID)

	if b, ok := s.buildings[l.BuildingID]; ok {
		b.Levels = removeString(b.Levels, l.ID)
		s.touchProject(b.ProjectID)
	}
}
