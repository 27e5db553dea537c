package model

import "github.com/hearthstead/floorcore/pkg/geom"

// CreateRoom creates a room on a level. It validates geometry only; the
// auto-door, connectivity, and constraint re-runs triggered by room
// creation (spec §4.H) are orchestrated by the command facade, not by the
// store itself.
func (s *Store) CreateRoom(levelID string, roomType RoomType, name string, polygon geom.Polygon) (*Room, error) {
	l, err := s.GetLevel(levelID)
	if err != nil {
		return nil, err
	}
	if err := polygon.Validate(); err != nil {
		return nil, invalidGeometry("CreateRoom", err.Error())
	}
	if polygon.SelfIntersects() {
		return nil, invalidGeometry("CreateRoom", "room polygon self-intersects")
	}

	r := &Room{
		ID:         newID(),
		LevelID:    levelID,
		Name:       name,
		Type:       roomType,
		Polygon:    polygon,
		OpeningIDs: []string{},
	}
	s.rooms[r.ID] = r
	l.RoomIDs = append(l.RoomIDs, r.ID)
	s.bump()
	return r, nil
}

// GetRoom looks up a room by ID.
func (s *Store) GetRoom(id string) (*Room, error) {
	r, ok := s.rooms[id]
	if !ok {
		return nil, notFound("GetRoom", "room", id)
	}
	return r, nil
}

// RoomDimensions is the {width, depth} pair update_room may rescale a
// room's bounds to.
type RoomDimensions struct {
	Width, Depth float64
}

// RoomUpdate carries the optional fields update_room may change.
type RoomUpdate struct {
	Name       *string
	Center     *geom.Point     // translates the polygon so its centroid lands here
	Dimensions *RoomDimensions // rescales the polygon's bounds
}

// UpdateRoom applies a partial update to a room's name, position, or size.
func (s *Store) UpdateRoom(roomID string, update RoomUpdate) (*Room, error) {
	r, err := s.GetRoom(roomID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		r.Name = *update.Name
	}

	if update.Dimensions != nil {
		bounds := r.Polygon.Bounds()
		curW, curD := bounds.Width(), bounds.Depth()
		if curW <= 0 || curD <= 0 {
			return nil, invalidGeometry("UpdateRoom", "cannot rescale a degenerate room polygon")
		}
		scaleX := update.Dimensions.Width / curW
		scaleY := update.Dimensions.Depth / curD
		for i, pt := range r.Polygon.Points {
			r.Polygon.Points[i] = geom.Point{
				X: bounds.MinX + (pt.X-bounds.MinX)*scaleX,
				Y: bounds.MinY + (pt.Y-bounds.MinY)*scaleY,
			}
		}
	}

	if update.Center != nil {
		current := r.Polygon.Centroid()
		dx := update.Center.X - current.X
		dy := update.Center.Y - current.Y
		for i, pt := range r.Polygon.Points {
			r.Polygon.Points[i] = geom.Point{X: pt.X + dx, Y: pt.Y + dy}
		}
	}

	if err := r.Polygon.Validate(); err != nil {
		return nil, invalidGeometry("UpdateRoom", err.Error())
	}

	s.bump()
	return r, nil
}

// RemoveRoom deletes a room. Openings anchored to this room via the
// (room1, room2) representation are dropped (spec §3 invariant 3); openings
// anchored only to a wall the room happened to border are left alone (the
// wall, not the room, owns them).
func (s *Store) RemoveRoom(id string) error {
	r, err := s.GetRoom(id)
	if err != nil {
		return err
	}
	s.removeRoomCascade(r)
	s.bump()
	return nil
}

func (s *Store) removeRoomCascade(r *Room) {
	for _, o := range s.openingsForRoom(r.ID) {
		s.removeOpeningCascade(o)
	}
	delete(s.rooms, r.ID)
	if l, ok := s.levels[r.LevelID]; ok {
		l.RoomIDs = removeString(l.RoomIDs, r.ID)
	}
}
