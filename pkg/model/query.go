package model

import "sort"

// GetLevelRoomOpenings returns every door or cased-opening on levelID that
// connects two rooms (either anchored to a wall with both Room1/Room2 set,
// or anchored purely as a room pair). Components outside package model
// (adjacency's duplicate check aside, connectivity, circulation,
// snapshot) use this as their sole view of the room-to-room door graph.
func (s *Store) GetLevelRoomOpenings(levelID string) ([]*Opening, error) {
	roomIDs, err := s.GetLevelRooms(levelID)
	if err != nil {
		return nil, err
	}
	onLevel := make(map[string]bool, len(roomIDs))
	for _, id := range roomIDs {
		onLevel[id] = true
	}

	var out []*Opening
	for _, o := range s.openings {
		if o.Kind != OpeningDoor && o.Kind != OpeningCasedOpening {
			continue
		}
		if o.Room1 == "" || o.Room2 == "" {
			continue
		}
		if onLevel[o.Room1] && onLevel[o.Room2] {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
