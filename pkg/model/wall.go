package model

import "github.com/hearthstead/floorcore/pkg/geom"

// CreateWallAssembly creates a named, layered wall construction.
func (s *Store) CreateWallAssembly(name string, layers []WallLayer) (*WallAssembly, error) {
	a := &WallAssembly{ID: newID(), Name: name, Layers: append([]WallLayer(nil), layers...)}
	s.assemblies[a.ID] = a
	s.bump()
	return a, nil
}

// GetWallAssembly looks up a wall assembly by ID.
func (s *Store) GetWallAssembly(id string) (*WallAssembly, error) {
	a, ok := s.assemblies[id]
	if !ok {
		return nil, notFound("GetWallAssembly", "wallAssembly", id)
	}
	return a, nil
}

// CreateWall creates a wall segment on a level, referencing an assembly.
func (s *Store) CreateWall(levelID, assemblyID string, start, end geom.Point, height float64) (*Wall, error) {
	l, err := s.GetLevel(levelID)
	if err != nil {
		return nil, err
	}
	if _, err := s.GetWallAssembly(assemblyID); err != nil {
		return nil, err
	}
	if start.Distance(end) <= 1e-9 {
		return nil, invalidGeometry("CreateWall", "wall must have non-zero length")
	}

	w := &Wall{
		ID:         newID(),
		LevelID:    levelID,
		Start:      start,
		End:        end,
		Height:     height,
		AssemblyID: assemblyID,
		OpeningIDs: []string{},
	}
	s.walls[w.ID] = w
	l.WallIDs = append(l.WallIDs, w.ID)
	s.bump()
	return w, nil
}

// GetWall looks up a wall by ID.
func (s *Store) GetWall(id string) (*Wall, error) {
	w, ok := s.walls[id]
	if !ok {
		return nil, notFound("GetWall", "wall", id)
	}
	return w, nil
}

// GetWallOpenings returns the opening IDs anchored to a wall.
func (s *Store) GetWallOpenings(wallID string) ([]string, error) {
	w, err := s.GetWall(wallID)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), w.OpeningIDs...), nil
}

// RemoveWall deletes a wall and cascades to its openings.
func (s *Store) RemoveWall(id string) error {
	w, err := s.GetWall(id)
	if err != nil {
		return err
	}
	s.removeWallCascade(w)
	s.bump()
	return nil
}

func (s *Store) removeWallCascade(w *Wall) {
	for _, openingID := range append([]string(nil), w.OpeningIDs...) {
		delete(s.openings, openingID)
	}
	delete(s.walls, w.ID)
	if l, ok := s.levels[w.LevelID]; ok {
		l.WallIDs = removeString(l.WallIDs, w.ID)
	}
}

// AddOpening creates a door/window/cased-opening anchored to a wall.
func (s *Store) AddOpening(wallID string, kind OpeningKind, position, width, height, sillHeight float64) (*Opening, error) {
	w, err := s.GetWall(wallID)
	if err != nil {
		return nil, err
	}
	if position < 0 || position > 1 {
		return nil, invalidArgument("AddOpening", "position must be in [0,1]")
	}
	if width <= 0 || height <= 0 {
		return nil, invalidArgument("AddOpening", "width and height must be > 0")
	}

	o := &Opening{
		ID:         newID(),
		Kind:       kind,
		WallID:     wallID,
		Position:   position,
		Width:      width,
		Height:     height,
		SillHeight: sillHeight,
	}
	s.openings[o.ID] = o
	w.OpeningIDs = append(w.OpeningIDs, o.ID)
	s.bump()
	return o, nil
}

// AddRoomOpening creates an opening expressed as an (room1, room2) pair,
// anchored to a specific wall segment for geometric resolution. Both
// representations must resolve to the same geometry (spec §3): the wallID
// carries the actual wall-relative position, while Room1/Room2 let the
// store drop the opening automatically when either room is deleted. The
// adjacency router (component C) does not use it; it emits wall-less
// openings through CreateRoomPairOpening.
func (s *Store) AddRoomOpening(wallID, room1, room2 string, kind OpeningKind, position, width, height float64) (*Opening, error) {
	o, err := s.AddOpening(wallID, kind, position, width, height, 0)
	if err != nil {
		return nil, err
	}
	o.Room1 = room1
	o.Room2 = room2

	if r, ok := s.rooms[room1]; ok {
		r.OpeningIDs = append(r.OpeningIDs, o.ID)
	}
	if r, ok := s.rooms[room2]; ok {
		r.OpeningIDs = append(r.OpeningIDs, o.ID)
	}
	return o, nil
}

// CreateRoomPairOpening creates an opening anchored only to an (room1, room2)
// pair, with no backing wall segment. Used by the adjacency router when two
// rooms share an edge but no Wall entity was ever modeled between them; the
// opening's geometry is carried directly as a world-space midpoint (spec §3).
func (s *Store) CreateRoomPairOpening(room1, room2 string, kind OpeningKind, midpoint geom.Point, width, height float64) (*Opening, error) {
	if _, err := s.GetRoom(room1); err != nil {
		return nil, err
	}
	if _, err := s.GetRoom(room2); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, invalidArgument("CreateRoomPairOpening", "width and height must be > 0")
	}

	o := &Opening{
		ID:       newID(),
		Kind:     kind,
		Room1:    room1,
		Room2:    room2,
		Midpoint: midpoint,
		Width:    width,
		Height:   height,
	}
	s.openings[o.ID] = o
	s.rooms[room1].OpeningIDs = append(s.rooms[room1].OpeningIDs, o.ID)
	s.rooms[room2].OpeningIDs = append(s.rooms[room2].OpeningIDs, o.ID)
	s.bump()
	return o, nil
}

// RoomOpeningExists reports whether an opening already connects the
// unordered pair (room1, room2), regardless of anchoring representation.
// The adjacency router uses this to suppress duplicate emission (spec §4.C).
func (s *Store) RoomOpeningExists(room1, room2 string) bool {
	for _, o := range s.openingsForRoom(room1) {
		if (o.Room1 == room1 && o.Room2 == room2) || (o.Room1 == room2 && o.Room2 == room1) {
			return true
		}
	}
	return false
}

// GetOpening looks up an opening by ID.
func (s *Store) GetOpening(id string) (*Opening, error) {
	o, ok := s.openings[id]
	if !ok {
		return nil, notFound("GetOpening", "opening", id)
	}
	return o, nil
}

// RemoveOpening deletes a single opening.
func (s *Store) RemoveOpening(id string) error {
	o, err := s.GetOpening(id)
	if err != nil {
		return err
	}
	s.removeOpeningCascade(o)
	s.bump()
	return nil
}

func (s *Store) removeOpeningCascade(o *Opening) {
	delete(s.openings, o.ID)
	if o.WallID != "" {
		if w, ok := s.walls[o.WallID]; ok {
			w.OpeningIDs = removeString(w.OpeningIDs, o.ID)
		}
	}
	if o.Room1 != "" {
		if r, ok := s.rooms[o.Room1]; ok {
			r.OpeningIDs = removeString(r.OpeningIDs, o.ID)
		}
	}
	if o.Room2 != "" {
		if r, ok := s.rooms[o.Room2]; ok {
			r.OpeningIDs = removeString(r.OpeningIDs, o.ID)
		}
	}
}

// openingsForRoom returns every opening whose (room1, room2) pair names
// roomID. Openings anchored only to a wall the room borders are not
// included.
func (s *Store) openingsForRoom(roomID string) []*Opening {
	var out []*Opening
	for _, o := range s.openings {
		if o.Room1 == roomID || o.Room2 == roomID {
			out = append(out, o)
		}
	}
	return out
}
