package floorplan

import (
	"fmt"

	"github.com/hearthstead/floorcore/pkg/geom"
	"github.com/hearthstead/floorcore/pkg/model"
	"github.com/hearthstead/floorcore/pkg/snapshot"
)

// CreateRoom implements create_room: triggers the auto-door router
// (component C), re-validates connectivity (D), and re-checks constraints
// (F) before returning.
func (c *Core) CreateRoom(levelID string, roomType model.RoomType, name string, polygon geom.Polygon) (*model.Room, snapshot.State, error) {
	r, err := c.store.CreateRoom(levelID, roomType, name, polygon)
	if err != nil {
		return nil, snapshot.State{}, fmt.Errorf("floorplan: create_room: %w", err)
	}
	st, warnings, err := c.reroute(levelID)
	if err != nil {
		return nil, snapshot.State{}, fmt.Errorf("floorplan: create_room: %w", err)
	}
	st.LastAction = actionResult("create_room", map[string]string{"name": name, "type": string(roomType)},
		map[string]string{"roomId": r.ID}, warnings)
	return r, st, nil
}

// UpdateRoom implements update_room.
func (c *Core) UpdateRoom(roomID string, update model.RoomUpdate) (*model.Room, snapshot.State, error) {
	r, err := c.store.UpdateRoom(roomID, update)
	if err != nil {
		return nil, snapshot.State{}, fmt.Errorf("floorplan: update_room: %w", err)
	}
	st, warnings, err := c.reroute(r.LevelID)
	if err != nil {
		return nil, snapshot.State{}, fmt.Errorf("floorplan: update_room: %w", err)
	}
	st.LastAction = actionResult("update_room", map[string]string{"roomId": roomID}, nil, warnings)
	return r, st, nil
}

// DeleteRoom implements delete_room: bedroom-dependent (room1/room2)
// openings are dropped by the store's cascade; connectivity is
// re-validated for the remaining rooms.
func (c *Core) DeleteRoom(roomID string) (snapshot.State, error) {
	r, err := c.store.GetRoom(roomID)
	if err != nil {
		return snapshot.State{}, fmt.Errorf("floorplan: delete_room: %w", err)
	}
	levelID := r.LevelID
	if err := c.store.RemoveRoom(roomID); err != nil {
		return snapshot.State{}, fmt.Errorf("floorplan: delete_room: %w", err)
	}
	st, _, err := c.reroute(levelID)
	if err != nil {
		return snapshot.State{}, fmt.Errorf("floorplan: delete_room: %w", err)
	}
	st.LastAction = actionResult("delete_room", map[string]string{"roomId": roomID}, nil, nil)
	return st, nil
}

// AddOpening implements add_opening.
func (c *Core) AddOpening(wallID string, kind model.OpeningKind, position, width, height, sillHeight float64) (*model.Opening, snapshot.State, error) {
	w, err := c.store.GetWall(wallID)
	if err != nil {
		return nil, snapshot.State{}, fmt.Errorf("floorplan: add_opening: %w", err)
	}
	o, err := c.store.AddOpening(wallID, kind, position, width, height, sillHeight)
	if err != nil {
		return nil, snapshot.State{}, fmt.Errorf("floorplan: add_opening: %w", err)
	}
	st, _, err := c.reroute(w.LevelID)
	if err != nil {
		return nil, snapshot.State{}, fmt.Errorf("floorplan: add_opening: %w", err)
	}
	st.LastAction = actionResult("add_opening", map[string]string{"wallId": wallID}, map[string]string{"openingId": o.ID}, nil)
	return o, st, nil
}

// RemoveOpening implements remove_opening.
func (c *Core) RemoveOpening(openingID string) (snapshot.State, error) {
	o, err := c.store.GetOpening(openingID)
	if err != nil {
		return snapshot.State{}, fmt.Errorf("floorplan: remove_opening: %w", err)
	}
	levelID, err := c.levelOfOpening(o)
	if err != nil {
		return snapshot.State{}, fmt.Errorf("floorplan: remove_opening: %w", err)
	}
	if err := c.store.RemoveOpening(openingID); err != nil {
		return snapshot.State{}, fmt.Errorf("floorplan: remove_opening: %w", err)
	}
	st, _, err := c.reroute(levelID)
	if err != nil {
		return snapshot.State{}, fmt.Errorf("floorplan: remove_opening: %w", err)
	}
	st.LastAction = actionResult("remove_opening", map[string]string{"openingId": openingID}, nil, nil)
	return st, nil
}

// levelOfOpening resolves the level an opening belongs to, via its wall if
// anchored to one, else via either bordering room.
func (c *Core) levelOfOpening(o *model.Opening) (string, error) {
	if o.WallID != "" {
		w, err := c.store.GetWall(o.WallID)
		if err != nil {
			return "", err
		}
		return w.LevelID, nil
	}
	if o.Room1 != "" {
		r, err := c.store.GetRoom(o.Room1)
		if err != nil {
			return "", err
		}
		return r.LevelID, nil
	}
	if o.Room2 != "" {
		r, err := c.store.GetRoom(o.Room2)
		if err != nil {
			return "", err
		}
		return r.LevelID, nil
	}
	return "", fmt.Errorf("opening %q is anchored to neither a wall nor a room", o.ID)
}
