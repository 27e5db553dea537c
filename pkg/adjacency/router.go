package adjacency

import (
	"github.com/hearthstead/floorcore/pkg/config"
	"github.com/hearthstead/floorcore/pkg/geom"
	"github.com/hearthstead/floorcore/pkg/model"
)

// Warning is a door-policy warning, carrying the stable message text and
// the room IDs it concerns.
type Warning struct {
	Text    string
	RoomIDs []string
}

// Result is the outcome of routing a room against its level: the openings
// newly created and the warnings raised.
type Result struct {
	Openings []*model.Opening
	Warnings []Warning
}

// RouteRoom re-evaluates shared-wall adjacency between roomID and every
// other room on its level, per spec §4.C. It is called by the command
// facade after create_room (and may be re-run after any geometry change).
// Already-connected pairs are left alone (duplicate suppression).
func RouteRoom(s *model.Store, cfg *config.Config, levelID, roomID string) (Result, error) {
	room, err := s.GetRoom(roomID)
	if err != nil {
		return Result{}, err
	}
	roomIDs, err := s.GetLevelRooms(levelID)
	if err != nil {
		return Result{}, err
	}

	var result Result
	roomBounds := room.Polygon.Bounds()

	for _, otherID := range roomIDs {
		if otherID == roomID {
			continue
		}
		other, err := s.GetRoom(otherID)
		if err != nil {
			continue
		}
		if s.RoomOpeningExists(room.ID, other.ID) {
			continue
		}

		shared, ok := geom.FindSharedEdge(roomBounds, other.Polygon.Bounds(), cfg.AdjacencyEpsilonWall)
		if !ok {
			continue
		}

		cls, warnText := classify(room.Type, other.Type)
		switch cls {
		case classForbidden:
			result.Warnings = append(result.Warnings, Warning{
				Text:    warnText,
				RoomIDs: []string{room.ID, other.ID},
			})
		case classOpenPlan:
			if shared.Length < cfg.CasedOpeningWidth {
				continue
			}
			opening, err := s.CreateRoomPairOpening(room.ID, other.ID, model.OpeningCasedOpening,
				shared.Midpoint(), cfg.CasedOpeningWidth, cfg.DoorHeight)
			if err != nil {
				return result, err
			}
			result.Openings = append(result.Openings, opening)
		case classAutoConnect:
			width := doorWidth(room.Type, other.Type, cfg.DoorWidth, cfg.ClosetDoorWidth)
			if shared.Length < width {
				continue
			}
			opening, err := s.CreateRoomPairOpening(room.ID, other.ID, model.OpeningDoor,
				shared.Midpoint(), width, cfg.DoorHeight)
			if err != nil {
				return result, err
			}
			result.Openings = append(result.Openings, opening)
		}
	}

	return result, nil
}
