package model

import "strings"

// RoomType is the enumerated label controlling adjacency and circulation
// policy, per the GLOSSARY. It is string-backed rather than int-backed so
// that YAML input (the demonstration CLI's scenario rooms) and diagnostics
// can name types directly without a lookup table.
type RoomType string

// The full room-type vocabulary from the GLOSSARY.
const (
	RoomLiving      RoomType = "living"
	RoomKitchen     RoomType = "kitchen"
	RoomDining      RoomType = "dining"
	RoomFamily      RoomType = "family"
	RoomGreatRoom   RoomType = "great_room"
	RoomBedroom     RoomType = "bedroom"
	RoomBathroom    RoomType = "bathroom"
	RoomCloset      RoomType = "closet"
	RoomOffice      RoomType = "office"
	RoomHallway     RoomType = "hallway"
	RoomCirculation RoomType = "circulation"
	RoomFoyer       RoomType = "foyer"
	RoomMudroom     RoomType = "mudroom"
	RoomGarage      RoomType = "garage"
	RoomUtility     RoomType = "utility"
	RoomLaundry     RoomType = "laundry"
	RoomPantry      RoomType = "pantry"
	RoomPatio       RoomType = "patio"
	RoomDeck        RoomType = "deck"
	RoomStair       RoomType = "stair"
	RoomLanding    RoomType = "landing"
	RoomOther      RoomType = "other"
)

// IsEntryCandidate reports whether a room of this type is eligible to be
// picked as the connectivity graph's entry room, per spec §4.D rule 1.
func (t RoomType) IsEntryCandidate() bool {
	switch t {
	case RoomFoyer, RoomMudroom, RoomLiving, RoomGarage:
		return true
	default:
		return false
	}
}

// IsOpenPlan reports whether rooms of this type participate in open-plan
// clustering (spec §4.E).
func (t RoomType) IsOpenPlan() bool {
	switch t {
	case RoomLiving, RoomKitchen, RoomDining, RoomFamily, RoomGreatRoom:
		return true
	default:
		return false
	}
}

// IsNamePrimary reports whether name looks like a primary/master bedroom,
// per the substring rule decided in SPEC_FULL.md §9(c).
func IsNamePrimary(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "primary") || strings.Contains(lower, "master")
}

// OpeningKind is the variant of an Opening.
type OpeningKind int

const (
	OpeningDoor OpeningKind = iota
	OpeningWindow
	OpeningCasedOpening
)

// String returns the kind's name.
func (k OpeningKind) String() string {
	switch k {
	case OpeningDoor:
		return "door"
	case OpeningWindow:
		return "window"
	case OpeningCasedOpening:
		return "cased_opening"
	default:
		return "unknown"
	}
}

// GridDirection is the orientation of a grid axis.
type GridDirection int

const (
	GridHorizontal GridDirection = iota
	GridVertical
)

// String returns the direction's name.
func (d GridDirection) String() string {
	if d == GridVertical {
		return "vertical"
	}
	return "horizontal"
}

// WallLayer is one layer of a WallAssembly's construction.
type WallLayer struct {
	MaterialTag string
	Thickness   float64
	Role        string
}
