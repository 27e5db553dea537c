package adjacency

import "github.com/hearthstead/floorcore/pkg/model"

// class is the policy matrix's verdict for a room-type pair, per spec §4.C.
type class int

const (
	classNone class = iota
	classOpenPlan
	classAutoConnect
	classForbidden
)

// forbiddenText carries the fixed warning text for a forbidden pair. Keyed
// by the pair in canonical (sorted) order.
var forbiddenText = map[[2]model.RoomType]string{
	pairKey(model.RoomBedroom, model.RoomBedroom):   "Consider adding hallway between bedrooms",
	pairKey(model.RoomBathroom, model.RoomKitchen):  "Consider separating bathroom from kitchen",
	pairKey(model.RoomBathroom, model.RoomDining):   "Consider separating bathroom from dining room",
	pairKey(model.RoomBedroom, model.RoomKitchen):   "Consider separating bedroom from kitchen",
	pairKey(model.RoomGarage, model.RoomBedroom):    "Consider separating garage from bedroom",
	pairKey(model.RoomGarage, model.RoomKitchen):    "Consider separating garage from kitchen",
}

// autoConnectPairs lists explicit non-hallway, non-closet auto-connect
// pairs from spec §4.C's examples. Hallway and closet follow general rules
// below rather than an exhaustive pair list, since the spec's "…" signals
// the table is illustrative, not exhaustive.
var autoConnectPairs = map[[2]model.RoomType]bool{
	pairKey(model.RoomBedroom, model.RoomBathroom): true, // ensuite
	pairKey(model.RoomMudroom, model.RoomGarage):   true,
	pairKey(model.RoomKitchen, model.RoomPantry):   true,
}

func pairKey(a, b model.RoomType) [2]model.RoomType {
	if a > b {
		a, b = b, a
	}
	return [2]model.RoomType{a, b}
}

// classify decides the policy class for an unordered room-type pair and,
// for forbidden pairs, the fixed warning text.
func classify(t1, t2 model.RoomType) (class, string) {
	key := pairKey(t1, t2)

	if text, ok := forbiddenText[key]; ok {
		return classForbidden, text
	}
	if t1.IsOpenPlan() && t2.IsOpenPlan() && t1 != t2 {
		return classOpenPlan, ""
	}
	if autoConnectPairs[key] {
		return classAutoConnect, ""
	}
	if t1 == model.RoomHallway || t2 == model.RoomHallway {
		return classAutoConnect, ""
	}
	if t1 == model.RoomCloset || t2 == model.RoomCloset {
		return classAutoConnect, ""
	}
	return classNone, ""
}

// AllowsDirectConnection reports whether the policy matrix would connect
// this pair with a door or cased opening if they shared a wall — i.e. the
// class is neither forbidden nor "other". The circulation synthesizer
// (component E) uses this to decide whether two rooms on a shared wall
// need a hallway at all (spec §4.E).
func AllowsDirectConnection(t1, t2 model.RoomType) bool {
	cls, _ := classify(t1, t2)
	return cls == classOpenPlan || cls == classAutoConnect
}

// IsForbidden reports whether the policy matrix forbids connecting this
// pair outright. The circulation synthesizer applies an MST edge-weight
// penalty to forbidden pairs so the hallway network effectively excludes
// them (spec §4.E).
func IsForbidden(t1, t2 model.RoomType) bool {
	cls, _ := classify(t1, t2)
	return cls == classForbidden
}

// doorWidth returns the swing-door width for an auto-connect pair: the
// closet width if either side is a closet, else the standard door width.
func doorWidth(t1, t2 model.RoomType, doorW, closetDoorW float64) float64 {
	if t1 == model.RoomCloset || t2 == model.RoomCloset {
		return closetDoorW
	}
	return doorW
}
