package constraints

import "github.com/hearthstead/floorcore/pkg/model"

// minimumArea is the code-minimum area (ft²) per room type, spec §4.F rule
// 1.
var minimumArea = map[model.RoomType]float64{
	model.RoomLiving:   70,
	model.RoomKitchen:  50,
	model.RoomDining:   100,
	model.RoomFamily:   150,
	model.RoomBedroom:  70,
	model.RoomBathroom: 35,
	model.RoomCloset:   16,
	model.RoomOffice:   64,
	model.RoomGarage:   200,
	model.RoomUtility:  35,
	model.RoomLaundry:  35,
	model.RoomPantry:   16,
	model.RoomMudroom:  36,
	model.RoomFoyer:    36,
	model.RoomPatio:    64,
	model.RoomDeck:     64,
}

// typicalArea is the comfortable (non-code-minimum) area per room type,
// above which rule 2's warning does not fire. Spec §4.F gives only the
// code-minimum table; these typical figures are this implementation's own
// judgment call, set comfortably above the minimums.
var typicalArea = map[model.RoomType]float64{
	model.RoomLiving:   150,
	model.RoomKitchen:  100,
	model.RoomDining:   120,
	model.RoomFamily:   220,
	model.RoomBedroom:  110,
	model.RoomBathroom: 50,
	model.RoomCloset:   24,
	model.RoomOffice:   90,
	model.RoomGarage:   220,
	model.RoomUtility:  50,
	model.RoomLaundry:  50,
	model.RoomPantry:   24,
	model.RoomMudroom:  50,
	model.RoomFoyer:    60,
	model.RoomPatio:    100,
	model.RoomDeck:     100,
}

// expectedNeighbors lists room types that should be adjacent to each type,
// for rule 4 ("kitchen should be near living/dining/pantry/family", etc).
var expectedNeighbors = map[model.RoomType][]model.RoomType{
	model.RoomKitchen: {model.RoomLiving, model.RoomDining, model.RoomPantry, model.RoomFamily},
	model.RoomDining:  {model.RoomKitchen, model.RoomLiving},
	model.RoomBedroom: {model.RoomBathroom, model.RoomHallway, model.RoomCloset},
	model.RoomGarage:  {model.RoomMudroom},
}

// avoidNeighbors lists room types that should NOT be adjacent to each
// type, for rule 4's second clause ("bedroom should avoid kitchen/garage").
var avoidNeighbors = map[model.RoomType][]model.RoomType{
	model.RoomBedroom:  {model.RoomKitchen, model.RoomGarage},
	model.RoomBathroom: {model.RoomKitchen, model.RoomDining},
}
