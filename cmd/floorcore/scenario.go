package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hearthstead/floorcore/pkg/geom"
	"github.com/hearthstead/floorcore/pkg/model"
)

// scenario is a small YAML-loadable house description: just enough to
// demonstrate the command facade end-to-end. It is not part of the Core's
// contract (spec §6: "no file format of its own") — a thin convenience for
// this demonstration binary only.
type scenario struct {
	Project      string        `yaml:"project"`
	Building     string        `yaml:"building"`
	Level        string        `yaml:"level"`
	Elevation    float64       `yaml:"elevation"`
	FloorToFloor float64       `yaml:"floorToFloor"`
	Footprint    footprintSpec `yaml:"footprint"`
	Rooms        []roomSpec    `yaml:"rooms"`
}

type footprintSpec struct {
	Width float64 `yaml:"width"`
	Depth float64 `yaml:"depth"`
}

type roomSpec struct {
	Name string  `yaml:"name"`
	Type string  `yaml:"type"`
	X0   float64 `yaml:"x0"`
	Y0   float64 `yaml:"y0"`
	X1   float64 `yaml:"x1"`
	Y1   float64 `yaml:"y1"`
}

func (r roomSpec) polygon() geom.Polygon {
	return geom.Polygon{Points: []geom.Point{
		{X: r.X0, Y: r.Y0}, {X: r.X1, Y: r.Y0}, {X: r.X1, Y: r.Y1}, {X: r.X0, Y: r.Y1},
	}}
}

func loadScenario(path string) (*scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var s scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}
	return &s, nil
}

// roomType resolves a scenario's freeform type string to model.RoomType,
// falling back to RoomOther for anything unrecognized rather than failing
// the whole scenario over one typo.
func roomType(s string) model.RoomType {
	switch model.RoomType(s) {
	case model.RoomLiving, model.RoomKitchen, model.RoomDining, model.RoomFamily,
		model.RoomGreatRoom, model.RoomBedroom, model.RoomBathroom, model.RoomCloset,
		model.RoomOffice, model.RoomHallway, model.RoomCirculation, model.RoomFoyer,
		model.RoomMudroom, model.RoomGarage, model.RoomUtility, model.RoomLaundry,
		model.RoomPantry, model.RoomPatio, model.RoomDeck, model.RoomStair,
		model.RoomLanding, model.RoomOther:
		return model.RoomType(s)
	default:
		return model.RoomOther
	}
}
