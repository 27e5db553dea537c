package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// HallwayWidthPreset names one of the standard hallway width options from
// spec §6.
type HallwayWidthPreset string

const (
	HallwayMinimum     HallwayWidthPreset = "minimum"     // 3 ft
	HallwayComfortable HallwayWidthPreset = "comfortable" // 3.5 ft (default)
	HallwayAccessible  HallwayWidthPreset = "accessible"  // 4 ft
	HallwayGallery     HallwayWidthPreset = "gallery"     // 5 ft
)

// Width returns the hallway width in feet for preset, or an error for an
// unrecognized name.
func (p HallwayWidthPreset) Width() (float64, error) {
	switch p {
	case HallwayMinimum:
		return 3.0, nil
	case HallwayComfortable, "":
		return 3.5, nil
	case HallwayAccessible:
		return 4.0, nil
	case HallwayGallery:
		return 5.0, nil
	default:
		return 0, fmt.Errorf("unknown hallway width preset %q", p)
	}
}

// Config specifies every tunable the Core recognizes. All fields are
// optional; DefaultConfig returns the values spec §6 lists as defaults.
type Config struct {
	// HallwayWidth is the corridor width used by the circulation
	// synthesizer, in feet. Default: 3.5 ("comfortable").
	HallwayWidth float64 `yaml:"hallwayWidth" json:"hallwayWidth"`

	// WallThickness is used only for derived renderings (the Core itself
	// models walls as zero-thickness segments). Default: 0.667 ft.
	WallThickness float64 `yaml:"wallThickness" json:"wallThickness"`

	// AdjacencyEpsilonWall is the tolerance for the shared-wall test in
	// the adjacency router and wall-connection tally. Default: 0.5 ft.
	AdjacencyEpsilonWall float64 `yaml:"adjacencyEpsilonWall" json:"adjacencyEpsilonWall"`

	// AdjacencyEpsilonRoom is the broader tolerance used by room-adjacency
	// heuristics (constraint checker, snapshot adjacency descriptions).
	// Open-plan clustering does not read it; it uses a fixed 1 ft. Default:
	// 1.5 ft, within the 1-2 ft range spec §6 allows.
	AdjacencyEpsilonRoom float64 `yaml:"adjacencyEpsilonRoom" json:"adjacencyEpsilonRoom"`

	// DoorWidth is the default swing-door width. Default: 3 ft.
	DoorWidth float64 `yaml:"doorWidth" json:"doorWidth"`

	// ClosetDoorWidth is the swing-door width used when either side of an
	// auto-connected pair is a closet. Default: 2.5 ft.
	ClosetDoorWidth float64 `yaml:"closetDoorWidth" json:"closetDoorWidth"`

	// CasedOpeningWidth is the width of auto-generated cased (trimless)
	// openings between open-plan rooms. Default: 4 ft.
	CasedOpeningWidth float64 `yaml:"casedOpeningWidth" json:"casedOpeningWidth"`

	// DoorHeight is the default door height. Default: 6.67 ft.
	DoorHeight float64 `yaml:"doorHeight" json:"doorHeight"`

	// MinRoomDimension is the minimum room width/depth an editor operation
	// may produce. Default: 4 ft.
	MinRoomDimension float64 `yaml:"minRoomDimension" json:"minRoomDimension"`
}

// DefaultConfig returns the Core's documented defaults.
func DefaultConfig() *Config {
	return &Config{
		HallwayWidth:         3.5,
		WallThickness:        0.667,
		AdjacencyEpsilonWall: 0.5,
		AdjacencyEpsilonRoom: 1.5,
		DoorWidth:            3,
		ClosetDoorWidth:      2.5,
		CasedOpeningWidth:    4,
		DoorHeight:           6.67,
		MinRoomDimension:     4,
	}
}

// Validate checks that every field is within its documented range.
func (c *Config) Validate() error {
	if c.HallwayWidth < 3 || c.HallwayWidth > 5 {
		return fmt.Errorf("hallwayWidth must be in range [3, 5], got %f", c.HallwayWidth)
	}
	if c.WallThickness <= 0 {
		return fmt.Errorf("wallThickness must be > 0, got %f", c.WallThickness)
	}
	if c.AdjacencyEpsilonWall <= 0 {
		return fmt.Errorf("adjacencyEpsilonWall must be > 0, got %f", c.AdjacencyEpsilonWall)
	}
	if c.AdjacencyEpsilonRoom < 1 || c.AdjacencyEpsilonRoom > 2 {
		return fmt.Errorf("adjacencyEpsilonRoom must be in range [1, 2], got %f", c.AdjacencyEpsilonRoom)
	}
	if c.DoorWidth <= 0 {
		return fmt.Errorf("doorWidth must be > 0, got %f", c.DoorWidth)
	}
	if c.ClosetDoorWidth <= 0 {
		return fmt.Errorf("closetDoorWidth must be > 0, got %f", c.ClosetDoorWidth)
	}
	if c.CasedOpeningWidth <= 0 {
		return fmt.Errorf("casedOpeningWidth must be > 0, got %f", c.CasedOpeningWidth)
	}
	if c.DoorHeight <= 0 {
		return fmt.Errorf("doorHeight must be > 0, got %f", c.DoorHeight)
	}
	if c.MinRoomDimension <= 0 {
		return fmt.Errorf("minRoomDimension must be > 0, got %f", c.MinRoomDimension)
	}
	return nil
}

// LoadConfig reads and validates a YAML configuration file, filling in
// documented defaults for any zero-valued field left unset.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}
