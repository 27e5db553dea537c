package model

import (
	"github.com/google/uuid"
)

// Store is the sole owner of all building-model entities. It is not
// goroutine-safe: per spec §5 the Core is a single-threaded cooperative
// component, and a multi-threaded host supplies its own exclusive-access
// discipline around a single Store instance.
type Store struct {
	projects      map[string]*Project
	buildings     map[string]*Building
	levels        map[string]*Level
	footprints    map[string]*Footprint
	walls         map[string]*Wall
	openings      map[string]*Opening
	rooms         map[string]*Room
	assemblies    map[string]*WallAssembly
	grids         map[string]*Grid
	gridAxes      map[string]*GridAxis
	mutationCount uint64
}

// NewStore constructs an empty store. The host owns the single instance and
// may reset state by discarding it and calling NewStore again.
func NewStore() *Store {
	return &Store{
		projects:   make(map[string]*Project),
		buildings:  make(map[string]*Building),
		levels:     make(map[string]*Level),
		footprints: make(map[string]*Footprint),
		walls:      make(map[string]*Wall),
		openings:   make(map[string]*Opening),
		rooms:      make(map[string]*Room),
		assemblies: make(map[string]*WallAssembly),
		grids:      make(map[string]*Grid),
		gridAxes:   make(map[string]*GridAxis),
	}
}

// MutationCount returns the store's monotonic mutation counter — the sole
// cache key every derived projection uses (spec §5, §8 property 1).
func (s *Store) MutationCount() uint64 { return s.mutationCount }

func (s *Store) bump() { s.mutationCount++ }

func newID() string { return uuid.NewString() }

// touchProject increments the per-project event counter for id, if it
// exists. Silently a no-op otherwise (e.g. the project itself was just
// removed as part of the same cascade).
func (s *Store) touchProject(id string) {
	if p, ok := s.projects[id]; ok {
		p.EventCount++
	}
}

// projectOfBuilding walks Building -> Project for event-counter bookkeeping.
func (s *Store) projectOfBuilding(buildingID string) string {
	if b, ok := s.buildings[buildingID]; ok {
		return b.ProjectID
	}
	return ""
}

func (s *Store) projectOfLevel(levelID string) string {
	if l, ok := s.levels[levelID]; ok {
		return s.projectOfBuilding(l.BuildingID)
	}
	return ""
}
