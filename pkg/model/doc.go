// Package model is the entity store: typed, ID-addressed arenas for every
// entity kind in the building hierarchy (Project, Building, Level,
// Footprint, Wall, Opening, Room, WallAssembly, Grid/GridAxis), with
// cascading delete and a single monotonic mutation counter. The store is
// the sole owner of mutable state; every other package borrows entities by
// ID and never retains a pointer across a mutating call.
package model
