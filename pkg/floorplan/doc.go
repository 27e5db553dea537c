// Package floorplan implements the command facade (component H): a Core
// struct wrapping one model.Store, exposing every operation in spec §4.H.
// Every mutating method validates, mutates, and bumps the mutation counter.
// Those that change an existing level's contents also re-run the adjacency
// router (component C) and rebuild the observable snapshot (which itself
// re-validates connectivity and constraints, components D and F) before
// returning; project, building, level, assembly and grid creation and the
// level and building removals return without a snapshot. This is the
// long-lived, incrementally mutated analogue of dshills-dungo's
// DefaultGenerator.Generate, whose five-stage pipeline (dungeon.go) runs once over a freshly synthesized
// graph instead of after every command.
package floorplan
