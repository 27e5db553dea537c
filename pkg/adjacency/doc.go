// Package adjacency implements the adjacency & door router (component C):
// shared-wall detection between rooms on a level, a room-type policy matrix
// deciding whether a pair auto-connects with a door, shares a cased
// opening, or is forbidden, and duplicate-suppressed opening emission.
//
// It follows the teacher's graph/connector shape (pkg/graph.Graph.AddConnector
// in the dungeon generator) adapted to floor-plan geometry: instead of a
// random connector draw, the edge decision is a deterministic policy lookup
// keyed by room type, and the connector geometry comes from the shared AABB
// segment rather than a procedural layout.
package adjacency
