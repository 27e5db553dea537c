// Package circulation implements the circulation synthesizer (component E):
// a minimum-spanning-tree hallway network connecting rooms that cannot
// connect directly, straight and elbow (L-shaped) hallway geometry, and
// open-plan cluster detection with traffic-path overlays.
//
// The MST construction follows the teacher's embedding package in spirit
// (pkg/embedding.ForceDirectedEmbedder lays out a graph spatially with a
// deterministic, physically-motivated algorithm) but replaces the
// force-directed relaxation with Prim's algorithm over a type-aware edge
// weight, since hallway placement here is adjacency policy, not free
// physical simulation. Corridor polyline construction is grounded on
// pkg/carving.CorridorRouter, which draws a path as a sequence of straight
// segments; rectangle footprints are derived the same way the geometry
// kernel's Polygon.Offset projects an edge normal.
package circulation
