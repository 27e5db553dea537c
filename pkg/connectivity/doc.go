// Package connectivity implements the connectivity validator (component D):
// breadth-first reachability from a designated entry room, orphan
// detection, and repair suggestions for orphaned rooms.
//
// The reachability algorithm is grounded on the teacher's
// Graph.GetReachable / Graph.IsWeaklyConnected BFS (pkg/graph/graph.go),
// adapted to treat room-to-room openings as undirected edges rather than
// directional dungeon connectors.
package connectivity
