// Package config defines the Core's optional, host-supplied configuration
// (hallway widths, wall thickness, adjacency tolerances, door dimensions)
// per spec §6. It follows the teacher's YAML config pattern: a single
// struct with yaml/json tags, range validation, and a sensible
// DefaultConfig constructor.
package config
