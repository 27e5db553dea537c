// Package geom provides the 2D geometry primitives the floor-plan Core is
// built on: points, polygons, axis-aligned bounds, and the shared-edge test
// used by the adjacency router. Every operation is pure and deterministic.
// Comparisons between computed values use tolerances, either the caller's
// eps or a fixed small constant; a few guards test for an exact zero (a
// zero offset distance, a zero-size box, a zero displacement).
package geom
