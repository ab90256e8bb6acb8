// Package spatial provides the float32 3-D vector and axis-aligned cube
// types underlying the Barnes-Hut octree: Vec3 arithmetic and Bounds with
// octant subdivision.
//
// All arithmetic is exact float32 — the octree's numeric semantics are
// specified at f32 precision, so this package deliberately never rounds
// through float64 (math32 supplies the float32 transcendentals).
package spatial
