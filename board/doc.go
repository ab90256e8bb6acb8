// Package board defines the static, immutable value types of the puzzle
// world: cells, coordinates, directions, and the board itself.
//
// A Board is built once from a rectangular grid of Cells and never mutated
// again; every other package in this module treats it as a read-only,
// freely-shareable value. Coordinates are row-major (Row, Col), each fit in
// an int8, and out-of-bounds indexing via Board.At is a programmer error
// (it panics): board dimensions are fixed for the lifetime of a run.
package board
