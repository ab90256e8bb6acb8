package board

import "fmt"

// Board is the static, immutable playfield: a rectangular grid of Cells
// plus its precomputed target list. Construct it once with New and treat
// it as read-only for the lifetime of a run.
//
// Indexing arithmetic (row-major flattening, in-bounds checks) follows the
// same shape as a grid-to-graph adapter: one flat slice of size
// Width*Height, indexed by row*Width+col.
type Board struct {
	width, height int
	cells         []Cell // row-major, length width*height
	targets       []Coordinate
}

// New builds a Board from a rectangular grid of Cells (grid[row][col]).
// Every row must have the same length as the first; New panics otherwise,
// since a malformed grid at this layer is a programmer error — level
// parsing (which can legitimately fail on bad input) lives in levelfmt and
// pads rows before calling New.
func New(grid [][]Cell) *Board {
	height := len(grid)
	if height == 0 {
		panic("board: grid must have at least one row")
	}
	width := len(grid[0])
	if width == 0 {
		panic("board: grid must have at least one column")
	}

	cells := make([]Cell, width*height)
	var targets []Coordinate
	for r, row := range grid {
		if len(row) != width {
			panic(fmt.Sprintf("board: row %d has length %d, want %d", r, len(row), width))
		}
		for c, cell := range row {
			cells[r*width+c] = cell
			if cell == Target {
				targets = append(targets, Coordinate{Row: int8(r), Col: int8(c)})
			}
		}
	}

	return &Board{width: width, height: height, cells: cells, targets: targets}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// InBounds reports whether pos lies within the playfield.
func (b *Board) InBounds(pos Coordinate) bool {
	return pos.Row >= 0 && int(pos.Row) < b.height && pos.Col >= 0 && int(pos.Col) < b.width
}

// index flattens an in-bounds coordinate to its row-major cell index.
func (b *Board) index(pos Coordinate) int {
	return int(pos.Row)*b.width + int(pos.Col)
}

// At returns the cell at pos. Out-of-bounds indexing is a programmer error
// and panics — callers that need a bounds-checked lookup should call
// InBounds first.
func (b *Board) At(pos Coordinate) Cell {
	if !b.InBounds(pos) {
		panic(fmt.Sprintf("board: coordinate %s out of bounds (%dx%d)", pos, b.width, b.height))
	}
	return b.cells[b.index(pos)]
}

// IsWalkable reports whether pos is in bounds and not a Wall.
func (b *Board) IsWalkable(pos Coordinate) bool {
	return b.InBounds(pos) && b.At(pos).Walkable()
}

// Targets returns the board's target cells in ascending canonical order.
// The list is precomputed once at construction so every win check and
// every "boxes on targets" count shares it instead of re-scanning cells.
func (b *Board) Targets() []Coordinate {
	return b.targets
}

// TotalTargets returns len(Targets()).
func (b *Board) TotalTargets() int {
	return len(b.targets)
}

// Size returns the playfield cell count, Width*Height.
func (b *Board) Size() int {
	return b.width * b.height
}

// PlayfieldBounds is the 2-D extent of a Board, independent of any
// particular game state. It is the grid-space counterpart of spatial.Bounds
// (which bounds the 3-D force-layout space, not the puzzle grid).
type PlayfieldBounds struct {
	Width, Height int
}

// BoundsOfPlayfield returns the board's width/height as a PlayfieldBounds,
// the cheapest possible description of "how big is this puzzle" for
// callers that need to size buffers or report dimensions without touching
// individual cells.
func (b *Board) BoundsOfPlayfield() PlayfieldBounds {
	return PlayfieldBounds{Width: b.width, Height: b.height}
}
