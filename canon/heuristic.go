package canon

import (
	"sokobauto/board"
	"sokobauto/puzzle"
)

// directionsAround are the four cardinal neighbour offsets of a box,
// ordered so that consecutive entries are adjacent compass directions
// (N, E, S, W) — required for the corner test below, which only declares a
// trap when two *consecutive* neighbours are blocked.
var directionsAround = [4]board.Direction{board.Up, board.Right, board.Down, board.Left}

// IsBoxTrapped reports whether a box at pos can never be pushed again: it
// is not already on a Target, and at least one pair of consecutive
// cardinal neighbours is non-walkable (a corner).
func IsBoxTrapped(b *board.Board, pos board.Coordinate) bool {
	if b.At(pos) == board.Target {
		return false
	}

	var blocked [4]bool
	for i, d := range directionsAround {
		neighbor := pos.Add(d)
		blocked[i] = !b.InBounds(neighbor) || !b.At(neighbor).Walkable()
	}

	for i := 0; i < 4; i++ {
		if blocked[i] && blocked[(i+1)%4] {
			return true
		}
	}
	return false
}

// IsUnwinnable reports whether state is provably impossible to win: the
// number of boxes that are not corner-trapped falls below the number of
// targets on the board. The test is conservative — it never misclassifies
// a winnable state as unwinnable, only the reverse.
func IsUnwinnable(b *board.Board, state puzzle.GameState) bool {
	trapped := 0
	boxes := state.Boxes.Positions()
	for _, pos := range boxes {
		if IsBoxTrapped(b, pos) {
			trapped++
		}
	}
	freeBoxes := len(boxes) - trapped
	return freeBoxes < b.TotalTargets()
}
