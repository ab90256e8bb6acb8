package canon

import (
	"sokobauto/board"
	"sokobauto/puzzle"
)

// Node is the equivalence class of every GameState reachable from any
// other via player-only moves that never relocate a box: a BoxSet plus
// the lexicographic minimum of the player-reachable cell set. Two
// GameStates canonicalize to an equal Node iff they are push-equivalent.
type Node struct {
	Boxes     puzzle.BoxSet
	MinPlayer board.Coordinate
}

// Equal reports whether two Nodes represent the same equivalence class.
func (n Node) Equal(other Node) bool {
	return n.MinPlayer == other.MinPlayer && n.Boxes.Equal(other.Boxes)
}

// Key returns a comparable string uniquely identifying n, suitable as a Go
// map key for the StateGraph's CanonicalNode↔NodeId bijection.
func (n Node) Key() string {
	return n.Boxes.Key() + "|" + n.MinPlayer.String()
}

// Canonicalize computes the Node for state against r's board, using r as
// scratch space for the underlying flood fill.
func Canonicalize(r *Reacher, state puzzle.GameState) Node {
	return Node{
		Boxes:     state.Boxes,
		MinPlayer: r.MinReachablePosition(state),
	}
}

// AnyGameState reconstructs a concrete GameState belonging to n's
// equivalence class, placing the player at n's recorded minimum-reachable
// position. This is always a valid GameState because MinPlayer is, by
// construction, a cell some concrete state in the class could reach.
func (n Node) AnyGameState() puzzle.GameState {
	return puzzle.GameState{Player: n.MinPlayer, Boxes: n.Boxes}
}
