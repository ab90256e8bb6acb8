package puzzle

import "sokobauto/board"

// GameState is a pair (player position, BoxSet). The invariant that the
// player's position is walkable and unoccupied by a box is maintained by
// Step and is not re-validated on every access.
type GameState struct {
	Player board.Coordinate
	Boxes  BoxSet
}

// ChangeKind classifies what a successful Step produced.
type ChangeKind int8

const (
	// PlayerMove moved only the player.
	PlayerMove ChangeKind = iota
	// PlayerAndBoxMove moved the player and pushed one box.
	PlayerAndBoxMove
)

func (k ChangeKind) String() string {
	if k == PlayerAndBoxMove {
		return "PlayerAndBoxMove"
	}
	return "PlayerMove"
}

// StepError is returned by Step when action cannot be legally applied. It
// is a routine filtering signal, not an engine fault: callers that
// enumerate candidate moves are expected to discard StepErrors and
// continue.
type StepError struct {
	Reason string
}

func (e *StepError) Error() string {
	return "puzzle: " + e.Reason
}

var (
	errOutOfBounds   = &StepError{Reason: "destination out of bounds"}
	errPushOOB       = &StepError{Reason: "pushed box would leave the board"}
	errBlocked       = &StepError{Reason: "push blocked by wall or another box"}
	errWalksIntoWall = &StepError{Reason: "walks into a wall"}
)
