package puzzle

import "sokobauto/board"

// Step applies action to state against board and returns the resulting
// state and what kind of change occurred, or a *StepError describing why
// the action is illegal. Step never mutates state; a fresh GameState is
// returned on success.
//
// Algorithm:
//  1. Compute the destination cell d = state.Player + action direction.
//  2. Fail if d is out of bounds.
//  3. If d holds a box, compute the cell beyond it, b = d + direction; fail
//     if b is out of bounds, a wall, or already holds another box;
//     otherwise move that box to b and the player to d
//     (PlayerAndBoxMove).
//  4. Otherwise, if d is walkable, move the player to d (PlayerMove).
//  5. Otherwise, d is a wall the player walked into: fail.
func Step(b *board.Board, state GameState, action board.Action) (GameState, ChangeKind, error) {
	dest := state.Player.Add(action.Dir)
	if !b.InBounds(dest) {
		return GameState{}, 0, errOutOfBounds
	}

	if state.Boxes.Contains(dest) {
		beyond := dest.Add(action.Dir)
		if !b.InBounds(beyond) {
			return GameState{}, 0, errPushOOB
		}
		if b.At(beyond) == board.Wall {
			return GameState{}, 0, errBlocked
		}
		if state.Boxes.Contains(beyond) {
			return GameState{}, 0, errBlocked
		}

		next := GameState{
			Player: dest,
			Boxes:  state.Boxes.WithMoved(dest, beyond),
		}
		return next, PlayerAndBoxMove, nil
	}

	if !b.At(dest).Walkable() {
		return GameState{}, 0, errWalksIntoWall
	}

	next := GameState{
		Player: dest,
		Boxes:  state.Boxes,
	}
	return next, PlayerMove, nil
}
