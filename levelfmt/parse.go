package levelfmt

import (
	"errors"
	"strings"

	"sokobauto/board"
	"sokobauto/puzzle"
)

// Sentinel errors for level parsing. All of them are fatal to the host.
var (
	// ErrEmptyLevel is returned when the level contains no non-blank rows.
	ErrEmptyLevel = errors.New("levelfmt: level has no rows")

	// ErrNoPlayer is returned when no @ or + glyph is present.
	ErrNoPlayer = errors.New("levelfmt: level has no player")

	// ErrMultiplePlayers is returned when more than one player glyph is
	// present.
	ErrMultiplePlayers = errors.New("levelfmt: level has more than one player")
)

// Parse builds a Board and the initial GameState from an ASCII level
// string.
func Parse(level string) (*board.Board, puzzle.GameState, error) {
	lines := strings.Split(strings.ReplaceAll(level, "\r\n", "\n"), "\n")

	// Drop leading and trailing blank lines; blank lines inside the level
	// body stay and pad out to Floor rows.
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	lines = lines[start:end]
	if len(lines) == 0 {
		return nil, puzzle.GameState{}, ErrEmptyLevel
	}

	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	grid := make([][]board.Cell, len(lines))
	var boxes []board.Coordinate
	var player board.Coordinate
	players := 0

	for r, line := range lines {
		row := make([]board.Cell, width)
		for c := range row {
			row[c] = board.Floor
		}
		for c := 0; c < len(line); c++ {
			pos := board.Coordinate{Row: int8(r), Col: int8(c)}
			switch line[c] {
			case '#':
				row[c] = board.Wall
			case '.':
				row[c] = board.Target
			case '$':
				boxes = append(boxes, pos)
			case '*':
				row[c] = board.Target
				boxes = append(boxes, pos)
			case '@':
				player = pos
				players++
			case '+':
				row[c] = board.Target
				player = pos
				players++
			default:
				// Anything else, the space glyph included, is Floor.
			}
		}
		grid[r] = row
	}

	if players == 0 {
		return nil, puzzle.GameState{}, ErrNoPlayer
	}
	if players > 1 {
		return nil, puzzle.GameState{}, ErrMultiplePlayers
	}

	state := puzzle.GameState{
		Player: player,
		Boxes:  puzzle.NewBoxSet(boxes),
	}
	return board.New(grid), state, nil
}
